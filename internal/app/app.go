// Package app implements the application layer for requiregen.
package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.trai.ch/requiregen/internal/adapters/detector"
	"go.trai.ch/requiregen/internal/adapters/linear"
	"go.trai.ch/requiregen/internal/adapters/telemetry"
	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/core/ports"
	"go.trai.ch/requiregen/internal/engine/constraint"
	"go.trai.ch/requiregen/internal/engine/diff"
	"go.trai.ch/requiregen/internal/engine/manifest"
	"go.trai.ch/requiregen/internal/engine/script"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reader       ports.DocumentReader
	writer       ports.ScriptWriter
	store        ports.SnapshotStore
	watcher      ports.Watcher
	logger       ports.Logger
	tracer       ports.Tracer

	root       string
	configPath string
}

// New creates a new App instance rooted at the working directory.
func New(
	loader ports.ConfigLoader,
	reader ports.DocumentReader,
	writer ports.ScriptWriter,
	store ports.SnapshotStore,
	watcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		reader:       reader,
		writer:       writer,
		store:        store,
		watcher:      watcher,
		logger:       log,
		tracer:       tracer,
		root:         ".",
	}
}

// WithRoot sets the project directory used for config discovery and captured snapshots.
func (a *App) WithRoot(root string) *App {
	a.root = root
	return a
}

// SetConfigPath sets an explicit configuration file. Empty restores discovery.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// EnableSpanLogging reports every pipeline stage with its duration through the logger.
// The returned function flushes and stops span reporting.
func (a *App) EnableSpanLogging() func(context.Context) error {
	return telemetry.Setup(a.logger).Shutdown
}

// GenerateOptions configures the Generate method.
type GenerateOptions struct {
	// BeforePath is the pre-update document. Empty means the captured snapshot.
	BeforePath string
	// AfterPath is the post-update document.
	AfterPath string
	// OutputPath is where the script is written. Empty means the configured output.
	OutputPath string
}

// Generate diffs the two snapshots and writes the update script.
// Pipeline failures are returned as *domain.StageError.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	if opts.AfterPath == "" {
		return zerr.With(domain.ErrMissingArguments, "missing", "after")
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	formatter, err := constraint.New(cfg.Policy)
	if err != nil {
		return err
	}

	output := opts.OutputPath
	if output == "" {
		output = cfg.Output
	}

	ctx, span := a.tracer.Start(ctx, "generate")
	defer span.End()

	before, after, err := a.loadPair(ctx, opts.BeforePath, opts.AfterPath)
	if err != nil {
		span.RecordError(err)
		return err
	}

	records := diff.Compute(before.Snapshot, after.Snapshot)

	var artifact *domain.ScriptArtifact
	err = a.stage(ctx, domain.StageGenerate, opts.AfterPath, func(ports.Span) error {
		var genErr error
		artifact, genErr = script.Generate(records, formatter, script.OptionsFromConfig(cfg))
		if genErr != nil {
			return domain.NewStageError(domain.StageGenerate, opts.AfterPath, domain.ErrUnparsableVersion, genErr)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = a.stage(ctx, domain.StageWrite, output, func(ports.Span) error {
		if writeErr := a.writer.WriteExecutable(output, artifact.Bytes()); writeErr != nil {
			return domain.NewStageError(domain.StageWrite, output, domain.ErrIOFailure, writeErr)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("changes", artifact.Changes)
	span.SetAttribute("digest", artifact.Digest())
	a.logger.Info(fmt.Sprintf("wrote %s: %s", output, changeCount(artifact.Changes)))

	return nil
}

// Capture validates the document at path and stores it as the before snapshot.
// It is meant to run as the dependency manager's pre-update hook.
func (a *App) Capture(ctx context.Context, path string) error {
	if path == "" {
		return zerr.With(domain.ErrMissingArguments, "missing", "path")
	}

	ctx, span := a.tracer.Start(ctx, "capture")
	defer span.End()

	data, err := a.read(ctx, path)
	if err != nil {
		span.RecordError(err)
		return err
	}

	snapshot, err := a.load(ctx, domain.LabelBefore, path, data)
	if err != nil {
		span.RecordError(err)
		return err
	}

	storePath := filepath.Join(a.root, domain.DefaultSnapshotsPath())
	err = a.stage(ctx, domain.StageWrite, storePath, func(ports.Span) error {
		if putErr := a.store.Put(a.root, domain.LabelBefore, data); putErr != nil {
			return domain.NewStageError(domain.StageWrite, storePath, domain.ErrIOFailure, putErr)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	a.logger.Info(fmt.Sprintf("captured %s: %d package(s), fingerprint %s", path, snapshot.Len(), snapshot.Fingerprint()))
	return nil
}

// DiffOptions configures the Diff method.
type DiffOptions struct {
	BeforePath string
	AfterPath  string

	// JSON renders a machine-readable report.
	JSON bool
	// All includes unchanged packages.
	All bool
	// Color is "auto", "always" or "never".
	Color string
}

// Diff writes the change list between the two snapshots to w without generating a script.
func (a *App) Diff(ctx context.Context, opts DiffOptions, w io.Writer) error {
	if opts.AfterPath == "" {
		return zerr.With(domain.ErrMissingArguments, "missing", "after")
	}

	ctx, span := a.tracer.Start(ctx, "diff")
	defer span.End()

	before, after, err := a.loadPair(ctx, opts.BeforePath, opts.AfterPath)
	if err != nil {
		span.RecordError(err)
		return err
	}

	records := diff.Compute(before.Snapshot, after.Snapshot)
	span.SetAttribute("changes", len(diff.Emitted(records)))

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.Color)
	if opts.JSON {
		mode = detector.ModePlain
	}
	renderer := linear.NewRenderer(w, mode.Profile())

	if opts.JSON {
		err = renderer.RenderJSON(records, opts.All, before.info(), after.info())
	} else {
		err = renderer.Render(records, opts.All)
	}
	if err != nil {
		err = domain.NewStageError(domain.StageWrite, "", domain.ErrIOFailure, err)
		span.RecordError(err)
		return err
	}
	return nil
}

// Watch generates once, then regenerates whenever an input snapshot changes, until ctx is done.
// Failed regenerations are logged and watching continues, since a lock file may be observed
// half-written.
func (a *App) Watch(ctx context.Context, opts GenerateOptions) error {
	if opts.AfterPath == "" {
		return zerr.With(domain.ErrMissingArguments, "missing", "after")
	}

	files := []string{opts.AfterPath}
	if opts.BeforePath != "" {
		files = append(files, opts.BeforePath)
	}

	a.regenerate(ctx, opts)
	a.logger.Info(fmt.Sprintf("watching %s for changes...", strings.Join(files, ", ")))

	return a.watcher.Watch(ctx, files, func(changed []string) {
		a.logger.Info(fmt.Sprintf("%s changed", strings.Join(changed, ", ")))
		a.regenerate(ctx, opts)
	})
}

func (a *App) regenerate(ctx context.Context, opts GenerateOptions) {
	if err := a.Generate(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// Clean removes captured snapshots.
func (a *App) Clean(_ context.Context) error {
	a.logger.Info("removing captured snapshots...")
	if err := a.store.Clear(a.root); err != nil {
		return zerr.Wrap(err, "failed to remove captured snapshots")
	}
	a.logger.Info("removed captured snapshots")
	return nil
}

// loadPair reads and loads both snapshots. An empty beforePath selects the captured snapshot.
func (a *App) loadPair(ctx context.Context, beforePath, afterPath string) (*source, *source, error) {
	beforeData, beforeName, err := a.readBefore(ctx, beforePath)
	if err != nil {
		return nil, nil, err
	}
	afterData, err := a.read(ctx, afterPath)
	if err != nil {
		return nil, nil, err
	}

	before, err := a.load(ctx, domain.LabelBefore, beforeName, beforeData)
	if err != nil {
		return nil, nil, err
	}
	after, err := a.load(ctx, domain.LabelAfter, afterPath, afterData)
	if err != nil {
		return nil, nil, err
	}
	return before, after, nil
}

func (a *App) readBefore(ctx context.Context, path string) ([]byte, string, error) {
	if path != "" {
		data, err := a.read(ctx, path)
		return data, path, err
	}

	storePath := filepath.Join(a.root, domain.DefaultSnapshotsPath())
	var data []byte
	err := a.stage(ctx, domain.StageRead, storePath, func(ports.Span) error {
		var getErr error
		data, getErr = a.store.Get(a.root, domain.LabelBefore)
		if getErr != nil {
			return domain.NewStageError(domain.StageRead, storePath, domain.ErrIOFailure, getErr)
		}
		if data == nil {
			return domain.NewStageError(domain.StageRead, storePath, domain.ErrIOFailure, domain.ErrSnapshotNotCaptured)
		}
		return nil
	})
	return data, storePath, err
}

func (a *App) read(ctx context.Context, path string) ([]byte, error) {
	var data []byte
	err := a.stage(ctx, domain.StageRead, path, func(ports.Span) error {
		var readErr error
		data, readErr = a.reader.Read(path)
		if readErr != nil {
			return domain.NewStageError(domain.StageRead, path, domain.ErrIOFailure, readErr)
		}
		return nil
	})
	return data, err
}

// source is a loaded snapshot and the document it came from.
type source struct {
	*domain.Snapshot

	path  string
	shape manifest.Shape
}

func (s *source) info() linear.Source {
	return linear.Source{Path: s.path, Shape: string(s.shape), Fingerprint: s.Fingerprint()}
}

func (a *App) load(ctx context.Context, label domain.Label, path string, data []byte) (*source, error) {
	src := &source{path: path}
	err := a.stage(ctx, domain.StageLoad, path, func(span ports.Span) error {
		shape, shapeErr := manifest.DetectShape(data)
		if shapeErr != nil {
			return domain.NewStageError(domain.StageLoad, path, domain.ErrMalformedManifest, shapeErr)
		}
		span.SetAttribute("shape", string(shape))
		src.shape = shape

		snapshot, loadErr := manifest.Load(label, data)
		if loadErr != nil {
			return domain.NewStageError(domain.StageLoad, path, domain.ErrMalformedManifest, loadErr)
		}
		src.Snapshot = snapshot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return src, nil
}

// stage runs fn inside a span named after the stage. Cancellation is checked first.
func (a *App) stage(ctx context.Context, stage domain.Stage, path string, fn func(ports.Span) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, span := a.tracer.Start(ctx, string(stage))
	defer span.End()
	if path != "" {
		span.SetAttribute("path", path)
	}

	if err := fn(span); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (a *App) loadConfig() (domain.Config, error) {
	cwd, err := filepath.Abs(a.root)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	cfg, err := a.configLoader.Load(cwd, a.configPath)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func changeCount(n int) string {
	if n == 1 {
		return "1 change"
	}
	return fmt.Sprintf("%d changes", n)
}
