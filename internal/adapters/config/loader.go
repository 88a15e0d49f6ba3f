// Package config provides the configuration loader for requiregen.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/requiregen/internal/core/domain"
	"go.trai.ch/requiregen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the configuration for cwd. An explicit path must exist; otherwise
// requiregen.yaml is searched from cwd upwards and the defaults apply when none is found.
func (l *Loader) Load(cwd, explicitPath string) (domain.Config, error) {
	configPath := explicitPath
	if configPath == "" {
		found, ok := findConfiguration(cwd)
		if !ok {
			return domain.DefaultConfig(), nil
		}
		configPath = found
	} else if !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unsupported config version '" + file.Version + "' in " + configPath + ", expected '" + SupportedVersion + "'")
	}

	return l.resolve(configPath, file)
}

func (l *Loader) resolve(configPath string, file File) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.Binary != "" {
		cfg.Binary = file.Binary
	}
	if file.Shell != "" {
		cfg.Shell = file.Shell
	}
	if file.Policy != "" {
		policy := domain.Policy(file.Policy)
		if !policy.Valid() {
			err := zerr.With(domain.ErrUnknownPolicy, "policy", file.Policy)
			return domain.Config{}, zerr.With(err, "path", configPath)
		}
		cfg.Policy = policy
	}
	if len(file.ExtraArgs) > 0 {
		cfg.ExtraArgs = file.ExtraArgs
	}
	if file.Output != "" {
		cfg.Output = file.Output
		if !filepath.IsAbs(cfg.Output) {
			cfg.Output = filepath.Join(filepath.Dir(configPath), cfg.Output)
		}
	}

	return cfg, nil
}

// findConfiguration walks up from cwd to the file system root.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or given by the user
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
