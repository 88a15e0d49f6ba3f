package ports

import "go.trai.ch/requiregen/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration starting at cwd. When explicitPath is set it is
	// read directly. Returns the defaults when no configuration file exists.
	Load(cwd, explicitPath string) (domain.Config, error)
}
