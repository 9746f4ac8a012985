package ports

import "go.trai.ch/scout/internal/core/domain"

// ConfigLoader defines the interface for loading the scanner configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. An empty path yields the defaults.
	Load(path string) (domain.ScannerConfiguration, error)
}
