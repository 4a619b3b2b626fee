package ports

import "go.trai.ch/decider/internal/core/domain"

// ConfigLoader defines the interface for loading the resolver configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds decider.yaml starting at cwd and returns the universe it describes.
	Load(cwd string) (*domain.Universe, error)
}
