package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader loads a BuildConfig from a kiln.yaml file relative to a
// working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigLoader interface {
	Load(cwd string) (*domain.BuildConfig, error)
}
