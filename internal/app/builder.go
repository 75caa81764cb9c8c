package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// Components bundles the pieces cmd/kiln needs after Graft resolution.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents assembles Components from its already-resolved
// dependencies.
func NewComponents(a *App, logger ports.Logger) *Components {
	return &Components{App: a, Logger: logger}
}

// NewApp resolves the full Graft dependency graph and returns the
// top-level Components. internal/wiring must be imported (blank import)
// by the caller so every node's init() has registered itself first.
func NewApp(ctx context.Context) (*Components, error) {
	c, _, err := graft.ExecuteFor[*Components](ctx)
	return c, err
}
