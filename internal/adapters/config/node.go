package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the config loader adapter Graft
// node.
const NodeID graft.ID = "adapter.config_loader"

// DefaultFilename is the config filename FileLoader resolves against a
// working directory when wired through Graft.
const DefaultFilename = "kiln.yaml"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return &FileLoader{Filename: DefaultFilename}, nil
		},
	})
}
