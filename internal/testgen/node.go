package testgen

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/fs"
)

// NodeID is the unique identifier for the test-runner generator Graft
// node.
const NodeID graft.ID = "engine.testgen"

func init() {
	graft.Register(graft.Node[*Generator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID},
		Run: func(ctx context.Context) (*Generator, error) {
			fileOps, err := graft.Dep[*fs.FileOps](ctx)
			if err != nil {
				return nil, err
			}
			return New(fileOps), nil
		},
	})
}
