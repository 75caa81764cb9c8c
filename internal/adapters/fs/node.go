package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/domain"
)

// NodeID is the unique identifier for the FileOps adapter Graft node.
const NodeID graft.ID = "adapter.fileops"

func init() {
	graft.Register(graft.Node[*FileOps]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{domain.BuildContextNodeID},
		Run: func(ctx context.Context) (*FileOps, error) {
			buildCtx, err := graft.Dep[*domain.BuildContext](ctx)
			if err != nil {
				return nil, err
			}
			return New(buildCtx), nil
		},
	})
}
