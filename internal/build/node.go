package build

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
)

// ScannerNodeID is the unique identifier for the include-scanner Graft
// node.
const ScannerNodeID graft.ID = "engine.include_scanner"

func init() {
	graft.Register(graft.Node[*Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{domain.BuildContextNodeID, fs.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			buildCtx, err := graft.Dep[*domain.BuildContext](ctx)
			if err != nil {
				return nil, err
			}
			fileOps, err := graft.Dep[*fs.FileOps](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(buildCtx, fileOps), nil
		},
	})
}
