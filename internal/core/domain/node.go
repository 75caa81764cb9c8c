package domain

import (
	"context"

	"github.com/grindlemire/graft"
)

// BuildContextNodeID is the unique identifier for the shared BuildContext
// Graft node. Every component that touches a build graph (FileOps,
// IncludeScanner, the compile/archive/link Driver) depends on it, so a
// single run gets one set of caches.
const BuildContextNodeID graft.ID = "domain.build_context"

func init() {
	graft.Register(graft.Node[*BuildContext]{
		ID:        BuildContextNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*BuildContext, error) {
			return NewBuildContext(), nil
		},
	})
}
