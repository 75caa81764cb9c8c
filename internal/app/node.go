package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/adapters/telemetry"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/testgen"
)

// AppNodeID is the unique identifier for the main App Graft node.
const AppNodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the App components Graft
// node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			domain.BuildContextNodeID,
			fs.NodeID,
			build.ScannerNodeID,
			shell.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			logger.NodeID,
			testgen.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	buildCtx, err := graft.Dep[*domain.BuildContext](ctx)
	if err != nil {
		return nil, err
	}
	fileOps, err := graft.Dep[*fs.FileOps](ctx)
	if err != nil {
		return nil, err
	}
	scanner, err := graft.Dep[*build.Scanner](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.ToolRunner](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[ports.Recorder](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	gen, err := graft.Dep[*testgen.Generator](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, buildCtx, fileOps, scanner, runner, tracer, recorder, log, gen), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return NewComponents(a, log), nil
}
