// Package app implements kiln's application layer: it loads a BuildConfig
// and drives the compile/archive/link engine or the test-runner generator
// on top of it. Mirrors the teacher's internal/app/app.go shape.
package app

import (
	"context"

	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/build"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/testgen"
	"go.trai.ch/zerr"
)

// App represents kiln's main application logic: one BuildConfig load per
// call, driving either the build engine or the test-runner generator on
// top of it.
type App struct {
	configLoader ports.ConfigLoader
	buildCtx     *domain.BuildContext
	fileOps      *fs.FileOps
	scanner      *build.Scanner
	runner       ports.ToolRunner
	tracer       ports.Tracer
	recorder     ports.Recorder
	logger       ports.Logger
	testgen      *testgen.Generator
}

// New creates a new App instance from its Graft-wired collaborators.
func New(
	loader ports.ConfigLoader,
	buildCtx *domain.BuildContext,
	ops *fs.FileOps,
	scanner *build.Scanner,
	runner ports.ToolRunner,
	tracer ports.Tracer,
	recorder ports.Recorder,
	logger ports.Logger,
	gen *testgen.Generator,
) *App {
	return &App{
		configLoader: loader,
		buildCtx:     buildCtx,
		fileOps:      ops,
		scanner:      scanner,
		runner:       runner,
		tracer:       tracer,
		recorder:     recorder,
		logger:       logger,
		testgen:      gen,
	}
}

// TargetKind names the artifact a Build call produces.
type TargetKind string

const (
	TargetSource     TargetKind = "source"
	TargetLibrary    TargetKind = "library"
	TargetExecutable TargetKind = "executable"
)

// Build loads kiln.yaml from cwd and drives the compile/archive/link
// engine for one target, returning the produced artifact's path.
func (a *App) Build(
	ctx context.Context, cwd string, kind TargetKind, name string, srcs, extraDeps []string,
) (string, error) {
	config, err := a.loadConfig(cwd)
	if err != nil {
		return "", err
	}

	driver := build.NewDriver(config, a.buildCtx, a.fileOps, a.scanner, a.runner, a.tracer, a.recorder, a.logger)
	deps := domain.DepStrings(extraDeps)

	switch kind {
	case TargetSource:
		if len(srcs) != 1 {
			return "", zerr.With(domain.ErrNotImplemented, "reason", "source target requires exactly one source file")
		}
		return driver.BuildSource(ctx, srcs[0], deps)
	case TargetLibrary:
		return driver.BuildLibrary(ctx, name, srcs, deps)
	case TargetExecutable:
		return driver.BuildExecutable(ctx, name, srcs, deps)
	default:
		return "", zerr.With(domain.ErrNotImplemented, "kind", string(kind))
	}
}

// TestGenResult reports what TestGen produced.
type TestGenResult struct {
	RunnerPaths   []string
	AggregatePath string
	Groups        []string
}

// TestGen scans every test source in srcs, emits its companion runner
// file, and writes the aggregate dispatcher at aggregatePath. It loads
// kiln.yaml from cwd only to read ReadLimit, the cap TestGen's own source
// reads are held to.
func (a *App) TestGen(_ context.Context, cwd string, srcs []string, aggregatePath string) (*TestGenResult, error) {
	config, err := a.loadConfig(cwd)
	if err != nil {
		return nil, err
	}

	groups := domain.NewTestGroupSet()
	runners := make([]string, 0, len(srcs))
	for _, src := range srcs {
		runner, err := a.testgen.ProcessFile(src, config.ReadLimit(), groups)
		if err != nil {
			return nil, err
		}
		runners = append(runners, runner)
	}

	if err := a.testgen.WriteAggregate(aggregatePath, groups); err != nil {
		return nil, err
	}

	return &TestGenResult{RunnerPaths: runners, AggregatePath: aggregatePath, Groups: groups.Names()}, nil
}

// Clean removes the configured build tree and resets every in-memory
// cache. Spec.md §5's "barrier with respect to anything that preceded
// it".
func (a *App) Clean(_ context.Context, cwd string) error {
	config, err := a.loadConfig(cwd)
	if err != nil {
		return err
	}
	if err := a.fileOps.DeleteDirectory(config.BuildDir()); err != nil {
		return err
	}
	a.buildCtx.Reset()
	return nil
}

func (a *App) loadConfig(cwd string) (*domain.BuildConfig, error) {
	config, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return config, nil
}
