package build

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Driver turns sources into objects, objects into static libraries, and
// objects into executables, per spec.md §4.6. Each step consults
// NeedsRebuild, ensures its output directory exists, and invokes the
// configured toolchain as a child process; each step also opens a progrock
// vertex and an OTel span so a real run can be observed.
type Driver struct {
	config  *domain.BuildConfig
	ctx     *domain.BuildContext
	fileOps *fs.FileOps
	scanner *Scanner
	runner  ports.ToolRunner
	tracer  ports.Tracer
	rec     ports.Recorder
	logger  ports.Logger
}

// NewDriver assembles a Driver from its collaborators.
func NewDriver(
	config *domain.BuildConfig,
	buildCtx *domain.BuildContext,
	fileOps *fs.FileOps,
	scanner *Scanner,
	runner ports.ToolRunner,
	tracer ports.Tracer,
	rec ports.Recorder,
	logger ports.Logger,
) *Driver {
	return &Driver{
		config: config, ctx: buildCtx, fileOps: fileOps, scanner: scanner,
		runner: runner, tracer: tracer, rec: rec, logger: logger,
	}
}

// step opens a vertex and a span for name, runs fn, and reports the
// outcome to both. fn returns whether the step actually ran the toolchain
// (false means it was a cache hit).
func (d *Driver) step(ctx context.Context, name string, fn func(ctx context.Context) (ran bool, err error)) error {
	ctx, span := d.tracer.Start(ctx, name)
	defer span.End()
	_, vertex := d.rec.Record(ctx, name)

	ran, err := fn(ctx)

	outcome := domain.StepOutcomeBuilt
	switch {
	case err != nil:
		outcome = domain.StepOutcomeFailed
	case !ran:
		outcome = domain.StepOutcomeCached
	}
	vertex.Log(domain.LogLevelInfo, name+": "+string(outcome))

	if err != nil {
		span.RecordError(err)
		vertex.Complete(err)
		return err
	}
	if !ran {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return nil
}

// objectPath derives the object path for a source file: spec.md §4.6 step
// 1, "<build_dir>/obj/<shortened_src><obj_ext>".
func (d *Driver) objectPath(src string) string {
	return filepath.Join(d.config.BuildDir(), "obj", fs.ShortenPath(src)) + d.config.ObjExt()
}

// libraryPath derives a static library's output path.
func (d *Driver) libraryPath(name string) string {
	return filepath.Join(d.config.BuildDir(), "lib", fs.ShortenPath(name)) + d.config.LibExt()
}

// executablePath derives an executable's output path.
func (d *Driver) executablePath(name string) string {
	return filepath.Join(d.config.BuildDir(), "bin", fs.ShortenPath(name)) + d.config.ExecExt()
}

// BuildSource compiles src into an object file, per spec.md §4.6.
func (d *Driver) BuildSource(ctx context.Context, src string, extraDeps domain.Dependency) (string, error) {
	if !strings.HasSuffix(src, ".c") {
		return "", zerr.With(domain.ErrNotImplemented, "source", src)
	}

	obj := d.objectPath(src)
	err := d.step(ctx, "compile "+src, func(ctx context.Context) (bool, error) {
		headers, err := d.scanner.Dependencies(d.config, src, src)
		if err != nil {
			return false, err
		}

		deps := domain.Deps(domain.Dep(src), extraDeps, domain.DepStrings(headers))
		if !NeedsRebuild(d.ctx, obj, deps) {
			return false, nil
		}

		if err := d.fileOps.CreateParentDirectory(obj); err != nil {
			return false, err
		}

		argv := shell.NewArgvBuilder(d.config.CC()...).
			Append("-c", "-o", obj, src).
			Append(d.config.CFlags()...).
			Append(d.config.IncludeDirs()...).
			Build()

		if err := d.runner.ExecuteSync(ctx, argv); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return obj, nil
}

// BuildLibrary archives srcs into a static library, per spec.md §4.6.
//
// The rebuild decision happens in two phases to avoid polluting the mtime
// cache with a freshly written archive before the header-driven check:
// first the archive is checked against {srcs, extraDeps}, then, for each
// source, against its scanned headers. Only if either phase says yes does
// building proceed — a freshly created archive's mtime would otherwise
// enter the cache and suppress subsequent header-driven rebuilds within
// the same invocation.
func (d *Driver) BuildLibrary(
	ctx context.Context, libName string, srcs []string, extraDeps domain.Dependency,
) (string, error) {
	archive := d.libraryPath(libName)

	rebuild := NeedsRebuild(d.ctx, archive, domain.Deps(domain.DepStrings(srcs), extraDeps))
	if !rebuild {
		for _, src := range srcs {
			headers, err := d.scanner.Dependencies(d.config, src, src)
			if err != nil {
				return "", err
			}
			if NeedsRebuild(d.ctx, archive, domain.DepStrings(headers)) {
				rebuild = true
				break
			}
		}
	}
	if !rebuild {
		return archive, nil
	}

	err := d.step(ctx, "archive "+libName, func(ctx context.Context) (bool, error) {
		objs := make([]string, 0, len(srcs))
		for _, src := range srcs {
			obj, err := d.BuildSource(ctx, src, extraDeps)
			if err != nil {
				return false, err
			}
			objs = append(objs, obj)
		}

		if err := d.fileOps.CreateParentDirectory(archive); err != nil {
			return false, err
		}

		argv := shell.NewArgvBuilder(d.config.AR()...).
			Append("-rcs", archive).
			Append(objs...).
			Build()

		if err := d.runner.ExecuteSync(ctx, argv); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return archive, nil
}

// BuildExecutable links objs into an executable, per spec.md §4.6.
func (d *Driver) BuildExecutable(
	ctx context.Context, exeName string, objs []string, extraDeps domain.Dependency,
) (string, error) {
	exe := d.executablePath(exeName)

	err := d.step(ctx, "link "+exeName, func(ctx context.Context) (bool, error) {
		if !NeedsRebuild(d.ctx, exe, domain.Deps(domain.DepStrings(objs), extraDeps)) {
			return false, nil
		}

		if err := d.fileOps.CreateParentDirectory(exe); err != nil {
			return false, err
		}

		argv := shell.NewArgvBuilder(d.config.LD()...).
			Append("-o", exe).
			Append(d.config.LDFlags()...).
			Append(objs...).
			Build()

		if err := d.runner.ExecuteSync(ctx, argv); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return exe, nil
}
