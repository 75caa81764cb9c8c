package build

import "go.trai.ch/kiln/internal/core/domain"

// NeedsRebuild reports whether target is missing or older than any leaf
// path reachable from deps. Spec.md §4.5.
//
// Equal mtimes are considered up-to-date (the tie-break in spec.md §4.5):
// a build that just produced target is not forced to rebuild on the
// immediately following invocation.
//
// A positive decision clears target's cached mtime, so the next build step
// (about to produce a fresh target) stats the newly written file.
func NeedsRebuild(ctx *domain.BuildContext, target string, deps domain.Dependency) bool {
	targetTime, ok := statMTime(ctx, target)
	if !ok {
		ctx.InvalidateMTime(target)
		return true
	}

	var paths []string
	if deps != nil {
		paths = deps.Paths()
	}

	for _, dep := range paths {
		depTime, ok := statMTime(ctx, dep)
		if !ok {
			// A missing dependency cannot make an up-to-date target stale;
			// it is the dependency's own build step's problem.
			continue
		}
		if depTime.After(targetTime) {
			ctx.InvalidateMTime(target)
			return true
		}
	}
	return false
}
