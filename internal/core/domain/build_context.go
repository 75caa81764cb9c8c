package domain

import (
	"time"

	"go.trai.ch/kiln/internal/cache"
)

// BuildContext is the "single value threaded explicitly through every
// operation" replacement for the three process-wide caches described in
// spec.md §9's design notes. It is created once per invocation and passed
// to every build/testgen operation instead of being reached for as a
// package global.
type BuildContext struct {
	DirExists    *cache.Cache[string, struct{}]
	MTime        *cache.Cache[string, time.Time]
	IncludedDeps *cache.Cache[string, []string]
}

// NewBuildContext creates a BuildContext with all three caches freshly
// initialized.
func NewBuildContext() *BuildContext {
	return &BuildContext{
		DirExists:    cache.New[string, struct{}](),
		MTime:        cache.New[string, time.Time](),
		IncludedDeps: cache.New[string, []string](),
	}
}

// Reset clears all three caches. The clean command calls this after
// removing the build tree, per spec.md §3's Lifecycle clause: a `clean`
// target explicitly clears all three caches because the build directory no
// longer matches whatever they remember.
func (c *BuildContext) Reset() {
	c.DirExists.ClearAll()
	c.MTime.ClearAll()
	c.IncludedDeps.ClearAll()
}

// InvalidateMTime drops a target's cached mtime. RebuildDecider calls this
// after any positive rebuild decision so the next stat sees the freshly
// produced file.
func (c *BuildContext) InvalidateMTime(path string) {
	c.MTime.ClearEntry(path)
}
