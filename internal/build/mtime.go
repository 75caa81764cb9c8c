// Package build implements the include-dependency scanner, the rebuild
// decider, and the compile/archive/link driver: the heart of spec.md §4.4,
// §4.5, and §4.6.
package build

import (
	"os"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
)

// statMTime returns path's modification time, consulting and populating
// ctx.MTime. A missing file is reported via ok=false rather than an error,
// matching spec.md §4.5's "stat of target fails (treated as missing)".
func statMTime(ctx *domain.BuildContext, path string) (t time.Time, ok bool) {
	if cached, hit := ctx.MTime.Get(path); hit {
		return cached, true
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	t = info.ModTime()
	ctx.MTime.Put(path, t)
	return t, true
}
