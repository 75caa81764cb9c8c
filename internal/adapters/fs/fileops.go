// Package fs implements FileOps: read/write/mkdir/rmtree/path-shortening
// primitives shared by the build engine and the test-runner generator.
// Spec.md §4.3.
package fs

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileOps groups the filesystem primitives against a shared dirExists
// cache, so repeated mkdir calls for the same directory short-circuit.
type FileOps struct {
	ctx *domain.BuildContext
}

// New creates a FileOps bound to ctx's dirExists cache.
func New(ctx *domain.BuildContext) *FileOps {
	return &FileOps{ctx: ctx}
}

// ReadEntireFile reads path in full, failing with domain.ErrFileTooBig if
// its size exceeds limit bytes.
func (f *FileOps) ReadEntireFile(path string, limit int64) ([]byte, error) {
	//nolint:gosec // path is controlled by the caller (build config / source tree)
	file, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	if limit > 0 && info.Size() > limit {
		return nil, zerr.With(zerr.With(zerr.With(zerr.Wrap(domain.ErrFileTooBig, ""), "path", path), "size", info.Size()), "limit", limit)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path)
	}
	return data, nil
}

// WriteEntireFile creates any missing parent directories, then creates or
// truncates path and writes data.
func (f *FileOps) WriteEntireFile(path string, data []byte) error {
	if err := f.CreateParentDirectory(path); err != nil {
		return err
	}
	//nolint:gosec // path is controlled by the caller
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write file"), "path", path)
	}
	return nil
}

// WriteEntireFileIfChanged writes data to path only if it differs from
// path's current contents (treating FileNotFound as "empty and absent").
// This is what keeps build-tree mtimes stable across regenerations
// (spec.md §4.3, §4.7's idempotence property).
//
// The comparison first checks an xxhash digest of old vs. new content as a
// cheap short-circuit; on a hash match it still falls back to a full byte
// comparison before deciding to skip the write, so a hash collision can
// never cause a real content change to be silently dropped.
func (f *FileOps) WriteEntireFileIfChanged(path string, data []byte) error {
	existing, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, "failed to read existing file"), "path", path)
		}
		existing = nil
	}

	if xxhash.Sum64(existing) == xxhash.Sum64(data) && bytes.Equal(existing, data) {
		return nil
	}
	return f.WriteEntireFile(path, data)
}

// CreateDirectory is idempotent: it consults the dirExists cache to
// short-circuit repeated calls, and treats an already-exists error as
// success.
func (f *FileOps) CreateDirectory(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if f.ctx.DirExists.Contains(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
	}
	f.markExists(dir)
	return nil
}

// CreateParentDirectory creates every missing ancestor of path.
func (f *FileOps) CreateParentDirectory(path string) error {
	return f.CreateDirectory(filepath.Dir(path))
}

// markExists records dir and every ancestor of dir as existing, per
// spec.md §3's invariant that dirExists[d] implies every ancestor of d is
// also set.
func (f *FileOps) markExists(dir string) {
	for {
		if f.ctx.DirExists.Contains(dir) {
			return
		}
		f.ctx.DirExists.Put(dir, struct{}{})
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// DeleteDirectory recursively removes path. Used by the clean target,
// which also clears all caches (domain.BuildContext.Reset).
func (f *FileOps) DeleteDirectory(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
	}
	return nil
}

// ShortenPath normalizes a source path by stripping leading "./" and
// trailing "/" repeatedly (and their backslash equivalents on Windows),
// so a source path like "./src/add.c" maps onto an output path like
// "<build_dir>/obj/src/add.c<obj_ext>".
func ShortenPath(p string) string {
	sepPrefix, sepSuffix := "./", "/"
	if runtime.GOOS == "windows" {
		sepPrefix, sepSuffix = `.\`, `\`
	}
	for {
		trimmed := strings.TrimPrefix(p, sepPrefix)
		trimmed = strings.TrimSuffix(trimmed, sepSuffix)
		if trimmed == p {
			return p
		}
		p = trimmed
	}
}
