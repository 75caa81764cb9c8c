package build

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ctoken"
	"go.trai.ch/zerr"
)

// directiveWords recognized by the scanner; only "include" needs its
// argument captured, the rest are skipped to end of pound-expression.
// Spec.md §4.4 step 2.
var directiveWords = map[string]bool{
	"include": true,
	"define":  true,
	"undef":   true,
	"if":      true,
	"elif":    true,
	"ifdef":   true,
	"ifndef":  true,
	"else":    true,
	"endif":   true,
}

// Scanner discovers transitive #include dependencies, memoizing under
// domain.BuildContext.IncludedDeps. Spec.md §4.4.
type Scanner struct {
	ctx     *domain.BuildContext
	fileOps *fs.FileOps
}

// NewScanner creates a Scanner bound to ctx's includedDeps cache, reading
// source files through fileOps so config.ReadLimit() is enforced.
func NewScanner(ctx *domain.BuildContext, fileOps *fs.FileOps) *Scanner {
	return &Scanner{ctx: ctx, fileOps: fileOps}
}

// Dependencies returns the ordered, deduplicated set of resolved header
// paths that filePath transitively includes, given config's include
// search path. The caller does not own the returned slice: it is interned
// in domain.BuildContext.IncludedDeps.
func (s *Scanner) Dependencies(config *domain.BuildConfig, filePath, cacheKey string) ([]string, error) {
	if cached, ok := s.ctx.IncludedDeps.Get(cacheKey); ok {
		return cached, nil
	}

	data, err := s.fileOps.ReadEntireFile(filePath, config.ReadLimit())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.ctx.IncludedDeps.Put(cacheKey, nil)
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read source for include scan")
	}

	rawIncludes := directIncludes(data)

	// Tentative insert before recursing, per spec.md §4.4 step 3: this is
	// what makes a self-including header terminate instead of looping
	// forever, since the recursive call's own cache lookup will hit this
	// tentative (possibly incomplete) entry rather than re-scanning.
	s.ctx.IncludedDeps.Put(cacheKey, rawIncludes)

	resolved := make([]string, 0, len(rawIncludes))
	seen := make(map[string]bool, len(rawIncludes))
	for _, raw := range rawIncludes {
		// A raw include already memoized (resolved or not) is never
		// re-scanned, per spec.md §4.4 step 3's rationale.
		if cached, ok := s.ctx.IncludedDeps.Get(raw); ok {
			for _, t := range cached {
				if !seen[t] {
					seen[t] = true
					resolved = append(resolved, t)
				}
			}
			continue
		}

		path, ok := resolveInclude(config, raw)
		if !ok {
			s.ctx.IncludedDeps.Put(raw, nil)
			continue
		}

		transitive, err := s.Dependencies(config, path, path)
		if err != nil {
			return nil, err
		}
		s.ctx.IncludedDeps.Put(raw, append([]string{path}, transitive...))

		if !seen[path] {
			seen[path] = true
			resolved = append(resolved, path)
		}
		for _, t := range transitive {
			if !seen[t] {
				seen[t] = true
				resolved = append(resolved, t)
			}
		}
	}

	s.ctx.IncludedDeps.Put(cacheKey, resolved)
	return resolved, nil
}

// directIncludes tokenizes data and returns the raw include forms named by
// every #include directive encountered (e.g. "add.h", "<stdio.h>" with its
// delimiters trimmed). All other recognized preprocessor directives are
// skipped without effect: kiln does not evaluate conditional compilation
// (spec.md §1's Non-goals).
func directIncludes(data []byte) []string {
	var out []string
	tok := ctoken.New(data)
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		if t.Kind != ctoken.Directive {
			continue
		}
		word := directiveSuffix(t.String())
		if !directiveWords[word] {
			continue
		}
		if word != "include" {
			tok.SkipToEndOfPoundExpression()
			continue
		}
		rest := tok.SkipToEndOfLine()
		if raw, ok := parseIncludeArg(rest); ok {
			out = append(out, raw)
		}
	}
	return out
}

// directiveSuffix extracts the alphabetic word from a directive head token
// like "#include" or "# include".
func directiveSuffix(head string) string {
	i := 0
	for i < len(head) && (head[i] == '#' || head[i] == ' ' || head[i] == '\t') {
		i++
	}
	return head[i:]
}

// parseIncludeArg trims whitespace and the bracket/quote delimiters from
// an #include directive's remainder, returning the raw include form.
func parseIncludeArg(rest []byte) (string, bool) {
	s := strings.TrimSpace(string(rest))
	s = strings.Trim(s, "\"<>")
	if s == "" {
		return "", false
	}
	return s, true
}

// resolveInclude probes each of config's include directories, in order,
// for the first one containing raw. Spec.md §4.4 step 3.
func resolveInclude(config *domain.BuildConfig, raw string) (string, bool) {
	for _, flag := range config.IncludeDirs() {
		dir := strings.TrimPrefix(flag, "-I")
		candidate := filepath.Join(dir, raw)
		if fileExists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
