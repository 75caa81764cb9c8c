// Package testgen implements TestRunnerGen: it parses C source files using
// a fixture-style test framework and emits companion runner files that
// register every discovered test group and case, plus a single aggregate
// dispatcher. Spec.md §4.7.
package testgen

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ctoken"
	"go.trai.ch/zerr"
)

const banner = "/* AUTOGENERATED FILE. DO NOT EDIT. */\n"

const frameworkHeader = "#include \"unity_fixture.h\"\n"

// passthroughDirectives mirrors include_scanner.go's directiveWords: the
// same include/define/undef/conditional family is the only preprocessor
// surface the per-file runner reproduces verbatim.
var passthroughDirectives = map[string]bool{
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

// Generator emits per-file and aggregate test runner sources.
type Generator struct {
	fileOps *fs.FileOps
}

// New creates a Generator that writes through fileOps.
func New(fileOps *fs.FileOps) *Generator {
	return &Generator{fileOps: fileOps}
}

// ProcessFile scans a single test source, writes its companion runner file
// under a sibling "runner" directory, and inserts every group it declares
// into groups (insertion-order preserving; groups is the shared
// accumulator that WriteAggregate later reads from). It returns the
// runner's path. readLimit bounds the source read, per spec.md §4.3/§7.
func (g *Generator) ProcessFile(path string, readLimit int64, groups *domain.TestGroupSet) (string, error) {
	data, err := g.fileOps.ReadEntireFile(path, readLimit)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read test source")
	}

	body := render(data, groups)

	out := runnerPath(path)
	if err := g.fileOps.WriteEntireFileIfChanged(out, []byte(body)); err != nil {
		return "", err
	}
	return out, nil
}

// WriteAggregate emits the single dispatcher that invokes RUN_TEST_GROUP
// for every group accumulated across all processed files, in the order
// they were first seen.
func (g *Generator) WriteAggregate(path string, groups *domain.TestGroupSet) error {
	var sb strings.Builder
	sb.WriteString(banner)
	sb.WriteString(frameworkHeader)
	sb.WriteString("\nvoid run_all_tests(void) {\n")
	for _, name := range groups.Names() {
		fmt.Fprintf(&sb, "    RUN_TEST_GROUP(%s);\n", name)
	}
	sb.WriteString("}\n")

	return g.fileOps.WriteEntireFileIfChanged(path, []byte(sb.String()))
}

// runnerPath derives "<dir>/runner/<stem>_runner<ext>" from a test source
// path, per spec.md §6's filesystem layout.
func runnerPath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(dir, "runner", stem+"_runner"+ext)
}

// render tokenizes data and drives the per-file state machine, producing
// the complete runner file text and registering every discovered group
// into groups.
func render(data []byte, groups *domain.TestGroupSet) string {
	var sb strings.Builder
	sb.WriteString(banner)

	m := newMachine(&sb, groups)

	tok := ctoken.New(data)
	for {
		t, ok := tok.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case ctoken.LineComment, ctoken.BlockComment:
			// Skipped entirely: this is how a commented-out TEST(...) is
			// correctly ignored. Spec.md §4.7's comment-handling rule.
			continue
		case ctoken.Directive:
			emitDirective(&sb, tok, t)
			continue
		default:
			m.step(t)
		}
	}
	m.finish()

	return sb.String()
}

// emitDirective reproduces a recognized directive's full source line
// verbatim, including its line-continuation form.
func emitDirective(sb *strings.Builder, tok *ctoken.Tokenizer, head ctoken.Token) {
	word := directiveSuffix(head.String())
	rest := tok.SkipToEndOfPoundExpression()
	if !passthroughDirectives[word] {
		return
	}
	sb.WriteString(head.String())
	sb.Write(rest)
	sb.WriteString("\n")
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
