package ctoken_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/ctoken"
)

func collect(t *testing.T, input string) []string {
	t.Helper()
	tok := ctoken.New([]byte(input))
	var out []string
	for {
		tk, ok := tok.Next()
		if !ok {
			break
		}
		out = append(out, tk.String())
	}
	return out
}

func TestTokenizer_HelloWorld(t *testing.T) {
	input := `int main(int argc, char **argv) { printf("Hello World!\n"); return 0; }`
	want := []string{
		"int", "main", "(", "int", "argc", ",", "char", "*", "*", "argv", ")",
		"{", "printf", "(", `"Hello World!\n"`, ")", ";", "return", "0", ";", "}",
	}
	require.Equal(t, want, collect(t, input))
}

func TestTokenizer_StringEscapes(t *testing.T) {
	input := `"test1\n""test2\n\\""test3\n"`
	got := collect(t, input)
	require.Len(t, got, 3)
	for _, tk := range got {
		require.True(t, tk[0] == '"' && tk[len(tk)-1] == '"')
	}
}

func TestTokenizer_LineComment(t *testing.T) {
	require.Equal(t, []string{"int", "//comment", "float"}, collect(t, "int//comment\nfloat"))
}

func TestTokenizer_BlockComment(t *testing.T) {
	require.Equal(t, []string{"int", "/*a\nb*/", "float"}, collect(t, "int/*a\nb*/float"))
}

func TestTokenizer_DirectiveHead(t *testing.T) {
	tok := ctoken.New([]byte("# include <x.h>"))
	head, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, "# include", head.String())
	require.Equal(t, ctoken.Directive, head.Kind)

	rest := tok.SkipToEndOfLine()
	require.Equal(t, "<x.h>", string(rest))
}

func TestTokenizer_UnterminatedString(t *testing.T) {
	got := collect(t, `"abc`)
	require.Equal(t, []string{`"abc`}, got)
}

func TestTokenizer_UnterminatedBlockComment(t *testing.T) {
	got := collect(t, "/*abc")
	require.Equal(t, []string{"/*abc"}, got)
}

func TestTokenizer_SkipToEndOfPoundExpression_LineContinuation(t *testing.T) {
	tok := ctoken.New([]byte("#define X \\\n  1\nfloat"))
	head, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, "#define", head.String())

	// Skip the rest of the whitespace before the expression body.
	tok.Next() // "X"
	expr := tok.SkipToEndOfPoundExpression()
	require.Contains(t, string(expr), "\\\n")

	next, ok := tok.Next()
	require.True(t, ok)
	require.Equal(t, "float", next.String())
}

func TestTokenizer_EmptyInput(t *testing.T) {
	require.Nil(t, collect(t, ""))
}
