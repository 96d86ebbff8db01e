//go:build unit

package calc

import (
	"strings"
	"testing"

	"github.com/cobalamin/safe-int/safeint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	t.Parallel()

	tokens, err := lex("x1 // (20 % -3)^2")
	require.NoError(t, err)

	kinds := make([]tokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.kind
	}

	assert.Equal(t, []tokenKind{
		tokIdent, tokFloorDiv, tokLParen, tokInt, tokPercent, tokMinus, tokInt, tokRParen, tokCaret, tokInt, tokEOF,
	}, kinds)
	assert.Equal(t, "x1", tokens[0].text)
	assert.Equal(t, 3, tokens[1].pos)
	assert.Equal(t, len("x1 // (20 % -3)^2"), tokens[len(tokens)-1].pos)
}

func TestParse_SyntaxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantPos int
		wantMsg string
	}{
		{name: "empty", input: "", wantPos: 0, wantMsg: "end of expression"},
		{name: "single slash", input: "7 / 2", wantPos: 2, wantMsg: "use '//'"},
		{name: "unknown character", input: "1 $ 2", wantPos: 2, wantMsg: "unexpected character '$'"},
		{name: "non-ASCII character", input: "1 + é", wantPos: 4, wantMsg: "unexpected character 'é'"},
		{name: "dangling operator", input: "1 +", wantPos: 3, wantMsg: "expected number"},
		{name: "unclosed paren", input: "(1 + 2", wantPos: 6, wantMsg: "expected ')'"},
		{name: "stray close", input: "1 + 2)", wantPos: 5, wantMsg: `unexpected ")"`},
		{name: "adjacent numbers", input: "1 2", wantPos: 2, wantMsg: `unexpected "2"`},
		{name: "number glued to name", input: "2x", wantPos: 1, wantMsg: "after number"},
		{name: "leading operator", input: "* 3", wantPos: 0, wantMsg: "expected number"},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.wantPos, syntaxErr.Pos)
			assert.Contains(t, syntaxErr.Error(), tt.wantMsg)
		})
	}
}

func TestParse_NestingLimit(t *testing.T) {
	t.Parallel()

	parens := func(n int) string {
		return strings.Repeat("(", n) + "1" + strings.Repeat(")", n)
	}

	expr, err := Parse(parens(maxDepth))
	require.NoError(t, err)

	v, err := expr.Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, safeint.FromInt(1), v)

	_, err = Parse(parens(maxDepth + 1))

	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, maxDepth, syntaxErr.Pos)
	assert.Contains(t, syntaxErr.Msg, "nested deeper than 1024 levels")

	_, err = Parse(strings.Repeat("-", maxDepth) + "1")
	require.NoError(t, err)

	_, err = Parse(strings.Repeat("-", maxDepth+1) + "1")
	assert.ErrorIs(t, err, ErrSyntax)

	_, err = Parse(strings.Repeat("2 ^ ", maxDepth) + "1")
	require.NoError(t, err)

	_, err = Parse(strings.Repeat("2 ^ ", maxDepth+1) + "1")
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParse_Source(t *testing.T) {
	t.Parallel()

	expr, err := Parse(" 1 + 1 ")
	require.NoError(t, err)
	assert.Equal(t, " 1 + 1 ", expr.Source())
}
