package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lam-lang/lam/frontend/lexer"
)

func lexString(t *testing.T, src string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Lex(lexer.NewSource(src))
	require.NoError(t, err)
	return tokens
}

func TestExpectingMore(t *testing.T) {
	cases := []struct {
		src  string
		more bool
	}{
		{``, true},
		{`3`, false},
		{`f x`, false},
		{`(\x. x`, true},
		{`(\x. x)`, false},
		{`\x.`, true},
		{`\x. x`, false},
		{`let x = 3`, true},
		{`let x = 3 in`, true},
		{`let x = 3 in x`, false},
		{`let f = \x. x in f 3`, false},
		{`\f:Number ->`, true},
		{`(f x) :`, true},
		// closed more than opened: broken, not unfinished
		{`x)`, false},
		{`(x)) y`, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.more, expectingMore(lexString(t, c.src)), "source: %q", c.src)
	}
}
