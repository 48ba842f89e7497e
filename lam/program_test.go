package lam

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lam-lang/lam/frontend/lamerr"
)

func checkString(t *testing.T, src string) *Program {
	t.Helper()
	program, err := Load(src)
	require.NoError(t, err)
	require.NoError(t, program.Infer())
	return program
}

func TestEndToEnd(t *testing.T) {
	cases := []struct {
		src string
		typ string
	}{
		{`3`, "Number"},
		{`true`, "Bool"},
		{`\x.x`, "'t1 -> 't1"},
		{`(\x.x) 3`, "Number"},
		{`(\f.\x. f x) (\y.y) 3`, "Number"},
		{`let id = \x.x in id 3`, "Number"},
		{`\x:Number. add x 1`, "Number -> Number"},
		{`iszero 0`, "Bool"},
	}
	for _, c := range cases {
		program := checkString(t, c.src)
		assert.Equal(t, c.typ, program.TypeString(), "source: %s", c.src)
	}
}

func TestMultiLineExpression(t *testing.T) {
	program := checkString(t, "(\\f.\\x. f x)\n  (\\y.y)\n  3\n")
	assert.Equal(t, "Number", program.TypeString())
}

func TestLoadReportsParseErrors(t *testing.T) {
	_, err := Load(`(\x. x`)
	require.Error(t, err)

	var lamError lamerr.LamError
	require.True(t, goerrors.As(err, &lamError))
	assert.Equal(t, lamerr.Parse, lamError.Code())
}

func TestInferFailureLeavesNoType(t *testing.T) {
	program, err := Load(`not 3`)
	require.NoError(t, err)

	err = program.Infer()
	require.Error(t, err)
	assert.Nil(t, program.Type())
	assert.Equal(t, "<not inferred>", program.TypeString())
}

func TestFormatErrorPointsAtSource(t *testing.T) {
	program, err := Load(`not 3`)
	require.NoError(t, err)

	err = program.Infer()
	require.Error(t, err)

	formatted := program.FormatError(err)
	assert.Contains(t, formatted, "type mismatch")
	assert.Contains(t, formatted, "not 3")
	assert.Contains(t, formatted, "^")
	assert.Contains(t, formatted, "at 1:1")
}

func TestNoticesForFreeIdentifiers(t *testing.T) {
	program := checkString(t, "f 3")

	notices := program.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, lamerr.UndefinedVariable, notices[0].Code())
	assert.Contains(t, notices[0].Error(), "'f'")
}

func TestUnresolvedVars(t *testing.T) {
	program := checkString(t, `\x.x`)
	assert.Len(t, program.UnresolvedVars(), 1)

	program = checkString(t, `\x. add x 1`)
	assert.Empty(t, program.UnresolvedVars())
}

func TestSyntaxString(t *testing.T) {
	program := checkString(t, `(\x.x) 3`)

	tree := program.SyntaxString()
	assert.Contains(t, tree, "app Number")
	assert.Contains(t, tree, "λ [x] .")
	assert.Contains(t, tree, "literal[3] Number")
	assert.Contains(t, tree, "ident[x]")
}

func TestProgramsAreIndependent(t *testing.T) {
	// variable numbering restarts per program: arenas are run-scoped
	first := checkString(t, `\x.x`)
	second := checkString(t, `\y.y`)
	assert.Equal(t, first.TypeString(), second.TypeString())
}
