package lamerr

import (
	"fmt"
	"go/token"
	"runtime/debug"
	"strings"

	"github.com/lam-lang/lam/frontend/ast"
)

// enableDebugErrorPrinting makes errors include their stacktrace when printed
const enableDebugErrorPrinting bool = false
const enableDebugFullStacktrace bool = false

type ErrCode int

const (
	None ErrCode = iota
	Parse
	UnknownCharacter
	TypeMismatch
	RecursiveType
	NotAFunction
	UnsupportedConstruct
	UndefinedVariable
)

type LamError interface {
	Error() string
	Code() ErrCode
	ast.Positioner

	withStack([]byte) LamError
	getStack() []byte
}

func FormatWithCode(e LamError) string {
	if enableDebugErrorPrinting && e.getStack() != nil {
		stack := string(e.getStack())
		if !enableDebugFullStacktrace {
			stack = strings.Split(stack, "\n")[6]
		}
		return fmt.Sprintf("%s:(E%03d) %s", stack, e.Code(), e.Error())
	}
	return fmt.Sprintf("(E%03d) %s", e.Code(), e.Error())
}

// Source is anything that can map a position back to a source line, so error
// reports can show the offending line with a caret under it.
type Source interface {
	LineCol(pos token.Pos) (line, col int)
	Line(line int) string
}

// FormatWithSource renders e with its code, its line:col location, the source
// line it points at, and a caret marking the offending range.
func FormatWithSource(e LamError, src Source) string {
	sb := &strings.Builder{}
	sb.WriteString(FormatWithCode(e))
	if e.Pos() == token.NoPos || src == nil {
		return sb.String()
	}
	line, col := src.LineCol(e.Pos())
	width := int(e.End() - e.Pos())
	if width < 1 {
		width = 1
	}
	fullLine := src.Line(line)
	if col-1+width > len(fullLine) {
		width = len(fullLine) - col + 1
	}
	sb.WriteString(fmt.Sprintf("\n at %d:%d\n", line, col))
	sb.WriteString(fullLine)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", col-1))
	sb.WriteString("^")
	if width > 1 {
		sb.WriteString(strings.Repeat("~", width-1))
	}
	return sb.String()
}

func New[E LamError](err E) LamError {
	return err.withStack(debug.Stack())
}

type Unclassified struct {
	From error
	ast.Positioner
	stack []byte
}

func (e Unclassified) Error() string {
	return fmt.Sprintf("unclassified error: %v", e.From)
}
func (e Unclassified) Code() ErrCode    { return None }
func (e Unclassified) getStack() []byte { return e.stack }
func (e Unclassified) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewParse struct {
	ast.Positioner
	ParserMessage string
	Hint          string
	stack         []byte
}

func (e NewParse) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s (%s)", e.ParserMessage, e.Hint)
	}
	return e.ParserMessage
}
func (e NewParse) Code() ErrCode    { return Parse }
func (e NewParse) getStack() []byte { return e.stack }
func (e NewParse) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewUnknownCharacter struct {
	ast.Positioner
	Character rune
	stack     []byte
}

func (e NewUnknownCharacter) Error() string {
	return fmt.Sprintf("unknown character %q", e.Character)
}
func (e NewUnknownCharacter) Code() ErrCode    { return UnknownCharacter }
func (e NewUnknownCharacter) getStack() []byte { return e.stack }
func (e NewUnknownCharacter) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewTypeMismatch struct {
	ast.Positioner
	First  string
	Second string
	stack  []byte
}

func (e NewTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: cannot unify type '%s' with '%s'", e.First, e.Second)
}
func (e NewTypeMismatch) Code() ErrCode    { return TypeMismatch }
func (e NewTypeMismatch) getStack() []byte { return e.stack }
func (e NewTypeMismatch) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewRecursiveType struct {
	ast.Positioner
	Variable string
	In       string
	stack    []byte
}

func (e NewRecursiveType) Error() string {
	return fmt.Sprintf("recursive type: %s occurs in %s", e.Variable, e.In)
}
func (e NewRecursiveType) Code() ErrCode    { return RecursiveType }
func (e NewRecursiveType) getStack() []byte { return e.stack }
func (e NewRecursiveType) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewNotAFunction struct {
	ast.Positioner
	Type  string
	stack []byte
}

func (e NewNotAFunction) Error() string {
	return fmt.Sprintf("cannot apply a value of type '%s': it is not a function", e.Type)
}
func (e NewNotAFunction) Code() ErrCode    { return NotAFunction }
func (e NewNotAFunction) getStack() []byte { return e.stack }
func (e NewNotAFunction) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewUnsupportedConstruct struct {
	ast.Positioner
	Construct string
	stack     []byte
}

func (e NewUnsupportedConstruct) Error() string {
	return fmt.Sprintf("no inference rule for construct '%s'", e.Construct)
}
func (e NewUnsupportedConstruct) Code() ErrCode    { return UnsupportedConstruct }
func (e NewUnsupportedConstruct) getStack() []byte { return e.stack }
func (e NewUnsupportedConstruct) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}

type NewUndefinedVariable struct {
	ast.Positioner
	Name  string
	stack []byte
}

func (e NewUndefinedVariable) Error() string {
	return fmt.Sprintf("undefined variable '%s': treating it as an unconstrained type", e.Name)
}
func (e NewUndefinedVariable) Code() ErrCode    { return UndefinedVariable }
func (e NewUndefinedVariable) getStack() []byte { return e.stack }
func (e NewUndefinedVariable) withStack(stack []byte) LamError {
	e.stack = stack
	return e
}
