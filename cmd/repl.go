package cmd

import (
	"bufio"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/frontend/lexer"
	"github.com/lam-lang/lam/internal/log"
	"github.com/lam-lang/lam/lam"
	"github.com/lam-lang/lam/util"
)

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Start an interactive session: type an expression, get its inferred type",
	RunE:         runRepl,
	SilenceUsage: true,
}

var (
	replPrintTokens *bool
	replPrintAST    *bool
	replLogLevel    *int
)

func init() {
	replPrintTokens = ReplCmd.Flags().Bool("print-tokens", false, "print the tokens generated by the lexer")
	replPrintAST = ReplCmd.Flags().BoolP("print-ast", "a", false, "print the syntax tree with inferred types")
	replLogLevel = ReplCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

var (
	typeColor   = color.New(color.FgGreen)
	errorColor  = color.New(color.FgRed)
	noticeColor = color.New(color.Faint)
)

func runRepl(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*replLogLevel))

	in := bufio.NewScanner(os.Stdin)
	out := cmd.OutOrStdout()
	for {
		src, ok := readExpression(in, out)
		if !ok {
			fmt.Fprintln(out, "\nQuitting...")
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		program, err := lam.Load(src)
		if err != nil {
			errorColor.Fprintln(out, formatError(err, src))
			continue
		}
		if *replPrintTokens {
			printTokens(out, program)
		}
		if err := program.Infer(); err != nil {
			errorColor.Fprintln(out, program.FormatError(err))
			continue
		}
		for _, notice := range program.Notices() {
			noticeColor.Fprintln(out, "notice: "+lamerr.FormatWithCode(notice))
		}
		if *replPrintAST {
			fmt.Fprint(out, program.SyntaxString())
		}
		typeColor.Fprintln(out, "of type: "+program.TypeString())
	}
}

// readExpression reads one possibly multi-line expression, prompting with
// "> " for the first line and "| " for continuations. More lines are asked
// for while the input so far is clearly unfinished. Returns false when input
// is exhausted.
func readExpression(in *bufio.Scanner, out io.Writer) (string, bool) {
	content := ""
	for {
		if content == "" {
			fmt.Fprint(out, "> ")
		} else {
			fmt.Fprint(out, "| ")
		}
		if !in.Scan() {
			return "", false
		}
		content += in.Text() + "\n"

		tokens, err := lexer.Lex(lexer.NewSource(content))
		if err != nil {
			// not lexable: hand it to the pipeline for a proper report
			return content, true
		}
		if !expectingMore(tokens) {
			return content, true
		}
	}
}

// expectingMore reports whether the tokens so far cannot yet be a complete
// expression: nothing was typed, an opening delimiter (paren, let, lambda)
// has not met its closer (paren, in, dot), or the last token must be followed
// by an expression.
func expectingMore(tokens []lexer.Token) bool {
	if len(tokens) == 0 {
		return true
	}
	var opens util.Stack[lexer.Kind]
	for _, tok := range tokens {
		switch tok.Kind {
		case lexer.LParen, lexer.Let, lexer.Lambda:
			opens.Push(tok.Kind)
		case lexer.RParen, lexer.In, lexer.Dot:
			if _, ok := opens.Pop(); !ok {
				// unbalanced the wrong way around: an incorrect
				// program, not missing input
				return false
			}
		}
	}
	if opens.Len() > 0 {
		return true
	}
	switch tokens[len(tokens)-1].Kind {
	case lexer.In, lexer.Dot, lexer.Equals, lexer.Arrow, lexer.Colon:
		return true
	}
	return false
}

func printTokens(out io.Writer, program *lam.Program) {
	for _, tok := range program.Tokens() {
		line, col := program.Source().LineCol(tok.Pos())
		fmt.Fprintf(out, "%s at %d:%d '%s'\n", tok.Kind, line, col, tok.Text)
	}
}

// formatError renders an error before a Program exists to do it for us.
func formatError(err error, src string) string {
	var lamError lamerr.LamError
	if goerrors.As(err, &lamError) {
		return lamerr.FormatWithSource(lamError, lexer.NewSource(src))
	}
	return err.Error()
}
