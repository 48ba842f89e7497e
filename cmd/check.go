package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lam-lang/lam/frontend/lamerr"
	"github.com/lam-lang/lam/internal/log"
	"github.com/lam-lang/lam/lam"
)

var CheckCmd = &cobra.Command{
	Use:          "check [file.lam]",
	Short:        "Type-check an expression from a file or from --expr",
	RunE:         runCheck,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	checkExpr        *string
	checkPrintTokens *bool
	checkPrintAST    *bool
	checkPrintType   *bool
	checkLogLevel    *int
)

func init() {
	checkExpr = CheckCmd.Flags().StringP("expr", "e", "", "check this expression instead of reading a file")
	checkPrintTokens = CheckCmd.Flags().Bool("print-tokens", false, "print the tokens generated by the lexer")
	checkPrintAST = CheckCmd.Flags().BoolP("print-ast", "a", false, "print the syntax tree with inferred types")
	checkPrintType = CheckCmd.Flags().Bool("print-type", true, "print the type of the expression")
	checkLogLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*checkLogLevel))

	src := *checkExpr
	if src == "" {
		if len(args) == 0 {
			return errors.New("nothing to check: pass a file or --expr")
		}
		content, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "could not read target %s", args[0])
		}
		src = string(content)
	}

	out := cmd.OutOrStdout()
	program, err := lam.Load(src)
	if err != nil {
		return errors.New(formatError(err, src))
	}
	if *checkPrintTokens {
		printTokens(out, program)
	}
	if err := program.Infer(); err != nil {
		return errors.New(program.FormatError(err))
	}
	for _, notice := range program.Notices() {
		noticeColor.Fprintln(cmd.ErrOrStderr(), "notice: "+lamerr.FormatWithCode(notice))
	}
	if unresolved := program.UnresolvedVars(); len(unresolved) > 0 {
		noticeColor.Fprintf(cmd.ErrOrStderr(), "notice: type is not fully resolved, free variables: %v\n", unresolved)
	}
	if *checkPrintAST {
		fmt.Fprint(out, program.SyntaxString())
	}
	if *checkPrintType {
		typeColor.Fprintln(out, "of type: "+program.TypeString())
	}
	return nil
}
