package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
	mdwlog "github.com/msto63/numcore/foundation/core/log"
)

func newEvalCmd(a *app) *cobra.Command {
	var keepGoing bool

	cmd := &cobra.Command{
		Use:   "eval [OBJECT.METHOD args...]",
		Short: "Evaluate a command line, or one line per input line",
		Long: `Evaluate a command line given as arguments. Without arguments every
line of standard input is evaluated; blank lines and lines starting with #
are skipped.`,
		Example: `  numcore eval TRIG.SIN 90 unit=deg
  numcore eval --locale de-DE POW.POW 2,5 2
  printf 'COMBIN.CHOOSE 52 5\nBITS.FLIPB 0x1234 width=16\n' | numcore eval`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.evalLine(cmd.Context(), cmd.OutOrStdout(), joinArgs(args))
			}
			return a.evalStream(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), keepGoing)
		},
	}
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "continue after a failing input line")
	// everything after the command name belongs to it, including "-27"
	cmd.Flags().SetInterspersed(false)
	return cmd
}

// joinArgs rebuilds a command line from shell arguments, quoting arguments
// the shell had unquoted
func joinArgs(args []string) string {
	return strings.Join(lo.Map(args, func(arg string, _ int) string {
		if strings.ContainsAny(arg, " \t") {
			return strconv.Quote(arg)
		}
		return arg
	}), " ")
}

func (a *app) evalLine(ctx context.Context, out io.Writer, line string) error {
	res, err := a.engine.Eval(ctx, line)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Text)
	return nil
}

func (a *app) evalStream(ctx context.Context, in io.Reader, out, errOut io.Writer, keepGoing bool) error {
	scanner := bufio.NewScanner(in)
	lineNo, evaluated, failed := 0, 0, 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		evaluated++
		if err := a.evalLine(ctx, out, line); err != nil {
			failed++
			a.logger.Debug("line failed", mdwlog.Fields{"line": lineNo, "input": line})
			if !keepGoing {
				return mdwerror.Wrap(err, fmt.Sprintf("line %d", lineNo)).WithDetail("input", line)
			}
			printError(errOut, mdwerror.Wrap(err, fmt.Sprintf("line %d", lineNo)))
		}
	}
	if err := scanner.Err(); err != nil {
		return mdwerror.Wrap(err, "failed to read input").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cmd.eval")
	}

	if failed > 0 {
		return mdwerror.New(fmt.Sprintf("%d of %d lines failed", failed, evaluated)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.eval")
	}
	return nil
}
