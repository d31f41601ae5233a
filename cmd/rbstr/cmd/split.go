package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/rbstr/foundation/core/log"
	"github.com/msto63/rbstr/foundation/utils/stringx"
)

var splitLiteral bool

var splitCmd = &cobra.Command{
	Use:   "split <subject> [pattern]",
	Short: "Split on whitespace, a regular expression or literal text",
	Long: `Splits subject and prints one segment per line.

Without a pattern, or with a single space, subject is split on runs of
whitespace and leading whitespace is ignored. An empty pattern splits into
characters. Otherwise the pattern is a regular expression, or literal text
with --literal (or split.literal = true in the config file). Trailing empty
segments are dropped.

Examples:
  rbstr split " now's  the time"
  rbstr split "1,2,,3,4,," ,
  rbstr split "a.b.c" . --literal`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().BoolVarP(&splitLiteral, "literal", "l", false, "treat the pattern as literal text")
}

func runSplit(cmd *cobra.Command, args []string) error {
	subject, err := readSubject(cmd, args[0])
	if err != nil {
		return err
	}

	literal := app.cfg.GetBool("split.literal")
	if cmd.Flags().Changed("literal") {
		literal = splitLiteral
	}

	return run(cmd, subject, func() (interface{}, error) {
		if len(args) == 1 {
			return stringx.Fields(subject), nil
		}

		pattern := args[1]
		if literal {
			return stringx.SplitString(subject, pattern), nil
		}

		app.logger.Trace("compiling split pattern", log.String("pattern", pattern))
		return stringx.Split(subject, pattern)
	})
}
