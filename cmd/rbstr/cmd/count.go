package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/rbstr/foundation/utils/stringx"
)

var countCmd = &cobra.Command{
	Use:   "count <subject> <selector> [selector...]",
	Short: "Count characters matched by every selector",
	Long: `Counts the characters of subject that are matched by all selectors.

A selector lists characters, ranges (a-z) and may start with ^ to negate
it. A backslash escapes ^, - and itself.

Examples:
  rbstr count "hello world" lo        # 5
  rbstr count "hello world" lo o      # 2
  rbstr count "hello world" a-y ^l    # 7`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCount,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <subject> <selector> [selector...]",
	Short: "Delete characters matched by every selector",
	Long: `Returns subject without the characters matched by all selectors.

Examples:
  rbstr delete "hello world" lo       # he wrd
  rbstr delete hello l lo             # heo
  rbstr delete hello a-y ^l           # ll`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	subject, err := readSubject(cmd, args[0])
	if err != nil {
		return err
	}

	return run(cmd, subject, func() (interface{}, error) {
		return stringx.Count(subject, args[1], args[2:]...), nil
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	subject, err := readSubject(cmd, args[0])
	if err != nil {
		return err
	}

	return run(cmd, subject, func() (interface{}, error) {
		return stringx.Delete(subject, args[1], args[2:]...), nil
	})
}
