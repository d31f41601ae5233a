package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/rbstr/foundation/utils/stringx"
)

var (
	partitionRegexp    bool
	partitionHighlight bool
)

var partitionCmd = &cobra.Command{
	Use:   "partition <subject> <separator>",
	Short: "Split around the first match of separator",
	Long: `Prints the text before the first match, the match and the text after it,
one per line. Without a match the output is subject followed by two empty
lines.

Examples:
  rbstr partition hello l              # he / l / lo
  rbstr partition hello "l+" --regexp  # he / ll / o`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPartition(cmd, args, false)
	},
}

var rpartitionCmd = &cobra.Command{
	Use:   "rpartition <subject> <separator>",
	Short: "Split around the last match of separator",
	Long: `Like partition but uses the last match. Without a match the output is two
empty lines followed by subject.

Examples:
  rbstr rpartition hello l             # hel / l / o
  rbstr rpartition hello ".l" --regexp # h / el / lo`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPartition(cmd, args, true)
	},
}

func init() {
	rootCmd.AddCommand(partitionCmd)
	rootCmd.AddCommand(rpartitionCmd)

	for _, c := range []*cobra.Command{partitionCmd, rpartitionCmd} {
		c.Flags().BoolVarP(&partitionRegexp, "regexp", "r", false, "treat the separator as a regular expression")
		c.Flags().BoolVar(&partitionHighlight, "highlight", false, "print one line with the match highlighted")
	}
}

func runPartition(cmd *cobra.Command, args []string, last bool) error {
	subject, err := readSubject(cmd, args[0])
	if err != nil {
		return err
	}
	separator := args[1]

	return run(cmd, subject, func() (interface{}, error) {
		var result triple

		switch {
		case partitionRegexp && last:
			result.Before, result.Match, result.After, err = stringx.RPartitionPattern(subject, separator)
		case partitionRegexp:
			result.Before, result.Match, result.After, err = stringx.PartitionPattern(subject, separator)
		case last:
			result.Before, result.Match, result.After = stringx.RPartition(subject, separator)
		default:
			result.Before, result.Match, result.After = stringx.Partition(subject, separator)
		}
		if err != nil {
			return nil, err
		}

		result.highlight = partitionHighlight
		return result, nil
	})
}
