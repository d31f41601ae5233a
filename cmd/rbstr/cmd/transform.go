package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	rberrors "github.com/msto63/rbstr/foundation/core/errors"
	"github.com/msto63/rbstr/foundation/utils/stringx"
)

var transformSuffix string

// transforms maps operation names to single-subject string functions
var transforms = map[string]func(string) interface{}{
	"length":  func(s string) interface{} { return stringx.Length(s) },
	"reverse": func(s string) interface{} { return stringx.Reverse(s) },
	"strip":   func(s string) interface{} { return stringx.Strip(s) },
	"lstrip":  func(s string) interface{} { return stringx.LStrip(s) },
	"rstrip":  func(s string) interface{} { return stringx.RStrip(s) },
	"chop":    func(s string) interface{} { return stringx.Chop(s) },
	"chomp":   func(s string) interface{} { return stringx.Chomp(s) },
}

var transformCmd = &cobra.Command{
	Use:   "transform <operation> <subject>",
	Short: "Apply a single string operation",
	Long: `Applies one of: ` + strings.Join(transformNames(), ", ") + `.

chomp without --suffix removes trailing whitespace; with --suffix "" it
removes trailing line breaks; otherwise the suffix once.

Examples:
  rbstr transform reverse "Hello"           # olleH
  rbstr transform length "cafe"             # 4
  rbstr transform chomp "Hello" --suffix lo # Hel`,
	Args: cobra.ExactArgs(2),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringVar(&transformSuffix, "suffix", "", "suffix removed by chomp")
}

func transformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runTransform(cmd *cobra.Command, args []string) error {
	operation := strings.ToLower(args[0])
	fn, ok := transforms[operation]
	if !ok {
		return rberrors.InvalidInput(rberrors.ModuleCLI, "transform", args[0], strings.Join(transformNames(), ", "))
	}

	subject, err := readSubject(cmd, args[1])
	if err != nil {
		return err
	}

	if operation == "chomp" && cmd.Flags().Changed("suffix") {
		fn = func(s string) interface{} { return stringx.Chomp(s, transformSuffix) }
	}

	return run(cmd, subject, func() (interface{}, error) {
		return fn(subject), nil
	})
}
