package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	rberrors "github.com/msto63/rbstr/foundation/core/errors"
	"github.com/msto63/rbstr/foundation/utils/stringx"
)

var (
	justifyAlign string
	justifyPad   string
)

var justifyCmd = &cobra.Command{
	Use:   "justify <subject> <width>",
	Short: "Pad subject to width characters",
	Long: `Pads subject to width characters by repeating the pad string. Subjects
that are already wide enough are printed unchanged.

Examples:
  rbstr justify hello 20 --pad 1234            # hello123412341234123
  rbstr justify hello 20 --align right
  rbstr justify hello 20 --align center --pad 123`,
	Args: cobra.ExactArgs(2),
	RunE: runJustify,
}

func init() {
	rootCmd.AddCommand(justifyCmd)

	justifyCmd.Flags().StringVarP(&justifyAlign, "align", "a", "left", "alignment: left, right or center")
	justifyCmd.Flags().StringVarP(&justifyPad, "pad", "p", "", "pad string (default: justify.pad from the config, or a space)")
}

func runJustify(cmd *cobra.Command, args []string) error {
	subject, err := readSubject(cmd, args[0])
	if err != nil {
		return err
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return rberrors.InvalidInput(rberrors.ModuleCLI, "justify", args[1], "an integer width")
	}

	pad := app.cfg.GetString("justify.pad", " ")
	if cmd.Flags().Changed("pad") {
		pad = justifyPad
	}

	var justify func(string, int, ...string) string
	switch strings.ToLower(justifyAlign) {
	case "left", "l":
		justify = stringx.LJust
	case "right", "r":
		justify = stringx.RJust
	case "center", "c":
		justify = stringx.Center
	default:
		return rberrors.InvalidInput(rberrors.ModuleCLI, "justify", justifyAlign, "left, right or center")
	}

	return run(cmd, subject, func() (interface{}, error) {
		return justify(subject, width, pad), nil
	})
}
