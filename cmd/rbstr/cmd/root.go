package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	rberr "github.com/msto63/rbstr/foundation/core/error"
	rberrors "github.com/msto63/rbstr/foundation/core/errors"
	"github.com/msto63/rbstr/foundation/core/config"
	"github.com/msto63/rbstr/foundation/core/log"
	"github.com/msto63/rbstr/foundation/utils/stringx"
)

const (
	outputText = "text"
	outputJSON = "json"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
	logFormat    string
	logLevel     string
)

// app holds what PersistentPreRunE resolved for the running command
var app struct {
	cfg    *config.Config
	logger *log.Logger
	output string
}

var rootCmd = &cobra.Command{
	Use:   "rbstr",
	Short: "Ruby-style string operations",
	Long: `rbstr applies Ruby's String methods to text from the command line.
Characters are user-perceived characters (grapheme clusters), so combining
marks and emoji sequences are never split.

Commands:
  count      - count characters matched by selectors
  delete     - delete characters matched by selectors
  split      - split on whitespace, a pattern or literal text
  partition  - split around the first match
  rpartition - split around the last match
  justify    - pad to a width
  transform  - length, reverse, strip, chomp and friends

Use "-" as subject to read from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	app.logger = nil

	err := rootCmd.Execute()
	if err != nil {
		if app.logger != nil {
			app.logger.LogError(err)
		}
		printError(rootCmd, err)
	}
	return err
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if rbErr, ok := rberr.As(err); ok {
		return rbErr.Code().ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rbstr.toml, ./rbstr.yaml, $XDG_CONFIG_HOME/rbstr/config.toml, ~/.rbstr.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log operations at debug level")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "output", "", "output format: text or json")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json or logfmt")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: "+strings.Join(log.LevelNames(), ", "))
}

// setup loads the configuration and builds the logger. Flags win over the
// configuration, which wins over the environment-free defaults.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.DefaultRules()); err != nil {
		return err
	}

	levelName := cfg.GetString("log.level", log.DefaultLevel().String())
	if verbose {
		levelName = log.LevelDebug.String()
	}
	if cmd.Flags().Changed("log-level") {
		levelName = logLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return err
	}

	formatName := cfg.GetString("log.format", log.FormatText.String())
	if cmd.Flags().Changed("log-format") {
		formatName = logFormat
	}
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return err
	}

	output := cfg.GetString("output.format", outputText)
	if cmd.Flags().Changed("output") {
		output = outputFormat
	}
	if output != outputText && output != outputJSON {
		return rberrors.InvalidFormat(rberrors.ModuleCLI, output, "text or json")
	}

	app.cfg = cfg
	app.output = output
	app.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "rbstr",
	}).WithCorrelationID(uuid.NewString())

	if app.logger.IsLevelEnabled(log.LevelTrace) {
		app.logger.Trace("configuration loaded", log.Fields{
			"source":  cfg.String(),
			"command": cmd.Name(),
		})
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
		})
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// run wraps a command body with an operation timer. Entries are logged
// under "rbstr.<command>".
func run(cmd *cobra.Command, subject string, body func() (interface{}, error)) error {
	logger := app.logger.WithName("rbstr."+cmd.Name()).WithField("output", app.output)
	timer := logger.StartTimer(cmd.Name(), log.Int("subject_length", stringx.Length(subject)))

	result, err := body()
	timer.Done(err)
	if err != nil {
		return err
	}

	return printResult(cmd, result)
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w, errorStyle(w).Render("Error:"), err.Error())
}
