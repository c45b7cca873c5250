// Package main provides the argvparse CLI.
// argvparse classifies argument vectors into flags and positional arguments
// and extracts typed flag values, for use from shell scripts and for
// exploring how a vector is interpreted.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"argvparse/internal/config"
	"argvparse/internal/logger"
	"argvparse/internal/output"
	"argvparse/internal/version"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configFile string
	cfg        *config.Config
	renderer   *output.Renderer
}

func main() {
	if bi, ok := debug.ReadBuildInfo(); ok {
		version.ApplyVCSInfo(bi)
	}

	err := newRootCmd().Execute()
	if closeErr := logger.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "argvparse",
		Short: "Classify argument vectors and extract typed flag values",
		Long: `argvparse splits an argument vector into flags (tokens starting with "-")
and positional arguments, and decodes flag values as boolean, number, string
or json.

Pass the vector after "--" so its flags are not read as argvparse options:

  argvparse classify -- node index.js -i -s=6 hello -b world
  argvparse extract --prefix -n --type number --default 2020 -- -n=101`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: <user config dir>/argvparse/config.yaml)")
	flags.String(config.KeyLogLevel, "info", "Set log level (debug|info|warn|error)")
	flags.String(config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.StringP(config.KeyOutput, "o", config.OutputText, "Output format (text|json|yaml)")
	flags.Bool(config.KeyNoColor, false, "Disable styled text output")

	rootCmd.AddCommand(newClassifyCmd(a))
	rootCmd.AddCommand(newExtractCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// setup resolves configuration, configures logging and builds the renderer
// before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	if err := config.BindFlags(v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(v, config.Options{ConfigFile: a.configFile})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("Loaded configuration", "output", cfg.Output, "sources", cfg.Sources)

	renderer, err := output.NewRenderer(cmd.OutOrStdout(), cfg.Output, !cfg.NoColor)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.renderer = renderer
	return nil
}
