package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"propanec/config"
	"propanec/logs"
	"propanec/report"
)

var (
	cfgFile   string
	colorMode string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "propanec",
	Short: "Front end for the propane language",
	Long: `propanec scans and parses propane source files and reports
diagnostics for malformed input.

Commands:
  check   - parse files and report every error
  parse   - print the syntax tree of a file
  tokens  - print the token stream of a file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "diagnostic colors: auto, always or never")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

/* -------------------------------------------------------------------------- */

// driver bundles what every command needs to run the front end.
type driver struct {
	cfg      *config.Config
	log      logs.Logger
	closer   io.Closer
	compiler *Compiler
}

func newDriver(cmd *cobra.Command) (*driver, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("color") {
		cfg.Diagnostics.Color = colorMode
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger, closer, err := logs.New(cmd.ErrOrStderr(), level, cfg.Log.File)
	if err != nil {
		return nil, err
	}

	color, err := report.ParseColorMode(cfg.Diagnostics.Color)
	if err != nil {
		closer.Close()
		return nil, err
	}

	table := report.NewFiles()
	rep := report.NewDisplayReporter(cmd.ErrOrStderr(), table, report.LOG_LEVEL_ALL, color, cfg.Diagnostics.TabWidth)

	logger.Debug("config loaded", "color", cfg.Diagnostics.Color, "jobs", cfg.Build.Jobs, "log_level", level)

	return &driver{
		cfg:      cfg,
		log:      logger,
		closer:   closer,
		compiler: NewCompiler(rep, table, logger, cfg.Build.Jobs),
	}, nil
}

func (d *driver) Close() error {
	return d.closer.Close()
}

// failed is returned by commands whose input produced diagnostics.
func (d *driver) failed() error {
	n := d.compiler.ErrorCount()
	if n == 1 {
		return fmt.Errorf("aborting due to previous error")
	}
	return fmt.Errorf("aborting due to %d previous errors", n)
}
