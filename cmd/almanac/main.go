// Package main is the entry point for the almanac CLI.
//
// almanac reads a seed almanac (text listing or YAML) and reports the lowest
// location reachable from its seeds, either seed by seed or with the seeds
// read as (start, length) ranges.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"almanac/internal/almanac"
	"almanac/internal/common"
	"almanac/internal/config"
	"almanac/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries state shared by subcommands once PersistentPreRunE has run.
type app struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "almanac",
		Short: "Lowest location finder for seed almanacs",
		Long: `almanac pushes seeds through the seven remapping stages of an almanac
(seed-to-soil through humidity-to-location) and reports the lowest location.

Seeds can be read as single values or as (start, length) ranges. Ranges are
processed as whole intervals, so billions of seeds cost no more than a few.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "path to a .env file (default .env)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides ALMANAC_LOG_LEVEL)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: console or json (overrides ALMANAC_LOG_FORMAT)")

	cmd.AddCommand(solveCmd(a))
	cmd.AddCommand(traceCmd(a))
	cmd.AddCommand(checkCmd(a))
	cmd.AddCommand(convertCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration and builds the logger. Flags override the environment.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}

	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}

	if err := cfg.Check(); err != nil {
		return err
	}

	logger, err := log.FromConfig(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// load reads the almanac named by args, falling back to the configured input.
func (a *app) load(args []string) (*almanac.Almanac, error) {
	path := a.cfg.Input
	if arg, ok := common.First(args); ok {
		path = arg
	}

	if path == "" {
		return nil, fmt.Errorf("no almanac file given: pass a path or set %s_INPUT", config.EnvPrefix)
	}

	a.logger.Debug("loading almanac", zap.String("path", path))

	return almanac.LoadFile(path)
}
