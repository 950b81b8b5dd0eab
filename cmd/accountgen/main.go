// Package main provides the accountgen binary entry point.
// accountgen samples synthetic social-media account profiles and renders
// them into prompts for an external post generator.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/accountgen/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "accountgen"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath   string
	taxonomyPath string
	seed         uint64
	logLevel     string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Synthetic social media account generator",
		Long: `accountgen samples synthetic social media accounts from a weighted
taxonomy of account types, personas and modifiers, and renders each
account into a system prompt for an LLM that writes the posts.

Configuration is layered: built-in defaults, then
~/.config/accountgen/config.yaml, then accountgen.yaml in the current
or a parent directory, then --config, then command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVarP(&flags.taxonomyPath, "taxonomy", "t", "", "Taxonomy file or directory (default: built-in)")
	cmd.PersistentFlags().Uint64Var(&flags.seed, "seed", 0, "Random seed for reproducible draws (0 = random)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		sampleCmd(flags),
		promptCmd(flags),
		batchCmd(flags),
		taxonomyCmd(flags),
		configCmd(flags),
		versionCmd(),
	)

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}

// loadConfig resolves the layered configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, *slog.Logger, error) {
	// Config loading logs before the configured level is known.
	bootLogger := newLogger(cmd.ErrOrStderr(), flags.logLevel)

	cfg, err := config.NewLoader(bootLogger).Load(flags.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if flags.taxonomyPath != "" {
		cfg.Taxonomy.Path = flags.taxonomyPath
	}
	if cmd.Flags().Changed("seed") {
		cfg.Sampling.Seed = flags.seed
	}
	if flags.logLevel != "" {
		cfg.Logging.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup loads configuration and builds the App for a subcommand.
func setup(cmd *cobra.Command, flags *globalFlags) (*App, error) {
	cfg, logger, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, logger, cmd.OutOrStdout())
}
