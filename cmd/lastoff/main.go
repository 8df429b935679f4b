package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juparave/lastoff/internal/app"
	"github.com/juparave/lastoff/internal/config"
	"github.com/juparave/lastoff/internal/logging"
)

var (
	version       = "0.1.0"
	cfgFile       string
	maxDepth      int
	onFileError   string
	terminal      string
	noInteractive bool
	verbose       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lastoff [path]",
		Short:   "LAST-OFF - Medical Code Navigator",
		Long:    `lastoff scans a directory tree for healthcare compliance risks (SSN, patient ids, PHI, dates of birth) and review markers (FIXME, TODO, XXX, HACK), then lets you jump to one in an editor.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}

	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "Path to config file (default: ~/.config/lastoff/config.yaml)")
	rootCmd.Flags().IntVarP(&maxDepth, "depth", "d", 0, "Maximum directory depth to scan (default 3)")
	rootCmd.Flags().StringVar(&onFileError, "on-file-error", "", "What to do with unreadable files: skip, collect or abort")
	rootCmd.Flags().StringVar(&terminal, "terminal", "", "Terminal emulator used for terminal editors (default: gnome-terminal)")
	rootCmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Print the findings and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags
	if len(args) == 1 {
		cfg.RootPath = args[0]
	}
	if cmd.Flags().Changed("depth") {
		cfg.Scan.MaxDepth = maxDepth
	}
	if onFileError != "" {
		cfg.Scan.OnFileError = onFileError
	}
	if terminal != "" {
		cfg.Editor.Terminal = terminal
	}
	cfg.Interactive = !noInteractive
	cfg.Verbose = verbose

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	runner := app.NewRunner(cfg, logger)
	return runner.Run(cmd.Context())
}
