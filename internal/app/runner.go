package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/config"
	"github.com/juparave/lastoff/internal/editor"
	"github.com/juparave/lastoff/internal/inspect"
	"github.com/juparave/lastoff/internal/prompt"
	"github.com/juparave/lastoff/internal/report"
	"github.com/juparave/lastoff/internal/scanner"
	"github.com/juparave/lastoff/internal/selector"
	"github.com/juparave/lastoff/internal/util"
)

// Runner orchestrates scan, presentation and the interactive session
type Runner struct {
	config   *config.Config
	logger   *zap.SugaredLogger
	fs       billy.Filesystem
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	probe    editor.Probe
	launcher editor.Launcher
}

// Option configures a Runner
type Option func(*Runner)

// WithFilesystem replaces the OS filesystem
func WithFilesystem(fs billy.Filesystem) Option {
	return func(r *Runner) { r.fs = fs }
}

// WithIO replaces stdin, stdout and stderr
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(r *Runner) {
		r.in = in
		r.out = out
		r.errOut = errOut
	}
}

// WithProbe replaces the PATH based editor probe
func WithProbe(p editor.Probe) Option {
	return func(r *Runner) { r.probe = p }
}

// WithLauncher replaces the process launcher
func WithLauncher(l editor.Launcher) Option {
	return func(r *Runner) { r.launcher = l }
}

// NewRunner creates a new Runner instance
func NewRunner(cfg *config.Config, logger *zap.SugaredLogger, opts ...Option) *Runner {
	r := &Runner{
		config:   cfg,
		logger:   logger,
		fs:       osfs.New("/"),
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		probe:    editor.PathProbe{},
		launcher: editor.NewShellLauncher(cfg.Editor.InstallCommand),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run scans the configured root, prints the findings and, when
// interactive, lets the user open one of them. A failed scan is reported
// but does not make Run fail.
func (r *Runner) Run(ctx context.Context) error {
	startTime := time.Now()

	if err := r.config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	root, err := util.AbsPath(r.config.RootPath)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}

	formatter := report.NewFormatter(r.out)
	formatter.Banner(root)

	s := scanner.New(r.fs, r.logger,
		scanner.WithMaxDepth(r.config.Scan.MaxDepth),
		scanner.WithFileErrorPolicy(r.config.Policy()),
	)

	result, err := s.Scan(ctx, root)
	if err != nil {
		r.logger.Debugw("Scan failed", "root", root, "error", err)
		fmt.Fprintf(r.errOut, "%s Error scanning: %v\n", report.NewStyles(r.errOut).Error.Render("❌"), err)
		return nil
	}
	r.logger.Infow("Scan finished",
		"run", result.RunID,
		"findings", result.TotalFindings(),
		"elapsed", time.Since(startTime).Round(time.Millisecond))

	formatter.Write(result)
	formatter.Skipped(result)

	if !result.HasFindings() || !r.config.Interactive {
		return nil
	}

	p := prompt.New(r.in, r.out)
	dispatcher := editor.NewDispatcher(p, r.probe, r.launcher, editor.Config{
		Terminal:       r.config.Editor.Terminal,
		InstallCommand: r.config.Editor.InstallCommand,
	}, r.logger)
	inspector := inspect.New(r.fs, root, formatter, dispatcher, r.logger)

	action, err := selector.New(p, formatter, inspector, r.logger).Run(ctx, result.Findings)
	if err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	r.logger.Infow("Session finished", "run", result.RunID, "action", action)

	return nil
}
