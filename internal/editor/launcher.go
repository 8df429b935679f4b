package editor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/juparave/lastoff/internal/executor"
)

var (
	// ErrLaunch is returned when an editor process could not be started
	ErrLaunch = errors.New("editor launch failed")
	// ErrInstallStart is returned when the installer could not be started
	ErrInstallStart = errors.New("installer could not be started")
	// ErrInstallFailed is returned when the installer exited unsuccessfully
	ErrInstallFailed = errors.New("installation failed")
)

// DefaultInstallCommand is the package manager invocation; the package name
// is appended
var DefaultInstallCommand = []string{"sudo", "apt", "install", "-y"}

// Launcher starts editors and installs packages
type Launcher interface {
	// Launch starts command through a shell and does not wait for it
	Launch(ctx context.Context, command string) error
	// Install runs the package manager for pkg and waits for it
	Install(ctx context.Context, pkg string) error
}

// ShellLauncher implements Launcher with real processes
type ShellLauncher struct {
	installCommand []string
}

// NewShellLauncher creates a ShellLauncher. An empty installCommand selects
// DefaultInstallCommand.
func NewShellLauncher(installCommand []string) *ShellLauncher {
	if len(installCommand) == 0 {
		installCommand = DefaultInstallCommand
	}
	return &ShellLauncher{installCommand: installCommand}
}

// Launch implements Launcher
func (l *ShellLauncher) Launch(ctx context.Context, command string) error {
	cmd := executor.Shell(command)
	if err := cmd.Start(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLaunch, cmd, err)
	}
	return nil
}

// Install implements Launcher. An installer that ran and did not succeed,
// including one killed by a signal, is ErrInstallFailed. ErrInstallStart is
// kept for installers that never started.
func (l *ShellLauncher) Install(ctx context.Context, pkg string) error {
	args := append(append([]string{}, l.installCommand[1:]...), pkg)
	cmd := executor.New(l.installCommand[0], args...)
	_, err := cmd.Run(ctx, executor.Interactive())
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%w: %s: %w", ErrInstallFailed, cmd, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInstallStart, cmd, err)
}

// InstallHint renders an install command for display. The non-interactive
// "-y" flag is left out.
func InstallHint(installCommand []string, pkg string) string {
	if len(installCommand) == 0 {
		installCommand = DefaultInstallCommand
	}
	var parts []string
	for _, p := range installCommand {
		if p != "-y" {
			parts = append(parts, p)
		}
	}
	return strings.Join(append(parts, pkg), " ")
}
