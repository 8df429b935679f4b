package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/prompt"
	"github.com/juparave/lastoff/internal/report"
)

// Menu positions after the editors
var (
	CopyCommandsOption = len(Catalog) + 1
	CancelOption       = len(Catalog) + 2
)

// Outcome is how a dispatch ended
type Outcome string

const (
	OutcomeLaunched      Outcome = "launched"
	OutcomeLaunchFailed  Outcome = "launch_failed"
	OutcomeInstalled     Outcome = "installed"
	OutcomeInstallFailed Outcome = "install_failed"
	OutcomeDeclined      Outcome = "declined"
	OutcomeListed        Outcome = "listed"
	OutcomeCancelled     Outcome = "cancelled"
	OutcomeInvalid       Outcome = "invalid"
)

type state int

const (
	statePrompting state = iota
	stateDispatching
	stateLaunching
	stateInstallPrompt
	stateListing
	stateCancelled
)

// Config holds the process settings used by the dispatcher
type Config struct {
	Terminal       string
	InstallCommand []string
}

// Dispatcher drives the "open with" menu for a single finding
type Dispatcher struct {
	prompter *prompt.Prompter
	out      io.Writer
	styles   *report.Styles
	probe    Probe
	launcher Launcher
	config   Config
	logger   *zap.SugaredLogger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(p *prompt.Prompter, probe Probe, launcher Launcher, cfg Config, logger *zap.SugaredLogger) *Dispatcher {
	if cfg.Terminal == "" {
		cfg.Terminal = DefaultTerminal
	}
	if len(cfg.InstallCommand) == 0 {
		cfg.InstallCommand = DefaultInstallCommand
	}
	return &Dispatcher{
		prompter: p,
		out:      p.Out(),
		styles:   report.NewStyles(p.Out()),
		probe:    probe,
		launcher: launcher,
		config:   cfg,
		logger:   logger,
	}
}

// Dispatch shows the editor menu for target and carries out the choice.
// Editor availability is probed once per call. Choosing "another editor"
// after an install prompt returns to the menu without re-probing.
func (d *Dispatcher) Dispatch(ctx context.Context, target Target) (Outcome, error) {
	avail := Snapshot(d.probe)
	d.logger.Debugw("Editor availability", "path", target.Path, "line", target.Line, "available", avail)

	st := statePrompting
	choice := 0
	for {
		switch st {
		case statePrompting:
			d.printMenu(target, avail)
			answer, err := d.prompter.Ask(fmt.Sprintf("\n%s (1-%d): ", d.styles.Prompt.Render("Choose editor"), CancelOption))
			if err != nil {
				return "", err
			}
			n, err := prompt.ParseChoice(answer)
			if err != nil {
				fmt.Fprintf(d.out, "%s Please enter a number\n", d.styles.Error.Render("❌"))
				return OutcomeInvalid, nil
			}
			choice = n
			st = stateDispatching

		case stateDispatching:
			switch {
			case choice >= 1 && choice <= len(Catalog):
				if avail[choice-1] {
					st = stateLaunching
				} else {
					st = stateInstallPrompt
				}
			case choice == CopyCommandsOption:
				st = stateListing
			case choice == CancelOption:
				st = stateCancelled
			default:
				fmt.Fprintf(d.out, "%s Please enter 1-%d\n", d.styles.Error.Render("❌"), CancelOption)
				return OutcomeInvalid, nil
			}

		case stateLaunching:
			return d.launch(ctx, Catalog[choice-1], target), nil

		case stateInstallPrompt:
			outcome, retry, err := d.installPrompt(ctx, Catalog[choice-1])
			if err != nil {
				return "", err
			}
			if !retry {
				return outcome, nil
			}
			st = statePrompting

		case stateListing:
			d.printAllCommands(target)
			return OutcomeListed, nil

		case stateCancelled:
			fmt.Fprintln(d.out, d.styles.Todo.Render("Returning to list..."))
			return OutcomeCancelled, nil
		}
	}
}

func (d *Dispatcher) printMenu(target Target, avail []bool) {
	fmt.Fprintf(d.out, "\n%s\n", d.styles.Bold.Render("📝 OPEN WITH:"))
	for i, e := range Catalog {
		if avail[i] {
			fmt.Fprintf(d.out, "  %d. %s - %s\n", i+1,
				d.styles.Number.Render(e.Label),
				d.styles.Command.Render(e.Direct(target)))
		} else {
			fmt.Fprintf(d.out, "  %d. %s - %s\n", i+1,
				d.styles.Disabled.Render(e.Name),
				d.styles.Error.Render("(Not installed)"))
		}
	}
	fmt.Fprintf(d.out, "  %d. %s - Copy all commands\n", CopyCommandsOption, d.styles.Todo.Render("Manual"))
	fmt.Fprintf(d.out, "  %d. %s - Back to list\n", CancelOption, d.styles.Error.Render("Cancel"))
}

func (d *Dispatcher) launch(ctx context.Context, e Editor, target Target) Outcome {
	if e.Terminal {
		fmt.Fprintf(d.out, "\n%s\n", d.styles.Todo.Render(fmt.Sprintf("🚀 Opening %s in NEW terminal window...", e.Name)))
	} else {
		fmt.Fprintf(d.out, "\n%s\n", d.styles.Todo.Render(fmt.Sprintf("🚀 Opening %s...", e.Name)))
	}
	for _, h := range e.OpenHints {
		fmt.Fprintln(d.out, d.styles.Hint.Render(h))
	}

	command := e.Launch(target, d.config.Terminal)
	d.logger.Debugw("Launching editor", "editor", e.Name, "command", command)

	if err := d.launcher.Launch(ctx, command); err != nil {
		d.logger.Warnw("Editor launch failed", "editor", e.Name, "error", err)
		if e.PrintFallback {
			fmt.Fprintf(d.out, "%s Failed to open new window: %v\n", d.styles.Error.Render("❌"), err)
			fmt.Fprintf(d.out, "%s Try this instead:\n", d.styles.Todo.Render("👉"))
			fmt.Fprintf(d.out, "  %s\n", d.styles.Command.Render(e.Direct(target)))
			fmt.Fprintln(d.out, "  (Then press Ctrl+X to exit)")
		} else {
			fmt.Fprintf(d.out, "%s Failed to open %s: %v\n", d.styles.Error.Render("❌"), e.Name, err)
		}
		return OutcomeLaunchFailed
	}

	for _, line := range e.AfterLaunch {
		fmt.Fprintln(d.out, line)
	}
	return OutcomeLaunched
}

// installPrompt handles a choice of an editor that is not installed. retry
// is true when the user wants to go back to the menu.
func (d *Dispatcher) installPrompt(ctx context.Context, e Editor) (Outcome, bool, error) {
	banner := d.styles.Error.Render(strings.Repeat("=", 50))
	fmt.Fprintf(d.out, "\n%s\n", banner)
	fmt.Fprintf(d.out, "%s %s IS NOT INSTALLED\n", d.styles.Error.Render("❌"), d.styles.Bold.Render(e.Name))
	fmt.Fprintln(d.out, banner)

	if !e.CanInstall() {
		fmt.Fprintf(d.out, "\n%s %s needs to be downloaded separately:\n", d.styles.Todo.Render("📦"), e.Name)
		for i, step := range e.ManualSteps {
			fmt.Fprintf(d.out, "  %d. %s\n", i+1, d.styles.Command.Render(step))
		}
		fmt.Fprintf(d.out, "\n%s Please choose another editor or install %s first\n", d.styles.Hint.Render("💡"), e.Name)
		return d.askRetry()
	}

	hint := InstallHint(d.config.InstallCommand, e.Package)
	fmt.Fprintf(d.out, "\n%s To install %s:\n", d.styles.Todo.Render("📦"), e.Name)
	fmt.Fprintf(d.out, "  %s\n", d.styles.Command.Render(hint))

	install, err := d.prompter.Confirm(fmt.Sprintf("\n%s Quick install now? (y/n): ", d.styles.Hint.Render("⚡")))
	if err != nil {
		return "", false, err
	}

	if !install {
		fmt.Fprintf(d.out, "\n%s Please choose another editor or install %s first\n", d.styles.Hint.Render("💡"), e.Name)
		return d.askRetry()
	}

	fmt.Fprintf(d.out, "\n%s Running: %s\n", d.styles.Todo.Render("🔧"), hint)
	fmt.Fprintf(d.out, "%s This may take a moment...\n", d.styles.Hint.Render("⏳"))

	err = d.launcher.Install(ctx, e.Package)
	switch {
	case err == nil:
		fmt.Fprintf(d.out, "%s %s installed successfully!\n", d.styles.Success.Render("✅"), e.Name)
		fmt.Fprintf(d.out, "\n%s Run lastoff again to use %s\n", d.styles.Hint.Render("🔄"), e.Name)
		return OutcomeInstalled, false, nil
	case errors.Is(err, ErrInstallStart):
		d.logger.Warnw("Installer could not start", "package", e.Package, "error", err)
		fmt.Fprintf(d.out, "%s Need sudo privileges. Run manually:\n", d.styles.Error.Render("🔒"))
		fmt.Fprintf(d.out, "  %s\n", hint)
		return OutcomeInstallFailed, false, nil
	default:
		d.logger.Warnw("Install failed", "package", e.Package, "error", err)
		fmt.Fprintf(d.out, "%s Failed to install %s\n", d.styles.Error.Render("❌"), e.Name)
		return OutcomeInstallFailed, false, nil
	}
}

func (d *Dispatcher) askRetry() (Outcome, bool, error) {
	retry, err := d.prompter.Confirm(fmt.Sprintf("\n%s Choose another editor now? (y/n): ", d.styles.Todo.Render("🔄")))
	if err != nil {
		return "", false, err
	}
	return OutcomeDeclined, retry, nil
}

func (d *Dispatcher) printAllCommands(target Target) {
	fmt.Fprintf(d.out, "\n%s\n", d.styles.Hint.Render("📋 ALL COMMANDS:"))
	for _, e := range Catalog {
		fmt.Fprintf(d.out, "💻 %s:\n", e.Name)
		for _, c := range e.Commands(target, d.config.Terminal) {
			fmt.Fprintf(d.out, "  %s\n", c)
		}
	}
	fmt.Fprintf(d.out, "\n%s Copy any command above and paste in terminal\n", d.styles.Hint.Render("📋"))
}
