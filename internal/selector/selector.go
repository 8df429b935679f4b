// Package selector runs the top-level "Select item" prompt over a scan result.
package selector

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/domain"
	"github.com/juparave/lastoff/internal/editor"
	"github.com/juparave/lastoff/internal/prompt"
	"github.com/juparave/lastoff/internal/report"
)

// Action is what the selector did with the user's answer
type Action string

const (
	ActionExit       Action = "exit"
	ActionListAll    Action = "list_all"
	ActionInspect    Action = "inspect"
	ActionOutOfRange Action = "out_of_range"
	ActionUnparsed   Action = "unparsed"
)

// Inspector handles a selected finding
type Inspector interface {
	Inspect(ctx context.Context, item domain.Finding) (editor.Outcome, error)
}

// Selector asks for one item and acts on it. Every answer ends the session.
type Selector struct {
	prompter  *prompt.Prompter
	formatter *report.Formatter
	inspector Inspector
	logger    *zap.SugaredLogger
}

// New creates a new Selector
func New(p *prompt.Prompter, formatter *report.Formatter, inspector Inspector, logger *zap.SugaredLogger) *Selector {
	return &Selector{
		prompter:  p,
		formatter: formatter,
		inspector: inspector,
		logger:    logger,
	}
}

// Run shows the selection help and handles a single answer
func (s *Selector) Run(ctx context.Context, findings []domain.Finding) (Action, error) {
	styles := s.formatter.Styles()
	out := s.prompter.Out()

	fmt.Fprintf(out, "\n%s\n", styles.Title.Render("🎯 JUMP TO CODE:"))
	fmt.Fprintf(out, "  • Enter number (1-%d) to select item\n", len(findings))
	fmt.Fprintln(out, "  • Press Enter to exit")
	fmt.Fprintln(out, "  • Type 'a' to see ALL locations")

	input, err := s.prompter.Ask(fmt.Sprintf("\n%s ", styles.Prompt.Render("Select item:")))
	if err != nil {
		return "", err
	}

	if input == "" {
		fmt.Fprintln(out, styles.Hint.Render("Goodbye! 👋"))
		return ActionExit, nil
	}

	if strings.EqualFold(input, "a") {
		s.formatter.AllLocations(findings)
		return ActionListAll, nil
	}

	n, err := prompt.ParseChoice(input)
	if err != nil {
		// unparsable answers end the session without a message
		s.logger.Debugw("Ignoring selection", "input", input)
		return ActionUnparsed, nil
	}

	if n < 1 || n > len(findings) {
		fmt.Fprintf(out, "%s Please enter 1-%d\n", styles.Error.Render("❌"), len(findings))
		return ActionOutOfRange, nil
	}

	outcome, err := s.inspector.Inspect(ctx, findings[n-1])
	if err != nil {
		return "", fmt.Errorf("inspecting item %d: %w", n, err)
	}
	s.logger.Debugw("Dispatch finished", "item", n, "outcome", outcome)
	return ActionInspect, nil
}
