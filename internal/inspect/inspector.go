// Package inspect shows a finding in its surrounding lines and hands it to
// the editor menu.
package inspect

import (
	"context"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/domain"
	"github.com/juparave/lastoff/internal/editor"
	"github.com/juparave/lastoff/internal/report"
	"github.com/juparave/lastoff/internal/scanner"
)

const (
	// LinesBefore is the number of context lines shown above a finding
	LinesBefore = 3
	// LinesAfter is the number of context lines shown below a finding
	LinesAfter = 2
)

// Dispatcher opens a target in an editor
type Dispatcher interface {
	Dispatch(ctx context.Context, target editor.Target) (editor.Outcome, error)
}

// Inspector shows context for one finding, then runs the editor menu
type Inspector struct {
	fs         billy.Filesystem
	baseDir    string
	formatter  *report.Formatter
	dispatcher Dispatcher
	logger     *zap.SugaredLogger
}

// New creates a new Inspector. Relative finding paths are resolved
// against baseDir.
func New(fs billy.Filesystem, baseDir string, formatter *report.Formatter, dispatcher Dispatcher, logger *zap.SugaredLogger) *Inspector {
	return &Inspector{
		fs:         fs,
		baseDir:    baseDir,
		formatter:  formatter,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Inspect re-reads the finding's file, prints the lines around it and runs
// the editor menu. A file that can no longer be read only loses the context
// block.
func (i *Inspector) Inspect(ctx context.Context, item domain.Finding) (editor.Outcome, error) {
	i.formatter.Selected(item)

	path := item.FilePath
	if !filepath.IsAbs(path) && i.baseDir != "" {
		path = filepath.Join(i.baseDir, path)
	}

	if lines, err := i.readLines(path); err != nil {
		i.logger.Debugw("Context unavailable", "path", path, "error", err)
	} else {
		start, end := ContextWindow(item.Line, len(lines))
		i.formatter.Context(lines, start, end, item.Line)
	}
	i.formatter.Rule()

	return i.dispatcher.Dispatch(ctx, editor.Target{Path: path, Line: item.Line})
}

func (i *Inspector) readLines(path string) ([]string, error) {
	data, err := util.ReadFile(i.fs, path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, scanner.ErrNotText
	}
	return scanner.SplitLines(string(data)), nil
}

// ContextWindow returns the 1-based inclusive range of lines shown around
// line in a file of fileLen lines. end < start means nothing to show.
func ContextWindow(line, fileLen int) (start, end int) {
	return max(1, line-LinesBefore), min(fileLen, line+LinesAfter)
}
