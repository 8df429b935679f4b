package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/juparave/lastoff/internal/classify"
	"github.com/juparave/lastoff/internal/domain"
)

// DefaultMaxDepth limits how many directory levels below the root are visited
const DefaultMaxDepth = 3

var (
	// ErrRootUnreadable is returned when the scan root cannot be walked
	ErrRootUnreadable = errors.New("scan root unreadable")
	// ErrNotText is recorded for files whose content is not valid UTF-8
	ErrNotText = errors.New("file is not valid UTF-8 text")
	// ErrInvalidPolicy is returned by ParsePolicy for unknown names
	ErrInvalidPolicy = errors.New("invalid file error policy")
)

// SkipSuffixes are file name endings that are never read
var SkipSuffixes = []string{".png", ".jpg", ".pdf", ".zip"}

// SkipSubstrings exclude any file whose name contains them. This is a
// name check, so "target-report.txt" is skipped too.
var SkipSubstrings = []string{"target", "node_modules"}

// FileErrorPolicy decides what happens when a file cannot be read as text
type FileErrorPolicy string

const (
	PolicySkip    FileErrorPolicy = "skip"
	PolicyCollect FileErrorPolicy = "collect"
	PolicyAbort   FileErrorPolicy = "abort"
)

// ParsePolicy converts a config or flag value into a FileErrorPolicy
func ParsePolicy(s string) (FileErrorPolicy, error) {
	switch p := FileErrorPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicySkip, PolicyCollect, PolicyAbort:
		return p, nil
	case "":
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Scanner walks a directory tree and classifies every line of every text file
type Scanner struct {
	fs       billy.Filesystem
	logger   *zap.SugaredLogger
	maxDepth int
	policy   FileErrorPolicy
}

// Option configures a Scanner
type Option func(*Scanner)

// WithMaxDepth sets the depth bound. Negative values are treated as zero.
func WithMaxDepth(depth int) Option {
	return func(s *Scanner) {
		if depth < 0 {
			depth = 0
		}
		s.maxDepth = depth
	}
}

// WithFileErrorPolicy sets the per-file read failure policy
func WithFileErrorPolicy(p FileErrorPolicy) Option {
	return func(s *Scanner) {
		s.policy = p
	}
}

// New creates a new Scanner over fs
func New(fs billy.Filesystem, logger *zap.SugaredLogger, opts ...Option) *Scanner {
	s := &Scanner{
		fs:       fs,
		logger:   logger,
		maxDepth: DefaultMaxDepth,
		policy:   PolicySkip,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks root and returns every classified line in discovery order.
// Only an unreadable root, a cancelled context or the abort policy fail the scan.
func (s *Scanner) Scan(ctx context.Context, root string) (*domain.ScanResult, error) {
	result := &domain.ScanResult{
		RunID:    uuid.NewString(),
		Root:     root,
		MaxDepth: s.maxDepth,
	}

	err := util.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if path == root {
				return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
			}
			s.logger.Debugw("Skipping unreadable entry", "path", path, "error", err)
			return nil
		}

		depth := depthOf(root, path)
		if info.IsDir() {
			if depth >= s.maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() || ShouldSkip(info.Name()) {
			return nil
		}

		findings, err := s.scanFile(path)
		if err != nil {
			switch s.policy {
			case PolicyAbort:
				return fmt.Errorf("reading %s: %w", path, err)
			case PolicyCollect:
				result.Skipped = append(result.Skipped, domain.SkippedFile{Path: path, Err: err})
			}
			s.logger.Debugw("Skipping file", "path", path, "error", err)
			return nil
		}

		result.Findings = append(result.Findings, findings...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range result.Findings {
		result.Findings[i].ID = i + 1
	}

	s.logger.Debugw("Scan complete",
		"run", result.RunID,
		"root", root,
		"findings", len(result.Findings),
		"skipped", len(result.Skipped))

	return result, nil
}

// scanFile returns findings for one file, without ids
func (s *Scanner) scanFile(path string) ([]domain.Finding, error) {
	data, err := util.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, ErrNotText
	}

	var findings []domain.Finding
	for i, line := range SplitLines(string(data)) {
		trimmed := strings.TrimSpace(line)
		tag, ok := classify.Classify(trimmed)
		if !ok {
			continue
		}
		findings = append(findings, domain.Finding{
			FilePath: path,
			Line:     i + 1,
			Tag:      tag,
			Text:     trimmed,
		})
	}
	return findings, nil
}

// ShouldSkip reports whether a file name is excluded from scanning
func ShouldSkip(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range SkipSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, sub := range SkipSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// SplitLines splits on "\n", dropping a trailing "\r" from each line.
// A final newline does not produce an extra empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// depthOf returns how many levels path sits below root
func depthOf(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}
