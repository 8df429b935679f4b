package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/juparave/lastoff/internal/domain"
)

const (
	// TableContentWidth is the number of runes of line text shown in the table
	TableContentWidth = 50
	// ListContentWidth is the number of runes shown by the "all locations" listing
	ListContentWidth = 40
)

// Formatter renders scan results and session text to a writer
type Formatter struct {
	out    io.Writer
	styles *Styles
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out, styles: NewStyles(out)}
}

// Styles returns the style set bound to the formatter's writer
func (f *Formatter) Styles() *Styles {
	return f.styles
}

// Banner prints the program header and the scanned root
func (f *Formatter) Banner(root string) {
	rule := f.styles.Rule.Render(strings.Repeat("=", 60))
	fmt.Fprintln(f.out, rule)
	fmt.Fprintln(f.out, f.styles.Title.Render("   LAST-OFF: Medical Code Navigator   "))
	fmt.Fprintln(f.out, rule)
	fmt.Fprintf(f.out, "📁 Scanning: %s\n", root)
}

// Write prints the findings table and summary, or the all-clear message
func (f *Formatter) Write(result *domain.ScanResult) {
	if !result.HasFindings() {
		fmt.Fprintf(f.out, "\n%s\n", f.styles.Success.Render("✅ No TODOs, FIXMEs, or healthcare risks found!"))
		return
	}
	fmt.Fprintf(f.out, "\n%s\n\n", f.Table(result.Findings))
	f.Summary(result)
}

// Table renders findings as a bordered table
func (f *Formatter) Table(findings []domain.Finding) string {
	headerColors := []lipgloss.Color{ColorCyan, ColorYellow, ColorGreen, ColorBlue, ColorWhite}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.styles.Rule).
		Headers("#", "Type", "File", "Line", "Content").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return f.styles.Header.Foreground(headerColors[col])
			}
			if col == 1 && row >= 0 && row < len(findings) {
				return f.TagStyle(findings[row].Tag).Padding(0, 1)
			}
			return f.styles.Cell
		})

	for _, item := range findings {
		t.Row(
			strconv.Itoa(item.ID),
			f.TagLabel(item.Tag),
			item.FilePath,
			strconv.Itoa(item.Line),
			Truncate(item.Text, TableContentWidth),
		)
	}

	return t.String()
}

// Summary prints the per-category counters and the total
func (f *Formatter) Summary(result *domain.ScanResult) {
	fmt.Fprintln(f.out, f.styles.Bold.Render("📊 Summary:"))
	if n := result.CriticalCount(); n > 0 {
		fmt.Fprintf(f.out, "  • %s critical healthcare risks\n", f.styles.Error.Render(strconv.Itoa(n)))
	}
	if n := result.WarningCount(); n > 0 {
		fmt.Fprintf(f.out, "  • %s healthcare warnings\n", f.styles.Todo.Render(strconv.Itoa(n)))
	}
	if n := result.TagCount(domain.TagFixme); n > 0 {
		fmt.Fprintf(f.out, "  • %s FIXMEs\n", f.styles.Error.Render(strconv.Itoa(n)))
	}
	if n := result.TagCount(domain.TagTodo); n > 0 {
		fmt.Fprintf(f.out, "  • %s TODOs\n", f.styles.Number.Render(strconv.Itoa(n)))
	}
	fmt.Fprintf(f.out, "  • %d total items to review\n", result.TotalFindings())
}

// Skipped lists files the scan could not read. Nothing is printed when the
// list is empty.
func (f *Formatter) Skipped(result *domain.ScanResult) {
	if len(result.Skipped) == 0 {
		return
	}
	fmt.Fprintf(f.out, "\n%s\n", f.styles.Warning.Render(fmt.Sprintf("⚠️ %d files could not be read:", len(result.Skipped))))
	for _, s := range result.Skipped {
		fmt.Fprintf(f.out, "  • %s: %v\n", f.styles.File.Render(s.Path), s.Err)
	}
}

// AllLocations prints one line per finding: id, location and shortened text
func (f *Formatter) AllLocations(findings []domain.Finding) {
	fmt.Fprintf(f.out, "\n%s\n", f.styles.Title.Render("📍 ALL ITEMS LOCATIONS:"))
	for _, item := range findings {
		fmt.Fprintf(f.out, "  %s %s:%s - %s\n",
			f.styles.Number.Render(strconv.Itoa(item.ID)),
			f.styles.File.Render(item.FilePath),
			f.styles.Number.Render(strconv.Itoa(item.Line)),
			Truncate(item.Text, ListContentWidth))
	}
}

// Selected prints the header shown when a finding is picked
func (f *Formatter) Selected(item domain.Finding) {
	fmt.Fprintf(f.out, "\n%s\n", f.styles.Hint.Render(strings.Repeat("=", 60)))
	fmt.Fprintf(f.out, "%s %s\n", f.styles.Bold.Render("SELECTED:"), item.Text)
	fmt.Fprintf(f.out, "%s %s:%s\n",
		f.styles.Bold.Render("LOCATION:"),
		f.styles.File.Render(item.FilePath),
		f.styles.Number.Render(strconv.Itoa(item.Line)))
}

// Context prints lines[start-1:end] with the target line marked. start and
// end are 1-based and inclusive.
func (f *Formatter) Context(lines []string, start, end, target int) {
	fmt.Fprintf(f.out, "\n%s\n", f.styles.Bold.Render("📄 CONTEXT:"))
	for i := start; i <= end && i <= len(lines); i++ {
		prefix := "    "
		if i == target {
			prefix = ">>> "
		}
		fmt.Fprintf(f.out, "%s%4d: %s\n", prefix, i, lines[i-1])
	}
}

// Rule prints a separator line
func (f *Formatter) Rule() {
	fmt.Fprintln(f.out, f.styles.Hint.Render(strings.Repeat("=", 60)))
}

// TagLabel returns the display label for a tag
func (f *Formatter) TagLabel(tag domain.Tag) string {
	switch tag.Severity() {
	case domain.SeverityCritical:
		return "🚨 " + string(tag)
	case domain.SeverityWarning:
		return "⚠️ " + string(tag)
	default:
		return string(tag)
	}
}

// TagStyle returns the style used for a tag
func (f *Formatter) TagStyle(tag domain.Tag) lipgloss.Style {
	switch {
	case tag.Severity() == domain.SeverityCritical:
		return f.styles.Critical
	case tag.Severity() == domain.SeverityWarning:
		return f.styles.Warning
	case tag == domain.TagFixme:
		return f.styles.Fixme
	case tag == domain.TagTodo:
		return f.styles.Todo
	default:
		return f.styles.Marker
	}
}

// Truncate returns at most n runes of s
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
