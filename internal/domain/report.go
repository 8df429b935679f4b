package domain

// SkippedFile records a file the scanner could not read as text
type SkippedFile struct {
	Path string
	Err  error
}

// ScanResult is the ordered output of one scan. It is not modified after
// the scanner returns it.
type ScanResult struct {
	RunID    string
	Root     string
	MaxDepth int
	Findings []Finding
	Skipped  []SkippedFile
}

// CriticalCount returns the number of critical compliance findings
func (r *ScanResult) CriticalCount() int {
	count := 0
	for i := range r.Findings {
		if r.Findings[i].IsCritical() {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning-level compliance findings
func (r *ScanResult) WarningCount() int {
	count := 0
	for i := range r.Findings {
		if r.Findings[i].IsWarning() {
			count++
		}
	}
	return count
}

// TagCount returns the number of findings carrying the given tag
func (r *ScanResult) TagCount(tag Tag) int {
	count := 0
	for _, f := range r.Findings {
		if f.Tag == tag {
			count++
		}
	}
	return count
}

// TotalFindings returns the total number of findings
func (r *ScanResult) TotalFindings() int {
	return len(r.Findings)
}

// HasFindings returns true if there are any findings
func (r *ScanResult) HasFindings() bool {
	return len(r.Findings) > 0
}
