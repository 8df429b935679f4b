package domain

import "fmt"

// Severity represents the importance level of a tag
type Severity string

const (
	SeverityCritical Severity = "Critical"
	SeverityWarning  Severity = "Warning"
	SeverityNone     Severity = ""
)

// Tag is the category assigned to a classified line
type Tag string

// Compliance-risk tags
const (
	TagSSN       Tag = "SSN"
	TagPatientID Tag = "PATIENT_ID"
	TagPHI       Tag = "PHI"
	TagDOB       Tag = "DOB"
)

// Review-marker tags
const (
	TagFixme Tag = "FIXME"
	TagTodo  Tag = "TODO"
	TagXXX   Tag = "XXX"
	TagHack  Tag = "HACK"
)

// Severity returns the severity attached to the tag. Marker tags have none.
func (t Tag) Severity() Severity {
	switch t {
	case TagSSN, TagPatientID:
		return SeverityCritical
	case TagPHI, TagDOB:
		return SeverityWarning
	default:
		return SeverityNone
	}
}

// Finding is one classified line occurrence
type Finding struct {
	ID       int    `json:"id"`
	FilePath string `json:"file"`
	Line     int    `json:"line"`
	Tag      Tag    `json:"tag"`
	Text     string `json:"text"`
}

// Location returns "file:line"
func (f *Finding) Location() string {
	return fmt.Sprintf("%s:%d", f.FilePath, f.Line)
}

// IsCritical returns true if the finding carries a critical compliance tag
func (f *Finding) IsCritical() bool {
	return f.Tag.Severity() == SeverityCritical
}

// IsWarning returns true if the finding carries a warning-level compliance tag
func (f *Finding) IsWarning() bool {
	return f.Tag.Severity() == SeverityWarning
}
