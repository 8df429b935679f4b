package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSeverity(t *testing.T) {
	tests := []struct {
		tag      Tag
		severity Severity
	}{
		{TagSSN, SeverityCritical},
		{TagPatientID, SeverityCritical},
		{TagPHI, SeverityWarning},
		{TagDOB, SeverityWarning},
		{TagFixme, SeverityNone},
		{TagTodo, SeverityNone},
		{TagXXX, SeverityNone},
		{TagHack, SeverityNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			assert.Equal(t, tt.severity, tt.tag.Severity())
		})
	}
}

func TestScanResultCounts(t *testing.T) {
	r := &ScanResult{Findings: []Finding{
		{ID: 1, Tag: TagSSN},
		{ID: 2, Tag: TagPatientID},
		{ID: 3, Tag: TagPHI},
		{ID: 4, Tag: TagTodo},
		{ID: 5, Tag: TagTodo},
		{ID: 6, Tag: TagFixme},
		{ID: 7, Tag: TagHack},
	}}

	assert.True(t, r.HasFindings())
	assert.Equal(t, 2, r.CriticalCount())
	assert.Equal(t, 1, r.WarningCount())
	assert.Equal(t, 2, r.TagCount(TagTodo))
	assert.Equal(t, 1, r.TagCount(TagFixme))
	assert.Equal(t, 0, r.TagCount(TagXXX))
	assert.Equal(t, 7, r.TotalFindings())
}

func TestEmptyScanResult(t *testing.T) {
	r := &ScanResult{}
	assert.False(t, r.HasFindings())
	assert.Zero(t, r.CriticalCount())
	assert.Zero(t, r.TotalFindings())
}

func TestFindingLocation(t *testing.T) {
	f := Finding{FilePath: "/src/notes.txt", Line: 12}
	assert.Equal(t, "/src/notes.txt:12", f.Location())
}
