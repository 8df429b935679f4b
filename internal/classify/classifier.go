// Package classify maps a single line of text to at most one tag.
package classify

import (
	"strings"

	"github.com/juparave/lastoff/internal/domain"
)

type rule struct {
	tag      domain.Tag
	keywords []string
}

// riskRules are checked first. Order is priority.
var riskRules = []rule{
	{domain.TagSSN, []string{"ssn", "social security"}},
	{domain.TagPatientID, []string{"patient_id", "patient id", "mrn"}},
	{domain.TagPHI, []string{"phi", "protected health"}},
	{domain.TagDOB, []string{"dob", "date of birth"}},
}

// markerRules apply only when no risk rule matched.
var markerRules = []rule{
	{domain.TagFixme, []string{"fixme"}},
	{domain.TagTodo, []string{"todo"}},
	{domain.TagXXX, []string{"xxx"}},
	{domain.TagHack, []string{"hack"}},
}

// Classify returns the tag for a line and whether any rule matched.
// Matching is a case-insensitive substring test.
func Classify(line string) (domain.Tag, bool) {
	lower := strings.ToLower(line)
	if tag, ok := match(lower, riskRules); ok {
		return tag, true
	}
	return match(lower, markerRules)
}

func match(lower string, rules []rule) (domain.Tag, bool) {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.tag, true
			}
		}
	}
	return "", false
}
