// internal/recommendation/normalize.go
package recommendation

import (
	"strings"

	"career-workers/internal/models"
)

// combinedSeparator keeps the joined blob from producing matches that straddle
// two different qualification or skill names.
const combinedSeparator = " | "

// NormalizedProfile is the lowercase, searchable shape of a worker profile.
type NormalizedProfile struct {
	Qualifications []string
	Skills         []string
	WorkHistory    []string
	Combined       string
}

// Normalize lowercases qualification names, skill names and work-history text.
// Inputs are neither filtered nor deduplicated; nil collections come back empty.
func Normalize(quals []models.Qualification, skills []models.Skill, history []models.WorkHistoryEntry) NormalizedProfile {
	p := NormalizedProfile{
		Qualifications: make([]string, 0, len(quals)),
		Skills:         make([]string, 0, len(skills)),
		WorkHistory:    make([]string, 0, len(history)),
	}

	for _, q := range quals {
		p.Qualifications = append(p.Qualifications, normalizeText(q.QualificationName))
	}
	for _, s := range skills {
		p.Skills = append(p.Skills, normalizeText(s.SkillName))
	}
	for _, w := range history {
		p.WorkHistory = append(p.WorkHistory, normalizeText(deref(w.JobTitle)+" "+deref(w.Description)))
	}

	all := make([]string, 0, len(p.Qualifications)+len(p.Skills))
	all = append(all, p.Qualifications...)
	all = append(all, p.Skills...)
	p.Combined = strings.Join(all, combinedSeparator)

	return p
}

// HoldsAny reports whether any held qualification or skill name contains one of keywords.
func (p NormalizedProfile) HoldsAny(keywords []string) bool {
	return anyContains(p.Qualifications, keywords) || anyContains(p.Skills, keywords)
}

func (p NormalizedProfile) HasQualification(keywords []string) bool {
	return anyContains(p.Qualifications, keywords)
}

func (p NormalizedProfile) HasSkill(keywords []string) bool {
	return anyContains(p.Skills, keywords)
}

// WorkedIn reports whether any work-history entry mentions one of keywords.
// Entries with no title or description never match.
func (p NormalizedProfile) WorkedIn(keywords []string) bool {
	return anyContains(p.WorkHistory, keywords)
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func anyContains(texts []string, keywords []string) bool {
	for _, text := range texts {
		if containsAny(text, keywords) {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
