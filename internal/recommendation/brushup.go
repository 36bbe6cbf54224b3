// internal/recommendation/brushup.go
package recommendation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"career-workers/internal/models"
)

const daysPerYear = 365.25

type proficiency int

const (
	levelUnrecognised proficiency = iota
	levelBeginner
	levelIntermediate
	levelAdvanced
)

func parseProficiency(raw string) proficiency {
	switch normalizeText(raw) {
	case "beginner", "novice", "basic", "entry", "foundation":
		return levelBeginner
	case "intermediate", "competent", "proficient":
		return levelIntermediate
	case "advanced", "expert":
		return levelAdvanced
	default:
		return levelUnrecognised
	}
}

func (l proficiency) label() string {
	switch l {
	case levelBeginner:
		return "Beginner"
	case levelIntermediate:
		return "Intermediate"
	case levelAdvanced:
		return "Advanced"
	default:
		return "Unrated"
	}
}

// Qualification categories with no revision cycle are never flagged as ageing.
func nonExpiringQualificationKeywords() []string {
	return []string{"diploma", "nvq", "apprenticeship", "degree", "hnc", "hnd", "am2"}
}

// AnalyzeBrushUp flags stagnant skills and ageing qualifications. Skill checks run
// before qualification checks, each in source order; the combined list is cut to
// Limits.BrushUp with no further ranking.
func (e *Engine) AnalyzeBrushUp(skills []models.Skill, quals []models.Qualification, now time.Time) []models.BrushUpSuggestion {
	th := e.rules.thresholds
	ids := newIDAllocator()
	out := make([]models.BrushUpSuggestion, 0, e.rules.limits.BrushUp)

	for _, s := range skills {
		name := strings.TrimSpace(s.SkillName)
		years := math.Max(s.YearsExperience, 0)
		level := parseProficiency(s.SkillLevel)

		switch {
		case level == levelBeginner && years >= th.StagnantBeginnerYears:
			out = append(out, models.BrushUpSuggestion{
				ID:           ids.next("brushup-stagnant", name),
				Skill:        name,
				CurrentLevel: level.label(),
				YearsAtLevel: roundYears(years),
				Suggestion: fmt.Sprintf("You have rated %s as beginner for %s. Intermediate training would help you progress.",
					name, formatYears(years)),
				Type:        models.SuggestionSkillStagnant,
				SearchQuery: name + " intermediate",
			})
		case level == levelIntermediate && years >= th.ReadyToAdvanceYears:
			out = append(out, models.BrushUpSuggestion{
				ID:           ids.next("brushup-advance", name),
				Skill:        name,
				CurrentLevel: level.label(),
				YearsAtLevel: roundYears(years),
				Suggestion: fmt.Sprintf("With %s at intermediate level in %s you may be ready for advanced training.",
					formatYears(years), name),
				Type:        models.SuggestionReadyToAdvance,
				SearchQuery: name + " advanced",
			})
		}
	}

	regulations := regulationsKeywords()
	testing := testingKeywords()
	nonExpiring := nonExpiringQualificationKeywords()

	for _, q := range quals {
		name := strings.TrimSpace(q.QualificationName)
		lower := normalizeText(name)
		age := YearsSince(q.DateAchieved, now)

		// A name carrying both regulations and testing keywords is aged as regulations.
		switch {
		case containsAny(lower, regulations):
			if age > th.RegulationsAmendmentYears {
				out = append(out, models.BrushUpSuggestion{
					ID:           ids.next("brushup-amendment", name),
					Skill:        name,
					CurrentLevel: achievedLabel(q.DateAchieved, now),
					YearsAtLevel: roundYears(age),
					Suggestion: fmt.Sprintf("Your %s is %s old. BS 7671 has been amended since; check your knowledge covers the latest amendment.",
						name, formatYears(age)),
					Type:        models.SuggestionAgingQualification,
					SearchQuery: "18th Edition amendment update",
				})
			}
		case containsAny(lower, testing) && !containsAny(lower, nonExpiring):
			if age > th.TestingRefresherYears {
				out = append(out, models.BrushUpSuggestion{
					ID:           ids.next("brushup-refresher", name),
					Skill:        name,
					CurrentLevel: achievedLabel(q.DateAchieved, now),
					YearsAtLevel: roundYears(age),
					Suggestion: fmt.Sprintf("Your %s is %s old. A refresher course keeps your inspection and testing in line with current guidance.",
						name, formatYears(age)),
					Type:        models.SuggestionAgingQualification,
					SearchQuery: "inspection and testing refresher",
				})
			}
		}
	}

	if limit := e.rules.limits.BrushUp; limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// YearsSince returns the fractional years between an achievement date and now.
// Missing, unparseable and future dates all count as zero.
func YearsSince(date *string, now time.Time) float64 {
	t, ok := parseAchievementDate(date)
	if !ok {
		return 0
	}
	elapsed := now.Sub(t)
	if elapsed <= 0 {
		return 0
	}
	return elapsed.Hours() / 24 / daysPerYear
}

var achievementDateLayouts = [...]string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

func parseAchievementDate(date *string) (time.Time, bool) {
	if date == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*date)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range achievementDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func achievedLabel(date *string, now time.Time) string {
	if t, ok := parseAchievementDate(date); ok && !t.After(now) {
		return fmt.Sprintf("Achieved %d", t.Year())
	}
	return "Achieved"
}

func roundYears(y float64) float64 {
	return math.Round(y*10) / 10
}

func formatYears(y float64) string {
	whole := int(math.Floor(y))
	if whole == 1 {
		return "1 year"
	}
	return fmt.Sprintf("%d years", whole)
}

// idAllocator derives stable identifiers from a prefix and a name, suffixing
// repeats so identifiers stay unique within one result.
type idAllocator struct {
	seen map[string]int
}

func newIDAllocator() *idAllocator {
	return &idAllocator{seen: make(map[string]int)}
}

func (a *idAllocator) next(prefix, name string) string {
	id := prefix + "-" + slugify(name)
	a.seen[id]++
	if n := a.seen[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "unnamed"
	}
	return slug
}
