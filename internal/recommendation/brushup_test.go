// internal/recommendation/brushup_test.go
package recommendation

import (
	"testing"
	"time"

	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBrushUp_StagnantBeginner(t *testing.T) {
	e := newTestEngine()

	out := e.AnalyzeBrushUp([]models.Skill{skill("Fault Diagnosis", "beginner", 3)}, nil, fixedNow)

	require.Len(t, out, 1)
	s := out[0]
	assert.Equal(t, "brushup-stagnant-fault-diagnosis", s.ID)
	assert.Equal(t, models.SuggestionSkillStagnant, s.Type)
	assert.Equal(t, "Fault Diagnosis", s.Skill)
	assert.Equal(t, "Beginner", s.CurrentLevel)
	assert.Equal(t, 3.0, s.YearsAtLevel)
	assert.Contains(t, s.Suggestion, "Intermediate training")
	assert.Equal(t, "Fault Diagnosis intermediate", s.SearchQuery)
}

func TestAnalyzeBrushUp_SkillThresholds(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name     string
		skill    models.Skill
		wantType models.SuggestionKind
		wantNone bool
	}{
		{"beginner at threshold", skill("Conduit Bending", "Beginner", 2), models.SuggestionSkillStagnant, false},
		{"beginner under threshold", skill("Conduit Bending", "beginner", 1.9), "", true},
		{"novice counts as beginner", skill("Conduit Bending", " Novice ", 4), models.SuggestionSkillStagnant, false},
		{"intermediate ready to advance", skill("Three Phase", "intermediate", 5), models.SuggestionReadyToAdvance, false},
		{"intermediate not yet", skill("Three Phase", "intermediate", 4.9), "", true},
		{"advanced never flagged", skill("PLC", "advanced", 20), "", true},
		{"unknown level never flagged", skill("PLC", "guru", 20), "", true},
		{"negative years", skill("PLC", "beginner", -3), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.AnalyzeBrushUp([]models.Skill{tt.skill}, nil, fixedNow)
			if tt.wantNone {
				assert.Empty(t, out)
				return
			}
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantType, out[0].Type)
		})
	}
}

func TestAnalyzeBrushUp_AgingRegulationsQualification(t *testing.T) {
	e := newTestEngine()

	out := e.AnalyzeBrushUp(nil, []models.Qualification{qual("18th Edition Wiring Regs", yearsAgo(5))}, fixedNow)

	require.Len(t, out, 1)
	s := out[0]
	assert.Equal(t, models.SuggestionAgingQualification, s.Type)
	assert.Equal(t, "brushup-amendment-18th-edition-wiring-regs", s.ID)
	assert.Equal(t, "Achieved 2021", s.CurrentLevel)
	assert.Equal(t, 5.0, s.YearsAtLevel)
	assert.Contains(t, s.Suggestion, "amendment")
	assert.Equal(t, "18th Edition amendment update", s.SearchQuery)
}

func TestAnalyzeBrushUp_QualificationAges(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name  string
		qual  models.Qualification
		wantN int
	}{
		{"recent regulations", qual("BS 7671:2018", yearsAgo(2)), 0},
		{"old testing", qual("City & Guilds 2391-52 Inspection and Testing", yearsAgo(6)), 1},
		{"recent testing", qual("2391-52", yearsAgo(4)), 0},
		{"diploma never expires", qual("Level 3 NVQ Diploma incl. inspection and testing", yearsAgo(12)), 0},
		{"missing date", qual("18th Edition", nil), 0},
		{"blank date", qual("18th Edition", strPtr("  ")), 0},
		{"malformed date", qual("18th Edition", strPtr("not-a-date")), 0},
		{"future date", qual("18th Edition", strPtr("2031-01-01")), 0},
		{"rfc3339 date", qual("18th Edition", strPtr("2019-03-01T00:00:00Z")), 1},
		{"month precision", qual("18th Edition", strPtr("2018-07")), 1},
		{"unrelated qualification", qual("First Aid at Work", yearsAgo(10)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.AnalyzeBrushUp(nil, []models.Qualification{tt.qual}, fixedNow)
			assert.Len(t, out, tt.wantN)
		})
	}
}

func TestAnalyzeBrushUp_SkillsBeforeQualificationsAndCapped(t *testing.T) {
	e := newTestEngine()
	skills := []models.Skill{
		skill("Cable Sizing", "beginner", 3),
		skill("Fault Diagnosis", "beginner", 3),
		skill("Containment", "intermediate", 6),
		skill("Earthing", "beginner", 4),
	}
	quals := []models.Qualification{qual("18th Edition", yearsAgo(6))}

	out := e.AnalyzeBrushUp(skills, quals, fixedNow)

	require.Len(t, out, DefaultLimits().BrushUp)
	assert.Equal(t, "Cable Sizing", out[0].Skill)
	assert.Equal(t, "Fault Diagnosis", out[1].Skill)
	assert.Equal(t, models.SuggestionReadyToAdvance, out[2].Type)

	mixed := e.AnalyzeBrushUp(skills[:1], quals, fixedNow)
	require.Len(t, mixed, 2)
	assert.Equal(t, models.SuggestionSkillStagnant, mixed[0].Type)
	assert.Equal(t, models.SuggestionAgingQualification, mixed[1].Type)
}

func TestAnalyzeBrushUp_DuplicateNamesGetDistinctIDs(t *testing.T) {
	e := newTestEngine()

	out := e.AnalyzeBrushUp([]models.Skill{
		skill("Fault Diagnosis", "beginner", 3),
		skill("fault diagnosis", "beginner", 5),
	}, nil, fixedNow)

	require.Len(t, out, 2)
	assert.Equal(t, "brushup-stagnant-fault-diagnosis", out[0].ID)
	assert.Equal(t, "brushup-stagnant-fault-diagnosis-2", out[1].ID)
}

func TestYearsSince(t *testing.T) {
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Zero(t, YearsSince(nil, now))
	assert.Zero(t, YearsSince(strPtr("garbage"), now))
	assert.Zero(t, YearsSince(strPtr("2027-01-01"), now))
	assert.InDelta(t, 6.0, YearsSince(strPtr("2020-01-01"), now), 0.01)
	assert.InDelta(t, 0.5, YearsSince(strPtr("2025-07-02"), now), 0.01)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "city-guilds-2391-52", slugify("City & Guilds 2391-52"))
	assert.Equal(t, "bs-7671", slugify("  BS 7671!  "))
	assert.Equal(t, "unnamed", slugify("   "))
}

func TestAnalyzeBrushUp_RegulationsKeywordsTakePrecedenceOverTesting(t *testing.T) {
	e := newTestEngine()
	name := "2391-52 Inspection and Testing to BS 7671"

	tests := []struct {
		name      string
		yearsAgo  int
		wantQuery string
	}{
		{"within both windows", 2, ""},
		{"past amendment window only", 4, "18th Edition amendment update"},
		{"past both windows", 6, "18th Edition amendment update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := e.AnalyzeBrushUp(nil, []models.Qualification{qual(name, yearsAgo(tt.yearsAgo))}, fixedNow)
			if tt.wantQuery == "" {
				assert.Empty(t, out)
				return
			}
			require.Len(t, out, 1)
			assert.Equal(t, models.SuggestionAgingQualification, out[0].Type)
			assert.Equal(t, tt.wantQuery, out[0].SearchQuery)
			assert.Contains(t, out[0].Suggestion, "amendment")
		})
	}
}
