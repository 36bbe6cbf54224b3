// internal/recommendation/testhelpers_test.go
package recommendation

import (
	"time"

	"career-workers/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

var fixedNow = time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(DefaultRules(), WithClock(func() time.Time { return fixedNow }))
}

func strPtr(s string) *string { return &s }

func yearsAgo(years int) *string {
	return strPtr(fixedNow.AddDate(-years, 0, 0).Format("2006-01-02"))
}

func qual(name string, date *string) models.Qualification {
	return models.Qualification{QualificationName: name, DateAchieved: date}
}

func skill(name, level string, years float64) models.Skill {
	return models.Skill{SkillName: name, SkillLevel: level, YearsExperience: years}
}

func job(title, description string) models.WorkHistoryEntry {
	return models.WorkHistoryEntry{JobTitle: strPtr(title), Description: strPtr(description)}
}

// fullyCoveredProfile holds every credential and specialism the default rules know
// about, with no dates, so nothing should be suggested.
func fullyCoveredProfile() *models.WorkerProfile {
	return &models.WorkerProfile{
		CertificationTier: "gold",
		Qualifications: []models.Qualification{
			qual("18th Edition BS 7671", nil),
			qual("ECS Health and Safety", nil),
			qual("City & Guilds 2391-52 Inspection and Testing", nil),
			qual("EV Charging Installation 2919", nil),
			qual("Solar PV 2399", nil),
		},
		Skills: []models.Skill{
			skill("Fault Finding", "advanced", 10),
			skill("Heat Pump Wiring", "advanced", 3),
			skill("Battery Energy Storage", "advanced", 3),
			skill("Smart Home Automation", "advanced", 3),
			skill("Data Cabling", "advanced", 3),
		},
	}
}

func recommendationIDs(recs []models.Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	return ids
}

func gapIDs(gaps []models.SkillGap) []string {
	ids := make([]string, len(gaps))
	for i, g := range gaps {
		ids[i] = g.ID
	}
	return ids
}
