// internal/recommendation/trending_test.go
package recommendation

import (
	"testing"

	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareTrends_FlagsHeldSpecialisms(t *testing.T) {
	e := newTestEngine()
	profile := Normalize([]models.Qualification{qual("EV Charging Installation", nil)}, nil, nil)

	trends := e.CompareTrends(profile)

	require.Len(t, trends, 6)
	for _, tr := range trends {
		if tr.ID == "trend-ev-charging" {
			assert.True(t, tr.AlreadyHas)
			continue
		}
		assert.False(t, tr.AlreadyHas, tr.ID)
	}
}

func TestCompareTrends_NeverFiltered(t *testing.T) {
	e := newTestEngine()
	p := fullyCoveredProfile()

	trends := e.CompareTrends(Normalize(p.Qualifications, p.Skills, p.WorkHistory))

	require.Len(t, trends, 6)
	for _, tr := range trends {
		assert.True(t, tr.AlreadyHas, tr.ID)
	}
}

func TestCompareTrends_FixedOrderAndDemand(t *testing.T) {
	e := newTestEngine()

	trends := e.CompareTrends(Normalize(nil, nil, nil))

	ids := make([]string, len(trends))
	for i, tr := range trends {
		ids[i] = tr.ID
		assert.NotEmpty(t, tr.Name)
		assert.NotEmpty(t, tr.Description)
	}
	assert.Equal(t, []string{
		"trend-ev-charging",
		"trend-solar-pv",
		"trend-heat-pumps",
		"trend-energy-storage",
		"trend-smart-buildings",
		"trend-data-centres",
	}, ids)
	assert.Equal(t, models.DemandVeryHigh, trends[0].DemandLevel)
	assert.Equal(t, models.DemandGrowing, trends[5].DemandLevel)
}

func TestCompareTrends_SkillsCountAsHeld(t *testing.T) {
	e := newTestEngine()
	profile := Normalize(nil, []models.Skill{skill("Air source heat pump installs", "intermediate", 2)}, nil)

	trends := e.CompareTrends(profile)

	assert.True(t, trends[2].AlreadyHas)
	assert.False(t, trends[0].AlreadyHas)
}
