// internal/recommendation/routes_test.go
package recommendation

import (
	"testing"

	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestResolveCourseRoute(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		query   string
		want    string
		keyword string
	}{
		{"2391 inspection and testing", "/study-centre/upskilling/inspection-testing-course", "2391"},
		{"18th Edition BS 7671", "/study-centre/upskilling/bs7671-course", "18th edition"},
		{"EV charging 2919", "/study-centre/upskilling/ev-charging-course", "2919"},
		{"solar PV 2399", "/study-centre/upskilling/renewable-energy-course", "2399"},
		{"AM2 assessment", "/study-centre/apprentice/am2", "am2"},
		{"Fault Diagnosis intermediate", "/study-centre/upskilling/fault-finding-course", "fault"},
		{"inspection and testing refresher", "/study-centre/upskilling/inspection-testing-course", "inspection"},
		{"SMSTS site management", "/study-centre/general-upskilling/leadership", "smsts"},
		{"  FIRE ALARM systems BS 5839 ", "/study-centre/upskilling/fire-alarm-course", "fire alarm"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			route := e.ResolveCourseRoute(tt.query)
			assert.Equal(t, tt.want, route.Destination)
			assert.Equal(t, tt.keyword, route.Keyword)
			assert.True(t, route.Matched)
			assert.True(t, route.Internal)
		})
	}
}

func TestResolveCourseRoute_Fallback(t *testing.T) {
	e := newTestEngine()

	for _, q := range []string{"", "   ", "basket weaving", "zzz"} {
		route := e.ResolveCourseRoute(q)
		assert.Equal(t, FallbackCourseRoute, route.Destination, q)
		assert.False(t, route.Matched)
		assert.Empty(t, route.Keyword)
		assert.True(t, route.Internal)
	}
}

func TestResolveCourseRoute_FirstKeywordWins(t *testing.T) {
	e := newTestEngine()

	// "testing" also appears, but 2391 comes earlier in the table.
	route := e.ResolveCourseRoute("solar testing 2391")
	assert.Equal(t, "2391", route.Keyword)

	route = e.ResolveCourseRoute("Level 3 NVQ")
	assert.Equal(t, "nvq", route.Keyword)
	assert.Equal(t, "/study-centre/apprentice/level3", route.Destination)
}

func TestResolveCourseRoute_EveryEmittedQueryResolves(t *testing.T) {
	e := newTestEngine()
	rules := DefaultRules()

	var queries []string
	for _, templates := range rules.progression {
		for _, tpl := range templates {
			queries = append(queries, tpl.rec.SearchQuery)
		}
	}
	for _, tpl := range rules.defaultProgression {
		queries = append(queries, tpl.rec.SearchQuery)
	}
	for _, rule := range rules.gapRules {
		queries = append(queries, rule.gap.SearchQuery)
	}
	queries = append(queries, "18th Edition amendment update", "inspection and testing refresher")

	for _, q := range queries {
		route := e.ResolveCourseRoute(q)
		assert.True(t, route.Matched, "query %q fell back", q)
		assert.NotEmpty(t, route.Destination)
	}
}

func TestResolveCourseRoute_CustomRulesNormalized(t *testing.T) {
	rules := Rules{
		routes: []routeEntry{
			{keyword: "  Heat Pump ", destination: "https://example.org/heat-pumps"},
			{keyword: "", destination: "/ignored"},
			{keyword: "ignored", destination: ""},
		},
		limits: Limits{SkillGaps: 4, BrushUp: 3},
	}
	e := NewEngine(rules)

	route := e.ResolveCourseRoute("HEAT PUMP commissioning")
	assert.Equal(t, "https://example.org/heat-pumps", route.Destination)
	assert.False(t, route.Internal)

	route = e.ResolveCourseRoute("ignored")
	assert.Equal(t, FallbackCourseRoute, route.Destination)

	assert.Empty(t, e.MatchCareerProgression(models.TierQualified, Normalize(nil, nil, nil)))
}
