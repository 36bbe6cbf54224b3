// internal/recommendation/trending.go
package recommendation

import "career-workers/internal/models"

type trendDefinition struct {
	skill    models.TrendingSkill
	keywords []string
}

// CompareTrends returns every trending specialism, flagging those already covered
// by a held qualification or skill. The list is never filtered or truncated.
func (e *Engine) CompareTrends(profile NormalizedProfile) []models.TrendingSkill {
	out := make([]models.TrendingSkill, 0, len(e.rules.trends))
	for _, def := range e.rules.trends {
		skill := def.skill
		skill.AlreadyHas = containsAny(profile.Combined, def.keywords)
		out = append(out, skill)
	}
	return out
}

func defaultTrends() []trendDefinition {
	return []trendDefinition{
		{
			skill: models.TrendingSkill{
				ID:          "trend-ev-charging",
				Name:        "EV Charging Infrastructure",
				Description: "Domestic and commercial charge point installation ahead of the 2030 petrol and diesel phase-out.",
				Icon:        models.IconZap,
				DemandLevel: models.DemandVeryHigh,
			},
			keywords: evKeywords(),
		},
		{
			skill: models.TrendingSkill{
				ID:          "trend-solar-pv",
				Name:        "Solar PV & Battery Storage",
				Description: "Rooftop solar with battery storage as homes and businesses chase Net Zero.",
				Icon:        models.IconSun,
				DemandLevel: models.DemandVeryHigh,
			},
			keywords: append(solarKeywords(), "battery storage"),
		},
		{
			skill: models.TrendingSkill{
				ID:          "trend-heat-pumps",
				Name:        "Heat Pump Electrical Installation",
				Description: "Supply and control wiring for air and ground source heat pumps.",
				Icon:        models.IconFlame,
				DemandLevel: models.DemandHigh,
			},
			keywords: []string{"heat pump"},
		},
		{
			skill: models.TrendingSkill{
				ID:          "trend-energy-storage",
				Name:        "Energy Storage Systems",
				Description: "Standalone battery energy storage for grid balancing and backup.",
				Icon:        models.IconBattery,
				DemandLevel: models.DemandHigh,
			},
			keywords: []string{"energy storage", "battery", "bess"},
		},
		{
			skill: models.TrendingSkill{
				ID:          "trend-smart-buildings",
				Name:        "Smart Home & Building Automation",
				Description: "IoT-connected lighting, heating and access control in homes and commercial buildings.",
				Icon:        models.IconHome,
				DemandLevel: models.DemandGrowing,
			},
			keywords: []string{"smart home", "home automation", "building automation", "knx", "bms"},
		},
		{
			skill: models.TrendingSkill{
				ID:          "trend-data-centres",
				Name:        "Data Centres & Structured Cabling",
				Description: "Power and data infrastructure for the expanding data centre sector.",
				Icon:        models.IconNetwork,
				DemandLevel: models.DemandGrowing,
			},
			keywords: []string{"data centre", "data center", "data cabling", "structured cabling", "fibre optic"},
		},
	}
}
