// internal/recommendation/gaps.go
package recommendation

import (
	"sort"

	"career-workers/internal/models"
)

type gapRule struct {
	gap     models.SkillGap
	applies func(p NormalizedProfile) bool
}

// EvaluateSkillGaps runs every gap rule against the profile, orders the hits by
// importance (rule order breaks ties) and keeps the top Limits.SkillGaps.
func (e *Engine) EvaluateSkillGaps(profile NormalizedProfile) []models.SkillGap {
	gaps := make([]models.SkillGap, 0, len(e.rules.gapRules))
	for _, rule := range e.rules.gapRules {
		if rule.applies(profile) {
			gaps = append(gaps, rule.gap)
		}
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].Importance.Rank() < gaps[j].Importance.Rank()
	})

	if limit := e.rules.limits.SkillGaps; limit >= 0 && len(gaps) > limit {
		gaps = gaps[:limit]
	}
	return gaps
}

func defaultGapRules() []gapRule {
	regulations := regulationsKeywords()
	testing := testingKeywords()
	ev := evKeywords()
	solar := solarKeywords()
	safety := healthSafetyKeywords()
	fault := []string{"fault"}
	threePhase := []string{"three phase", "three-phase", "3 phase", "3-phase", "3ph"}
	commercial := []string{"commercial", "industrial", "factory", "warehouse", "office fit"}
	industrial := []string{"industrial", "factory", "plant", "manufactur"}
	controls := []string{"plc", "motor control", "instrumentation", "control panel"}
	fireAlarm := []string{"fire alarm", "bs 5839", "bs5839"}
	emergencyLighting := []string{"emergency lighting", "bs 5266", "bs5266"}

	return []gapRule{
		{
			gap: models.SkillGap{
				ID:          "gap-18th-edition",
				Skill:       "BS 7671 18th Edition",
				Reason:      "No current Wiring Regulations qualification on your profile.",
				Icon:        models.IconBook,
				Importance:  models.ImportanceEssential,
				SearchQuery: "18th Edition BS 7671",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HasQualification(regulations)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-health-safety",
				Skill:       "Site Health & Safety",
				Reason:      "No health and safety credential recorded; most sites require one for access.",
				Icon:        models.IconShield,
				Importance:  models.ImportanceEssential,
				SearchQuery: "health and safety CSCS card",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HasQualification(safety)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-fault-finding",
				Skill:       "Fault Finding & Diagnosis",
				Reason:      "Fault diagnosis is a core competence that is missing from your skills.",
				Icon:        models.IconWrench,
				Importance:  models.ImportanceEssential,
				SearchQuery: "fault finding and diagnosis",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HasSkill(fault)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-inspection-testing",
				Skill:       "Inspection & Testing",
				Reason:      "No inspection and testing qualification or skill recorded.",
				Icon:        models.IconClipboard,
				Importance:  models.ImportanceRecommended,
				SearchQuery: "2391 inspection and testing",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HoldsAny(testing)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-three-phase",
				Skill:       "Three-Phase Systems",
				Reason:      "Your commercial or industrial work history calls for three-phase competence.",
				Icon:        models.IconZap,
				Importance:  models.ImportanceRecommended,
				SearchQuery: "three phase systems industrial",
			},
			applies: func(p NormalizedProfile) bool {
				return p.WorkedIn(commercial) && !p.HasSkill(threePhase)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-industrial-controls",
				Skill:       "Motor Control & PLCs",
				Reason:      "Industrial roles in your history typically involve control systems.",
				Icon:        models.IconCPU,
				Importance:  models.ImportanceRecommended,
				SearchQuery: "industrial motor control instrumentation",
			},
			applies: func(p NormalizedProfile) bool {
				return p.WorkedIn(industrial) && !p.HoldsAny(controls)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-fire-alarm",
				Skill:       "Fire Alarm Systems (BS 5839)",
				Reason:      "Commercial sites expect fire detection and alarm knowledge.",
				Icon:        models.IconFlame,
				Importance:  models.ImportanceBeneficial,
				SearchQuery: "fire alarm systems BS 5839",
			},
			applies: func(p NormalizedProfile) bool {
				return p.WorkedIn(commercial) && !p.HoldsAny(fireAlarm)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-emergency-lighting",
				Skill:       "Emergency Lighting (BS 5266)",
				Reason:      "Emergency lighting installation and testing is routine on commercial jobs.",
				Icon:        models.IconGauge,
				Importance:  models.ImportanceBeneficial,
				SearchQuery: "emergency lighting BS 5266",
			},
			applies: func(p NormalizedProfile) bool {
				return p.WorkedIn(commercial) && !p.HoldsAny(emergencyLighting)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-ev-charging",
				Skill:       "EV Charging Installation",
				Reason:      "EV charging is in high demand and not yet on your profile.",
				Icon:        models.IconZap,
				Importance:  models.ImportanceBeneficial,
				SearchQuery: "EV charging 2919",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HoldsAny(ev)
			},
		},
		{
			gap: models.SkillGap{
				ID:          "gap-solar-pv",
				Skill:       "Solar PV Installation",
				Reason:      "Renewable installations are growing quickly and not yet on your profile.",
				Icon:        models.IconSun,
				Importance:  models.ImportanceBeneficial,
				SearchQuery: "solar PV 2399",
			},
			applies: func(p NormalizedProfile) bool {
				return !p.HoldsAny(solar)
			},
		},
	}
}
