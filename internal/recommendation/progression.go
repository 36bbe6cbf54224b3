// internal/recommendation/progression.go
package recommendation

import "career-workers/internal/models"

type careerTemplate struct {
	rec models.Recommendation
	// heldKeywords suppress the template when any held qualification or
	// skill name contains one of them.
	heldKeywords []string
}

// MatchCareerProgression returns the tier's templates in table order, minus those
// whose target credential the worker already holds. Unknown tiers use the default list.
func (e *Engine) MatchCareerProgression(tier models.CertificationTier, profile NormalizedProfile) []models.Recommendation {
	templates, ok := e.rules.progression[tier]
	if !ok {
		templates = e.rules.defaultProgression
	}

	out := make([]models.Recommendation, 0, len(templates))
	for _, tpl := range templates {
		if profile.HoldsAny(tpl.heldKeywords) {
			continue
		}
		out = append(out, tpl.rec)
	}
	return out
}

func bs7671Template(id string, priority models.Priority, reason string) careerTemplate {
	return careerTemplate{
		rec: models.Recommendation{
			ID:          id,
			Title:       "Get 18th Edition (BS 7671) Qualification",
			Description: "City & Guilds 2382-22 covering the current IET Wiring Regulations.",
			Reason:      reason,
			Icon:        models.IconBook,
			Priority:    priority,
			Category:    models.CategoryCertification,
			SearchQuery: "18th Edition BS 7671",
		},
		heldKeywords: regulationsKeywords(),
	}
}

func testingTemplate(id string, priority models.Priority, reason string) careerTemplate {
	return careerTemplate{
		rec: models.Recommendation{
			ID:          id,
			Title:       "Get 2391-52 Testing Qualification",
			Description: "Initial verification and periodic inspection and testing of electrical installations.",
			Reason:      reason,
			Icon:        models.IconClipboard,
			Priority:    priority,
			Category:    models.CategoryCertification,
			SearchQuery: "2391 inspection and testing",
		},
		heldKeywords: []string{"2391"},
	}
}

func evTemplate(id string, priority models.Priority, reason string) careerTemplate {
	return careerTemplate{
		rec: models.Recommendation{
			ID:          id,
			Title:       "EV Charging Installation (2919)",
			Description: "Design and install electric vehicle charging equipment to IET Code of Practice.",
			Reason:      reason,
			Icon:        models.IconZap,
			Priority:    priority,
			Category:    models.CategorySpecialist,
			SearchQuery: "EV charging 2919",
		},
		heldKeywords: evKeywords(),
	}
}

func solarTemplate(id string, priority models.Priority, reason string) careerTemplate {
	return careerTemplate{
		rec: models.Recommendation{
			ID:          id,
			Title:       "Solar PV & Battery Storage (2399)",
			Description: "Install and commission small-scale photovoltaic systems and battery storage.",
			Reason:      reason,
			Icon:        models.IconSun,
			Priority:    priority,
			Category:    models.CategorySpecialist,
			SearchQuery: "solar PV 2399",
		},
		heldKeywords: solarKeywords(),
	}
}

func am2Template(id string, priority models.Priority, reason string) careerTemplate {
	return careerTemplate{
		rec: models.Recommendation{
			ID:          id,
			Title:       "Pass the AM2 Assessment",
			Description: "The practical end-point assessment required for a JIB Gold Card.",
			Reason:      reason,
			Icon:        models.IconAward,
			Priority:    priority,
			Category:    models.CategoryCertification,
			SearchQuery: "AM2 assessment preparation",
		},
		heldKeywords: []string{"am2"},
	}
}

func careerTemplatesByTier() map[models.CertificationTier][]careerTemplate {
	return map[models.CertificationTier][]careerTemplate{
		models.TierEntry: {
			am2Template("apprentice-am2", models.PriorityHigh,
				"AM2 is the final step to becoming a fully qualified electrician."),
			bs7671Template("apprentice-18th-edition", models.PriorityHigh,
				"Every qualified electrician needs current Wiring Regulations knowledge."),
			{
				rec: models.Recommendation{
					ID:          "apprentice-level3-nvq",
					Title:       "Complete Level 3 NVQ",
					Description: "The Level 3 NVQ Diploma in Electrotechnical Services evidences workplace competence.",
					Reason:      "Required alongside AM2 for the Gold Card.",
					Icon:        models.IconBook,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "Level 3 NVQ electrotechnical",
				},
				heldKeywords: []string{"nvq", "level 3"},
			},
		},
		models.TierMate: {
			{
				rec: models.Recommendation{
					ID:          "mate-start-apprenticeship",
					Title:       "Start an Electrical Apprenticeship",
					Description: "Level 2 and Level 3 electrical installation route to qualified status.",
					Reason:      "Moving from mate to apprentice is the first step to a recognised qualification.",
					Icon:        models.IconTrendingUp,
					Priority:    models.PriorityHigh,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "Level 2 electrical installation",
				},
				heldKeywords: []string{"apprentice", "level 2", "level 3"},
			},
			bs7671Template("mate-18th-edition", models.PriorityMedium,
				"Understanding the Wiring Regulations makes you more useful on site today."),
			{
				rec: models.Recommendation{
					ID:          "mate-health-safety",
					Title:       "ECS Health & Safety Assessment",
					Description: "The health and safety assessment required to hold an ECS card.",
					Reason:      "Most sites will not admit you without a valid card.",
					Icon:        models.IconShield,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCertification,
					SearchQuery: "ECS health and safety assessment",
				},
				heldKeywords: healthSafetyKeywords(),
			},
		},
		models.TierQualified: {
			testingTemplate("qualified-2391", models.PriorityHigh,
				"Inspection and testing opens up certification, EICR and approved electrician roles."),
			evTemplate("qualified-ev-charging", models.PriorityHigh,
				"EV charger installation is one of the fastest growing areas of domestic work."),
			solarTemplate("qualified-solar-pv", models.PriorityMedium,
				"Net Zero targets are driving sustained demand for solar installers."),
			{
				rec: models.Recommendation{
					ID:          "qualified-approved-status",
					Title:       "Progress to Approved Electrician",
					Description: "JIB Approved Electrician grade for experienced, testing-qualified electricians.",
					Reason:      "Approved status brings higher rates and supervisory responsibility.",
					Icon:        models.IconAward,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "approved electrician 2391",
				},
				heldKeywords: []string{"approved electrician"},
			},
		},
		models.TierApproved: {
			testingTemplate("approved-2391", models.PriorityHigh,
				"Approved electricians are expected to certify their own work."),
			{
				rec: models.Recommendation{
					ID:          "approved-design-2396",
					Title:       "Electrical Design & Verification (2396)",
					Description: "Design electrical installations to BS 7671 from first principles.",
					Reason:      "Design competence leads into technician and engineering roles.",
					Icon:        models.IconCPU,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCertification,
					SearchQuery: "2396 electrical design",
				},
				heldKeywords: []string{"2396", "design and verification", "electrical design"},
			},
			{
				rec: models.Recommendation{
					ID:          "approved-site-supervision",
					Title:       "Move into Site Supervision (SSSTS)",
					Description: "Site Supervisors' Safety Training Scheme for those running teams.",
					Reason:      "Your experience makes you a natural candidate to lead a crew.",
					Icon:        models.IconUsers,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "SSSTS site supervision leadership",
				},
				heldKeywords: []string{"sssts", "smsts", "supervis"},
			},
			evTemplate("approved-ev-charging", models.PriorityLow,
				"Add a high-demand specialism to your existing approved status."),
		},
		models.TierSupervisor: {
			{
				rec: models.Recommendation{
					ID:          "supervisor-smsts",
					Title:       "Site Management Safety Training (SMSTS)",
					Description: "The CITB standard for site managers and project managers.",
					Reason:      "Required by most main contractors for site management roles.",
					Icon:        models.IconShield,
					Priority:    models.PriorityHigh,
					Category:    models.CategoryCertification,
					SearchQuery: "SMSTS site management leadership",
				},
				heldKeywords: []string{"smsts"},
			},
			{
				rec: models.Recommendation{
					ID:          "supervisor-hnc",
					Title:       "HNC in Electrical Engineering",
					Description: "Level 4 engineering qualification for technical and management careers.",
					Reason:      "Opens contracts manager, estimator and design engineer routes.",
					Icon:        models.IconBook,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "HNC electrical engineering",
				},
				heldKeywords: []string{"hnc", "hnd", "degree", "beng"},
			},
			{
				rec: models.Recommendation{
					ID:          "supervisor-leadership",
					Title:       "Leadership & Management (ILM)",
					Description: "Formal people-management training for team leaders.",
					Reason:      "Strengthens the soft skills that supervisory roles depend on.",
					Icon:        models.IconUsers,
					Priority:    models.PriorityLow,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "leadership and management",
				},
				heldKeywords: []string{"ilm", "leadership"},
			},
		},
		models.TierExperiencedNoFormal: {
			{
				rec: models.Recommendation{
					ID:          "experienced-ewa",
					Title:       "Experienced Worker Assessment",
					Description: "Route to a Level 3 qualification for electricians with years of site experience.",
					Reason:      "Turns your existing experience into a recognised qualification.",
					Icon:        models.IconAward,
					Priority:    models.PriorityHigh,
					Category:    models.CategoryCertification,
					SearchQuery: "experienced worker assessment NVQ level 3",
				},
				heldKeywords: []string{"experienced worker", "ewa", "nvq"},
			},
			bs7671Template("experienced-18th-edition", models.PriorityHigh,
				"A current Wiring Regulations certificate is needed for every assessment route."),
			am2Template("experienced-am2e", models.PriorityMedium,
				"AM2E completes the experienced worker route to the Gold Card."),
		},
		models.TierLabourer: {
			{
				rec: models.Recommendation{
					ID:          "labourer-cscs",
					Title:       "Get a CSCS Labourer Card",
					Description: "Level 1 Health and Safety award and CITB test for site access.",
					Reason:      "Required for access to most construction sites.",
					Icon:        models.IconShield,
					Priority:    models.PriorityHigh,
					Category:    models.CategoryCertification,
					SearchQuery: "CSCS card health and safety",
				},
				heldKeywords: []string{"cscs"},
			},
			{
				rec: models.Recommendation{
					ID:          "labourer-level2-diploma",
					Title:       "Level 2 Electrical Installation Diploma",
					Description: "Classroom foundation in electrical principles and installation practice.",
					Reason:      "The entry point to becoming an electrician's mate or apprentice.",
					Icon:        models.IconTrendingUp,
					Priority:    models.PriorityMedium,
					Category:    models.CategoryCareerProgression,
					SearchQuery: "Level 2 electrical installation diploma",
				},
				heldKeywords: []string{"level 2", "diploma"},
			},
		},
	}
}

func defaultCareerTemplates() []careerTemplate {
	return []careerTemplate{
		bs7671Template("default-18th-edition", models.PriorityHigh,
			"The foundation qualification for anyone working on electrical installations."),
		evTemplate("default-ev-charging", models.PriorityMedium,
			"EV charging is a high-demand specialism across domestic and commercial work."),
	}
}
