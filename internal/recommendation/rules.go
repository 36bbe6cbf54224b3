// internal/recommendation/rules.go
package recommendation

import "career-workers/internal/models"

// Thresholds are the fixed staleness cut-offs, in years.
type Thresholds struct {
	// StagnantBeginnerYears flags a beginner-level skill held at least this long.
	StagnantBeginnerYears float64
	// ReadyToAdvanceYears flags an intermediate-level skill held at least this long.
	ReadyToAdvanceYears float64
	// RegulationsAmendmentYears flags a wiring regulations qualification older than this.
	RegulationsAmendmentYears float64
	// TestingRefresherYears flags an inspection/testing qualification older than this.
	TestingRefresherYears float64
}

// Limits cap the ranked lists.
type Limits struct {
	SkillGaps int
	BrushUp   int
}

// Rules is the complete, read-only rule set an Engine evaluates. Build it with
// DefaultRules; the zero value has no tables.
type Rules struct {
	progression        map[models.CertificationTier][]careerTemplate
	defaultProgression []careerTemplate
	gapRules           []gapRule
	trends             []trendDefinition
	routes             []routeEntry
	fallbackRoute      string
	thresholds         Thresholds
	limits             Limits
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		StagnantBeginnerYears:     2,
		ReadyToAdvanceYears:       5,
		RegulationsAmendmentYears: 3,
		TestingRefresherYears:     5,
	}
}

func DefaultLimits() Limits {
	return Limits{
		SkillGaps: 4,
		BrushUp:   3,
	}
}

// DefaultRules returns the production rule tables. Every call builds fresh
// slices, so callers never share backing arrays.
func DefaultRules() Rules {
	return Rules{
		progression:        careerTemplatesByTier(),
		defaultProgression: defaultCareerTemplates(),
		gapRules:           defaultGapRules(),
		trends:             defaultTrends(),
		routes:             defaultCourseRoutes(),
		fallbackRoute:      FallbackCourseRoute,
		thresholds:         DefaultThresholds(),
		limits:             DefaultLimits(),
	}
}

func (r Rules) Thresholds() Thresholds { return r.thresholds }

func (r Rules) Limits() Limits { return r.limits }

// Keyword sets shared by more than one component. Each call returns a new slice.

func regulationsKeywords() []string {
	return []string{"18th", "bs 7671", "bs7671", "2382", "wiring reg"}
}

func testingKeywords() []string {
	return []string{"2391", "2394", "2395", "inspection", "testing"}
}

func evKeywords() []string {
	return []string{"2919", "ev charging", "ev charge", "electric vehicle"}
}

func solarKeywords() []string {
	return []string{"2399", "solar", "photovoltaic"}
}

func healthSafetyKeywords() []string {
	return []string{"health and safety", "health & safety", "cscs", "ecs card", "smsts", "sssts", "iosh"}
}
