// internal/models/recommendation.go
package models

// Icon is the tag the presentation layer maps onto an icon glyph.
type Icon string

const (
	IconAward      Icon = "award"
	IconBattery    Icon = "battery"
	IconBook       Icon = "book-open"
	IconBriefcase  Icon = "briefcase"
	IconBuilding   Icon = "building"
	IconClipboard  Icon = "clipboard-check"
	IconCPU        Icon = "cpu"
	IconFlame      Icon = "flame"
	IconGauge      Icon = "gauge"
	IconHome       Icon = "home"
	IconNetwork    Icon = "network"
	IconShield     Icon = "shield"
	IconSun        Icon = "sun"
	IconTrendingUp Icon = "trending-up"
	IconUsers      Icon = "users"
	IconWrench     Icon = "wrench"
	IconZap        Icon = "zap"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Category string

const (
	CategoryCareerProgression Category = "career_progression"
	CategoryCertification     Category = "certification"
	CategorySpecialist        Category = "specialist"
	CategoryTrending          Category = "trending"
)

type Importance string

const (
	ImportanceEssential   Importance = "essential"
	ImportanceRecommended Importance = "recommended"
	ImportanceBeneficial  Importance = "beneficial"
)

// Rank orders importances by severity: essential(0) < recommended(1) < beneficial(2).
// Unknown values sort last.
func (i Importance) Rank() int {
	switch i {
	case ImportanceEssential:
		return 0
	case ImportanceRecommended:
		return 1
	case ImportanceBeneficial:
		return 2
	default:
		return 3
	}
}

type SuggestionKind string

const (
	SuggestionSkillStagnant      SuggestionKind = "skill_stagnant"
	SuggestionAgingQualification SuggestionKind = "aging_qualification"
	SuggestionReadyToAdvance     SuggestionKind = "ready_to_advance"
)

type DemandLevel string

const (
	DemandHigh     DemandLevel = "high"
	DemandVeryHigh DemandLevel = "very_high"
	DemandGrowing  DemandLevel = "growing"
)

type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Reason      string   `json:"reason"`
	Icon        Icon     `json:"icon"`
	Priority    Priority `json:"priority"`
	Category    Category `json:"category"`
	SearchQuery string   `json:"searchQuery"`
}

type SkillGap struct {
	ID          string     `json:"id"`
	Skill       string     `json:"skill"`
	Reason      string     `json:"reason"`
	Icon        Icon       `json:"icon"`
	Importance  Importance `json:"importance"`
	SearchQuery string     `json:"searchQuery"`
}

type BrushUpSuggestion struct {
	ID           string         `json:"id"`
	Skill        string         `json:"skill"`
	CurrentLevel string         `json:"currentLevel"`
	YearsAtLevel float64        `json:"yearsAtLevel"`
	Suggestion   string         `json:"suggestion"`
	Type         SuggestionKind `json:"type"`
	SearchQuery  string         `json:"searchQuery"`
}

type TrendingSkill struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        Icon        `json:"icon"`
	DemandLevel DemandLevel `json:"demandLevel"`
	AlreadyHas  bool        `json:"alreadyHas"`
}

// RecommendationResult is the consolidated bundle returned to the presentation layer.
type RecommendationResult struct {
	CareerProgression     []Recommendation    `json:"careerProgression"`
	SkillsGaps            []SkillGap          `json:"skillsGaps"`
	BrushUp               []BrushUpSuggestion `json:"brushUp"`
	Trending              []TrendingSkill     `json:"trending"`
	HasAnyRecommendations bool                `json:"hasAnyRecommendations"`
}
