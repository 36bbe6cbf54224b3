// internal/recommendation/engine.go

// Package recommendation turns a worker's certification tier, qualifications, skills
// and work history into career-progression suggestions, skill gaps, brush-up alerts
// and a trending-specialism comparison.
//
// Everything here is deterministic rule evaluation over lowercase text. An Engine
// holds no mutable state and performs no I/O, so one instance can serve any number
// of concurrent evaluations.
package recommendation

import (
	"time"

	"career-workers/internal/models"
)

type Engine struct {
	rules Rules
	now   func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used by Evaluate for qualification ageing.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules: rules,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.rules.routes = normalizeRoutes(e.rules.routes)
	if e.rules.fallbackRoute == "" {
		e.rules.fallbackRoute = FallbackCourseRoute
	}
	return e
}

// Now reports the engine clock.
func (e *Engine) Now() time.Time {
	return e.now()
}

// Evaluate runs every component against the profile at the engine's current time.
func (e *Engine) Evaluate(profile *models.WorkerProfile) *models.RecommendationResult {
	return e.EvaluateAt(profile, e.now())
}

// EvaluateAt is Evaluate with an explicit evaluation instant. For a fixed profile
// and instant the result is identical on every call.
func (e *Engine) EvaluateAt(profile *models.WorkerProfile, now time.Time) *models.RecommendationResult {
	if profile == nil {
		profile = &models.WorkerProfile{}
	}

	normalized := Normalize(profile.Qualifications, profile.Skills, profile.WorkHistory)

	result := &models.RecommendationResult{
		CareerProgression: e.MatchCareerProgression(profile.Tier(), normalized),
		SkillsGaps:        e.EvaluateSkillGaps(normalized),
		BrushUp:           e.AnalyzeBrushUp(profile.Skills, profile.Qualifications, now),
		Trending:          e.CompareTrends(normalized),
	}
	result.HasAnyRecommendations = hasAnyRecommendations(result)

	return result
}

func hasAnyRecommendations(r *models.RecommendationResult) bool {
	if len(r.CareerProgression) > 0 || len(r.SkillsGaps) > 0 || len(r.BrushUp) > 0 {
		return true
	}
	for _, t := range r.Trending {
		if !t.AlreadyHas {
			return true
		}
	}
	return false
}

// SearchQueries collects the distinct course-search queries in a result, in
// output order.
func SearchQueries(r *models.RecommendationResult) []string {
	if r == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	add := func(q string) {
		if q == "" {
			return
		}
		if _, ok := seen[q]; ok {
			return
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	for _, rec := range r.CareerProgression {
		add(rec.SearchQuery)
	}
	for _, gap := range r.SkillsGaps {
		add(gap.SearchQuery)
	}
	for _, s := range r.BrushUp {
		add(s.SearchQuery)
	}
	return out
}

func normalizeRoutes(in []routeEntry) []routeEntry {
	out := make([]routeEntry, 0, len(in))
	for _, entry := range in {
		kw := normalizeText(entry.keyword)
		if kw == "" || entry.destination == "" {
			continue
		}
		out = append(out, routeEntry{keyword: kw, destination: entry.destination})
	}
	return out
}
