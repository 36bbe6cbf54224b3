// internal/workers/career/generate-recommendations/models.go
package generaterecommendations

import "career-workers/internal/models"

type Input struct {
	UserID string `json:"userId"`
	// Profile, when present, is evaluated as given and the profile store is skipped.
	Profile             *models.WorkerProfile `json:"profile,omitempty"`
	IncludeCourseRoutes *bool                 `json:"includeCourseRoutes,omitempty"`
}

// Output is the recommendation bundle plus evaluation metadata.
type Output struct {
	models.RecommendationResult
	EvaluationID string `json:"evaluationId"`
	EvaluatedAt  string `json:"evaluatedAt"`
	// CourseRoutes maps each search query in the bundle to its study-centre route.
	CourseRoutes map[string]string `json:"courseRoutes,omitempty"`
}
