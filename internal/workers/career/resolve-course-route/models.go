// internal/workers/career/resolve-course-route/models.go
package resolvecourseroute

import "career-workers/internal/recommendation"

// Input carries a single query or a batch; a batch wins when both are set.
type Input struct {
	SearchQuery   *string  `json:"searchQuery,omitempty"`
	SearchQueries []string `json:"searchQueries,omitempty"`
}

type Output struct {
	Destination    string        `json:"destination,omitempty"`
	Internal       bool          `json:"internal"`
	MatchedKeyword string        `json:"matchedKeyword,omitempty"`
	Routes         []RouteResult `json:"routes,omitempty"`
}

type RouteResult struct {
	SearchQuery string `json:"searchQuery"`
	recommendation.CourseRoute
}
