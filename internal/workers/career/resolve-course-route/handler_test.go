// internal/workers/career/resolve-course-route/handler_test.go
package resolvecourseroute

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/recommendation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(&Config{Timeout: time.Second},
		recommendation.NewEngine(recommendation.DefaultRules()), nil, logger.NewTestLogger(t))
}

func strPtr(s string) *string { return &s }

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_SingleQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       *string
		destination string
		keyword     string
	}{
		{"testing code", strPtr("City & Guilds 2391-52 course"), "/study-centre/upskilling/inspection-testing-course", "2391"},
		{"ev charging", strPtr("EV Charging Installation"), "/study-centre/upskilling/ev-charging-course", "ev charging"},
		{"apprentice am2", strPtr("AM2 assessment prep"), "/study-centre/apprentice/am2", "am2"},
		{"unmatched", strPtr("underwater basket weaving"), recommendation.FallbackCourseRoute, ""},
		{"empty", strPtr(""), recommendation.FallbackCourseRoute, ""},
		{"absent", nil, recommendation.FallbackCourseRoute, ""},
	}

	handler := createTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), &Input{SearchQuery: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.destination, output.Destination)
			assert.Equal(t, tt.keyword, output.MatchedKeyword)
			assert.True(t, output.Internal)
			assert.Nil(t, output.Routes)
		})
	}
}

func TestHandler_Execute_Batch(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		SearchQuery:   strPtr("ignored when a batch is present"),
		SearchQueries: []string{"Solar PV 2399", "nothing relevant"},
	})
	require.NoError(t, err)

	assert.Empty(t, output.Destination)
	require.Len(t, output.Routes, 2)
	assert.Equal(t, "Solar PV 2399", output.Routes[0].SearchQuery)
	assert.Equal(t, "/study-centre/upskilling/renewable-energy-course", output.Routes[0].Destination)
	assert.True(t, output.Routes[0].Matched)
	assert.Equal(t, recommendation.FallbackCourseRoute, output.Routes[1].Destination)
	assert.False(t, output.Routes[1].Matched)
}

func TestHandler_Execute_CountsOutcomes(t *testing.T) {
	handler := createTestHandler(t)
	resolved := testutil.ToFloat64(metrics.CourseRouteLookups.WithLabelValues(metrics.OutcomeResolved))
	fallback := testutil.ToFloat64(metrics.CourseRouteLookups.WithLabelValues(metrics.OutcomeFallback))

	_, err := handler.Execute(context.Background(), &Input{SearchQueries: []string{"fire alarm", "???"}})
	require.NoError(t, err)

	assert.Equal(t, resolved+1, testutil.ToFloat64(metrics.CourseRouteLookups.WithLabelValues(metrics.OutcomeResolved)))
	assert.Equal(t, fallback+1, testutil.ToFloat64(metrics.CourseRouteLookups.WithLabelValues(metrics.OutcomeFallback)))
}

func TestOutput_JSONShape(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{SearchQueries: []string{"hnc"}})
	require.NoError(t, err)

	data, err := json.Marshal(output)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"internal":false,"routes":[{"searchQuery":"hnc","destination":"/study-centre/apprentice/hnc","matchedKeyword":"hnc","matched":true,"internal":true}]}`,
		string(data))
}

func TestHandler_FinishJob(t *testing.T) {
	handler := createTestHandler(t)
	completed := func() float64 { return testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(TaskType)) }
	failed := func() float64 { return testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(TaskType, "INTERNAL_ERROR")) }

	c, f := completed(), failed()
	handler.finishJob(metrics.StartJob(TaskType), nil)
	assert.Equal(t, c+1, completed())
	assert.Equal(t, f, failed())

	handler.finishJob(metrics.StartJob(TaskType), errors.New("send complete job command: unavailable"))
	assert.Equal(t, c+1, completed())
	assert.Equal(t, f+1, failed())
}
