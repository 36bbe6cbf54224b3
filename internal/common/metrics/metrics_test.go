// internal/common/metrics/metrics_test.go
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestJobTimer(t *testing.T) {
	const task = "metrics-test-task"

	StartJob(task).Completed()
	StartJob(task).Failed("INVALID_INPUT")

	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsCompleted.WithLabelValues(task)))
	assert.Equal(t, 1.0, testutil.ToFloat64(WorkerJobsFailed.WithLabelValues(task, "INVALID_INPUT")))
	assert.Equal(t, 0.0, testutil.ToFloat64(WorkerJobsActive.WithLabelValues(task)))
}

func TestRecordCourseRoute(t *testing.T) {
	resolved := testutil.ToFloat64(CourseRouteLookups.WithLabelValues(OutcomeResolved))
	fallback := testutil.ToFloat64(CourseRouteLookups.WithLabelValues(OutcomeFallback))

	RecordCourseRoute(true)
	RecordCourseRoute(false)
	RecordCourseRoute(false)

	assert.Equal(t, resolved+1, testutil.ToFloat64(CourseRouteLookups.WithLabelValues(OutcomeResolved)))
	assert.Equal(t, fallback+2, testutil.ToFloat64(CourseRouteLookups.WithLabelValues(OutcomeFallback)))
}
