// internal/common/metrics/metrics.go
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	// RecommendationsEmitted counts items returned per output list
	// (career_progression, skills_gaps, brush_up, trending_uncovered).
	RecommendationsEmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_recommendations_emitted_total",
			Help: "Recommendation items emitted, by output list",
		},
		[]string{"list"},
	)

	CourseRouteLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "career_course_route_lookups_total",
			Help: "Course route resolutions, by outcome (resolved or fallback)",
		},
		[]string{"outcome"},
	)
)

const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
)

// JobTimer tracks one job from activation to completion or failure.
type JobTimer struct {
	taskType string
	start    time.Time
}

func StartJob(taskType string) *JobTimer {
	WorkerJobsActive.WithLabelValues(taskType).Inc()
	return &JobTimer{taskType: taskType, start: time.Now()}
}

func (t *JobTimer) Completed() time.Duration {
	WorkerJobsCompleted.WithLabelValues(t.taskType).Inc()
	return t.finish()
}

func (t *JobTimer) Failed(errorCode string) time.Duration {
	WorkerJobsFailed.WithLabelValues(t.taskType, errorCode).Inc()
	return t.finish()
}

func (t *JobTimer) finish() time.Duration {
	elapsed := time.Since(t.start)
	WorkerJobsActive.WithLabelValues(t.taskType).Dec()
	WorkerJobDuration.WithLabelValues(t.taskType).Observe(elapsed.Seconds())
	return elapsed
}

// RecordCourseRoute counts one route lookup.
func RecordCourseRoute(matched bool) {
	if matched {
		CourseRouteLookups.WithLabelValues(OutcomeResolved).Inc()
		return
	}
	CourseRouteLookups.WithLabelValues(OutcomeFallback).Inc()
}
