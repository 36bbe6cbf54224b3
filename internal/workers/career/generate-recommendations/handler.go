// internal/workers/career/generate-recommendations/handler.go
package generaterecommendations

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/observability"
	"career-workers/internal/common/validation"
	"career-workers/internal/models"
	"career-workers/internal/profile"
	"career-workers/internal/recommendation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
	"go.opentelemetry.io/otel/attribute"
)

const (
	TaskType = "generate-career-recommendations"
)

type Handler struct {
	config       *Config
	engine       *recommendation.Engine
	profiles     profile.Store
	schema       *gojsonschema.Schema
	obs          *observability.Observability
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

// NewHandler wires the worker. schema and obs may be nil; profiles may be nil
// when every job carries its own profile.
func NewHandler(
	config *Config,
	engine *recommendation.Engine,
	profiles profile.Store,
	schema *gojsonschema.Schema,
	obs *observability.Observability,
	log logger.Logger,
) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		profiles:     profiles,
		schema:       schema,
		obs:          obs,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	timer := metrics.StartJob(TaskType)

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	input, err := h.parseInput(job.Variables)
	if err != nil {
		h.fail(ctx, client, job, timer, err)
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.fail(ctx, client, job, timer, err)
		return
	}

	h.finishJob(ctx, timer, h.completeJob(ctx, client, job, output))
}

func (h *Handler) parseInput(variables string) (*Input, error) {
	var input Input
	if err := json.Unmarshal([]byte(variables), &input); err != nil {
		return nil, errors.NewParseError(err)
	}
	if res := validation.ValidateJSON(variables, h.schema); !res.Valid {
		return nil, errors.NewInvalidInputError(res.Summary())
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if h.engine == nil {
		return nil, errors.NewRecommendationFailedError("engine not configured")
	}

	p, err := h.resolveProfile(ctx, input)
	if err != nil {
		return nil, err
	}

	evaluationID := uuid.NewString()
	_, span := h.obs.StartSpan(ctx, "recommendation.evaluate",
		attribute.String("user.id", input.UserID),
		attribute.String("evaluation.id", evaluationID),
		attribute.String("certification.tier", string(p.Tier())),
	)
	defer span.End()

	now := h.engine.Now()
	result := h.engine.EvaluateAt(p, now)

	output := &Output{
		RecommendationResult: *result,
		EvaluationID:         evaluationID,
		EvaluatedAt:          now.UTC().Format(time.RFC3339),
	}
	if h.includeCourseRoutes(input) {
		output.CourseRoutes = h.courseRoutes(result)
	}

	recordEmitted(result)
	span.SetAttributes(attribute.Bool("recommendations.any", result.HasAnyRecommendations))

	h.logger.Info("recommendations generated", map[string]interface{}{
		"userId":            input.UserID,
		"evaluationId":      evaluationID,
		"careerProgression": len(result.CareerProgression),
		"skillsGaps":        len(result.SkillsGaps),
		"brushUp":           len(result.BrushUp),
		"hasAny":            result.HasAnyRecommendations,
	})

	return output, nil
}

func (h *Handler) resolveProfile(ctx context.Context, input *Input) (*models.WorkerProfile, error) {
	if input.Profile != nil {
		if input.Profile.UserID == "" {
			input.Profile.UserID = input.UserID
		}
		return input.Profile, nil
	}
	if input.UserID == "" {
		return nil, errors.NewInvalidInputError("userId or profile is required")
	}
	if h.profiles == nil {
		return nil, errors.NewInvalidInputError("profile is required: no profile store configured")
	}

	p, err := h.profiles.Get(ctx, input.UserID)
	switch {
	case err == nil:
		return p, nil
	case stderrors.Is(err, profile.ErrNotFound):
		return nil, errors.NewProfileNotFoundError(input.UserID)
	case stderrors.Is(err, context.DeadlineExceeded):
		return nil, errors.NewQueryTimeoutError("load profile")
	case profile.IsConnectionError(err):
		return nil, errors.NewDatabaseConnectionFailedError(err)
	default:
		return nil, errors.NewProfileLoadFailedError(input.UserID, err)
	}
}

func (h *Handler) includeCourseRoutes(input *Input) bool {
	if input.IncludeCourseRoutes != nil {
		return *input.IncludeCourseRoutes
	}
	return h.config.IncludeCourseRoutes
}

func (h *Handler) courseRoutes(result *models.RecommendationResult) map[string]string {
	routes := make(map[string]string)
	for _, q := range recommendation.SearchQueries(result) {
		route := h.engine.ResolveCourseRoute(q)
		metrics.RecordCourseRoute(route.Matched)
		routes[q] = route.Destination
	}
	return routes
}

func recordEmitted(r *models.RecommendationResult) {
	metrics.RecommendationsEmitted.WithLabelValues("career_progression").Add(float64(len(r.CareerProgression)))
	metrics.RecommendationsEmitted.WithLabelValues("skills_gaps").Add(float64(len(r.SkillsGaps)))
	metrics.RecommendationsEmitted.WithLabelValues("brush_up").Add(float64(len(r.BrushUp)))

	uncovered := 0
	for _, t := range r.Trending {
		if !t.AlreadyHas {
			uncovered++
		}
	}
	metrics.RecommendationsEmitted.WithLabelValues("trending_uncovered").Add(float64(uncovered))
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

// finishJob closes the job's metrics. A result the broker never accepted counts
// as a failed job.
func (h *Handler) finishJob(ctx context.Context, timer *metrics.JobTimer, completeErr error) {
	if completeErr != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"error": completeErr.Error(),
		})
		elapsed := timer.Failed(string(errors.ErrCodeInternal))
		h.obs.RecordJobProcessed(ctx, TaskType, "failed")
		h.obs.RecordJobDuration(ctx, TaskType, elapsed, "failed")
		return
	}
	elapsed := timer.Completed()
	h.obs.RecordJobProcessed(ctx, TaskType, "completed")
	h.obs.RecordJobDuration(ctx, TaskType, elapsed, "completed")
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, timer *metrics.JobTimer, err error) {
	stdErr := errors.AsStandardError(err)
	elapsed := timer.Failed(string(stdErr.Code))
	h.obs.RecordJobProcessed(ctx, TaskType, "failed")
	h.obs.RecordJobDuration(ctx, TaskType, elapsed, "failed")
	h.errorHandler.HandleJobError(ctx, client, job, stdErr)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

// ParseInput decodes and validates raw job variables.
func (h *Handler) ParseInput(variables string) (*Input, error) {
	return h.parseInput(variables)
}
