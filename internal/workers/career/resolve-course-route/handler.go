// internal/workers/career/resolve-course-route/handler.go
package resolvecourseroute

import (
	"context"
	"encoding/json"
	"fmt"

	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"
	"career-workers/internal/recommendation"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "resolve-course-route"
)

type Handler struct {
	config       *Config
	engine       *recommendation.Engine
	schema       *gojsonschema.Schema
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, engine *recommendation.Engine, schema *gojsonschema.Schema, log logger.Logger) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		schema:       schema,
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

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		timer.Failed(string(errors.ErrCodeParseError))
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewParseError(err))
		return
	}
	if res := validation.ValidateJSON(job.Variables, h.schema); !res.Valid {
		timer.Failed(string(errors.ErrCodeInvalidInput))
		h.errorHandler.HandleJobError(ctx, client, job, errors.NewInvalidInputError(res.Summary()))
		return
	}

	output := h.execute(&input)
	h.finishJob(timer, h.completeJob(ctx, client, job, output))
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

// finishJob closes the job's metrics; an unsent result is a failed job.
func (h *Handler) finishJob(timer *metrics.JobTimer, completeErr error) {
	if completeErr != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"error": completeErr.Error(),
		})
		timer.Failed(string(errors.ErrCodeInternal))
		return
	}
	timer.Completed()
}

// execute never fails: unmatched and empty queries resolve to the fallback route.
func (h *Handler) execute(input *Input) *Output {
	if len(input.SearchQueries) > 0 {
		routes := make([]RouteResult, 0, len(input.SearchQueries))
		for _, q := range input.SearchQueries {
			routes = append(routes, RouteResult{SearchQuery: q, CourseRoute: h.resolve(q)})
		}
		return &Output{Routes: routes}
	}

	var q string
	if input.SearchQuery != nil {
		q = *input.SearchQuery
	}
	route := h.resolve(q)
	return &Output{
		Destination:    route.Destination,
		Internal:       route.Internal,
		MatchedKeyword: route.Keyword,
	}
}

func (h *Handler) resolve(q string) recommendation.CourseRoute {
	route := h.engine.ResolveCourseRoute(q)
	metrics.RecordCourseRoute(route.Matched)
	if !route.Matched {
		h.logger.Debug("no route keyword matched", map[string]interface{}{"searchQuery": q})
	}
	return route
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	return h.execute(input), nil
}
