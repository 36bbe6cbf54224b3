// internal/common/observability/observability_test.go
package observability

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestNew_RecordsAndTraces(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(Options{ServiceName: "career-workers-test", Registerer: reg})
	require.NoError(t, err)
	defer obs.Shutdown(context.Background())

	ctx, span := obs.StartSpan(context.Background(), "recommendation.evaluate", attribute.String("tier", "approved"))
	assert.True(t, span.SpanContext().IsValid())
	obs.RecordJobProcessed(ctx, "generate-career-recommendations", "completed")
	obs.RecordJobDuration(ctx, "generate-career-recommendations", 12*time.Millisecond, "completed")
	span.End()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "jobs_processed_total")
}

func TestNew_WithJaegerEndpoint(t *testing.T) {
	obs, err := New(Options{
		ServiceName:    "career-workers-test",
		JaegerEndpoint: "http://127.0.0.1:1/api/traces",
		Registerer:     prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	_, span := obs.StartSpan(context.Background(), "noop")
	span.End()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = obs.Shutdown(ctx)
}

func TestNilObservabilityIsSafe(t *testing.T) {
	var obs *Observability

	_, span := obs.StartSpan(context.Background(), "noop")
	span.End()
	obs.RecordJobProcessed(context.Background(), "t", "completed")
	assert.NoError(t, obs.Shutdown(context.Background()))
}
