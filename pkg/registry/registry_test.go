// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"career-workers/internal/common/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Empty(t, reg.Validate())

	for _, taskType := range []string{"generate-career-recommendations", "resolve-course-route"} {
		a, ok := reg.Find(taskType)
		require.True(t, ok, taskType)
		assert.NotEmpty(t, a.ErrorCodes)

		schema, err := reg.InputSchema(taskType)
		require.NoError(t, err)
		require.NotNil(t, schema)
	}
}

func TestDefaultRegistry_RecommendationInput(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	schema, err := reg.InputSchema("generate-career-recommendations")
	require.NoError(t, err)

	assert.True(t, validation.ValidateJSON(`{"userId":"u-1"}`, schema).Valid)
	assert.True(t, validation.ValidateJSON(`{"profile":{"certificationTier":"approved","qualifications":[{"qualification_name":"2391-52","date_achieved":null}]}}`, schema).Valid)
	assert.False(t, validation.ValidateJSON(`{"includeCourseRoutes":true}`, schema).Valid)
	assert.False(t, validation.ValidateJSON(`{"profile":{"skills":[{"skill_level":"beginner"}]}}`, schema).Valid)
	assert.False(t, validation.ValidateJSON(`{"profile":{"skills":[{"skill_name":"x","years_experience":-1}]}}`, schema).Valid)
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry("")
	require.NoError(t, err)
	assert.Len(t, reg.Activities, 2)

	_, err = LoadRegistry(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	_, err = LoadRegistry(bad)
	assert.Error(t, err)
}

func TestValidate_ReportsProblems(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "a", TaskType: "t"},
		{ID: "a", TaskType: "t", Timeout: "soon"},
		{TaskType: "u", InputSchema: map[string]interface{}{"type": 5}},
	}}

	problems := reg.Validate()

	assert.Len(t, problems, 5)
	_, err := reg.InputSchema("nope")
	assert.Error(t, err)
}
