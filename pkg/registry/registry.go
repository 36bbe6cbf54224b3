// pkg/registry/registry.go
package registry

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"career-workers/internal/common/validation"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed activity-registry.json
var defaultRegistry []byte

// Default returns the registry compiled into the binary.
func Default() (*ActivityRegistry, error) {
	return parse(defaultRegistry)
}

// LoadRegistry reads a registry file. An empty path selects the built-in registry.
func LoadRegistry(path string) (*ActivityRegistry, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*ActivityRegistry, error) {
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return &reg, nil
}

// Find returns the activity serving taskType.
func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// InputSchema compiles the input schema for taskType. A task with no declared
// schema yields nil, which accepts any input.
func (r *ActivityRegistry) InputSchema(taskType string) (*gojsonschema.Schema, error) {
	a, ok := r.Find(taskType)
	if !ok {
		return nil, fmt.Errorf("activity %q not registered", taskType)
	}
	if len(a.InputSchema) == 0 {
		return nil, nil
	}
	return validation.Compile(a.InputSchema)
}

// Validate checks identifiers are present and unique, timeouts parse and every
// declared schema compiles. All problems are returned together.
func (r *ActivityRegistry) Validate() []error {
	var problems []error
	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)

	for i, a := range r.Activities {
		label := a.ID
		if label == "" {
			label = fmt.Sprintf("activities[%d]", i)
			problems = append(problems, fmt.Errorf("%s: id is required", label))
		} else if ids[a.ID] {
			problems = append(problems, fmt.Errorf("%s: duplicate id", label))
		}
		ids[a.ID] = true

		if a.TaskType == "" {
			problems = append(problems, fmt.Errorf("%s: taskType is required", label))
		} else if taskTypes[a.TaskType] {
			problems = append(problems, fmt.Errorf("%s: duplicate taskType %q", label, a.TaskType))
		}
		taskTypes[a.TaskType] = true

		if a.Timeout != "" {
			if _, err := time.ParseDuration(a.Timeout); err != nil {
				problems = append(problems, fmt.Errorf("%s: timeout: %w", label, err))
			}
		}
		for name, schema := range map[string]map[string]interface{}{"inputSchema": a.InputSchema, "outputSchema": a.OutputSchema} {
			if len(schema) == 0 {
				continue
			}
			if _, err := validation.Compile(schema); err != nil {
				problems = append(problems, fmt.Errorf("%s: %s: %w", label, name, err))
			}
		}
	}
	return problems
}
