// cmd/tools/career-advisor/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"career-workers/internal/common/validation"
	"career-workers/internal/models"
	"career-workers/internal/profile"
	"career-workers/internal/recommendation"
	"career-workers/pkg/registry"

	gr "career-workers/internal/workers/career/generate-recommendations"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			help(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	switch args[0] {
	case "evaluate":
		return evaluate(args[1:], out)
	case "route":
		return route(args[1:], out)
	case "registry":
		if len(args) < 2 || args[1] != "validate" {
			return errUsage
		}
		return validateRegistry(args[2:], out)
	case "help", "-h", "--help":
		help(out)
		return nil
	default:
		return errUsage
	}
}

func evaluate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	profilePath := fs.String("profile", "", "Path to a worker profile JSON document")
	profilesPath := fs.String("profiles", "", "Path to a JSON array of worker profiles keyed by userId")
	userID := fs.String("user", "", "User id to evaluate from -profiles")
	at := fs.String("at", "", "Evaluation instant (RFC3339); defaults to now")
	withRoutes := fs.Bool("routes", false, "Resolve a study-centre route for every search query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	now := time.Now()
	if *at != "" {
		parsed, err := time.Parse(time.RFC3339, *at)
		if err != nil {
			return fmt.Errorf("invalid -at: %w", err)
		}
		now = parsed
	}

	var (
		p   *models.WorkerProfile
		err error
	)
	switch {
	case *userID != "":
		if *profilesPath == "" {
			return fmt.Errorf("-user requires -profiles")
		}
		p, err = lookupProfile(*profilesPath, *userID)
	case *profilePath != "":
		p, err = readProfile(*profilePath)
	default:
		return fmt.Errorf("-profile or -user is required")
	}
	if err != nil {
		return err
	}

	engine := recommendation.NewEngine(recommendation.DefaultRules())
	result := engine.EvaluateAt(p, now)

	output := gr.Output{
		RecommendationResult: *result,
		EvaluatedAt:          now.UTC().Format(time.RFC3339),
	}
	if *withRoutes {
		output.CourseRoutes = make(map[string]string)
		for _, q := range recommendation.SearchQueries(result) {
			output.CourseRoutes[q] = engine.ResolveCourseRoute(q).Destination
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func readProfile(path string) (*models.WorkerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	if err := checkProfile(data); err != nil {
		return nil, err
	}

	var p models.WorkerProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}

// lookupProfile loads every profile in the file into a memory store and reads
// userID back through the same Store interface the worker uses.
func lookupProfile(path, userID string) (*models.WorkerProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	var docs []json.RawMessage
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	store := profile.NewMemoryStore()
	for i, doc := range docs {
		if err := checkProfile(doc); err != nil {
			return nil, fmt.Errorf("profile %d: %w", i, err)
		}
		var p models.WorkerProfile
		if err := json.Unmarshal(doc, &p); err != nil {
			return nil, fmt.Errorf("profile %d: parse profile: %w", i, err)
		}
		if p.UserID == "" {
			return nil, fmt.Errorf("profile %d: userId is required", i)
		}
		store.Put(p)
	}

	p, err := store.Get(context.Background(), userID)
	if errors.Is(err, profile.ErrNotFound) {
		return nil, fmt.Errorf("no profile for user %q in %s", userID, path)
	}
	return p, err
}

// checkProfile validates a profile document against the worker's input schema.
func checkProfile(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse profile: %w", err)
	}

	reg, err := registry.Default()
	if err != nil {
		return err
	}
	schema, err := reg.InputSchema(gr.TaskType)
	if err != nil {
		return err
	}
	if res := validation.ValidateInput(map[string]interface{}{"profile": doc}, schema); !res.Valid {
		return fmt.Errorf("invalid profile: %s", res.Summary())
	}
	return nil
}

func route(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("route", flag.ContinueOnError)
	query := fs.String("q", "", "Course search query")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := recommendation.NewEngine(recommendation.DefaultRules()).ResolveCourseRoute(*query)
	if r.Matched {
		fmt.Fprintf(out, "%s (matched %q)\n", r.Destination, r.Keyword)
		return nil
	}
	fmt.Fprintf(out, "%s (fallback)\n", r.Destination)
	return nil
}

func validateRegistry(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("registry validate", flag.ContinueOnError)
	path := fs.String("path", "", "Path to registry file; empty checks the embedded registry")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return err
	}
	if problems := reg.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(out, "  - %v\n", p)
		}
		return fmt.Errorf("registry validation failed with %d problem(s)", len(problems))
	}

	fmt.Fprintf(out, "Registry validation passed. Found %d activities.\n", len(reg.Activities))
	return nil
}

func help(w io.Writer) {
	fmt.Fprintln(w, `
Usage: career-advisor <command> [flags]

Commands:
  evaluate           Evaluate a worker profile and print the recommendation bundle
  route              Resolve a course search query to a study-centre route
  registry validate  Validate an activity registry file
  help               Show this help message

Examples:
  career-advisor evaluate -profile profile.json -at 2026-10-15T00:00:00Z -routes
  career-advisor evaluate -profiles crew.json -user u-17
  career-advisor route -q "City & Guilds 2391-52"
  career-advisor registry validate -path pkg/registry/activity-registry.json`)
}
