// internal/profile/store.go

// Package profile loads the worker profiles the recommendation engine evaluates.
package profile

import (
	"context"
	"errors"

	"career-workers/internal/models"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// Store loads a worker profile by user id.
type Store interface {
	Get(ctx context.Context, userID string) (*models.WorkerProfile, error)
}
