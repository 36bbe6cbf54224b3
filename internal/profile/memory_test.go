// internal/profile/memory_test.go
package profile

import (
	"context"
	"testing"

	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Put(models.WorkerProfile{UserID: "user-1", CertificationTier: "mate"})
	p, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "mate", p.CertificationTier)

	p.CertificationTier = "changed"
	again, err := s.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "mate", again.CertificationTier, "callers get a copy")
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore(models.WorkerProfile{UserID: "user-1"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "user-1")
	assert.ErrorIs(t, err, context.Canceled)
}
