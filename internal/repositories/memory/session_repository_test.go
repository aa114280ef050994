package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/services"
)

func newSession(id string) *models.Session {
	return &models.Session{
		ID:                 id,
		Answers:            models.AnswerSet{"C1": 3},
		CommunicationOrder: []string{"C1", "C2"},
		MotivationOrder:    []string{"M1", "M2"},
		CreatedAt:          time.Now().UTC(),
	}
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("s1")))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 3, got.Answers["C1"])

	err = repo.Create(ctx, newSession("s1"))
	assert.ErrorIs(t, err, services.ErrSessionExists)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestSessionRepository_Update(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("s1")))

	updated := newSession("s1")
	updated.Answers["C2"] = 5
	require.NoError(t, repo.Update(ctx, updated))

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Answers["C2"])

	err = repo.Update(ctx, newSession("missing"))
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestSessionRepository_CallersNeverShareState(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	original := newSession("s1")
	require.NoError(t, repo.Create(ctx, original))

	// Mutating the caller's copy after Create must not touch the store.
	original.Answers["C1"] = 1
	original.CommunicationOrder[0] = "tampered"

	stored, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Answers["C1"])
	assert.Equal(t, "C1", stored.CommunicationOrder[0])

	// Same for a fetched copy.
	stored.Answers["C1"] = 1
	again, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Answers["C1"])
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("s1")))
	require.NoError(t, repo.Delete(ctx, "s1"))

	_, err := repo.GetByID(ctx, "s1")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)

	err = repo.Delete(ctx, "s1")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestSessionRepository_PruneExpired(t *testing.T) {
	repo := NewSessionRepository()
	ctx := context.Background()

	stale := newSession("stale")
	stale.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, newSession("fresh")))

	pruned, err := repo.PruneExpired(ctx, time.Now().UTC().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = repo.GetByID(ctx, "stale")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
	_, err = repo.GetByID(ctx, "fresh")
	assert.NoError(t, err)
}
