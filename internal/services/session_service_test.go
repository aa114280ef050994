package services

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/validator"
)

// fakeSessionRepository is an in-memory stand-in for the session store.
type fakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]*models.Session)}
}

func (r *fakeSessionRepository) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[session.ID]; exists {
		return ErrSessionExists
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeSessionRepository) Update(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.ID]; !ok {
		return ErrSessionNotFound
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepository) PruneExpired(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pruned := 0
	for id, session := range r.sessions {
		if session.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			pruned++
		}
	}
	return pruned, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestSessionService(repo *fakeSessionRepository) SessionService {
	return NewSessionService(repo, events.NewMockEventPublisher(testLogger()), testLogger(), validator.New(), 24*time.Hour)
}

func TestSessionService_Start(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, 0, session.Answered)
	assert.Equal(t, 24, session.Total)
	assert.False(t, session.Complete)
	assert.Nil(t, session.Respondent)
	assert.Nil(t, session.SubmittedAt)
}

func TestSessionService_Questions_OrderIsMemoized(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	first, err := service.Questions(ctx, session.SessionID)
	require.NoError(t, err)
	second, err := service.Questions(ctx, session.SessionID)
	require.NoError(t, err)

	assert.Equal(t, first.Communication, second.Communication, "re-fetch must not reshuffle")
	assert.Equal(t, first.Motivation, second.Motivation)

	assert.Len(t, first.Communication, 12)
	assert.Len(t, first.Motivation, 12)

	// The shuffle permutes within a category; every question still appears.
	seen := make(map[string]bool)
	for _, q := range first.Communication {
		assert.Equal(t, models.CategoryCommunication, q.Category)
		seen[q.ID] = true
	}
	assert.Len(t, seen, 12)
}

func TestSessionService_Questions_NotFound(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())

	_, err := service.Questions(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestSessionService_RecordAnswers(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	updated, err := service.RecordAnswers(ctx, session.SessionID, &RecordAnswersRequest{
		Answers: []AnswerRequest{
			{QuestionID: "C1", Rating: 4},
			{QuestionID: "C2", Rating: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Answered)
	assert.False(t, updated.Complete)

	// Upsert replaces the earlier rating instead of adding.
	updated, err = service.RecordAnswers(ctx, session.SessionID, &RecordAnswersRequest{
		Answers: []AnswerRequest{{QuestionID: "C1", Rating: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Answered)
}

func TestSessionService_RecordAnswers_BatchIsAtomic(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestSessionService(repo)
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	_, err = service.RecordAnswers(ctx, session.SessionID, &RecordAnswersRequest{
		Answers: []AnswerRequest{
			{QuestionID: "C1", Rating: 4},
			{QuestionID: "X99", Rating: 3},
		},
	})
	require.Error(t, err)

	stored, err := repo.GetByID(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, stored.Answers, "a rejected batch must not leave partial writes")
}

func TestSessionService_RecordAnswers_Validation(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *RecordAnswersRequest
	}{
		{"empty batch", &RecordAnswersRequest{}},
		{"rating too high", &RecordAnswersRequest{Answers: []AnswerRequest{{QuestionID: "C1", Rating: 6}}}},
		{"unknown question", &RecordAnswersRequest{Answers: []AnswerRequest{{QuestionID: "Z1", Rating: 3}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.RecordAnswers(ctx, session.SessionID, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestSessionService_SetRespondent(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	updated, err := service.SetRespondent(ctx, session.SessionID, &SetRespondentRequest{
		Name:  "Riley Park",
		Email: "riley@example.com",
		Role:  models.RoleYDP,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Respondent)
	assert.Equal(t, models.RoleYDP, updated.Respondent.Role)
}

func TestSessionService_SetRespondent_Validation(t *testing.T) {
	service := newTestSessionService(newFakeSessionRepository())
	ctx := context.Background()

	session, err := service.Start(ctx)
	require.NoError(t, err)

	tests := []struct {
		name string
		req  *SetRespondentRequest
	}{
		{"missing name", &SetRespondentRequest{Email: "a@b.com", Role: models.RoleYDP}},
		{"bad email", &SetRespondentRequest{Name: "A", Email: "not-an-email", Role: models.RoleYDP}},
		{"unknown role", &SetRespondentRequest{Name: "A", Email: "a@b.com", Role: "Manager"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SetRespondent(ctx, session.SessionID, tt.req)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
		})
	}
}

func TestSessionService_Reset(t *testing.T) {
	repo := newFakeSessionRepository()
	service := newTestSessionService(repo)
	ctx := context.Background()

	started, err := service.Start(ctx)
	require.NoError(t, err)

	_, err = service.SetRespondent(ctx, started.SessionID, &SetRespondentRequest{
		Name: "Riley Park", Email: "riley@example.com", Role: models.RoleShiftSupervisor,
	})
	require.NoError(t, err)
	_, err = service.RecordAnswers(ctx, started.SessionID, &RecordAnswersRequest{
		Answers: []AnswerRequest{{QuestionID: "C1", Rating: 5}},
	})
	require.NoError(t, err)

	before, err := repo.GetByID(ctx, started.SessionID)
	require.NoError(t, err)
	orderBefore := append([]string(nil), before.CommunicationOrder...)
	submitted := time.Now()
	before.SubmittedAt = &submitted
	require.NoError(t, repo.Update(ctx, before))

	reset, err := service.Reset(ctx, started.SessionID)
	require.NoError(t, err)

	assert.Equal(t, 0, reset.Answered)
	assert.Nil(t, reset.SubmittedAt)
	require.NotNil(t, reset.Respondent, "identity survives a reset")
	assert.Equal(t, "Riley Park", reset.Respondent.Name)

	after, err := repo.GetByID(ctx, started.SessionID)
	require.NoError(t, err)
	assert.Equal(t, orderBefore, after.CommunicationOrder, "question order survives a reset")
}

func TestSessionService_LifecycleEvents(t *testing.T) {
	repo := newFakeSessionRepository()
	publisher := events.NewMockEventPublisher(testLogger())
	service := NewSessionService(repo, publisher, testLogger(), validator.New(), time.Hour)
	ctx := context.Background()

	started, err := service.Start(ctx)
	require.NoError(t, err)
	_, err = service.Reset(ctx, started.SessionID)
	require.NoError(t, err)

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 2)
	assert.Equal(t, events.EventSessionStarted, published[0].Type)
	assert.Equal(t, events.EventSessionReset, published[1].Type)
}

func TestSessionService_PruneExpired(t *testing.T) {
	repo := newFakeSessionRepository()
	service := NewSessionService(repo, events.NewMockEventPublisher(testLogger()), testLogger(), validator.New(), time.Hour)
	ctx := context.Background()

	fresh, err := service.Start(ctx)
	require.NoError(t, err)

	stale := &models.Session{
		ID:        "stale",
		Answers:   make(models.AnswerSet),
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, stale))

	pruned, err := service.PruneExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = repo.GetByID(ctx, "stale")
	assert.True(t, IsNotFound(err))
	_, err = repo.GetByID(ctx, fresh.SessionID)
	assert.NoError(t, err)
}
