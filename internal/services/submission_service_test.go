package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/models"
)

// fakeResponseRepository records the submitted payload and answers with a
// configurable outcome.
type fakeResponseRepository struct {
	outcome   models.SubmissionOutcome
	submitErr error
	rows      []models.SubmissionRow
	listErr   error
	submitted []*models.SubmissionPayload
	listCalls int
}

func (r *fakeResponseRepository) Submit(ctx context.Context, payload *models.SubmissionPayload) (models.SubmissionOutcome, error) {
	r.submitted = append(r.submitted, payload)
	if r.submitErr != nil {
		return models.OutcomeUnconfirmed, r.submitErr
	}
	return r.outcome, nil
}

func (r *fakeResponseRepository) ListResponses(ctx context.Context) ([]models.SubmissionRow, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.rows, nil
}

func newSubmittableSession(t *testing.T, repo *fakeSessionRepository) string {
	t.Helper()
	ctx := context.Background()
	service := newTestSessionService(repo)

	started, err := service.Start(ctx)
	require.NoError(t, err)

	session, err := repo.GetByID(ctx, started.SessionID)
	require.NoError(t, err)
	session.Answers = fullAnswerSet(2, map[string]int{
		"C1": 5, "C2": 5, "C3": 5,
		"M4": 5, "M5": 5, "M6": 5,
	})
	session.Respondent = models.Respondent{
		Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP,
	}
	require.NoError(t, repo.Update(ctx, session))

	return started.SessionID
}

func newTestSubmissionService(sessions *fakeSessionRepository, responses *fakeResponseRepository, publisher events.EventPublisher) SubmissionService {
	return NewSubmissionService(
		sessions,
		responses,
		NewScoringService(),
		NewReportService(),
		publisher,
		testLogger(),
	)
}

func TestSubmissionService_Submit(t *testing.T) {
	sessions := newFakeSessionRepository()
	responses := &fakeResponseRepository{outcome: models.OutcomeAcknowledged}
	publisher := events.NewMockEventPublisher(testLogger())
	service := newTestSubmissionService(sessions, responses, publisher)

	sessionID := newSubmittableSession(t, sessions)
	ctx := context.Background()

	result, err := service.Submit(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, sessionID, result.SessionID)
	assert.Equal(t, models.OutcomeAcknowledged, result.Outcome)
	assert.False(t, result.SubmittedAt.IsZero())
	require.NotNil(t, result.Result)
	assert.Equal(t, models.TraitDirector, result.Result.Scores.Communication.Primary)
	assert.NotEmpty(t, result.Result.Report)

	// Payload carries the respondent, answers and both score blocks.
	require.Len(t, responses.submitted, 1)
	payload := responses.submitted[0]
	assert.Equal(t, "Riley Park", payload.Name)
	assert.Equal(t, models.RoleYDP, payload.Role)
	assert.Len(t, payload.Answers, 24)
	assert.Equal(t, models.TraitDirector, payload.Scores.PrimaryComm)
	assert.Equal(t, models.TraitPurpose, payload.Scores.PrimaryMotiv)
	assert.Equal(t, 15, payload.Scores.Communication[models.TraitDirector])

	parsedTimestamp, err := time.Parse(time.RFC3339, payload.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsedTimestamp, time.Minute)

	// Session is marked submitted.
	stored, err := sessions.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.NotNil(t, stored.SubmittedAt)

	// One submission event went out.
	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventSubmissionRecorded, published[0].Type)
}

func TestSubmissionService_Submit_UnconfirmedDelivery(t *testing.T) {
	sessions := newFakeSessionRepository()
	responses := &fakeResponseRepository{outcome: models.OutcomeUnconfirmed}
	publisher := events.NewMockEventPublisher(testLogger())
	service := newTestSubmissionService(sessions, responses, publisher)

	sessionID := newSubmittableSession(t, sessions)

	result, err := service.Submit(context.Background(), sessionID)
	require.NoError(t, err, "delivery trouble must not fail the submission")
	assert.Equal(t, models.OutcomeUnconfirmed, result.Outcome)
	require.NotNil(t, result.Result, "the respondent still gets the full report")

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventSubmissionUnconfirmed, published[0].Type)
}

func TestSubmissionService_Submit_StorageNotConfigured(t *testing.T) {
	sessions := newFakeSessionRepository()
	responses := &fakeResponseRepository{submitErr: ErrStorageNotConfigured}
	service := newTestSubmissionService(sessions, responses, events.NewMockEventPublisher(testLogger()))

	sessionID := newSubmittableSession(t, sessions)

	result, err := service.Submit(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeUnconfirmed, result.Outcome)
}

func TestSubmissionService_Submit_Gates(t *testing.T) {
	sessions := newFakeSessionRepository()
	service := newTestSubmissionService(sessions, &fakeResponseRepository{}, events.NewMockEventPublisher(testLogger()))
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		_, err := service.Submit(ctx, "missing")
		assert.True(t, IsNotFound(err))
	})

	t.Run("incomplete answers", func(t *testing.T) {
		started, err := newTestSessionService(sessions).Start(ctx)
		require.NoError(t, err)

		_, err = service.Submit(ctx, started.SessionID)
		assert.ErrorIs(t, err, ErrIncompleteAnswers)
	})

	t.Run("missing identity", func(t *testing.T) {
		started, err := newTestSessionService(sessions).Start(ctx)
		require.NoError(t, err)

		session, err := sessions.GetByID(ctx, started.SessionID)
		require.NoError(t, err)
		session.Answers = fullAnswerSet(3, nil)
		require.NoError(t, sessions.Update(ctx, session))

		_, err = service.Submit(ctx, started.SessionID)
		assert.ErrorIs(t, err, ErrIdentityMissing)
	})
}

func TestSubmissionService_Resubmit(t *testing.T) {
	sessions := newFakeSessionRepository()
	responses := &fakeResponseRepository{outcome: models.OutcomeAcknowledged}
	service := newTestSubmissionService(sessions, responses, events.NewMockEventPublisher(testLogger()))

	sessionID := newSubmittableSession(t, sessions)
	ctx := context.Background()

	_, err := service.Submit(ctx, sessionID)
	require.NoError(t, err)
	_, err = service.Submit(ctx, sessionID)
	require.NoError(t, err, "resubmission appends another row rather than failing")

	assert.Len(t, responses.submitted, 2)
}

func TestSubmissionService_Result(t *testing.T) {
	sessions := newFakeSessionRepository()
	service := newTestSubmissionService(sessions, &fakeResponseRepository{}, events.NewMockEventPublisher(testLogger()))

	sessionID := newSubmittableSession(t, sessions)
	ctx := context.Background()

	result, err := service.Result(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, models.TraitDirector, result.Scores.Communication.Primary)
	assert.NotEmpty(t, result.Report)

	// A result preview never writes anything.
	stored, err := sessions.GetByID(ctx, sessionID)
	require.NoError(t, err)
	assert.Nil(t, stored.SubmittedAt)
}
