package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/repositories"
	"github.com/elmcrest/compass-service/internal/validator"
	"github.com/google/uuid"
)

type sessionService struct {
	repo       repositories.SessionRepository
	publisher  events.EventPublisher
	logger     *slog.Logger
	validator  *validator.Validator
	sessionTTL time.Duration
}

func NewSessionService(repo repositories.SessionRepository, publisher events.EventPublisher, logger *slog.Logger, v *validator.Validator, sessionTTL time.Duration) SessionService {
	return &sessionService{
		repo:       repo,
		publisher:  publisher,
		logger:     logger,
		validator:  v,
		sessionTTL: sessionTTL,
	}
}

// publishEvent is best effort; lifecycle events never fail the operation.
func (s *sessionService) publishEvent(ctx context.Context, event *events.SubmissionEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSubmissionEvent(ctx, event); err != nil {
		s.logger.Warn("Session event not published", "type", event.Type, "error", err)
	}
}

// Start creates a fresh session with a shuffled presentation order per
// category. The shuffle happens exactly once here; every later fetch of
// the questions sees the same order.
func (s *sessionService) Start(ctx context.Context) (*SessionResponse, error) {
	session := &models.Session{
		ID:                 uuid.NewString(),
		Answers:            make(models.AnswerSet),
		CommunicationOrder: shuffledQuestionIDs(models.CategoryCommunication),
		MotivationOrder:    shuffledQuestionIDs(models.CategoryMotivation),
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.publishEvent(ctx, events.NewSessionStartedEvent(session.ID, session.CreatedAt))
	s.logger.Info("Session started", "session_id", session.ID)
	return toSessionResponse(session), nil
}

func (s *sessionService) Get(ctx context.Context, id string) (*SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Questions returns the bank in the session's memoized order.
func (s *sessionService) Questions(ctx context.Context, id string) (*SessionQuestionsResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &SessionQuestionsResponse{
		SessionID:     session.ID,
		Communication: questionViews(models.CategoryCommunication, session.CommunicationOrder),
		Motivation:    questionViews(models.CategoryMotivation, session.MotivationOrder),
	}, nil
}

// RecordAnswers upserts ratings. The whole batch is validated before any
// answer lands, so a bad entry never leaves a half-applied batch behind.
func (s *sessionService) RecordAnswers(ctx context.Context, id string, req *RecordAnswersRequest) (*SessionResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, answer := range req.Answers {
		if _, ok := models.QuestionByID(answer.QuestionID); !ok {
			return nil, ErrUnknownQuestion
		}
		if answer.Rating < models.LikertMin || answer.Rating > models.LikertMax {
			return nil, ErrRatingOutOfRange
		}
	}

	for _, answer := range req.Answers {
		session.Answers[answer.QuestionID] = answer.Rating
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) SetRespondent(ctx context.Context, id string, req *SetRespondentRequest) (*SessionResponse, error) {
	if err := s.validator.ValidateStruct(req); err != nil {
		return nil, validator.ToValidationErrors(err)
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Respondent = models.Respondent{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	return toSessionResponse(session), nil
}

// Reset clears every answer and the submission mark in one replacement.
// Identity and question order survive: the respondent retakes the same
// survey, in the same order, without re-entering who they are.
func (s *sessionService) Reset(ctx context.Context, id string) (*SessionResponse, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Answers = make(models.AnswerSet)
	session.SubmittedAt = nil

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.publishEvent(ctx, events.NewSessionResetEvent(session.ID, time.Now().UTC()))
	s.logger.Info("Session reset", "session_id", session.ID)
	return toSessionResponse(session), nil
}

// PruneExpired drops sessions older than the configured TTL.
func (s *sessionService) PruneExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().UTC().Add(-s.sessionTTL)
	pruned, err := s.repo.PruneExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	if pruned > 0 {
		s.logger.Info("Pruned expired sessions", "count", pruned)
	}
	return pruned, nil
}

// shuffledQuestionIDs runs a Fisher-Yates shuffle over the category's
// question IDs.
func shuffledQuestionIDs(category models.Category) []string {
	questions := models.QuestionsByCategory(category)
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	for i := len(ids) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

func questionViews(category models.Category, order []string) []QuestionView {
	views := make([]QuestionView, 0, len(order))
	for _, id := range order {
		q, ok := models.QuestionByID(id)
		if !ok {
			continue
		}
		views = append(views, QuestionView{
			ID:       q.ID,
			Category: category,
			Text:     q.Text,
		})
	}
	return views
}

func toSessionResponse(session *models.Session) *SessionResponse {
	resp := &SessionResponse{
		SessionID:   session.ID,
		CreatedAt:   session.CreatedAt,
		Answered:    len(session.Answers),
		Total:       models.QuestionCount(),
		Complete:    session.Answers.Complete(),
		SubmittedAt: session.SubmittedAt,
	}
	if session.Respondent != (models.Respondent{}) {
		resp.Respondent = &SetRespondentRequest{
			Name:  session.Respondent.Name,
			Email: session.Respondent.Email,
			Role:  session.Respondent.Role,
		}
	}
	return resp
}
