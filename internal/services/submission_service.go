package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/repositories"
)

type submissionService struct {
	sessions  repositories.SessionRepository
	responses repositories.ResponseRepository
	scoring   ScoringService
	report    ReportService
	publisher events.EventPublisher
	logger    *slog.Logger
	ops       *ServiceLogger
	now       func() time.Time
}

func NewSubmissionService(
	sessions repositories.SessionRepository,
	responses repositories.ResponseRepository,
	scoring ScoringService,
	report ReportService,
	publisher events.EventPublisher,
	logger *slog.Logger,
) SubmissionService {
	return &submissionService{
		sessions:  sessions,
		responses: responses,
		scoring:   scoring,
		report:    report,
		publisher: publisher,
		logger:    logger,
		ops:       NewServiceLogger(logger, LogConfig{Service: "compass", Component: "submission"}),
		now:       time.Now,
	}
}

// Submit finalizes a session: gate on completeness, score, deliver the
// record to the storage endpoint, and hand back the full result. Storage
// trouble degrades the outcome to unconfirmed; the respondent's result
// is never withheld because a spreadsheet was unreachable.
func (s *submissionService) Submit(ctx context.Context, sessionID string) (*SubmissionResponse, error) {
	var resp *SubmissionResponse
	err := s.ops.TimeOperation(ctx, "submit", sessionID, func() error {
		var err error
		resp, err = s.submit(ctx, sessionID)
		return err
	})
	return resp, err
}

func (s *submissionService) submit(ctx context.Context, sessionID string) (*SubmissionResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Answers.Complete() {
		return nil, ErrIncompleteAnswers
	}
	if !session.Respondent.Complete() {
		return nil, ErrIdentityMissing
	}

	scores, err := s.scoring.Score(session.Answers)
	if err != nil {
		return nil, fmt.Errorf("score session: %w", err)
	}

	submittedAt := s.now().UTC()
	payload := buildSubmissionPayload(session, scores, submittedAt)

	outcome, err := s.responses.Submit(ctx, payload)
	if err != nil {
		// Misconfiguration is the only hard failure; delivery trouble
		// already degraded to unconfirmed inside the repository.
		s.logger.Warn("Submission not delivered", "session_id", sessionID, "error", err)
		outcome = models.OutcomeUnconfirmed
	}

	session.SubmittedAt = &submittedAt
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("mark session submitted: %w", err)
	}

	if s.publisher != nil {
		event := events.NewSubmissionRecordedEvent(session.ID, session.Respondent, *scores, outcome, submittedAt)
		if err := s.publisher.PublishSubmissionEvent(ctx, event); err != nil {
			s.logger.Warn("Submission event not published", "session_id", sessionID, "error", err)
		}
	}

	s.logger.Info("Session submitted",
		"session_id", sessionID,
		"outcome", outcome,
		"primary_comm", scores.Communication.Primary,
		"primary_motiv", scores.Motivation.Primary)

	return &SubmissionResponse{
		SessionID:   session.ID,
		Outcome:     outcome,
		SubmittedAt: submittedAt,
		Result:      s.report.BuildResult(session, scores, submittedAt),
	}, nil
}

// Result recomputes the result snapshot for a complete session without
// submitting anything.
func (s *submissionService) Result(ctx context.Context, sessionID string) (*ResultResponse, error) {
	var resp *ResultResponse
	err := s.ops.TimeOperation(ctx, "result", sessionID, func() error {
		var err error
		resp, err = s.result(ctx, sessionID)
		return err
	})
	return resp, err
}

func (s *submissionService) result(ctx context.Context, sessionID string) (*ResultResponse, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Answers.Complete() {
		return nil, ErrIncompleteAnswers
	}
	if !session.Respondent.Complete() {
		return nil, ErrIdentityMissing
	}

	scores, err := s.scoring.Score(session.Answers)
	if err != nil {
		return nil, fmt.Errorf("score session: %w", err)
	}

	return s.report.BuildResult(session, scores, s.now().UTC()), nil
}

func buildSubmissionPayload(session *models.Session, scores *models.ScoreResult, submittedAt time.Time) *models.SubmissionPayload {
	return &models.SubmissionPayload{
		Timestamp: submittedAt.Format(time.RFC3339),
		Name:      session.Respondent.Name,
		Email:     session.Respondent.Email,
		Role:      session.Respondent.Role,
		Answers:   session.Answers.Clone(),
		Scores: models.SubmissionScores{
			Communication:  scores.Communication.Totals,
			Motivation:     scores.Motivation.Totals,
			PrimaryComm:    scores.Communication.Primary,
			SecondaryComm:  scores.Communication.Secondary,
			PrimaryMotiv:   scores.Motivation.Primary,
			SecondaryMotiv: scores.Motivation.Secondary,
		},
	}
}
