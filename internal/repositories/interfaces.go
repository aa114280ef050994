package repositories

import (
	"context"
	"time"

	"github.com/elmcrest/compass-service/internal/models"
)

// SessionRepository stores in-flight survey sessions
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error

	// PruneExpired removes sessions created before the cutoff and
	// returns how many were dropped
	PruneExpired(ctx context.Context, cutoff time.Time) (int, error)
}

// ResponseRepository persists completed submissions and reads back the
// full response log
type ResponseRepository interface {
	Submit(ctx context.Context, payload *models.SubmissionPayload) (models.SubmissionOutcome, error)
	ListResponses(ctx context.Context) ([]models.SubmissionRow, error)
}
