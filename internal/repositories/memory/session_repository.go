package memory

import (
	"context"
	"sync"
	"time"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/repositories"
	"github.com/elmcrest/compass-service/internal/services"
)

// SessionRepository keeps sessions in process memory. Sessions are
// short-lived and disposable, so a mutex-guarded map is the whole store.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*models.Session),
	}
}

var _ repositories.SessionRepository = (*SessionRepository)(nil)

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return services.ErrSessionExists
	}
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, services.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (r *SessionRepository) Update(ctx context.Context, session *models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return services.ErrSessionNotFound
	}
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return services.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepository) PruneExpired(ctx context.Context, cutoff time.Time) (int, error) {
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

// cloneSession copies the session so callers never share map or slice
// state with the store.
func cloneSession(s *models.Session) *models.Session {
	out := *s
	out.Answers = s.Answers.Clone()
	out.CommunicationOrder = append([]string(nil), s.CommunicationOrder...)
	out.MotivationOrder = append([]string(nil), s.MotivationOrder...)
	if s.SubmittedAt != nil {
		ts := *s.SubmittedAt
		out.SubmittedAt = &ts
	}
	return &out
}
