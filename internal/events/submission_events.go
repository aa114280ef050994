package events

import (
	"time"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/google/uuid"
)

// EventType represents different types of submission events
type EventType string

const (
	// Session events
	EventSessionStarted   EventType = "session.started"
	EventSessionCompleted EventType = "session.completed"
	EventSessionReset     EventType = "session.reset"

	// Submission events
	EventSubmissionRecorded    EventType = "submission.recorded"
	EventSubmissionUnconfirmed EventType = "submission.unconfirmed"
)

// SubmissionEvent is the base event structure for all compass events
type SubmissionEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Session event payloads

type SessionStartedEvent struct {
	SessionID string    `json:"session_id"`
	StartedAt time.Time `json:"started_at"`
}

type SessionResetEvent struct {
	SessionID string    `json:"session_id"`
	ResetAt   time.Time `json:"reset_at"`
}

// Submission event payloads

type SubmissionRecordedEvent struct {
	SessionID      string                   `json:"session_id"`
	Name           string                   `json:"name"`
	Email          string                   `json:"email"`
	Role           models.Role              `json:"role"`
	Outcome        models.SubmissionOutcome `json:"outcome"`
	PrimaryComm    models.Trait             `json:"primary_comm"`
	SecondaryComm  models.Trait             `json:"secondary_comm"`
	PrimaryMotiv   models.Trait             `json:"primary_motiv"`
	SecondaryMotiv models.Trait             `json:"secondary_motiv"`
	SubmittedAt    time.Time                `json:"submitted_at"`
}

// Event factory functions

func NewSessionStartedEvent(sessionID string, startedAt time.Time) *SubmissionEvent {
	return &SubmissionEvent{
		ID:        GenerateEventID(),
		Type:      EventSessionStarted,
		Timestamp: time.Now(),
		Source:    "compass-service",
		Version:   "1.0",
		Data: SessionStartedEvent{
			SessionID: sessionID,
			StartedAt: startedAt,
		},
	}
}

func NewSessionResetEvent(sessionID string, resetAt time.Time) *SubmissionEvent {
	return &SubmissionEvent{
		ID:        GenerateEventID(),
		Type:      EventSessionReset,
		Timestamp: time.Now(),
		Source:    "compass-service",
		Version:   "1.0",
		Data: SessionResetEvent{
			SessionID: sessionID,
			ResetAt:   resetAt,
		},
	}
}

func NewSubmissionRecordedEvent(sessionID string, respondent models.Respondent, result models.ScoreResult, outcome models.SubmissionOutcome, submittedAt time.Time) *SubmissionEvent {
	eventType := EventSubmissionRecorded
	if outcome == models.OutcomeUnconfirmed {
		eventType = EventSubmissionUnconfirmed
	}

	return &SubmissionEvent{
		ID:        GenerateEventID(),
		Type:      eventType,
		Timestamp: time.Now(),
		Source:    "compass-service",
		Version:   "1.0",
		Data: SubmissionRecordedEvent{
			SessionID:      sessionID,
			Name:           respondent.Name,
			Email:          respondent.Email,
			Role:           respondent.Role,
			Outcome:        outcome,
			PrimaryComm:    result.Communication.Primary,
			SecondaryComm:  result.Communication.Secondary,
			PrimaryMotiv:   result.Motivation.Primary,
			SecondaryMotiv: result.Motivation.Secondary,
			SubmittedAt:    submittedAt,
		},
	}
}

// GenerateEventID returns a unique identifier for an event
func GenerateEventID() string {
	return uuid.NewString()
}
