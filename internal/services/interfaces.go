package services

import (
	"context"
	"time"

	"github.com/elmcrest/compass-service/internal/models"
)

// ===== REQUEST DTOs =====

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required,question_id"`
	Rating     int    `json:"rating" validate:"required,likert"`
}

type RecordAnswersRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

type SetRespondentRequest struct {
	Name  string      `json:"name" validate:"required,min=1,max=200"`
	Email string      `json:"email" validate:"required,email,max=200"`
	Role  models.Role `json:"role" validate:"required,compass_role"`
}

// ===== RESPONSE DTOs =====

type QuestionView struct {
	ID       string          `json:"id"`
	Category models.Category `json:"category"`
	Text     string          `json:"text"`
}

type SessionResponse struct {
	SessionID   string                `json:"session_id"`
	CreatedAt   time.Time             `json:"created_at"`
	Answered    int                   `json:"answered"`
	Total       int                   `json:"total"`
	Complete    bool                  `json:"complete"`
	Respondent  *SetRespondentRequest `json:"respondent,omitempty"`
	SubmittedAt *time.Time            `json:"submitted_at,omitempty"`
}

type SessionQuestionsResponse struct {
	SessionID     string         `json:"session_id"`
	Communication []QuestionView `json:"communication"`
	Motivation    []QuestionView `json:"motivation"`
}

// NarrativeList mirrors content.List for the JSON surface.
type NarrativeList struct {
	Heading string   `json:"heading,omitempty"`
	Items   []string `json:"items"`
	Prompt  bool     `json:"prompt,omitempty"`
}

// NarrativeBlock is one personalized narrative unit of the result.
type NarrativeBlock struct {
	Label   string          `json:"label"`
	Summary string          `json:"summary"`
	Lists   []NarrativeList `json:"lists,omitempty"`
}

// ResultResponse is the full structured result snapshot: scores, the
// personalized narrative blocks, and the plain-text report.
type ResultResponse struct {
	SessionID     string             `json:"session_id"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Role          models.Role        `json:"role"`
	GeneratedAt   time.Time          `json:"generated_at"`
	Scores        models.ScoreResult `json:"scores"`
	Communication NarrativeSection   `json:"communication"`
	Motivation    NarrativeSection   `json:"motivation"`
	Integrated    *NarrativeBlock    `json:"integrated,omitempty"`
	Report        string             `json:"report"`
}

// NarrativeSection groups the single-trait deep dive with the pair block
// for one taxonomy. Fallback carries the generic paragraph when no
// bespoke pair block exists.
type NarrativeSection struct {
	Primary  *NarrativeBlock `json:"primary,omitempty"`
	Pair     *NarrativeBlock `json:"pair,omitempty"`
	Fallback string          `json:"fallback,omitempty"`
}

type SubmissionResponse struct {
	SessionID   string                   `json:"session_id"`
	Outcome     models.SubmissionOutcome `json:"outcome"`
	SubmittedAt time.Time                `json:"submitted_at"`
	Result      *ResultResponse          `json:"result"`
}

// DashboardStats are the aggregate counters over the response log.
type DashboardStats struct {
	TotalSubmissions   int                   `json:"total_submissions"`
	RoleCounts         map[string]int        `json:"role_counts"`
	PrimaryCommCounts  map[string]int        `json:"primary_comm_counts"`
	PrimaryMotivCounts map[string]int        `json:"primary_motiv_counts"`
	MostCommonComm     string                `json:"most_common_comm"`
	MostCommonMotiv    string                `json:"most_common_motiv"`
	LastSubmission     *models.SubmissionRow `json:"last_submission,omitempty"`
}

type DashboardResponse struct {
	Stats  DashboardStats         `json:"stats"`
	Recent []models.SubmissionRow `json:"recent"`
}

// ===== SERVICE INTERFACES =====

// SessionService manages the survey session lifecycle
type SessionService interface {
	Start(ctx context.Context) (*SessionResponse, error)
	Get(ctx context.Context, id string) (*SessionResponse, error)
	Questions(ctx context.Context, id string) (*SessionQuestionsResponse, error)
	RecordAnswers(ctx context.Context, id string, req *RecordAnswersRequest) (*SessionResponse, error)
	SetRespondent(ctx context.Context, id string, req *SetRespondentRequest) (*SessionResponse, error)
	Reset(ctx context.Context, id string) (*SessionResponse, error)
	PruneExpired(ctx context.Context) (int, error)
}

// ScoringService turns a complete answer set into ranked trait scores
type ScoringService interface {
	Score(answers models.AnswerSet) (*models.ScoreResult, error)
}

// ReportService assembles the personalized result from scores and the
// narrative tables
type ReportService interface {
	BuildResult(session *models.Session, scores *models.ScoreResult, generatedAt time.Time) *ResultResponse
	BuildReportText(respondent models.Respondent, scores *models.ScoreResult, generatedAt time.Time) string
}

// SubmissionService finalizes a session: score, persist, report
type SubmissionService interface {
	Submit(ctx context.Context, sessionID string) (*SubmissionResponse, error)
	Result(ctx context.Context, sessionID string) (*ResultResponse, error)
}

// DashboardService serves the read-only aggregate view of submissions
type DashboardService interface {
	Overview(ctx context.Context, roleFilter string) (*DashboardResponse, error)
	Submissions(ctx context.Context, roleFilter string) ([]models.SubmissionRow, error)
	ExportXLSX(ctx context.Context, roleFilter string) ([]byte, error)
}

// ServiceManager bundles every service the handlers need
type ServiceManager interface {
	Session() SessionService
	Scoring() ScoringService
	Report() ReportService
	Submission() SubmissionService
	Dashboard() DashboardService
}
