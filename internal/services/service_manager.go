package services

import (
	"log/slog"
	"time"

	"github.com/elmcrest/compass-service/internal/cache"
	"github.com/elmcrest/compass-service/internal/events"
	"github.com/elmcrest/compass-service/internal/repositories"
	"github.com/elmcrest/compass-service/internal/validator"
)

// ManagerConfig carries everything the service layer needs from the
// composition root.
type ManagerConfig struct {
	Sessions          repositories.SessionRepository
	Responses         repositories.ResponseRepository
	Cache             cache.CacheService
	Publisher         events.EventPublisher
	Logger            *slog.Logger
	Validator         *validator.Validator
	SessionTTL        time.Duration
	DashboardCacheTTL time.Duration
}

type serviceManager struct {
	session    SessionService
	scoring    ScoringService
	report     ReportService
	submission SubmissionService
	dashboard  DashboardService
}

func NewServiceManager(cfg ManagerConfig) ServiceManager {
	scoring := NewScoringService()
	report := NewReportService()

	return &serviceManager{
		session: NewSessionService(cfg.Sessions, cfg.Publisher, cfg.Logger, cfg.Validator, cfg.SessionTTL),
		scoring: scoring,
		report:  report,
		submission: NewSubmissionService(
			cfg.Sessions,
			cfg.Responses,
			scoring,
			report,
			cfg.Publisher,
			cfg.Logger,
		),
		dashboard: NewDashboardService(cfg.Responses, cfg.Cache, cfg.DashboardCacheTTL, cfg.Logger),
	}
}

func (m *serviceManager) Session() SessionService       { return m.session }
func (m *serviceManager) Scoring() ScoringService       { return m.scoring }
func (m *serviceManager) Report() ReportService         { return m.report }
func (m *serviceManager) Submission() SubmissionService { return m.submission }
func (m *serviceManager) Dashboard() DashboardService   { return m.dashboard }
