package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
	config LogConfig
}

type LogConfig struct {
	Service     string
	Component   string
	EnableDebug bool
}

func NewServiceLogger(logger *slog.Logger, config LogConfig) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", config.Service, "component", config.Component),
		config: config,
	}
}

// LogOperation records one service call with its outcome. Validation and
// not-found outcomes log below error level; they are expected traffic.
func (l *ServiceLogger) LogOperation(ctx context.Context, operation, sessionID string, duration time.Duration, err error) {
	level := slog.LevelInfo
	status := "success"

	if err != nil {
		level = slog.LevelError
		status = "error"

		switch {
		case IsValidation(err) || IsIncomplete(err):
			level = slog.LevelWarn
			status = "validation_error"
		case IsNotFound(err):
			level = slog.LevelInfo
			status = "not_found"
		case IsConflict(err):
			level = slog.LevelWarn
			status = "conflict"
		case IsStorageUnavailable(err) || IsListingRejected(err):
			level = slog.LevelWarn
			status = "storage_error"
		}
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("session_id", sessionID),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

// TimeOperation wraps a service call with duration tracking
func (l *ServiceLogger) TimeOperation(ctx context.Context, operation, sessionID string, fn func() error) error {
	start := time.Now()
	err := fn()
	l.LogOperation(ctx, operation, sessionID, time.Since(start), err)
	return err
}
