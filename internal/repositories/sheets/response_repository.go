package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/repositories"
	"github.com/elmcrest/compass-service/internal/services"
	"github.com/elmcrest/compass-service/internal/utils"
)

// The Apps Script web endpoint only accepts simple requests, so the
// submit body goes out as text/plain even though it carries JSON.
const submitContentType = "text/plain;charset=utf-8"

// timestampLayouts covers the formats the sheet has been observed to
// return for the Timestamp column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"1/2/2006 15:04:05",
}

// ResponseRepository talks to the spreadsheet-backed web endpoint: a
// POST for new submissions and a GET for the accumulated response log.
type ResponseRepository struct {
	httpClient   *http.Client
	submitURL    string
	responsesURL string
	logger       utils.Logger
}

type Config struct {
	SubmitURL    string
	ResponsesURL string
	Timeout      time.Duration
	Logger       utils.Logger
}

func NewResponseRepository(cfg Config) *ResponseRepository {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &ResponseRepository{
		httpClient:   &http.Client{Timeout: timeout},
		submitURL:    cfg.SubmitURL,
		responsesURL: cfg.ResponsesURL,
		logger:       cfg.Logger,
	}
}

var _ repositories.ResponseRepository = (*ResponseRepository)(nil)

// Submit POSTs the payload to the storage endpoint. The endpoint does not
// return a readable confirmation in all deployments, so any delivery
// problem degrades to OutcomeUnconfirmed instead of an error: the
// respondent's local result must never be lost to a storage hiccup.
func (r *ResponseRepository) Submit(ctx context.Context, payload *models.SubmissionPayload) (models.SubmissionOutcome, error) {
	if r.submitURL == "" {
		return models.OutcomeUnconfirmed, services.ErrStorageNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.OutcomeUnconfirmed, fmt.Errorf("marshal submission payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.submitURL, bytes.NewReader(body))
	if err != nil {
		return models.OutcomeUnconfirmed, fmt.Errorf("build submission request: %w", err)
	}
	req.Header.Set("Content-Type", submitContentType)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.logger.Warn("Submission delivery unconfirmed", "error", err)
		return models.OutcomeUnconfirmed, nil
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		r.logger.Warn("Submission delivery unconfirmed", "status", resp.StatusCode)
		return models.OutcomeUnconfirmed, nil
	}

	return models.OutcomeAcknowledged, nil
}

// listingEnvelope is the response shape of the ?mode=responses endpoint.
type listingEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// ListResponses fetches and parses the full response log. Transport and
// decode failures are upstream errors; an envelope with status != "ok"
// is an application-level error reported by the endpoint itself.
func (r *ResponseRepository) ListResponses(ctx context.Context) ([]models.SubmissionRow, error) {
	if r.responsesURL == "" {
		return nil, services.ErrStorageNotConfigured
	}

	listURL, err := withModeResponses(r.responsesURL)
	if err != nil {
		return nil, fmt.Errorf("build listing url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build listing request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", services.ErrStorageUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", services.ErrStorageUnavailable, resp.StatusCode)
	}

	var envelope listingEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", services.ErrStorageUnavailable, err)
	}

	if envelope.Status != "ok" {
		msg := envelope.Message
		if msg == "" {
			msg = "unknown error from storage endpoint"
		}
		return nil, fmt.Errorf("%w: %s", services.ErrListingRejected, msg)
	}

	return parseRows(envelope), nil
}

// parseRows resolves column names to indices before reading any cell, so
// a reordered sheet still parses. Rows with bad timestamps are kept.
func parseRows(envelope listingEnvelope) []models.SubmissionRow {
	colIndex := func(name string) int {
		for i, col := range envelope.Columns {
			if col == name {
				return i
			}
		}
		return -1
	}

	tsIdx := colIndex("Timestamp")
	nameIdx := colIndex("Name")
	emailIdx := colIndex("Email")
	roleIdx := colIndex("Role")
	primaryCommIdx := colIndex("PrimaryComm")
	secondaryCommIdx := colIndex("SecondaryComm")
	primaryMotivIdx := colIndex("PrimaryMotiv")
	secondaryMotivIdx := colIndex("SecondaryMotiv")

	// Sheet cells arrive untyped; numbers and dates come through as
	// whatever the endpoint serialized them to.
	cell := func(row []interface{}, idx int) string {
		if idx < 0 || idx >= len(row) || row[idx] == nil {
			return ""
		}
		if s, ok := row[idx].(string); ok {
			return s
		}
		return fmt.Sprint(row[idx])
	}

	rows := make([]models.SubmissionRow, 0, len(envelope.Rows))
	for _, raw := range envelope.Rows {
		tsRaw := cell(raw, tsIdx)
		ts, valid := parseTimestamp(tsRaw)

		rows = append(rows, models.SubmissionRow{
			Timestamp:      ts,
			TimestampRaw:   tsRaw,
			TimestampValid: valid,
			Name:           cell(raw, nameIdx),
			Email:          cell(raw, emailIdx),
			Role:           cell(raw, roleIdx),
			PrimaryComm:    cell(raw, primaryCommIdx),
			SecondaryComm:  cell(raw, secondaryCommIdx),
			PrimaryMotiv:   cell(raw, primaryMotivIdx),
			SecondaryMotiv: cell(raw, secondaryMotivIdx),
		})
	}
	return rows
}

func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func withModeResponses(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("mode", "responses")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
