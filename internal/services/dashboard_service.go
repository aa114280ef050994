package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/elmcrest/compass-service/internal/cache"
	"github.com/elmcrest/compass-service/internal/models"
	"github.com/elmcrest/compass-service/internal/repositories"
)

const (
	dashboardCacheKey = "dashboard:responses"
	recentLimit       = 25
	unknownRoleLabel  = "Unknown"
)

type dashboardService struct {
	responses repositories.ResponseRepository
	cache     cache.CacheService
	cacheTTL  time.Duration
	logger    *slog.Logger
}

func NewDashboardService(
	responses repositories.ResponseRepository,
	cacheService cache.CacheService,
	cacheTTL time.Duration,
	logger *slog.Logger,
) DashboardService {
	return &dashboardService{
		responses: responses,
		cache:     cacheService,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Overview returns the aggregate counters plus the most recent submissions,
// optionally narrowed to one role.
func (s *dashboardService) Overview(ctx context.Context, roleFilter string) (*DashboardResponse, error) {
	rows, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByRole(rows, roleFilter)

	recent := filtered
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	return &DashboardResponse{
		Stats:  aggregate(filtered),
		Recent: recent,
	}, nil
}

// Submissions returns every parsed row, most recent first.
func (s *dashboardService) Submissions(ctx context.Context, roleFilter string) ([]models.SubmissionRow, error) {
	rows, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	return filterByRole(rows, roleFilter), nil
}

// ExportXLSX renders the filtered submission log as a spreadsheet.
func (s *dashboardService) ExportXLSX(ctx context.Context, roleFilter string) ([]byte, error) {
	rows, err := s.loadRows(ctx)
	if err != nil {
		return nil, err
	}
	rows = filterByRole(rows, roleFilter)

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{
		"Timestamp", "Name", "Email", "Role",
		"PrimaryComm", "SecondaryComm", "PrimaryMotiv", "SecondaryMotiv",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: header row: %w", err)
	}

	for i, row := range rows {
		timestamp := row.TimestampRaw
		if row.TimestampValid {
			timestamp = row.Timestamp.Format(time.RFC3339)
		}
		cells := []interface{}{
			timestamp, row.Name, row.Email, row.Role,
			row.PrimaryComm, row.SecondaryComm, row.PrimaryMotiv, row.SecondaryMotiv,
		}
		axis := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("export: row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// loadRows fetches the response log through a cache-aside read. Cache
// trouble never fails the request; it just costs a fetch.
func (s *dashboardService) loadRows(ctx context.Context) ([]models.SubmissionRow, error) {
	var cached []models.SubmissionRow
	if err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil {
		return cached, nil
	}

	rows, err := s.responses.ListResponses(ctx)
	if err != nil {
		return nil, err
	}

	sortMostRecentFirst(rows)

	if err := s.cache.Set(ctx, dashboardCacheKey, rows, s.cacheTTL); err != nil {
		s.logger.Debug("Dashboard cache write skipped", "error", err)
	}
	return rows, nil
}

// sortMostRecentFirst orders rows by timestamp descending. Rows whose
// timestamps could not be parsed keep their retrieval position relative
// to everything else.
func sortMostRecentFirst(rows []models.SubmissionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.TimestampValid || !b.TimestampValid {
			return false
		}
		return a.Timestamp.After(b.Timestamp)
	})
}

func filterByRole(rows []models.SubmissionRow, roleFilter string) []models.SubmissionRow {
	if roleFilter == "" {
		return rows
	}
	filtered := make([]models.SubmissionRow, 0, len(rows))
	for _, row := range rows {
		if strings.EqualFold(row.Role, roleFilter) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func aggregate(rows []models.SubmissionRow) DashboardStats {
	stats := DashboardStats{
		TotalSubmissions:   len(rows),
		RoleCounts:         make(map[string]int),
		PrimaryCommCounts:  make(map[string]int),
		PrimaryMotivCounts: make(map[string]int),
	}

	for _, row := range rows {
		role := row.Role
		if role == "" {
			role = unknownRoleLabel
		}
		stats.RoleCounts[role]++

		if row.PrimaryComm != "" {
			stats.PrimaryCommCounts[row.PrimaryComm]++
		}
		if row.PrimaryMotiv != "" {
			stats.PrimaryMotivCounts[row.PrimaryMotiv]++
		}
	}

	stats.MostCommonComm = mostCommon(stats.PrimaryCommCounts)
	stats.MostCommonMotiv = mostCommon(stats.PrimaryMotivCounts)

	if len(rows) > 0 {
		last := rows[0]
		stats.LastSubmission = &last
	}
	return stats
}

// mostCommon picks the key with the highest count. Ties break toward the
// lexically smaller key so the answer is deterministic.
func mostCommon(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && best != "" && key < best) {
			best = key
			bestCount = count
		}
	}
	return best
}
