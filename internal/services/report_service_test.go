package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/models"
)

func testScores(t *testing.T) *models.ScoreResult {
	t.Helper()
	scores, err := NewScoringService().Score(fullAnswerSet(2, map[string]int{
		"C1": 5, "C2": 5, "C3": 5, // Director
		"C4": 4, "C5": 4, "C6": 4, // Encourager
		"M4": 5, "M5": 5, "M6": 5, // Purpose
		"M1": 4, "M2": 4, "M3": 4, // Growth
	}))
	require.NoError(t, err)
	return scores
}

func TestReportService_BuildReportText_Structure(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP}
	generatedAt := time.Date(2025, 3, 5, 14, 30, 5, 0, time.UTC)

	report := service.BuildReportText(respondent, testScores(t), generatedAt)
	lines := strings.Split(report, "\n")

	assert.Equal(t, "Elmcrest Communication & Motivation Compass – Results", lines[0])
	assert.Equal(t, strings.Repeat("=", 50), lines[1])
	assert.Equal(t, "Name: Riley Park", lines[2])
	assert.Equal(t, "Email: riley@example.com", lines[3])
	assert.Equal(t, "Role: YDP", lines[4])
	assert.Equal(t, "Date: 3/5/2025, 2:30:05 PM", lines[5])
	assert.Equal(t, "", lines[6])

	assert.Contains(t, lines, "COMMUNICATION PROFILE")
	assert.Contains(t, lines, strings.Repeat("-", 21))
	assert.Contains(t, lines, "Primary style: Director")
	assert.Contains(t, lines, "Secondary style: Encourager")

	assert.Contains(t, lines, "MOTIVATION PROFILE")
	assert.Contains(t, lines, strings.Repeat("-", 18))
	assert.Contains(t, lines, "Primary driver: Purpose")
	assert.Contains(t, lines, "Secondary driver: Growth")

	assert.Contains(t, lines, "INTEGRATED PROFILE (Communication × Motivation)")
	assert.Contains(t, lines, strings.Repeat("-", 46))

	assert.Equal(t, "End of results.", lines[len(lines)-1])
}

func TestReportService_BuildReportText_Totals(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP}

	report := service.BuildReportText(respondent, testScores(t), time.Now())

	// Totals print in declaration order regardless of ranking.
	assert.Contains(t, report, "- Director: 15 (out of 15)")
	assert.Contains(t, report, "- Encourager: 12 (out of 15)")
	assert.Contains(t, report, "- Facilitator: 6 (out of 15)")
	assert.Contains(t, report, "- Tracker: 6 (out of 15)")
	assert.Contains(t, report, "- Purpose: 15 (out of 15)")

	directorIdx := strings.Index(report, "- Director:")
	trackerIdx := strings.Index(report, "- Tracker:")
	assert.Less(t, directorIdx, trackerIdx)
}

func TestReportService_BuildReportText_Personalized(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com", Role: models.RoleShiftSupervisor}

	report := service.BuildReportText(respondent, testScores(t), time.Now())

	assert.Contains(t, report, "in your role as Shift Supervisor:")
	assert.NotContains(t, report, "Elmcrest Program Supervisor")
}

func TestReportService_BuildReportText_DefaultsRole(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com"}

	report := service.BuildReportText(respondent, testScores(t), time.Now())

	// Missing role falls back to the voice the copy is written in.
	assert.Contains(t, report, "Role: Program Supervisor")
}

func TestReportService_BuildReportText_Deterministic(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP}
	generatedAt := time.Date(2025, 3, 5, 14, 30, 5, 0, time.UTC)
	scores := testScores(t)

	first := service.BuildReportText(respondent, scores, generatedAt)
	second := service.BuildReportText(respondent, scores, generatedAt)
	assert.Equal(t, first, second)
}

func TestReportService_BuildResult(t *testing.T) {
	service := NewReportService()
	session := &models.Session{
		ID: "sess-1",
		Respondent: models.Respondent{
			Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP,
		},
	}
	generatedAt := time.Date(2025, 3, 5, 14, 30, 5, 0, time.UTC)

	result := service.BuildResult(session, testScores(t), generatedAt)

	assert.Equal(t, "sess-1", result.SessionID)
	assert.Equal(t, models.RoleYDP, result.Role)
	assert.Equal(t, generatedAt, result.GeneratedAt)

	require.NotNil(t, result.Communication.Primary)
	assert.Equal(t, "Director", result.Communication.Primary.Label)
	require.NotNil(t, result.Communication.Pair)
	assert.Empty(t, result.Communication.Fallback, "a bespoke pair block exists, no fallback")

	require.NotNil(t, result.Motivation.Primary)
	require.NotNil(t, result.Integrated, "Director x Purpose has a cross block")
	assert.NotEmpty(t, result.Report)
}

func TestReportService_BuildReportText_BulletMarkers(t *testing.T) {
	service := NewReportService()
	respondent := models.Respondent{Name: "Riley Park", Email: "riley@example.com", Role: models.RoleYDP}

	report := service.BuildReportText(respondent, testScores(t), time.Now())

	assert.Contains(t, report, "\n• ")
	assert.Contains(t, report, "\n? ", "coaching questions render with the question marker")
}
