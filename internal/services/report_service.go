package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/elmcrest/compass-service/internal/content"
	"github.com/elmcrest/compass-service/internal/models"
)

// reportDateLayout mirrors the locale-style date the result page shows.
const reportDateLayout = "1/2/2006, 3:04:05 PM"

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

// BuildResult assembles the full structured snapshot: ranked scores, the
// personalized narrative blocks, and the plain-text report. It is pure;
// the caller supplies the generation timestamp.
func (s *reportService) BuildResult(session *models.Session, scores *models.ScoreResult, generatedAt time.Time) *ResultResponse {
	role := roleLabel(session.Respondent.Role)

	result := &ResultResponse{
		SessionID:   session.ID,
		Name:        session.Respondent.Name,
		Email:       session.Respondent.Email,
		Role:        session.Respondent.Role,
		GeneratedAt: generatedAt,
		Scores:      *scores,
		Report:      s.BuildReportText(session.Respondent, scores, generatedAt),
	}

	result.Communication = buildSection(models.CategoryCommunication, scores.Communication, role, content.CommunicationFallback)
	result.Motivation = buildSection(models.CategoryMotivation, scores.Motivation, role, content.MotivationFallback)

	if block, ok := content.Resolve(content.CrossPair(scores.Communication.Primary, scores.Motivation.Primary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		result.Integrated = toNarrativeBlock(personalized)
	}

	return result
}

func buildSection(category models.Category, cs models.CategoryScores, role models.Role, fallback string) NarrativeSection {
	section := NarrativeSection{}

	if block, ok := content.Resolve(content.SingleTrait(category, cs.Primary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		section.Primary = toNarrativeBlock(personalized)
	}

	if block, ok := content.Resolve(content.IntraPair(category, cs.Primary, cs.Secondary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		section.Pair = toNarrativeBlock(personalized)
	} else {
		section.Fallback = content.Personalize(fallback, role)
	}

	return section
}

func toNarrativeBlock(b content.Block) *NarrativeBlock {
	out := &NarrativeBlock{
		Label:   b.Label,
		Summary: b.Summary,
		Lists:   make([]NarrativeList, len(b.Lists)),
	}
	for i, l := range b.Lists {
		out.Lists[i] = NarrativeList{Heading: l.Heading, Items: l.Items, Prompt: l.Prompt}
	}
	return out
}

// BuildReportText renders the shareable plain-text report. Output is
// deterministic for a given input; the same answers, role, and timestamp
// always produce the same bytes.
func (s *reportService) BuildReportText(respondent models.Respondent, scores *models.ScoreResult, generatedAt time.Time) string {
	role := roleLabel(respondent.Role)
	var lines []string
	push := func(l string) { lines = append(lines, l) }

	push("Elmcrest Communication & Motivation Compass – Results")
	push(strings.Repeat("=", 50))
	push(fmt.Sprintf("Name: %s", orNA(respondent.Name)))
	push(fmt.Sprintf("Email: %s", orNA(respondent.Email)))
	push(fmt.Sprintf("Role: %s", orNA(string(role))))
	push(fmt.Sprintf("Date: %s", generatedAt.Format(reportDateLayout)))
	push("")

	// Communication
	push("COMMUNICATION PROFILE")
	push(strings.Repeat("-", len("COMMUNICATION PROFILE")))
	push(fmt.Sprintf("Primary style: %s", scores.Communication.Primary))
	push(fmt.Sprintf("Secondary style: %s", scores.Communication.Secondary))
	push("")
	lines = appendTotals(lines, models.CategoryCommunication, scores.Communication)
	push("")

	if block, ok := content.Resolve(content.SingleTrait(models.CategoryCommunication, scores.Communication.Primary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		push(fmt.Sprintf("About your primary style (%s) in your role as %s:", personalized.Label, role))
		push(personalized.Summary)
		push("")
		lines = appendLists(lines, personalized)
	}

	if block, ok := content.Resolve(content.IntraPair(models.CategoryCommunication, scores.Communication.Primary, scores.Communication.Secondary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		push(fmt.Sprintf("Primary + Secondary combination: %s", personalized.Label))
		push(personalized.Summary)
		push("")
		lines = appendLists(lines, personalized)
	} else {
		push(content.Personalize(content.CommunicationFallback, role))
		push("")
	}

	// Motivation
	push("MOTIVATION PROFILE")
	push(strings.Repeat("-", len("MOTIVATION PROFILE")))
	push(fmt.Sprintf("Primary driver: %s", scores.Motivation.Primary))
	push(fmt.Sprintf("Secondary driver: %s", scores.Motivation.Secondary))
	push("")
	lines = appendTotals(lines, models.CategoryMotivation, scores.Motivation)
	push("")

	if block, ok := content.Resolve(content.SingleTrait(models.CategoryMotivation, scores.Motivation.Primary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		push(fmt.Sprintf("About your primary driver (%s) in your role as %s:", personalized.Label, role))
		push(personalized.Summary)
		push("")
		lines = appendLists(lines, personalized)
	}

	if block, ok := content.Resolve(content.IntraPair(models.CategoryMotivation, scores.Motivation.Primary, scores.Motivation.Secondary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		push(fmt.Sprintf("Primary + Secondary combination: %s", personalized.Label))
		push(personalized.Summary)
		push("")
		lines = appendLists(lines, personalized)
	} else {
		push(content.Personalize(content.MotivationFallback, role))
		push("")
	}

	// Integrated
	if block, ok := content.Resolve(content.CrossPair(scores.Communication.Primary, scores.Motivation.Primary)); ok {
		personalized := content.PersonalizeBlock(block, role)
		push("INTEGRATED PROFILE (Communication × Motivation)")
		push(strings.Repeat("-", 46))
		push(fmt.Sprintf("%s – %s", personalized.Label, personalized.Summary))
		push("")
		lines = appendLists(lines, personalized)
	}

	push("End of results.")
	return strings.Join(lines, "\n")
}

// appendTotals writes the per-trait score lines in bank declaration order.
func appendTotals(lines []string, category models.Category, cs models.CategoryScores) []string {
	for _, trait := range models.TraitsFor(category) {
		lines = append(lines, fmt.Sprintf("- %s: %d (out of %d)", trait, cs.Totals[trait], models.MaxTraitScore))
	}
	return lines
}

// appendLists renders a block's bullet lists: heading, items, blank line.
// Prompt lists use a question marker and no heading.
func appendLists(lines []string, b content.Block) []string {
	for _, l := range b.Lists {
		if l.Heading != "" {
			lines = append(lines, l.Heading)
		}
		marker := "• "
		if l.Prompt {
			marker = "? "
		}
		for _, item := range l.Items {
			lines = append(lines, marker+item)
		}
		lines = append(lines, "")
	}
	return lines
}

func roleLabel(role models.Role) models.Role {
	if role == "" {
		return models.RoleProgramSupervisor
	}
	return role
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
