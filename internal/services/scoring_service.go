package services

import (
	"sort"

	"github.com/elmcrest/compass-service/internal/models"
)

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score computes per-trait totals and the primary/secondary ranking for
// both taxonomies. It refuses partial answer sets: classification on
// incomplete data would silently bias toward whichever traits happen to
// have answered questions.
func (s *scoringService) Score(answers models.AnswerSet) (*models.ScoreResult, error) {
	if !answers.Complete() {
		return nil, ErrIncompleteAnswers
	}

	for id, rating := range answers {
		if _, ok := models.QuestionByID(id); !ok {
			return nil, ErrUnknownQuestion
		}
		if rating < models.LikertMin || rating > models.LikertMax {
			return nil, ErrRatingOutOfRange
		}
	}

	return &models.ScoreResult{
		Communication: scoreCategory(models.CategoryCommunication, answers),
		Motivation:    scoreCategory(models.CategoryMotivation, answers),
	}, nil
}

func scoreCategory(category models.Category, answers models.AnswerSet) models.CategoryScores {
	totals := make(map[models.Trait]int, len(models.TraitsFor(category)))
	for _, trait := range models.TraitsFor(category) {
		totals[trait] = 0
	}

	for _, q := range models.QuestionsByCategory(category) {
		totals[q.Trait] += answers[q.ID]
	}

	// Rank by total descending. The stable sort starts from declaration
	// order, so ties break toward the earlier-declared trait and the
	// result is fully deterministic.
	ranked := make([]models.TraitScore, 0, len(totals))
	for _, trait := range models.TraitsFor(category) {
		ranked = append(ranked, models.TraitScore{
			Trait:   trait,
			Total:   totals[trait],
			Percent: models.Percent(totals[trait]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	return models.CategoryScores{
		Category:  category,
		Totals:    totals,
		Ranked:    ranked,
		Primary:   ranked[0].Trait,
		Secondary: ranked[1].Trait,
	}
}
