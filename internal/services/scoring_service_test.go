package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/models"
)

// fullAnswerSet rates every question with base, then applies overrides.
func fullAnswerSet(base int, overrides map[string]int) models.AnswerSet {
	answers := make(models.AnswerSet, models.QuestionCount())
	for _, q := range models.AllQuestions() {
		answers[q.ID] = base
	}
	for id, rating := range overrides {
		answers[id] = rating
	}
	return answers
}

func TestScoringService_RejectsIncomplete(t *testing.T) {
	service := NewScoringService()

	answers := fullAnswerSet(3, nil)
	delete(answers, "C5")

	_, err := service.Score(answers)
	assert.ErrorIs(t, err, ErrIncompleteAnswers)
}

func TestScoringService_RejectsOutOfRange(t *testing.T) {
	service := NewScoringService()

	_, err := service.Score(fullAnswerSet(3, map[string]int{"M1": 6}))
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	_, err = service.Score(fullAnswerSet(3, map[string]int{"M1": 0}))
	assert.ErrorIs(t, err, ErrRatingOutOfRange)
}

func TestScoringService_Totals(t *testing.T) {
	service := NewScoringService()

	// Director questions C1..C3 rated 5, everything else 2.
	result, err := service.Score(fullAnswerSet(2, map[string]int{
		"C1": 5, "C2": 5, "C3": 5,
	}))
	require.NoError(t, err)

	comm := result.Communication
	assert.Equal(t, 15, comm.Totals[models.TraitDirector])
	assert.Equal(t, 6, comm.Totals[models.TraitEncourager])
	assert.Equal(t, models.TraitDirector, comm.Primary)
	assert.Equal(t, 100, comm.Ranked[0].Percent)
	assert.Equal(t, 40, comm.Ranked[1].Percent)
}

func TestScoringService_TieBreaksTowardDeclarationOrder(t *testing.T) {
	service := NewScoringService()

	// Everything equal: declaration order decides both slots.
	result, err := service.Score(fullAnswerSet(3, nil))
	require.NoError(t, err)

	assert.Equal(t, models.TraitDirector, result.Communication.Primary)
	assert.Equal(t, models.TraitEncourager, result.Communication.Secondary)
	assert.Equal(t, models.TraitGrowth, result.Motivation.Primary)
	assert.Equal(t, models.TraitPurpose, result.Motivation.Secondary)
}

func TestScoringService_TieOnSecondSlot(t *testing.T) {
	service := NewScoringService()

	// Tracker clearly first; Encourager and Facilitator tied for second.
	result, err := service.Score(fullAnswerSet(3, map[string]int{
		"C10": 5, "C11": 5, "C12": 5,
		"C1": 1, "C2": 1, "C3": 1,
	}))
	require.NoError(t, err)

	assert.Equal(t, models.TraitTracker, result.Communication.Primary)
	assert.Equal(t, models.TraitEncourager, result.Communication.Secondary,
		"tie between Encourager and Facilitator breaks toward the earlier-declared trait")
}

func TestScoringService_RankedIsSorted(t *testing.T) {
	service := NewScoringService()

	result, err := service.Score(fullAnswerSet(2, map[string]int{
		"M4": 5, "M5": 4, "M6": 5, // Purpose 14
		"M10": 4, "M11": 4, "M12": 4, // Achievement 12
	}))
	require.NoError(t, err)

	motiv := result.Motivation
	require.Len(t, motiv.Ranked, 4)
	for i := 1; i < len(motiv.Ranked); i++ {
		assert.GreaterOrEqual(t, motiv.Ranked[i-1].Total, motiv.Ranked[i].Total)
	}
	assert.Equal(t, models.TraitPurpose, motiv.Primary)
	assert.Equal(t, models.TraitAchievement, motiv.Secondary)
}
