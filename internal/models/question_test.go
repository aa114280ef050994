package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBank_Shape(t *testing.T) {
	assert.Equal(t, 24, QuestionCount())
	assert.Len(t, QuestionsByCategory(CategoryCommunication), 12)
	assert.Len(t, QuestionsByCategory(CategoryMotivation), 12)

	// Every trait carries exactly three questions.
	perTrait := make(map[Trait]int)
	for _, q := range AllQuestions() {
		perTrait[q.Trait]++
	}
	for trait, count := range perTrait {
		assert.Equal(t, QuestionsPerTrait, count, "trait %s", trait)
	}

	// IDs are unique.
	seen := make(map[string]bool)
	for _, q := range AllQuestions() {
		assert.False(t, seen[q.ID], "duplicate question ID %s", q.ID)
		seen[q.ID] = true
	}
}

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("C1")
	require.True(t, ok)
	assert.Equal(t, CategoryCommunication, q.Category)
	assert.Equal(t, TraitDirector, q.Trait)

	_, ok = QuestionByID("X99")
	assert.False(t, ok)
}

func TestAnswerSet_Complete(t *testing.T) {
	answers := make(AnswerSet)
	assert.False(t, answers.Complete())

	for _, q := range AllQuestions() {
		answers[q.ID] = 3
	}
	assert.True(t, answers.Complete())

	delete(answers, "M12")
	assert.False(t, answers.Complete())
}

func TestAnswerSet_Clone(t *testing.T) {
	original := AnswerSet{"C1": 5}
	clone := original.Clone()
	clone["C1"] = 1
	clone["C2"] = 2

	assert.Equal(t, 5, original["C1"])
	assert.NotContains(t, original, "C2")
}

func TestPercent(t *testing.T) {
	tests := []struct {
		total    int
		expected int
	}{
		{3, 20},
		{15, 100},
		{7, 47},
		{8, 53},
		{11, 73},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Percent(tt.total), "total %d", tt.total)
	}
}

func TestIsValidRole(t *testing.T) {
	assert.True(t, IsValidRole(RoleProgramSupervisor))
	assert.True(t, IsValidRole(RoleShiftSupervisor))
	assert.True(t, IsValidRole(RoleYDP))
	assert.False(t, IsValidRole("Manager"))
	assert.False(t, IsValidRole(""))

	// The YDP option stores the short value with the long display label.
	var ydp RoleOption
	for _, opt := range RoleOptions {
		if opt.Value == RoleYDP {
			ydp = opt
		}
	}
	assert.Equal(t, "Youth Development Professional (YDP)", ydp.Label)
}

func TestSession_ReadyToScore(t *testing.T) {
	session := &Session{Answers: make(AnswerSet)}
	assert.False(t, session.ReadyToScore())

	for _, q := range AllQuestions() {
		session.Answers[q.ID] = 4
	}
	assert.False(t, session.ReadyToScore(), "identity still missing")

	session.Respondent = Respondent{Name: "Jo", Email: "jo@example.com", Role: RoleYDP}
	assert.True(t, session.ReadyToScore())
}
