package models

import "time"

// AnswerSet maps question ID to a Likert rating (1..5).
type AnswerSet map[string]int

// Complete reports whether every bank question has a rating. Partial answer
// sets must not be scored for classification.
func (a AnswerSet) Complete() bool {
	for _, q := range questionBank {
		if _, ok := a[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// Session is the whole per-respondent state. It is created fresh, owned
// exclusively by one respondent, replaced wholesale on reset, and discarded
// on expiry; nothing in it outlives the session.
type Session struct {
	ID         string     `json:"id"`
	Respondent Respondent `json:"respondent"`
	Answers    AnswerSet  `json:"answers"`

	// Question presentation order per category, fixed once at creation so
	// re-fetches never reshuffle the visible order.
	CommunicationOrder []string `json:"communication_order"`
	MotivationOrder    []string `json:"motivation_order"`

	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// OrderFor returns the memoized presentation order for a category.
func (s *Session) OrderFor(category Category) []string {
	if category == CategoryMotivation {
		return s.MotivationOrder
	}
	return s.CommunicationOrder
}

// ReadyToScore reports whether classification may be computed: every
// question answered and the respondent identity filled in.
func (s *Session) ReadyToScore() bool {
	return s.Answers.Complete() && s.Respondent.Complete()
}
