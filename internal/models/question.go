package models

// Category identifies one of the two independent trait taxonomies.
type Category string

const (
	CategoryCommunication Category = "communication"
	CategoryMotivation    Category = "motivation"
)

// Trait is one of four named dimensions within a category.
type Trait string

// Communication styles, in bank declaration order. The order matters:
// ranking ties are broken by position in these slices.
const (
	TraitDirector    Trait = "Director"
	TraitEncourager  Trait = "Encourager"
	TraitFacilitator Trait = "Facilitator"
	TraitTracker     Trait = "Tracker"
)

// Motivation drivers, in bank declaration order.
const (
	TraitGrowth      Trait = "Growth"
	TraitPurpose     Trait = "Purpose"
	TraitConnection  Trait = "Connection"
	TraitAchievement Trait = "Achievement"
)

var (
	CommunicationTraits = []Trait{TraitDirector, TraitEncourager, TraitFacilitator, TraitTracker}
	MotivationTraits    = []Trait{TraitGrowth, TraitPurpose, TraitConnection, TraitAchievement}
)

// TraitsFor returns the declared trait order for a category.
func TraitsFor(category Category) []Trait {
	if category == CategoryMotivation {
		return MotivationTraits
	}
	return CommunicationTraits
}

// Likert scale bounds and the fixed bank shape. Three questions per trait
// keeps every trait's attainable range identical ([3,15]), which is what
// makes the percentage display comparable across traits.
const (
	LikertMin         = 1
	LikertMax         = 5
	QuestionsPerTrait = 3
	MaxTraitScore     = QuestionsPerTrait * LikertMax
	MinTraitScore     = QuestionsPerTrait * LikertMin
)

// Question is a single scored statement in the bank.
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Trait    Trait    `json:"trait"`
	Text     string   `json:"text"`
}

// questionBank is the fixed statement set. It is configuration data, not
// user-editable; IDs are stable across sessions and releases because they
// key the answers column in the response sheet.
var questionBank = []Question{
	// Director
	{ID: "C1", Category: CategoryCommunication, Trait: TraitDirector, Text: "I make decisions quickly and keep projects moving."},
	{ID: "C2", Category: CategoryCommunication, Trait: TraitDirector, Text: "I’m comfortable taking charge when direction is unclear."},
	{ID: "C3", Category: CategoryCommunication, Trait: TraitDirector, Text: "I prioritize results over lengthy discussion."},
	// Encourager
	{ID: "C4", Category: CategoryCommunication, Trait: TraitEncourager, Text: "I energize conversations and get people involved."},
	{ID: "C5", Category: CategoryCommunication, Trait: TraitEncourager, Text: "I enjoy brainstorming aloud and sharing ideas freely."},
	{ID: "C6", Category: CategoryCommunication, Trait: TraitEncourager, Text: "I build enthusiasm and morale on the team."},
	// Facilitator
	{ID: "C7", Category: CategoryCommunication, Trait: TraitFacilitator, Text: "I ensure everyone has a chance to be heard."},
	{ID: "C8", Category: CategoryCommunication, Trait: TraitFacilitator, Text: "I remain calm and patient during tense discussions."},
	{ID: "C9", Category: CategoryCommunication, Trait: TraitFacilitator, Text: "I focus on steady progress and team harmony."},
	// Tracker
	{ID: "C10", Category: CategoryCommunication, Trait: TraitTracker, Text: "I double-check details to prevent errors."},
	{ID: "C11", Category: CategoryCommunication, Trait: TraitTracker, Text: "I prefer clear processes and documented decisions."},
	{ID: "C12", Category: CategoryCommunication, Trait: TraitTracker, Text: "I’m thorough, even if it takes extra time."},

	// Growth
	{ID: "M1", Category: CategoryMotivation, Trait: TraitGrowth, Text: "Learning new skills keeps me engaged at work."},
	{ID: "M2", Category: CategoryMotivation, Trait: TraitGrowth, Text: "I seek stretch assignments that grow my capabilities."},
	{ID: "M3", Category: CategoryMotivation, Trait: TraitGrowth, Text: "I value feedback because it helps me improve."},
	// Purpose
	{ID: "M4", Category: CategoryMotivation, Trait: TraitPurpose, Text: "It’s important that my work aligns with my values."},
	{ID: "M5", Category: CategoryMotivation, Trait: TraitPurpose, Text: "I’m motivated by making a positive impact for others."},
	{ID: "M6", Category: CategoryMotivation, Trait: TraitPurpose, Text: "Ethics and integrity guide how I approach tasks."},
	// Connection
	{ID: "M7", Category: CategoryMotivation, Trait: TraitConnection, Text: "I thrive when I feel supported by my team."},
	{ID: "M8", Category: CategoryMotivation, Trait: TraitConnection, Text: "I’m most energized when collaboration is strong."},
	{ID: "M9", Category: CategoryMotivation, Trait: TraitConnection, Text: "Recognition from peers means a lot to me."},
	// Achievement
	{ID: "M10", Category: CategoryMotivation, Trait: TraitAchievement, Text: "Meeting clear goals gives me momentum."},
	{ID: "M11", Category: CategoryMotivation, Trait: TraitAchievement, Text: "I like tracking progress and checking things off."},
	{ID: "M12", Category: CategoryMotivation, Trait: TraitAchievement, Text: "I’m driven by results and tangible outcomes."},
}

// AllQuestions returns the full bank in declaration order.
func AllQuestions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionsByCategory returns the bank subset for one category, in
// declaration order. Presentation shuffling happens at the session layer,
// never here.
func QuestionsByCategory(category Category) []Question {
	out := make([]Question, 0, len(questionBank)/2)
	for _, q := range questionBank {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a single bank question.
func QuestionByID(id string) (Question, bool) {
	for _, q := range questionBank {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionCount is the size of the full bank.
func QuestionCount() int {
	return len(questionBank)
}
