package models

import "math"

// TraitScore is one trait's integer total plus its display percentage.
// The percentage is presentation only; ranking always uses the raw total.
type TraitScore struct {
	Trait   Trait `json:"trait"`
	Total   int   `json:"total"`
	Percent int   `json:"percent"`
}

// CategoryScores holds the ranked outcome for one taxonomy.
type CategoryScores struct {
	Category  Category      `json:"category"`
	Totals    map[Trait]int `json:"totals"`
	Ranked    []TraitScore  `json:"ranked"`
	Primary   Trait         `json:"primary"`
	Secondary Trait         `json:"secondary"`
}

// ScoreResult is the full classification outcome across both taxonomies.
type ScoreResult struct {
	Communication CategoryScores `json:"communication"`
	Motivation    CategoryScores `json:"motivation"`
}

// Percent converts a raw trait total into its 0..100 display value.
func Percent(total int) int {
	return int(math.Round(float64(total) / float64(MaxTraitScore) * 100))
}
