// Package content holds the static narrative tables for the Communication &
// Motivation Compass and the lookup/personalization logic over them. The
// tables are configuration data: read-only, keyed by classification, never
// computed.
package content

import (
	"github.com/elmcrest/compass-service/internal/models"
)

// List is one labeled bullet list inside a narrative block. Prompt lists
// render with a question marker instead of a bullet.
type List struct {
	Heading string
	Items   []string
	Prompt  bool
}

// Block is a resolved narrative unit: a label, a summary paragraph, and the
// ordered bullet lists that belong to it.
type Block struct {
	Label   string
	Summary string
	Lists   []List
}

type keyKind int

const (
	kindSingleTrait keyKind = iota
	kindIntraPair
	kindCrossPair
)

// Key is a typed classification key. Construct with SingleTrait, IntraPair
// or CrossPair; intra-category pairs are order-sensitive (A+B != B+A).
type Key struct {
	kind      keyKind
	category  models.Category
	primary   models.Trait
	secondary models.Trait
}

func SingleTrait(category models.Category, trait models.Trait) Key {
	return Key{kind: kindSingleTrait, category: category, primary: trait}
}

func IntraPair(category models.Category, primary, secondary models.Trait) Key {
	return Key{kind: kindIntraPair, category: category, primary: primary, secondary: secondary}
}

func CrossPair(commTrait, motivTrait models.Trait) Key {
	return Key{kind: kindCrossPair, primary: commTrait, secondary: motivTrait}
}

type pair struct {
	a, b models.Trait
}

// Resolve looks up the narrative block for a classification key. A missing
// block is an expected state, not an error; callers render a generic
// fallback instead.
func Resolve(key Key) (Block, bool) {
	switch key.kind {
	case kindSingleTrait:
		if key.category == models.CategoryMotivation {
			b, ok := motivationTraits[key.primary]
			return b, ok
		}
		b, ok := communicationTraits[key.primary]
		return b, ok
	case kindIntraPair:
		if key.category == models.CategoryMotivation {
			b, ok := motivationPairs[pair{key.primary, key.secondary}]
			return b, ok
		}
		b, ok := communicationPairs[pair{key.primary, key.secondary}]
		return b, ok
	case kindCrossPair:
		b, ok := crossPairs[pair{key.primary, key.secondary}]
		return b, ok
	}
	return Block{}, false
}

// Generic fallbacks, used when a pair has no bespoke block.
const (
	CommunicationFallback = "You have a unique blend of styles. Use your primary and secondary descriptions as a starting point to reflect on how you show up with different teammates."
	MotivationFallback    = "Your motivation profile is a blend of several drivers. Use the individual descriptions for your primary and secondary scores as prompts for conversation about what helps you do your best work."
)
