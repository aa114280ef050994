package content

import (
	"strings"

	"github.com/elmcrest/compass-service/internal/models"
)

// The narrative copy is written for a Program Supervisor; personalization
// substitutes the respondent's role into it. Rules are literal substring
// replacements applied in declared order, and a more specific phrase must
// come before any shorter phrase it contains, otherwise the first pass
// leaves partially-substituted hybrids behind.
type rule struct {
	search  string
	replace func(role string) string
}

var personalizationRules = []rule{
	{search: "Elmcrest Program Supervisor", replace: func(role string) string { return role + " at Elmcrest" }},
	{search: "Program Supervisor", replace: func(role string) string { return role }},
}

// Personalize rewrites role-specific language in text for the given role.
func Personalize(text string, role models.Role) string {
	if text == "" {
		return ""
	}
	for _, r := range personalizationRules {
		text = strings.ReplaceAll(text, r.search, r.replace(string(role)))
	}
	return text
}

// PersonalizeBlock returns a copy of the block with every string rewritten
// for the given role. The source block is never mutated; the tables stay
// pristine for the next respondent.
func PersonalizeBlock(b Block, role models.Role) Block {
	out := Block{
		Label:   b.Label,
		Summary: Personalize(b.Summary, role),
		Lists:   make([]List, len(b.Lists)),
	}
	for i, l := range b.Lists {
		items := make([]string, len(l.Items))
		for j, item := range l.Items {
			items[j] = Personalize(item, role)
		}
		out.Lists[i] = List{Heading: l.Heading, Items: items, Prompt: l.Prompt}
	}
	return out
}
