package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/models"
)

func TestPersonalize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		role     models.Role
		expected string
	}{
		{
			name:     "plain role mention",
			text:     "As a Program Supervisor you set the tone.",
			role:     models.RoleShiftSupervisor,
			expected: "As a Shift Supervisor you set the tone.",
		},
		{
			name:     "longer phrase rewritten before the shorter one it contains",
			text:     "Your work as an Elmcrest Program Supervisor matters.",
			role:     models.RoleShiftSupervisor,
			expected: "Your work as an Shift Supervisor at Elmcrest matters.",
		},
		{
			name:     "role value is substituted, not the display label",
			text:     "Program Supervisor duties",
			role:     models.RoleYDP,
			expected: "YDP duties",
		},
		{
			name:     "both phrases in one text",
			text:     "Elmcrest Program Supervisor and Program Supervisor",
			role:     models.RoleYDP,
			expected: "YDP at Elmcrest and YDP",
		},
		{
			name:     "no-op for the role the copy is written against",
			text:     "As a Program Supervisor you set the tone.",
			role:     models.RoleProgramSupervisor,
			expected: "As a Program Supervisor you set the tone.",
		},
		{
			name:     "empty text",
			text:     "",
			role:     models.RoleYDP,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Personalize(tt.text, tt.role))
		})
	}
}

func TestPersonalizeBlock_DoesNotMutateSource(t *testing.T) {
	source, ok := Resolve(SingleTrait(models.CategoryCommunication, models.TraitDirector))
	require.True(t, ok)

	originalSummary := source.Summary
	originalItems := append([]string(nil), source.Lists[0].Items...)

	personalized := PersonalizeBlock(source, models.RoleYDP)

	assert.Equal(t, originalSummary, source.Summary)
	assert.Equal(t, originalItems, source.Lists[0].Items)
	assert.Equal(t, source.Label, personalized.Label)
	assert.Len(t, personalized.Lists, len(source.Lists))
}

func TestPersonalizeBlock_RewritesItems(t *testing.T) {
	block := Block{
		Summary: "A Program Supervisor leads.",
		Lists: []List{
			{Heading: "Tips", Items: []string{"Talk with your Elmcrest Program Supervisor peers."}},
		},
	}

	personalized := PersonalizeBlock(block, models.RoleShiftSupervisor)

	assert.Equal(t, "A Shift Supervisor leads.", personalized.Summary)
	assert.Equal(t, "Talk with your Shift Supervisor at Elmcrest peers.", personalized.Lists[0].Items[0])
}
