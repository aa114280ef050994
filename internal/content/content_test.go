package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elmcrest/compass-service/internal/models"
)

func TestResolve_SingleTraits(t *testing.T) {
	for _, trait := range models.CommunicationTraits {
		block, ok := Resolve(SingleTrait(models.CategoryCommunication, trait))
		require.True(t, ok, "missing communication block for %s", trait)
		assert.Equal(t, string(trait), block.Label)
		assert.NotEmpty(t, block.Summary)
		require.NotEmpty(t, block.Lists)
		assert.NotEmpty(t, block.Lists[0].Items)
	}

	for _, trait := range models.MotivationTraits {
		block, ok := Resolve(SingleTrait(models.CategoryMotivation, trait))
		require.True(t, ok, "missing motivation block for %s", trait)
		assert.Equal(t, string(trait), block.Label)
		assert.NotEmpty(t, block.Summary)
	}
}

func TestResolve_IntraPairs_AllOrderedCombinations(t *testing.T) {
	cases := []struct {
		category models.Category
		traits   []models.Trait
	}{
		{models.CategoryCommunication, models.CommunicationTraits},
		{models.CategoryMotivation, models.MotivationTraits},
	}

	for _, tc := range cases {
		for _, primary := range tc.traits {
			for _, secondary := range tc.traits {
				if primary == secondary {
					continue
				}
				block, ok := Resolve(IntraPair(tc.category, primary, secondary))
				require.True(t, ok, "missing %s pair %s + %s", tc.category, primary, secondary)
				assert.NotEmpty(t, block.Label)
				assert.NotEmpty(t, block.Summary)
			}
		}
	}
}

func TestResolve_IntraPairs_OrderSensitive(t *testing.T) {
	ab, ok := Resolve(IntraPair(models.CategoryCommunication, models.TraitDirector, models.TraitEncourager))
	require.True(t, ok)
	ba, ok := Resolve(IntraPair(models.CategoryCommunication, models.TraitEncourager, models.TraitDirector))
	require.True(t, ok)

	assert.NotEqual(t, ab.Summary, ba.Summary, "pair blocks must be order-sensitive")
}

func TestResolve_CrossPairs_AllCombinations(t *testing.T) {
	for _, comm := range models.CommunicationTraits {
		for _, motiv := range models.MotivationTraits {
			block, ok := Resolve(CrossPair(comm, motiv))
			require.True(t, ok, "missing cross block %s x %s", comm, motiv)
			assert.NotEmpty(t, block.Summary)

			// The last list carries the coaching questions.
			require.NotEmpty(t, block.Lists)
			last := block.Lists[len(block.Lists)-1]
			assert.True(t, last.Prompt, "cross block %s x %s must end in prompts", comm, motiv)
			assert.Len(t, last.Items, 3)
		}
	}
}

func TestResolve_UnknownKeys(t *testing.T) {
	_, ok := Resolve(IntraPair(models.CategoryCommunication, models.TraitDirector, models.TraitDirector))
	assert.False(t, ok, "same-trait pair has no block")

	_, ok = Resolve(CrossPair(models.TraitGrowth, models.TraitDirector))
	assert.False(t, ok, "swapped cross key has no block")
}

func TestFallbackParagraphs(t *testing.T) {
	assert.Contains(t, CommunicationFallback, "unique blend of styles")
	assert.Contains(t, MotivationFallback, "blend of several drivers")
}
