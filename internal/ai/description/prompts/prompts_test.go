package prompts

import (
	"strings"
	"testing"

	"github.com/Jamolkhon5/museum/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestItemPromptEmbedsTitleAndCategory(t *testing.T) {
	prompt := ItemPrompt("Roman Coin", "Numismatics")

	assert.Contains(t, prompt, "Roman Coin")
	assert.Contains(t, prompt, "Numismatics")
	assert.Contains(t, prompt, "three sentences")
	assert.Equal(t, prompt, ItemPrompt("Roman Coin", "Numismatics"))
}

func TestCollectionContext(t *testing.T) {
	items := []models.Item{
		{Title: "Roman Coin", Category: "Numismatics", Description: "Bronze, 2nd century."},
		{Title: "Amphora"},
		{Title: "Oil Lamp", Category: "Ceramics"},
	}

	ctx := CollectionContext(items)
	lines := strings.Split(ctx, "\n")

	assert.Equal(t, collectionHeader, lines[0])
	assert.Equal(t, "- Roman Coin (category: Numismatics): Bronze, 2nd century.", lines[1])
	assert.Equal(t, "- Amphora", lines[2])
	assert.Equal(t, "- Oil Lamp (category: Ceramics)", lines[3])
	assert.Equal(t, collectionClosing, lines[4])
	assert.Len(t, lines, 5)
}

func TestCollectionContextEmpty(t *testing.T) {
	assert.Equal(t, collectionHeader+"\n"+collectionClosing, CollectionContext(nil))
}
