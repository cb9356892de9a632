package prompts

import (
	"fmt"
	"strings"

	"github.com/Jamolkhon5/museum/internal/models"
)

const itemPromptTemplate = `Write a description for a museum item titled "%s" in the category "%s". ` +
	`The description must be factual and informative, and must not exceed three sentences.`

const (
	collectionHeader  = "The collection contains the following items:"
	collectionClosing = "Based on these items, write a description of 2 to 3 sentences that summarizes " +
		"the collection and highlights what makes it unique."
)

// ItemPrompt строит промпт для генерации описания по названию и категории (или составному контексту).
func ItemPrompt(title, category string) string {
	return fmt.Sprintf(itemPromptTemplate, title, category)
}

// CollectionContext собирает контекст для списка или редакционной подборки.
// Категория и описание элемента опциональны.
func CollectionContext(items []models.Item) string {
	var b strings.Builder
	b.WriteString(collectionHeader)
	b.WriteString("\n")

	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(strings.TrimSpace(item.Title))
		if category := strings.TrimSpace(item.Category); category != "" {
			fmt.Fprintf(&b, " (category: %s)", category)
		}
		if description := strings.TrimSpace(item.Description); description != "" {
			fmt.Fprintf(&b, ": %s", description)
		}
		b.WriteString("\n")
	}

	b.WriteString(collectionClosing)
	return b.String()
}
