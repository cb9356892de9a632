package workflow

import (
	"errors"
	"strings"
)

// Локализованные тексты уведомлений
type Messages struct {
	TitleRequired    string
	CategoryRequired string
	ItemsRequired    string
	GenerationFailed string
	Accepted         string
}

var catalogs = map[string]Messages{
	"en": {
		TitleRequired:    "Please enter a title before generating a description.",
		CategoryRequired: "Please choose a category before generating a description.",
		ItemsRequired:    "Please select at least one item before generating a description.",
		GenerationFailed: "Could not generate a description. Please try again.",
		Accepted:         "Description added.",
	},
	"fr": {
		TitleRequired:    "Veuillez saisir un titre avant de générer une description.",
		CategoryRequired: "Veuillez choisir une catégorie avant de générer une description.",
		ItemsRequired:    "Veuillez sélectionner au moins un élément avant de générer une description.",
		GenerationFailed: "Impossible de générer une description. Veuillez réessayer.",
		Accepted:         "Description ajoutée.",
	},
}

const DefaultLanguage = "en"

// Catalog возвращает тексты для языка lang ("fr", "fr-FR", ...). Для неизвестного языка возвращается английский.
func Catalog(lang string) Messages {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if m, ok := catalogs[lang]; ok {
		return m
	}
	return catalogs[DefaultLanguage]
}

func (m Messages) precondition(err error) string {
	switch {
	case errors.Is(err, ErrTitleRequired):
		return m.TitleRequired
	case errors.Is(err, ErrCategoryRequired):
		return m.CategoryRequired
	case errors.Is(err, ErrItemsRequired):
		return m.ItemsRequired
	default:
		return m.GenerationFailed
	}
}
