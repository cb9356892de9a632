package workflow

import (
	"errors"
	"strings"

	"github.com/Jamolkhon5/museum/internal/ai/description/prompts"
	"github.com/Jamolkhon5/museum/internal/models"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrItemsRequired    = errors.New("at least one item is required")
)

type FormKind int

const (
	ItemForm FormKind = iota
	CollectionForm
)

// Form описывает редактируемую форму элемента или подборки.
// Description меняется только при подтверждении сгенерированного текста.
type Form struct {
	Kind        FormKind
	Title       string
	Category    string
	Items       []models.Item
	Description string
}

// Check проверяет предусловия генерации: название обязательно всегда,
// для подборки нужен хотя бы один элемент, для элемента нужна категория.
func (f Form) Check() error {
	if strings.TrimSpace(f.Title) == "" {
		return ErrTitleRequired
	}
	switch f.Kind {
	case CollectionForm:
		if len(f.Items) == 0 {
			return ErrItemsRequired
		}
	default:
		if strings.TrimSpace(f.Category) == "" {
			return ErrCategoryRequired
		}
	}
	return nil
}

// request возвращает пару (название, контекст) для запроса к шлюзу.
func (f Form) request() (string, string) {
	title := strings.TrimSpace(f.Title)
	if f.Kind == CollectionForm {
		return title, prompts.CollectionContext(f.Items)
	}
	return title, strings.TrimSpace(f.Category)
}

func (f Form) clone() Form {
	f.Items = append([]models.Item(nil), f.Items...)
	return f
}

func ItemFormFrom(item models.Item) Form {
	return Form{
		Kind:        ItemForm,
		Title:       item.Title,
		Category:    item.Category,
		Description: item.Description,
	}
}

func CollectionFormFrom(list models.List) Form {
	return Form{
		Kind:        CollectionForm,
		Title:       list.Title,
		Items:       append([]models.Item(nil), list.Items...),
		Description: list.Description,
	}
}
