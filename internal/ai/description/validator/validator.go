package validator

import (
	"errors"
	"strings"

	"github.com/Jamolkhon5/museum/internal/ai/description/models"
)

var ErrTitleAndCategoryRequired = errors.New("Title and category are required")

// ValidateGenerateRequest проверяет запрос на генерацию: оба поля обязательны.
func ValidateGenerateRequest(req models.GenerateRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		return ErrTitleAndCategoryRequired
	}
	return nil
}
