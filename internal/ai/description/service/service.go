package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Jamolkhon5/museum/internal/ai/description/prompts"
)

type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type DescriptionAssistant struct {
	completer Completer
	logger    *slog.Logger
}

func NewDescriptionAssistant(completer Completer, logger *slog.Logger) *DescriptionAssistant {
	return &DescriptionAssistant{
		completer: completer,
		logger:    logger,
	}
}

// GenerateDescription строит промпт из названия и категории и возвращает описание без
// пробелов по краям. Результат не кэшируется: каждый вызов идет в upstream.
func (a *DescriptionAssistant) GenerateDescription(ctx context.Context, title, category string) (string, error) {
	prompt := prompts.ItemPrompt(title, category)
	a.logger.Info("generated prompt", slog.String("prompt", prompt))

	content, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}
