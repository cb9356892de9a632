package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Jamolkhon5/museum/internal/ai/description/models"
)

const completionsPath = "/chat/completions"

type MistralOptions struct {
	BaseURL     string
	ApiKey      string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

// MistralClient выполняет один запрос к chat-completion API без повторов.
type MistralClient struct {
	client      *resty.Client
	model       string
	temperature float64
	logger      *slog.Logger
}

func NewMistralClient(opts MistralOptions, logger *slog.Logger) *MistralClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetAuthToken(opts.ApiKey).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &MistralClient{
		client:      client,
		model:       opts.Model,
		temperature: opts.Temperature,
		logger:      logger,
	}
}

// Complete отправляет промпт единственным пользовательским сообщением и возвращает текст ответа.
// Ошибки: *MalformedResponseError, *UpstreamError, *MissingContentError или транспортная ошибка.
func (c *MistralClient) Complete(ctx context.Context, prompt string) (string, error) {
	payload := models.ChatCompletionRequest{
		Model: c.model,
		Messages: []models.ChatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
	}

	res, err := c.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(completionsPath)
	if err != nil {
		return "", fmt.Errorf("error making request to Mistral API: %w", err)
	}

	raw := res.Body()
	c.logger.Info("Mistral API response",
		slog.Int("status", res.StatusCode()),
		slog.String("body", string(raw)),
		slog.Duration("duration", res.Time()))

	outcome, err := Classify(res.StatusCode(), raw)
	if err != nil {
		return "", err
	}

	switch o := outcome.(type) {
	case ChatSuccess:
		return o.Content, nil
	case ChatFailure:
		return "", &UpstreamError{Status: o.Status, Message: o.Message, Details: o.Body}
	case ChatEmpty:
		return "", &MissingContentError{Body: o.Body}
	default:
		return "", fmt.Errorf("unexpected Mistral API outcome %T", outcome)
	}
}
