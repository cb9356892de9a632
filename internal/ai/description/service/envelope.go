package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// Сколько символов сырого ответа возвращается клиенту при ошибке разбора.
	RawExcerptLength = 200

	FallbackUpstreamMessage = "Error from the Mistral API"
)

// Outcome описывает разобранный ответ chat-completion API: ChatSuccess, ChatFailure или ChatEmpty.
type Outcome interface {
	outcome()
}

type ChatSuccess struct {
	Content string
}

type ChatFailure struct {
	Status  int
	Message string
	Body    any
}

// ChatEmpty: успешный статус, но по пути choices[0].message.content ничего нет.
type ChatEmpty struct {
	Body any
}

func (ChatSuccess) outcome() {}
func (ChatFailure) outcome() {}
func (ChatEmpty) outcome()   {}

type chatEnvelope struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Classify разбирает тело ответа upstream. Ошибка возвращается только если тело не является JSON.
func Classify(status int, raw []byte) (Outcome, error) {
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, &MalformedResponseError{Status: status, Raw: string(raw), Err: err}
	}

	// Неожиданная форма полей трактуется как их отсутствие.
	var env chatEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		env = chatEnvelope{}
	}

	if status < 200 || status > 299 {
		message := FallbackUpstreamMessage
		if env.Error != nil && env.Error.Message != "" {
			message = env.Error.Message
		}
		return ChatFailure{Status: status, Message: message, Body: body}, nil
	}

	if len(env.Choices) == 0 || env.Choices[0].Message == nil ||
		env.Choices[0].Message.Content == nil || strings.TrimSpace(*env.Choices[0].Message.Content) == "" {
		return ChatEmpty{Body: body}, nil
	}

	return ChatSuccess{Content: *env.Choices[0].Message.Content}, nil
}

type MalformedResponseError struct {
	Status int
	Raw    string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("invalid JSON from Mistral API (status %d): %v", e.Status, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// Excerpt возвращает не более RawExcerptLength первых символов сырого ответа.
func (e *MalformedResponseError) Excerpt() string {
	runes := []rune(e.Raw)
	if len(runes) <= RawExcerptLength {
		return e.Raw
	}
	return string(runes[:RawExcerptLength])
}

type UpstreamError struct {
	Status  int
	Message string
	Details any
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Mistral API returned status %d: %s", e.Status, e.Message)
}

type MissingContentError struct {
	Body any
}

func (e *MissingContentError) Error() string {
	return "no content in Mistral API response"
}
