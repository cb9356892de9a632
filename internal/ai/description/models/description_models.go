package models

// Тело запроса POST /generate-description
type GenerateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
}

type GenerateResponse struct {
	Description string `json:"description"`
}

// Сообщение в формате chat-completion API
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// Ответы об ошибках шлюза. Набор полей зависит от вида ошибки.

type ErrorResponse struct {
	Error string `json:"error"`
}

type ParseErrorResponse struct {
	Error       string `json:"error"`
	RawResponse string `json:"rawResponse"`
}

type UpstreamErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}

type MissingContentResponse struct {
	Error       string `json:"error"`
	ApiResponse any    `json:"apiResponse"`
}

type InternalErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}
