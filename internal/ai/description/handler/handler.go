package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/museum/internal/ai/description/models"
	"github.com/Jamolkhon5/museum/internal/ai/description/service"
	"github.com/Jamolkhon5/museum/internal/ai/description/validator"
	"github.com/Jamolkhon5/museum/internal/metrics"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgParseError     = "Could not get a valid response from the Mistral API"
	msgMissingContent = "No description found in the Mistral API response"
	msgInternalError  = "Internal server error"
)

type Generator interface {
	GenerateDescription(ctx context.Context, title, category string) (string, error)
}

type DescriptionHandler struct {
	assistant Generator
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewDescriptionHandler(assistant Generator, m *metrics.Metrics, logger *slog.Logger) *DescriptionHandler {
	return &DescriptionHandler{
		assistant: assistant,
		metrics:   m,
		logger:    logger,
	}
}

func (h *DescriptionHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveOutcome(metrics.OutcomeValidationError)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msgInvalidBody})
		return
	}

	if err := validator.ValidateGenerateRequest(req); err != nil {
		h.metrics.ObserveOutcome(metrics.OutcomeValidationError)
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	description, err := h.assistant.GenerateDescription(r.Context(), req.Title, req.Category)
	h.metrics.ObserveUpstream(time.Since(start))
	if err != nil {
		h.writeGenerationError(w, err)
		return
	}

	h.metrics.ObserveOutcome(metrics.OutcomeSuccess)
	writeJSON(w, http.StatusOK, models.GenerateResponse{Description: description})
}

func (h *DescriptionHandler) writeGenerationError(w http.ResponseWriter, err error) {
	var (
		malformed *service.MalformedResponseError
		upstream  *service.UpstreamError
		missing   *service.MissingContentError
	)

	switch {
	case errors.As(err, &malformed):
		h.metrics.ObserveOutcome(metrics.OutcomeParseError)
		h.logger.Error("invalid JSON from Mistral API",
			slog.Int("status", malformed.Status),
			slog.String("raw_excerpt", malformed.Excerpt()),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, models.ParseErrorResponse{
			Error:       msgParseError,
			RawResponse: malformed.Excerpt(),
		})

	case errors.As(err, &upstream):
		h.metrics.ObserveOutcome(metrics.OutcomeUpstreamError)
		h.logger.Warn("Mistral API returned an error",
			slog.Int("status", upstream.Status),
			slog.String("message", upstream.Message))
		writeJSON(w, relayStatus(upstream.Status), models.UpstreamErrorResponse{
			Error:   upstream.Message,
			Details: upstream.Details,
		})

	case errors.As(err, &missing):
		h.metrics.ObserveOutcome(metrics.OutcomeMissingContent)
		h.logger.Error("no content in Mistral API response", slog.Any("response", missing.Body))
		writeJSON(w, http.StatusInternalServerError, models.MissingContentResponse{
			Error:       msgMissingContent,
			ApiResponse: missing.Body,
		})

	default:
		h.metrics.ObserveOutcome(metrics.OutcomeInternalError)
		h.logger.Error("description generation failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, models.InternalErrorResponse{
			Error:   msgInternalError,
			Details: err.Error(),
		})
	}
}

// relayStatus возвращает статус upstream как есть; статусы ниже 400 не являются ошибкой
// для клиента и заменяются на 502.
func relayStatus(status int) int {
	if status < http.StatusBadRequest || status > 599 {
		return http.StatusBadGateway
	}
	return status
}

// RegisterRoutes регистрирует маршрут генерации описания
func (h *DescriptionHandler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-description", h.GenerateDescription)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
