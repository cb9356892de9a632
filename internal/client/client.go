package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	descmodels "github.com/Jamolkhon5/museum/internal/ai/description/models"
	"github.com/Jamolkhon5/museum/internal/models"
)

var ErrMissingDescription = errors.New("gateway response has no description")

// GatewayError описывает ответ сервера со статусом вне 2xx. Message можно показывать пользователю.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Message)
}

// Клиент шлюза генерации описаний и API элементов и списков
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
	}
}

// WithToken задает bearer-токен для всех последующих запросов.
func (c *Client) WithToken(token string) *Client {
	if token != "" {
		c.http.SetAuthToken(token)
	}
	return c
}

// GenerateDescription запрашивает описание для subjectTitle в контексте contextText
// (категория элемента или составной контекст подборки).
func (c *Client) GenerateDescription(ctx context.Context, subjectTitle, contextText string) (string, error) {
	resp, err := doJSON[descmodels.GenerateResponse](ctx, c, http.MethodPost, "/generate-description",
		descmodels.GenerateRequest{Title: subjectTitle, Category: contextText})
	if err != nil {
		return "", err
	}
	if resp.Description == "" {
		return "", ErrMissingDescription
	}
	return resp.Description, nil
}

func (c *Client) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	return doJSON[models.Item](ctx, c, http.MethodPost, "/v1/items", req)
}

func (c *Client) FetchItem(ctx context.Context, id uuid.UUID) (models.Item, error) {
	return doJSON[models.Item](ctx, c, http.MethodGet, "/v1/items/"+id.String(), nil)
}

func (c *Client) UpdateItemDescription(ctx context.Context, id uuid.UUID, description string) (models.Item, error) {
	return doJSON[models.Item](ctx, c, http.MethodPut, "/v1/items/"+id.String()+"/description",
		models.UpdateDescriptionRequest{Description: description})
}

func (c *Client) CreateList(ctx context.Context, req models.CreateListRequest) (models.List, error) {
	return doJSON[models.List](ctx, c, http.MethodPost, "/v1/lists", req)
}

func (c *Client) FetchList(ctx context.Context, id uuid.UUID) (models.List, error) {
	return doJSON[models.List](ctx, c, http.MethodGet, "/v1/lists/"+id.String(), nil)
}

func (c *Client) UpdateListDescription(ctx context.Context, id uuid.UUID, description string) (models.List, error) {
	return doJSON[models.List](ctx, c, http.MethodPut, "/v1/lists/"+id.String()+"/description",
		models.UpdateDescriptionRequest{Description: description})
}

func doJSON[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T

	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("error calling %s %s: %w", method, path, err)
	}

	if !res.IsSuccess() {
		return out, gatewayError(res)
	}

	if err := json.Unmarshal(res.Body(), &out); err != nil {
		return out, fmt.Errorf("error decoding %s %s response: %w", method, path, err)
	}
	return out, nil
}

func gatewayError(res *resty.Response) error {
	message := http.StatusText(res.StatusCode())

	var body models.ErrorResponse
	if err := json.Unmarshal(res.Body(), &body); err == nil && body.Error != "" {
		message = body.Error
	}
	return &GatewayError{Status: res.StatusCode(), Message: message}
}
