package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// VerifyTokenMethod принимает токен (StringValue) и возвращает ID пользователя (StringValue).
const VerifyTokenMethod = "/auth.AuthService/VerifyToken"

var ErrUnauthorized = errors.New("unauthorized")

type Client struct {
	conn    grpc.ClientConnInterface
	timeout time.Duration
}

func NewClient(conn grpc.ClientConnInterface, timeout time.Duration) *Client {
	return &Client{conn: conn, timeout: timeout}
}

func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(ctx, VerifyTokenMethod, wrapperspb.String(token), out); err != nil {
		switch status.Code(err) {
		case codes.Unauthenticated, codes.PermissionDenied, codes.NotFound:
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("auth service: %w", err)
	}

	if out.GetValue() == "" {
		return "", ErrUnauthorized
	}
	return out.GetValue(), nil
}

// TokenFromRequest достает bearer-токен из заголовка Authorization.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
