package auth

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Jamolkhon5/museum/internal/logger"
)

type tokenVerifier interface {
	VerifyToken(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// authServiceDesc повторяет контракт auth.AuthService/VerifyToken.
var authServiceDesc = grpc.ServiceDesc{
	ServiceName: "auth.AuthService",
	HandlerType: (*tokenVerifier)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "VerifyToken",
		Handler: func(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
			in := new(wrapperspb.StringValue)
			if err := dec(in); err != nil {
				return nil, err
			}
			return srv.(tokenVerifier).VerifyToken(ctx, in)
		},
	}},
}

type fakeAuthServer struct {
	tokens map[string]string
	err    error
}

func (s *fakeAuthServer) VerifyToken(_ context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	if s.err != nil {
		return nil, s.err
	}
	userID, ok := s.tokens[in.GetValue()]
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return wrapperspb.String(userID), nil
}

func newTestClient(t *testing.T, impl *fakeAuthServer) *Client {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	srv.RegisterService(&authServiceDesc, impl)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewClient(conn, time.Second)
}

func TestVerifyToken(t *testing.T) {
	client := newTestClient(t, &fakeAuthServer{tokens: map[string]string{"good": "user-1"}})

	userID, err := client.VerifyToken(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = client.VerifyToken(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyTokenServiceFailure(t *testing.T) {
	client := newTestClient(t, &fakeAuthServer{err: status.Error(codes.Unavailable, "down")})

	_, err := client.VerifyToken(context.Background(), "good")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestMiddleware(t *testing.T) {
	client := newTestClient(t, &fakeAuthServer{tokens: map[string]string{"good": "user-1"}})

	var seenUser string
	handler := client.Middleware(logger.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user-1", seenUser)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAuthServiceDown(t *testing.T) {
	client := newTestClient(t, &fakeAuthServer{err: status.Error(codes.Internal, "boom")})
	handler := client.Middleware(logger.Discard())(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, TokenFromRequest(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, TokenFromRequest(req))

	req.Header.Set("Authorization", "Bearer abc ")
	assert.Equal(t, "abc", TokenFromRequest(req))
}
