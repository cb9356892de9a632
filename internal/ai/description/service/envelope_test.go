package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySuccess(t *testing.T) {
	outcome, err := Classify(http.StatusOK, []byte(`{"choices":[{"message":{"content":"  A cat.  "}}]}`))
	require.NoError(t, err)
	assert.Equal(t, ChatSuccess{Content: "  A cat.  "}, outcome)
}

func TestClassifyMalformed(t *testing.T) {
	raw := "<html>" + strings.Repeat("x", 500) + "</html>"

	outcome, err := Classify(http.StatusBadGateway, []byte(raw))
	assert.Nil(t, outcome)

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, raw, malformed.Raw)
	assert.Equal(t, raw[:RawExcerptLength], malformed.Excerpt())
	assert.Len(t, []rune(malformed.Excerpt()), RawExcerptLength)
}

func TestMalformedExcerptShortBody(t *testing.T) {
	_, err := Classify(http.StatusOK, []byte("not json"))

	var malformed *MalformedResponseError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "not json", malformed.Excerpt())
}

func TestMalformedExcerptCountsCharacters(t *testing.T) {
	e := &MalformedResponseError{Raw: strings.Repeat("é", 300)}
	assert.Equal(t, strings.Repeat("é", RawExcerptLength), e.Excerpt())
}

func TestClassifyFailure(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error message present", http.StatusUnauthorized, `{"error":{"message":"Invalid API key"}}`, "Invalid API key"},
		{"no error field", http.StatusTooManyRequests, `{"detail":"slow down"}`, FallbackUpstreamMessage},
		{"error is a string", http.StatusBadRequest, `{"error":"bad"}`, FallbackUpstreamMessage},
		{"empty error message", http.StatusInternalServerError, `{"error":{"message":""}}`, FallbackUpstreamMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := Classify(tc.status, []byte(tc.body))
			require.NoError(t, err)

			failure, ok := outcome.(ChatFailure)
			require.True(t, ok, "expected ChatFailure, got %T", outcome)
			assert.Equal(t, tc.status, failure.Status)
			assert.Equal(t, tc.message, failure.Message)
			assert.NotNil(t, failure.Body)
		})
	}
}

func TestClassifyEmpty(t *testing.T) {
	bodies := []string{
		`{"choices":[]}`,
		`{"choices":[{}]}`,
		`{"choices":[{"message":{}}]}`,
		`{"choices":[{"message":{"content":""}}]}`,
		`{"choices":[{"message":{"content":" \n "}}]}`,
		`{"id":"cmpl-1"}`,
		`null`,
	}

	for _, body := range bodies {
		outcome, err := Classify(http.StatusOK, []byte(body))
		require.NoError(t, err, body)
		_, ok := outcome.(ChatEmpty)
		assert.True(t, ok, "body %s: expected ChatEmpty, got %T", body, outcome)
	}
}

func TestClassifyEmptyKeepsBody(t *testing.T) {
	outcome, err := Classify(http.StatusOK, []byte(`{"id":"cmpl-1","choices":[]}`))
	require.NoError(t, err)

	empty := outcome.(ChatEmpty)
	assert.Equal(t, map[string]any{"id": "cmpl-1", "choices": []any{}}, empty.Body)
}
