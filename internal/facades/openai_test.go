package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completionBody(content string) string {
	body := map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
		"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 20, "total_tokens": 30},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestOpenAIFacade_Complete_Success(t *testing.T) {
	var got struct {
		Model          string `json:"model"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody(`{"totalCalories": 250}`)))
	}))
	defer srv.Close()

	f := NewOpenAIFacade("sk-test", srv.URL, "gpt-4o-mini", time.Second)

	text, err := f.Complete(context.Background(), "system", "two eggs")
	require.NoError(t, err)
	assert.Equal(t, `{"totalCalories": 250}`, text)

	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, "json_object", got.ResponseFormat.Type)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "two eggs", got.Messages[1].Content)
}

func TestOpenAIFacade_Complete_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind apperrors.UpstreamKind
	}{
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"error":{"message":"Incorrect API key","type":"invalid_request_error"}}`,
			wantKind: apperrors.UpstreamUnauthorized,
		},
		{
			name:     "forbidden",
			status:   http.StatusForbidden,
			body:     `{"error":{"message":"forbidden","type":"invalid_request_error"}}`,
			wantKind: apperrors.UpstreamUnauthorized,
		},
		{
			name:     "rate limited",
			status:   http.StatusTooManyRequests,
			body:     `{"error":{"message":"Rate limit reached","type":"requests"}}`,
			wantKind: apperrors.UpstreamRateLimited,
		},
		{
			name:     "gateway timeout",
			status:   http.StatusGatewayTimeout,
			body:     `upstream timed out`,
			wantKind: apperrors.UpstreamTimeout,
		},
		{
			name:     "server error",
			status:   http.StatusInternalServerError,
			body:     `{"error":{"message":"boom","type":"server_error"}}`,
			wantKind: apperrors.UpstreamUnknown,
		},
		{
			name:     "no choices",
			status:   http.StatusOK,
			body:     `{"id":"x","object":"chat.completion","choices":[]}`,
			wantKind: apperrors.UpstreamMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			f := NewOpenAIFacade("sk-test", srv.URL, "gpt-4o-mini", time.Second)

			text, err := f.Complete(context.Background(), "system", "user")
			assert.Empty(t, text)
			assert.True(t, apperrors.IsUpstreamKind(err, tt.wantKind), "got %v", err)
		})
	}
}

func TestOpenAIFacade_Complete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	f := NewOpenAIFacade("sk-test", srv.URL, "gpt-4o-mini", 50*time.Millisecond)

	start := time.Now()
	_, err := f.Complete(context.Background(), "system", "user")
	assert.True(t, apperrors.IsUpstreamKind(err, apperrors.UpstreamTimeout), "got %v", err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestOpenAIFacade_Complete_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewOpenAIFacade("sk-test", url, "gpt-4o-mini", time.Second)

	_, err := f.Complete(context.Background(), "system", "user")
	assert.True(t, apperrors.IsUpstreamKind(err, apperrors.UpstreamUnknown), "got %v", err)
}
