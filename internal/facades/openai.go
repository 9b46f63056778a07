package facades

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sbilibin2017/calorie-tracker/internal/apperrors"
	"github.com/sbilibin2017/calorie-tracker/internal/logger"
)

// OpenAIFacade sends chat completions to an OpenAI-compatible API.
type OpenAIFacade struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAIFacade creates a facade for the given endpoint. A non-positive timeout disables the per-call limit.
func NewOpenAIFacade(apiKey, baseURL, model string, timeout time.Duration) *OpenAIFacade {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIFacade{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends one system + user exchange in JSON mode and returns the raw assistant text.
// Failures are returned as *apperrors.UpstreamError.
func (f *OpenAIFacade) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	resp, err := f.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: f.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		upErr := classifyError(err)
		logger.Log.Errorw("chat completion failed", "model", f.model, "kind", upErr.Kind, "error", err)
		return "", upErr
	}

	if len(resp.Choices) == 0 {
		logger.Log.Errorw("chat completion returned no choices", "model", f.model)
		return "", apperrors.NewUpstreamError(apperrors.UpstreamMalformed, errors.New("no choices in completion"))
	}

	logger.Log.Infow("chat completion",
		"model", f.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
	)

	return resp.Choices[0].Message.Content, nil
}

func classifyError(err error) *apperrors.UpstreamError {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewUpstreamError(apperrors.UpstreamTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.NewUpstreamError(apperrors.UpstreamTimeout, err)
	}

	status := 0
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.NewUpstreamError(apperrors.UpstreamUnauthorized, err)
	case http.StatusTooManyRequests:
		return apperrors.NewUpstreamError(apperrors.UpstreamRateLimited, err)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apperrors.NewUpstreamError(apperrors.UpstreamTimeout, err)
	default:
		return apperrors.NewUpstreamError(apperrors.UpstreamUnknown, err)
	}
}
