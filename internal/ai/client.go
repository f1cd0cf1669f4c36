package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

// ===========================
// 🎯 OpenAI Client
// ===========================

// ErrRateLimited marks a 429 or quota failure from the upstream API. The
// service layer decides how many times it is worth retrying.
var ErrRateLimited = errors.New("upstream rate limited")

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type openAIClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewClient(cfg *config.Config) Client {
	return &openAIClient{
		httpClient: &http.Client{Timeout: cfg.OpenAITimeout},
		apiKey:     cfg.OpenAIAPIKey,
		baseURL:    cfg.OpenAIBaseURL,
		model:      cfg.OpenAIModel,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// Complete sends one chat completion request and returns the generated text.
func (c *openAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || isQuotaError(parsed.Error) {
		return "", ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("upstream error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("upstream status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return parsed.Choices[0].Message.Content, nil
}

func isQuotaError(e *apiError) bool {
	if e == nil {
		return false
	}
	return e.Code == "insufficient_quota" || e.Code == "rate_limit_exceeded" ||
		e.Type == "insufficient_quota" || e.Type == "rate_limit_exceeded"
}
