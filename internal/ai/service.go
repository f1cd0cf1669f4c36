package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
	"github.com/Sriram31Mech/EventHubPro-1/middleware"
)

// ===========================
// 🎯 Description Assist Service
// ===========================

const (
	maxRetries   = 2
	retryBackoff = 500 * time.Millisecond
	retryAfter   = 30 * time.Second
)

type GenerateRequest struct {
	Title     string `json:"title"`
	EventType string `json:"eventType"`
	Venue     string `json:"venue"`
	Location  string `json:"location"`
}

type Service interface {
	GenerateDescription(ctx context.Context, identity middleware.Identity, req GenerateRequest) (string, error)
}

type service struct {
	client Client
	sleep  func(time.Duration)
}

func NewService(client Client) Service {
	return &service{client: client, sleep: time.Sleep}
}

// GenerateDescription asks the model for a draft listing description.
// Transient rate limits are retried twice with a fixed backoff before the
// caller is told to come back later.
func (s *service) GenerateDescription(ctx context.Context, identity middleware.Identity, req GenerateRequest) (string, error) {
	if identity.Role != middleware.RoleAdmin {
		return "", apperror.ErrForbidden
	}

	fields := map[string]string{}
	if strings.TrimSpace(req.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(req.Venue) == "" {
		fields["venue"] = "venue is required"
	}
	if len(fields) > 0 {
		return "", apperror.NewValidation(fields)
	}

	prompt := buildPrompt(req)

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			s.sleep(retryBackoff)
		}

		text, err := s.client.Complete(ctx, prompt)
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		lastErr = err

		if !errors.Is(err, ErrRateLimited) {
			break
		}
	}

	if errors.Is(lastErr, ErrRateLimited) {
		return "", &apperror.RateLimitedError{RetryAfter: retryAfter}
	}
	return "", &apperror.ServiceError{Op: "generate description", Err: lastErr}
}

func buildPrompt(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a compelling and professional event description for the following event:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", req.Title)
	if req.EventType != "" {
		fmt.Fprintf(&b, "Type: %s\n", req.EventType)
	}
	fmt.Fprintf(&b, "Venue: %s\n", req.Venue)
	if req.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", req.Location)
	}
	b.WriteString("\nKeep it engaging, concise and suitable for a public event listing.")
	return b.String()
}
