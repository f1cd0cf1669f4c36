package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sriram31Mech/EventHubPro-1/config"
)

func newTestClient(url string) Client {
	return NewClient(&config.Config{
		OpenAIAPIKey:  "test-key",
		OpenAIBaseURL: url,
		OpenAIModel:   "gpt-4o",
		OpenAITimeout: 5 * time.Second,
	})
}

func TestCompleteReturnsChoiceContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Join us!"}}]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Join us!", text)
}

func TestComplete429IsRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down","type":"requests"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestCompleteQuotaCodeIsRateLimited(t *testing.T) {
	// Quota exhaustion can arrive with a 200-range status but an error body.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"quota exceeded","code":"insufficient_quota"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestCompleteUpstreamErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"model overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Complete(context.Background(), "prompt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRateLimited)
	assert.Contains(t, err.Error(), "model overloaded")
}
