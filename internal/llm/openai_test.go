package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "bestie-chat/internal/errors"
	"bestie-chat/internal/model"
)

// newStubServer runs a stand-in for the completion API. It captures the
// request our provider sends and replies with the given handler, which lets
// us verify the wire format without any real network calls.
func newStubServer(t *testing.T, reply string, status int, captured *chatCompletionRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func choicesJSON(content string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(body)
}

func TestGenerateChatResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends fixed parameters and the default persona", func(t *testing.T) {
		var captured chatCompletionRequest
		server := newStubServer(t, choicesJSON("Hi there!"), http.StatusOK, &captured)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		history := []Message{{Role: "user", Content: "Hello"}}

		reply, err := provider.GenerateChatResponse(ctx, history, nil)
		require.NoError(t, err)
		assert.Equal(t, "Hi there!", reply)

		assert.Equal(t, chatModel, captured.Model)
		assert.Equal(t, responseMaxTokens, captured.MaxTokens)
		assert.InDelta(t, responseTemperature, captured.Temperature, 0.0001)

		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, defaultSystemPrompt, captured.Messages[0].Content)
		assert.Equal(t, "user", captured.Messages[1].Role)
	})

	t.Run("Personality system prompt replaces the default", func(t *testing.T) {
		var captured chatCompletionRequest
		server := newStubServer(t, choicesJSON("ok"), http.StatusOK, &captured)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		cfg := &model.PersonalityConfig{SystemPrompt: "You are Alex."}

		_, err := provider.GenerateChatResponse(ctx, []Message{{Role: "user", Content: "Hi"}}, cfg)
		require.NoError(t, err)
		assert.Equal(t, "You are Alex.", captured.Messages[0].Content)
	})

	t.Run("Empty choices yield the fallback text", func(t *testing.T) {
		server := newStubServer(t, `{"choices":[]}`, http.StatusOK, nil)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		reply, err := provider.GenerateChatResponse(ctx, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, emptyResponseFallback, reply)
	})

	t.Run("API failure wraps ErrCompletion", func(t *testing.T) {
		server := newStubServer(t, `{"error":"boom"}`, http.StatusInternalServerError, nil)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		_, err := provider.GenerateChatResponse(ctx, []Message{{Role: "user", Content: "Hi"}}, nil)
		assert.ErrorIs(t, err, app_errors.ErrCompletion)
	})

	t.Run("Unreachable server wraps ErrCompletion", func(t *testing.T) {
		provider := NewOpenAIProvider("http://127.0.0.1:1", "test-key")
		_, err := provider.GenerateChatResponse(ctx, []Message{{Role: "user", Content: "Hi"}}, nil)
		assert.ErrorIs(t, err, app_errors.ErrCompletion)
	})
}

func TestGenerateChatTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the small, low-randomness title request", func(t *testing.T) {
		var captured chatCompletionRequest
		server := newStubServer(t, choicesJSON("  Trip Planning  "), http.StatusOK, &captured)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		title := provider.GenerateChatTitle(ctx, "Help me plan a trip")

		assert.Equal(t, "Trip Planning", title)
		assert.Equal(t, titleMaxTokens, captured.MaxTokens)
		assert.InDelta(t, titleTemperature, captured.Temperature, 0.0001)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, "system", captured.Messages[0].Role)
		assert.Equal(t, "Help me plan a trip", captured.Messages[1].Content)
	})

	t.Run("Falls back to the default title on failure", func(t *testing.T) {
		server := newStubServer(t, `{"error":"boom"}`, http.StatusBadGateway, nil)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		title := provider.GenerateChatTitle(ctx, "Hello")
		assert.Equal(t, model.DefaultConversationTitle, title)
	})

	t.Run("Falls back to the default title on empty content", func(t *testing.T) {
		server := newStubServer(t, choicesJSON(""), http.StatusOK, nil)
		defer server.Close()

		provider := NewOpenAIProvider(server.URL, "test-key")
		title := provider.GenerateChatTitle(ctx, "Hello")
		assert.Equal(t, model.DefaultConversationTitle, title)
	})
}
