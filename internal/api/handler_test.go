// The `_test` suffix creates a "black box" test package: the tests can only
// reach the api package's exported identifiers, which keeps them honest about
// the public surface.
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bestie-chat/internal/api"
	app_errors "bestie-chat/internal/errors"
	"bestie-chat/internal/interfaces/mocks"
	"bestie-chat/internal/model"
	"bestie-chat/internal/service"
)

// setupChatHandler encapsulates the repetitive setup of a handler with a
// mocked service, keeping each test focused on the behavior under test.
func setupChatHandler(t *testing.T) (*api.ChatHandler, *mocks.MockChatService) {
	mockSvc := mocks.NewMockChatService(t)
	return api.NewChatHandler(mockSvc), mockSvc
}

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g. `{conversationID}`) into the request's context. Without it,
// chi.URLParam would return an empty string inside the handlers.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func TestChatHandler_CreateConversation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		expected := &model.Conversation{ID: 1, Title: "New Chat"}
		mockSvc.On("CreateConversation", mock.Anything, mock.MatchedBy(func(req *service.CreateConversationRequest) bool {
			return req.Title == "" && req.PersonalityConfig == nil
		})).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/conversations", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		handler.CreateConversation(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned model.Conversation
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, *expected, returned)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/conversations", strings.NewReader(`{invalid`))
		rr := httptest.NewRecorder()
		handler.CreateConversation(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Service rejects personality", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("CreateConversation", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: bad personality", app_errors.ErrValidation)).Once()

		body := `{"title":"Custom","personalityConfig":{"name":"x"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/conversations", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateConversation(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_GetConversation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		expected := &model.Conversation{ID: 5, Title: "Trip planning"}
		mockSvc.On("GetConversation", mock.Anything, int64(5)).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/conversations/5", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "5"})
		rr := httptest.NewRecorder()
		handler.GetConversation(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("GetConversation", mock.Anything, int64(404)).Return(nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/conversations/404", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "404"})
		rr := httptest.NewRecorder()
		handler.GetConversation(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Failure - Non-numeric id", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodGet, "/api/conversations/abc", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "abc"})
		rr := httptest.NewRecorder()
		handler.GetConversation(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestChatHandler_GetMessages(t *testing.T) {
	t.Run("Success - unknown conversation is an empty list", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("GetMessages", mock.Anything, int64(99)).Return([]model.Message{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/conversations/99/messages", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "99"})
		rr := httptest.NewRecorder()
		handler.GetMessages(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Success - ordered messages are passed through", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		messages := []model.Message{
			{ID: 1, ConversationID: 2, Role: model.RoleUser, Content: "Hello"},
			{ID: 2, ConversationID: 2, Role: model.RoleAssistant, Content: "Hi!"},
		}
		mockSvc.On("GetMessages", mock.Anything, int64(2)).Return(messages, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/conversations/2/messages", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "2"})
		rr := httptest.NewRecorder()
		handler.GetMessages(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned []model.Message
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, messages, returned)
	})

	t.Run("Failure - storage error", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("GetMessages", mock.Anything, int64(2)).Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/conversations/2/messages", nil)
		req = addChiURLParams(req, map[string]string{"conversationID": "2"})
		rr := httptest.NewRecorder()
		handler.GetMessages(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "internal server error")
	})
}

func TestChatHandler_SendMessage(t *testing.T) {
	sendRequest := func(handler *api.ChatHandler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/conversations/1/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"conversationID": "1"})
		rr := httptest.NewRecorder()
		handler.SendMessage(rr, req)
		return rr
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		result := &model.SendMessageResult{
			UserMessage: model.Message{ID: 1, Role: model.RoleUser, Content: "Hello"},
			AIMessage:   model.Message{ID: 2, Role: model.RoleAssistant, Content: "Hi!"},
		}
		mockSvc.On("SendMessage", mock.Anything, int64(1), "Hello", (*model.PersonalityConfig)(nil)).
			Return(result, nil).Once()

		rr := sendRequest(handler, `{"content":"Hello"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		var returned model.SendMessageResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, "Hello", returned.UserMessage.Content)
		assert.Equal(t, model.RoleUser, returned.UserMessage.Role)
		assert.Equal(t, model.RoleAssistant, returned.AIMessage.Role)
		assert.NotEmpty(t, returned.AIMessage.Content)
	})

	t.Run("Failure - missing content rejected at the boundary", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		rr := sendRequest(handler, `{"content":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'Content' failed on the 'required' tag")
	})

	t.Run("Failure - whitespace content rejected by the service", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("SendMessage", mock.Anything, int64(1), "   ", (*model.PersonalityConfig)(nil)).
			Return(nil, fmt.Errorf("%w: message content is required", app_errors.ErrValidation)).Once()

		rr := sendRequest(handler, `{"content":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		rr := sendRequest(handler, `{"content":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - completion error maps to 500", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("SendMessage", mock.Anything, int64(1), "Hello", (*model.PersonalityConfig)(nil)).
			Return(nil, fmt.Errorf("%w: provider unavailable", app_errors.ErrCompletion)).Once()

		rr := sendRequest(handler, `{"content":"Hello"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "Failed to process message")
	})
}

func TestChatHandler_ValidatePersonality(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("ValidatePersonality", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/validate-personality", strings.NewReader(`{"name":"Alex"}`))
		rr := httptest.NewRecorder()
		handler.ValidatePersonality(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"valid":true}`, rr.Body.String())
	})

	t.Run("Invalid config - missing system prompt", func(t *testing.T) {
		handler, mockSvc := setupChatHandler(t)
		mockSvc.On("ValidatePersonality", mock.MatchedBy(func(cfg *model.PersonalityConfig) bool {
			return cfg.SystemPrompt == ""
		})).Return(fmt.Errorf("%w: Field 'SystemPrompt' failed on the 'required' tag", app_errors.ErrValidation)).Once()

		body := `{"name":"Alex","personality":"friendly","traits":["kind"],"communication_style":"casual","interests":["books"],"response_guidelines":{"tone":"warm","length":"short","emoji_usage":"never"}}`
		req := httptest.NewRequest(http.MethodPost, "/api/validate-personality", strings.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ValidatePersonality(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var result api.ValidationResult
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		handler, _ := setupChatHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/validate-personality", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		handler.ValidatePersonality(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"valid":false`)
	})
}
