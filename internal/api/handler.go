package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	app_errors "bestie-chat/internal/errors"
	"bestie-chat/internal/interfaces"
	"bestie-chat/internal/model"
	"bestie-chat/internal/service"
)

// ChatHandler exposes the conversation and message endpoints.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// SendMessageRequest is the DTO for the send-message endpoint.
type SendMessageRequest struct {
	Content           string                   `json:"content" validate:"required"`
	PersonalityConfig *model.PersonalityConfig `json:"personalityConfig,omitempty"`
}

// CreateConversation godoc
// @Summary      Create a conversation
// @Description  Creates a new conversation. Title defaults to "New Chat".
// @Tags         Conversations
// @Accept       json
// @Produce      json
// @Param        conversation  body      service.CreateConversationRequest  true  "Conversation fields"
// @Success      200           {object}  model.Conversation
// @Failure      400           {object}  ErrorResponse
// @Router       /conversations [post]
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req service.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid conversation data", app_errors.ErrValidation))
		return
	}

	conversation, err := h.service.CreateConversation(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conversation)
}

// GetConversation godoc
// @Summary      Get a conversation
// @Tags         Conversations
// @Produce      json
// @Param        conversationID  path      int  true  "Conversation ID"
// @Success      200             {object}  model.Conversation
// @Failure      404             {object}  ErrorResponse
// @Router       /conversations/{conversationID} [get]
func (h *ChatHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	id, err := conversationIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	conversation, err := h.service.GetConversation(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, conversation)
}

// GetMessages godoc
// @Summary      List conversation messages
// @Description  Returns messages in ascending creation order. An unknown
// @Description  conversation id yields an empty list.
// @Tags         Messages
// @Produce      json
// @Param        conversationID  path      int  true  "Conversation ID"
// @Success      200             {array}   model.Message
// @Failure      500             {object}  ErrorResponse
// @Router       /conversations/{conversationID}/messages [get]
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	id, err := conversationIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	messages, err := h.service.GetMessages(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, messages)
}

// SendMessage godoc
// @Summary      Send a message and get the AI reply
// @Description  Persists the user message, generates an assistant reply, and
// @Description  returns both. The first user message also sets the title.
// @Tags         Messages
// @Accept       json
// @Produce      json
// @Param        conversationID  path      int                 true  "Conversation ID"
// @Param        message         body      SendMessageRequest  true  "Message content and optional personality config"
// @Success      200             {object}  model.SendMessageResult
// @Failure      400             {object}  ErrorResponse
// @Failure      500             {object}  ErrorResponse
// @Router       /conversations/{conversationID}/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, err := conversationIDParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.SendMessage(r.Context(), id, req.Content, req.PersonalityConfig)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// ValidatePersonality godoc
// @Summary      Validate a personality configuration
// @Description  Pure validation, no side effects.
// @Tags         Personality
// @Accept       json
// @Produce      json
// @Param        config  body      model.PersonalityConfig  true  "Personality configuration"
// @Success      200     {object}  ValidationResult
// @Failure      400     {object}  ValidationResult
// @Router       /validate-personality [post]
func (h *ChatHandler) ValidatePersonality(w http.ResponseWriter, r *http.Request) {
	var cfg model.PersonalityConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ValidationResult{Valid: false, Error: "invalid JSON payload"})
		return
	}

	if err := h.service.ValidatePersonality(&cfg); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ValidationResult{Valid: false, Error: err.Error()})
		return
	}
	respondWithJSON(w, http.StatusOK, ValidationResult{Valid: true})
}

// conversationIDParam parses the numeric conversation id from the URL.
func conversationIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "conversationID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: conversation id must be numeric", app_errors.ErrValidation)
	}
	return id, nil
}
