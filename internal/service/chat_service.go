package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	app_errors "bestie-chat/internal/errors"
	"bestie-chat/internal/llm"
	"bestie-chat/internal/model"
	"bestie-chat/internal/repository"
)

// ChatService implements the business logic around conversations and the
// send-message flow: persist the user's message, ask the completion provider
// for a reply, persist the reply, and generate a title after the first
// user message.
type ChatService struct {
	repo     repository.Repository
	llm      llm.Provider
	validate *validator.Validate
}

// CreateConversationRequest carries the fields a client may set when opening
// a new conversation. All of them are optional.
type CreateConversationRequest struct {
	Title             string                   `json:"title"`
	PersonalityConfig *model.PersonalityConfig `json:"personalityConfig"`
	UserID            *string                  `json:"userId"`
}

func NewChatService(repo repository.Repository, llmProvider llm.Provider) *ChatService {
	return &ChatService{
		repo:     repo,
		llm:      llmProvider,
		validate: validator.New(),
	}
}

// CreateConversation validates the optional personality config and stores a
// new conversation. The title defaults to "New Chat" when omitted.
func (s *ChatService) CreateConversation(ctx context.Context, req *CreateConversationRequest) (*model.Conversation, error) {
	if req.PersonalityConfig != nil {
		if err := s.ValidatePersonality(req.PersonalityConfig); err != nil {
			return nil, err
		}
	}

	conversation := &model.Conversation{
		Title:             req.Title,
		PersonalityConfig: req.PersonalityConfig,
		UserID:            req.UserID,
	}
	if err := s.repo.CreateConversation(ctx, conversation); err != nil {
		return nil, fmt.Errorf("%w: could not create conversation: %s", app_errors.ErrStorage, err)
	}
	return conversation, nil
}

// GetConversation returns a single conversation by id.
func (s *ChatService) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	conversation, err := s.repo.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, app_errors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: could not get conversation: %s", app_errors.ErrStorage, err)
	}
	return conversation, nil
}

// GetMessages returns the ordered message history of a conversation. An
// unknown conversation id is indistinguishable from an empty conversation.
func (s *ChatService) GetMessages(ctx context.Context, conversationID int64) ([]model.Message, error) {
	messages, err := s.repo.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not get messages: %s", app_errors.ErrStorage, err)
	}
	return messages, nil
}

// ValidatePersonality checks a personality config against the schema rules.
// A nil config is rejected; partial configs name the offending fields.
func (s *ChatService) ValidatePersonality(cfg *model.PersonalityConfig) error {
	if cfg == nil {
		return fmt.Errorf("%w: personality configuration is required", app_errors.ErrValidation)
	}

	err := s.validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}

// SendMessage runs the core request flow. Validation happens before any side
// effect; once the user message is persisted it is never rolled back, so a
// later completion failure leaves a user message without a reply. That is an
// accepted, observable state.
func (s *ChatService) SendMessage(ctx context.Context, conversationID int64, content string, personality *model.PersonalityConfig) (*model.SendMessageResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", app_errors.ErrValidation)
	}
	if personality != nil {
		if err := s.ValidatePersonality(personality); err != nil {
			return nil, err
		}
	}

	userMessage := model.Message{
		ConversationID: conversationID,
		Role:           model.RoleUser,
		Content:        content,
	}
	if err := s.repo.CreateMessage(ctx, &userMessage); err != nil {
		return nil, fmt.Errorf("%w: could not save user message: %s", app_errors.ErrStorage, err)
	}

	history, err := s.repo.GetMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: could not load message history: %s", app_errors.ErrStorage, err)
	}

	llmMessages := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		llmMessages = append(llmMessages, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.llm.GenerateChatResponse(ctx, llmMessages, personality)
	if err != nil {
		return nil, err
	}

	aiMessage := model.Message{
		ConversationID: conversationID,
		Role:           model.RoleAssistant,
		Content:        reply,
	}
	if err := s.repo.CreateMessage(ctx, &aiMessage); err != nil {
		return nil, fmt.Errorf("%w: could not save assistant message: %s", app_errors.ErrStorage, err)
	}

	// The just-saved user message being the only user message in the history
	// marks this as the conversation's opening exchange.
	if countUserMessages(history) == 1 {
		title := s.llm.GenerateChatTitle(ctx, content)
		if err := s.repo.UpdateConversationTitle(ctx, conversationID, title); err != nil {
			return nil, fmt.Errorf("%w: could not update conversation title: %s", app_errors.ErrStorage, err)
		}
		slog.Info("Updated conversation title", "conversation_id", conversationID, "title", title)
	}

	return &model.SendMessageResult{UserMessage: userMessage, AIMessage: aiMessage}, nil
}

func countUserMessages(messages []model.Message) int {
	count := 0
	for _, msg := range messages {
		if msg.Role == model.RoleUser {
			count++
		}
	}
	return count
}
