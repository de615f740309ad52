package interfaces

import (
	"context"

	"bestie-chat/internal/model"
	"bestie-chat/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows
// for decoupling (e.g., API layer from Service layer) and easier testing via
// mocking.

// ChatService defines the contract for conversation and message logic.
type ChatService interface {
	CreateConversation(ctx context.Context, req *service.CreateConversationRequest) (*model.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*model.Conversation, error)
	GetMessages(ctx context.Context, conversationID int64) ([]model.Message, error)
	SendMessage(ctx context.Context, conversationID int64, content string, personality *model.PersonalityConfig) (*model.SendMessageResult, error)
	ValidatePersonality(cfg *model.PersonalityConfig) error
}
