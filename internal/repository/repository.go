package repository

import (
	"context"

	"bestie-chat/internal/model"
)

// Repository defines the interface for data storage operations.
// This interface makes it easy to switch database implementations.
type Repository interface {
	// CreateConversation stores a new conversation and fills in its
	// storage-assigned ID and creation timestamp.
	CreateConversation(ctx context.Context, conversation *model.Conversation) error

	// GetConversation returns the conversation with the given ID, or
	// ErrNotFound if it does not exist.
	GetConversation(ctx context.Context, id int64) (*model.Conversation, error)

	// UpdateConversationTitle replaces the title of an existing conversation.
	// Returns ErrNotFound if the conversation does not exist.
	UpdateConversationTitle(ctx context.Context, id int64, title string) error

	// CreateMessage stores a new message and fills in its storage-assigned
	// ID and creation timestamp.
	CreateMessage(ctx context.Context, message *model.Message) error

	// GetMessagesByConversation returns all messages of a conversation in
	// ascending creation order. A conversation with no messages yields an
	// empty slice, never an error.
	GetMessagesByConversation(ctx context.Context, conversationID int64) ([]model.Message, error)
}
