// Package controller holds the client-side chat state: the active
// conversation, the cached message list, and the lifecycle of an in-flight
// send. The terminal layer only renders what this package exposes.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"bestie-chat/internal/model"
	"bestie-chat/internal/service"
)

// SendState is the explicit lifecycle of the current send request.
type SendState int

const (
	StateIdle SendState = iota
	StatePending
	StateSucceeded
	StateFailed
)

// ChatAPI is the slice of the backend API the controller needs.
type ChatAPI interface {
	CreateConversation(ctx context.Context, req *service.CreateConversationRequest) (*model.Conversation, error)
	GetConversation(ctx context.Context, id int64) (*model.Conversation, error)
	GetMessages(ctx context.Context, id int64) ([]model.Message, error)
	SendMessage(ctx context.Context, conversationID int64, content string, personality *model.PersonalityConfig) (*model.SendMessageResult, error)
}

// PersonalityStore abstracts where the serialized personality configuration
// lives. The controller never touches the config file directly.
type PersonalityStore interface {
	Load() (string, error)
	Save(raw string) error
}

// Notifier surfaces user-visible warnings and errors. The controller never
// prints; presentation decides how notifications look.
type Notifier interface {
	Warn(message string)
	Error(message string)
}

// Controller coordinates fetching and sending against a single active
// conversation. Sends are serialized: a new send is refused while one is in
// flight.
type Controller struct {
	api   ChatAPI
	store PersonalityStore
	notif Notifier

	mu             sync.Mutex
	conversationID int64
	conversation   *model.Conversation
	messages       []model.Message
	state          SendState
}

func New(api ChatAPI, store PersonalityStore, notif Notifier) *Controller {
	return &Controller{
		api:      api,
		store:    store,
		notif:    notif,
		messages: []model.Message{},
	}
}

// Bootstrap creates the initial conversation and makes it active. It replaces
// any implicit well-known conversation id: the id always comes from the server.
func (c *Controller) Bootstrap(ctx context.Context) error {
	return c.NewConversation(ctx)
}

// NewConversation opens a fresh conversation (no personality, no owner) and
// switches the controller to it, seeding the conversation cache with the
// server's response.
func (c *Controller) NewConversation(ctx context.Context) error {
	conversation, err := c.api.CreateConversation(ctx, &service.CreateConversationRequest{})
	if err != nil {
		c.notif.Error("Failed to create new conversation: " + err.Error())
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.conversationID = conversation.ID
	c.conversation = conversation
	c.messages = []model.Message{}
	c.state = StateIdle
	return nil
}

// ClearChat empties the local message cache and immediately starts a new
// conversation. The previous conversation's server-side data is untouched.
func (c *Controller) ClearChat(ctx context.Context) error {
	c.mu.Lock()
	c.messages = []model.Message{}
	c.mu.Unlock()
	return c.NewConversation(ctx)
}

// SendMessage submits the content to the active conversation. It is a no-op
// while a send is already pending or when no conversation is active. On
// success the message and conversation caches are refetched wholesale; on
// failure the error detail is surfaced through the notifier. The pending
// state clears on both paths.
func (c *Controller) SendMessage(ctx context.Context, content string) error {
	c.mu.Lock()
	if c.state == StatePending || c.conversationID == 0 {
		c.mu.Unlock()
		return nil
	}
	c.state = StatePending
	conversationID := c.conversationID
	c.mu.Unlock()

	personality := c.loadPersonality()

	result, err := c.api.SendMessage(ctx, conversationID, content, personality)
	if err != nil {
		c.mu.Lock()
		c.state = StateFailed
		c.mu.Unlock()
		c.notif.Error(err.Error())
		return err
	}
	_ = result // the refetch below supersedes the response payload

	// Invalidate, don't merge: refetch both caches so the view reflects the
	// new messages and any generated title.
	messages, msgErr := c.api.GetMessages(ctx, conversationID)
	conversation, convErr := c.api.GetConversation(ctx, conversationID)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateSucceeded
	if msgErr == nil {
		c.messages = messages
	} else {
		c.notif.Warn("Failed to refresh messages: " + msgErr.Error())
	}
	if convErr == nil {
		c.conversation = conversation
	} else {
		c.notif.Warn("Failed to refresh conversation: " + convErr.Error())
	}
	return nil
}

// loadPersonality reads the stored personality configuration. A malformed
// value is discarded with a warning rather than sent to the server.
func (c *Controller) loadPersonality() *model.PersonalityConfig {
	raw, err := c.store.Load()
	if err != nil {
		c.notif.Warn("Failed to load personality configuration: " + err.Error())
		return nil
	}
	if raw == "" {
		return nil
	}

	var cfg model.PersonalityConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		c.notif.Warn("Invalid personality configuration, using default")
		return nil
	}
	return &cfg
}

// SavePersonality validates that the raw value is well-formed JSON before
// persisting it through the store.
func (c *Controller) SavePersonality(raw string) error {
	if raw != "" {
		var cfg model.PersonalityConfig
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			return fmt.Errorf("invalid JSON in personality configuration: %w", err)
		}
	}
	return c.store.Save(raw)
}

// Conversation returns the cached active conversation, or nil before Bootstrap.
func (c *Controller) Conversation() *model.Conversation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conversation
}

// Messages returns the cached message list.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// State returns the lifecycle state of the latest send.
func (c *Controller) State() SendState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ActiveConversationID returns the id of the active conversation, 0 if none.
func (c *Controller) ActiveConversationID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conversationID
}
