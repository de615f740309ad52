package model

import "time"

// Message roles produced by this application. A "system" role is synthesized
// only when building a completion request and is never persisted.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultConversationTitle is the title every conversation starts with until
// the first user message triggers title generation.
const DefaultConversationTitle = "New Chat"

// Conversation stores metadata about a single chat thread.
type Conversation struct {
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	PersonalityConfig *PersonalityConfig `json:"personalityConfig"`
	UserID            *string            `json:"userId"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// Message is a single role-tagged utterance within a conversation.
// Messages are immutable once written and are read back in creation order.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

// PersonalityConfig describes the assistant persona injected into every
// completion request. It is not a stored entity of its own: it travels as a
// request payload or lives in the client's local configuration.
type PersonalityConfig struct {
	Name               string             `json:"name" validate:"required"`
	Personality        string             `json:"personality" validate:"required"`
	Traits             []string           `json:"traits" validate:"required,min=1,dive,required"`
	CommunicationStyle string             `json:"communication_style" validate:"required"`
	Interests          []string           `json:"interests" validate:"required,min=1,dive,required"`
	ResponseGuidelines ResponseGuidelines `json:"response_guidelines" validate:"required"`
	SystemPrompt       string             `json:"system_prompt" validate:"required"`
}

// ResponseGuidelines tunes how the persona phrases its replies.
type ResponseGuidelines struct {
	Tone       string `json:"tone" validate:"required"`
	Length     string `json:"length" validate:"required"`
	EmojiUsage string `json:"emoji_usage" validate:"required"`
}

// SendMessageResult is the payload returned by the send-message operation:
// the persisted user message and the persisted assistant reply, in that order.
type SendMessageResult struct {
	UserMessage Message `json:"userMessage"`
	AIMessage   Message `json:"aiMessage"`
}
