package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	app_errors "bestie-chat/internal/errors"
	"bestie-chat/internal/model"
)

// Message is the role-tagged unit of conversation history sent to the
// completion API. It is a LOCAL type for the llm package so callers do not
// depend on the provider's wire format.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider defines the interface for interacting with a text-completion API.
type Provider interface {
	// GenerateChatResponse sends the full conversation history (oldest first)
	// prefixed with a system message and returns the generated reply.
	// Failures are wrapped in ErrCompletion and must not be retried here.
	GenerateChatResponse(ctx context.Context, history []Message, personality *model.PersonalityConfig) (string, error)

	// GenerateChatTitle produces a short title for a conversation from its
	// first message. It never fails: any error yields the fallback title.
	GenerateChatTitle(ctx context.Context, firstMessage string) string
}

// Generation parameters are fixed policy: identical on every call so that
// behavior is reproducible against test doubles.
const (
	chatModel = "gpt-4o"

	responseMaxTokens   = 500
	responseTemperature = 0.7

	titleMaxTokens   = 20
	titleTemperature = 0.3
)

const defaultSystemPrompt = "You are a helpful AI assistant and best friend. " +
	"Be supportive, friendly, and engaging in your responses."

const titleSystemPrompt = "Generate a short, descriptive title (max 5 words) " +
	"for a conversation that starts with the following message. " +
	"Only respond with the title, no quotes or extra text."

const emptyResponseFallback = "I'm sorry, I couldn't generate a response."

type openAIProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewOpenAIProvider creates a Provider backed by an OpenAI-compatible
// chat-completions endpoint. The base URL is configurable so tests can point
// the provider at a local stub server.
func NewOpenAIProvider(baseURL, apiKey string) Provider {
	return &openAIProvider{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func (p *openAIProvider) GenerateChatResponse(ctx context.Context, history []Message, personality *model.PersonalityConfig) (string, error) {
	systemPrompt := defaultSystemPrompt
	if personality != nil && personality.SystemPrompt != "" {
		systemPrompt = personality.SystemPrompt
	}

	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, Message{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)

	content, err := p.complete(ctx, &chatCompletionRequest{
		Model:       chatModel,
		Messages:    messages,
		MaxTokens:   responseMaxTokens,
		Temperature: responseTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", app_errors.ErrCompletion, err)
	}
	if content == "" {
		return emptyResponseFallback, nil
	}
	return content, nil
}

func (p *openAIProvider) GenerateChatTitle(ctx context.Context, firstMessage string) string {
	content, err := p.complete(ctx, &chatCompletionRequest{
		Model: chatModel,
		Messages: []Message{
			{Role: "system", Content: titleSystemPrompt},
			{Role: "user", Content: firstMessage},
		},
		MaxTokens:   titleMaxTokens,
		Temperature: titleTemperature,
	})
	if err != nil {
		// Title generation is non-fatal to the send-message flow.
		slog.Warn("Failed to generate chat title, using fallback", "error", err)
		return model.DefaultConversationTitle
	}
	if content == "" {
		return model.DefaultConversationTitle
	}
	return content
}

// complete performs a single non-streaming chat-completion call and returns
// the trimmed content of the first choice.
func (p *openAIProvider) complete(ctx context.Context, req *chatCompletionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
