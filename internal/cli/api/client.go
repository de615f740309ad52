// Package api wraps the backend's HTTP JSON API for the chat client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bestie-chat/internal/model"
	"bestie-chat/internal/service"
)

// Client is a thin HTTP wrapper over the conversation endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client for the given base URL,
// e.g. http://localhost:8000.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		// Generous timeout: a send waits on the completion provider.
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateConversation opens a new conversation on the server.
func (c *Client) CreateConversation(ctx context.Context, req *service.CreateConversationRequest) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := c.doJSON(ctx, http.MethodPost, "/api/conversations", req, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetConversation fetches a conversation's metadata.
func (c *Client) GetConversation(ctx context.Context, id int64) (*model.Conversation, error) {
	var conversation model.Conversation
	path := fmt.Sprintf("/api/conversations/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// GetMessages fetches a conversation's ordered message history.
func (c *Client) GetMessages(ctx context.Context, id int64) ([]model.Message, error) {
	var messages []model.Message
	path := fmt.Sprintf("/api/conversations/%d/messages", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

type sendMessageRequest struct {
	Content           string                   `json:"content"`
	PersonalityConfig *model.PersonalityConfig `json:"personalityConfig,omitempty"`
}

// SendMessage submits a user message and returns both persisted messages.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, content string, personality *model.PersonalityConfig) (*model.SendMessageResult, error) {
	var result model.SendMessageResult
	path := fmt.Sprintf("/api/conversations/%d/messages", conversationID)
	req := sendMessageRequest{Content: content, PersonalityConfig: personality}
	if err := c.doJSON(ctx, http.MethodPost, path, &req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidationResult mirrors the server's validation payload.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidatePersonality asks the server to check a personality configuration
// without any side effects.
func (c *Client) ValidatePersonality(ctx context.Context, cfg *model.PersonalityConfig) (*ValidationResult, error) {
	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/validate-personality", cfg)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	// Both 200 and 400 carry a ValidationResult body.
	var result ValidationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode validation response: %w", err)
	}
	return &result, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doJSON performs a request and decodes a success body, translating error
// payloads into plain errors carrying the server's message.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}
