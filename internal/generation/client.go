// Package generation is the HTTP client for the coaching model hub. The hub
// is an opaque collaborator: given a prompt it returns free text; the
// customizer expects that text to contain JSON but parsing is the caller's
// concern.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	DefaultHubURL  = "http://127.0.0.1:8400"
	DefaultModel   = "coach-roadmap-writer"
	requestTimeout = 90 * time.Second
)

// ErrUnreachable wraps transport-level failures so callers can distinguish
// "offline" from "the hub answered badly" for user-facing messages only.
var ErrUnreachable = errors.New("generation hub unreachable")

// IsOffline reports whether an error was a transport failure rather than a
// bad response.
func IsOffline(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

type Client struct {
	BaseURL string
	Model   string
	http    *http.Client
}

func NewClient(url, model string) *Client {
	if url == "" {
		url = DefaultHubURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		BaseURL: url,
		Model:   model,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type hubRequest struct {
	Model    string    `json:"model"`
	Prompt   string    `json:"prompt,omitempty"`
	Messages []message `json:"messages,omitempty"`
	Stream   bool      `json:"stream"`
}

type hubResponse struct {
	Response string  `json:"response"`
	Message  message `json:"message"` // chat-shaped fallback
	Done     bool    `json:"done"`
}

// Generate sends a single free-form prompt and returns the model's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.run(ctx, hubRequest{Model: c.Model, Prompt: prompt, Stream: false})
}

// Chat sends a system/user message pair and returns the assistant content.
// The customizer uses this path with a system prompt that demands JSON.
func (c *Client) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return c.run(ctx, hubRequest{
		Model: c.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	})
}

func (c *Client) run(ctx context.Context, reqBody hubRequest) (string, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/model/run", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("generation: error closing hub response body: %v", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("hub returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response hubResponse
	if err := json.Unmarshal(body, &response); err != nil {
		// Fallback: some hub spokes answer with a flat map.
		var simple map[string]string
		if err2 := json.Unmarshal(body, &simple); err2 == nil {
			if val, ok := simple["response"]; ok {
				return val, nil
			}
		}
		return "", fmt.Errorf("failed to unmarshal hub response: %v", err)
	}

	content := response.Response
	if content == "" {
		content = response.Message.Content
	}
	if content == "" {
		log.Printf("generation: model %s returned empty content", c.Model)
	}
	return content, nil
}
