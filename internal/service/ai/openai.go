package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atelierhq/design-studio-api/internal/config"
)

// ErrTimeout is returned when a provider call exceeds its deadline. Callers
// may resubmit; the client never retries on its own.
var ErrTimeout = errors.New("provider request timed out")

// Error carries the provider's HTTP status and message for diagnostics.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider request failed with status %d: %s", e.StatusCode, e.Message)
}

// shared HTTP client for provider calls, reusing the connection pool across
// requests. Per-call deadlines come from the request context.
var providerHTTPClient = &http.Client{
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type imageGenerationRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageGenerationResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

type providerErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client is a thin adapter over the OpenAI text and image generation APIs.
type Client struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

func NewClient(cfg *config.OpenAIConfig) *Client {
	return &Client{
		config:     cfg,
		httpClient: providerHTTPClient,
	}
}

// GenerateText sends a chat-completion request and returns the raw text of
// the first choice.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.config.TextModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	var resp chatCompletionResponse
	if err := c.post(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &Error{StatusCode: http.StatusOK, Message: "response contained no choices"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// GenerateImages produces count rendered images for the prompt and returns
// their URLs in the provider's order.
func (c *Client) GenerateImages(ctx context.Context, prompt string, count int) ([]string, error) {
	if count < 1 {
		count = 1
	}

	reqBody := imageGenerationRequest{
		Model:  c.config.ImageModel,
		Prompt: prompt,
		N:      count,
		Size:   c.config.ImageSize,
	}

	var resp imageGenerationResponse
	if err := c.post(ctx, "/images/generations", reqBody, &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) == 0 {
		return nil, &Error{StatusCode: http.StatusOK, Message: "response contained no images"}
	}

	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	return urls, nil
}

// GeneratePalette asks the text model for a color palette and returns the
// colors in presentation order.
func (c *Client) GeneratePalette(ctx context.Context, prompt string) ([]string, error) {
	return c.generateStringList(ctx, prompt)
}

// GenerateProductList asks the text model for suggested products and returns
// them in presentation order.
func (c *Client) GenerateProductList(ctx context.Context, prompt string) ([]string, error) {
	return c.generateStringList(ctx, prompt)
}

// generateStringList runs a chat completion whose prompt instructs the model
// to answer with a JSON string array, and decodes it.
func (c *Client) generateStringList(ctx context.Context, prompt string) ([]string, error) {
	reqBody := chatCompletionRequest{
		Model: c.config.TextModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	var resp chatCompletionResponse
	if err := c.post(ctx, "/chat/completions", reqBody, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, &Error{StatusCode: http.StatusOK, Message: "response contained no choices"}
	}

	content := extractJSONArray(resp.Choices[0].Message.Content)

	var items []string
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, &Error{StatusCode: http.StatusOK, Message: fmt.Sprintf("response was not a JSON string array: %v", err)}
	}

	return items, nil
}

// post issues one bounded provider call. Deadline overruns map to ErrTimeout,
// non-2xx responses to *Error with the provider's status and message.
func (c *Client) post(ctx context.Context, path string, reqBody any, out any) error {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.config.BaseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		message := string(body)
		var errResp providerErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			message = errResp.Error.Message
		}
		return &Error{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("malformed response body: %v", err)}
	}

	return nil
}

// extractJSONArray strips markdown fences and surrounding prose that chat
// models sometimes wrap around a JSON answer.
func extractJSONArray(content string) string {
	content = strings.TrimSpace(content)
	if start := strings.Index(content, "["); start >= 0 {
		if end := strings.LastIndex(content, "]"); end > start {
			return content[start : end+1]
		}
	}
	return content
}
