package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhq/design-studio-api/internal/config"
)

func testConfig(baseURL string) *config.OpenAIConfig {
	return &config.OpenAIConfig{
		APIKey:      "test-key",
		BaseURL:     baseURL,
		TextModel:   "gpt-4-turbo-preview",
		ImageModel:  "dall-e-3",
		Timeout:     5 * time.Second,
		MaxTokens:   1500,
		Temperature: 0.7,
		ImageSize:   "1024x1024",
	}
}

func chatResponse(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
}

func TestGenerateText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4-turbo-preview", req["model"])

		json.NewEncoder(w).Encode(chatResponse("  A bright, airy living room.  "))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	text, err := client.GenerateText(context.Background(), "describe a living room")
	require.NoError(t, err)
	assert.Equal(t, "A bright, airy living room.", text)
}

func TestGenerateText_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limit exceeded"},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GenerateText(context.Background(), "prompt")

	var providerErr *Error
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusTooManyRequests, providerErr.StatusCode)
	assert.Equal(t, "rate limit exceeded", providerErr.Message)
}

func TestGenerateText_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(chatResponse("too late"))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.Timeout = 50 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.GenerateText(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateText_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GenerateText(context.Background(), "prompt")

	var providerErr *Error
	require.ErrorAs(t, err, &providerErr)
}

func TestGenerateImages_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, float64(3), req["n"])
		assert.Equal(t, "1024x1024", req["size"])

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"url": "https://img/1.png"},
				{"url": "https://img/2.png"},
				{"url": "https://img/3.png"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	urls, err := client.GenerateImages(context.Background(), "a living room", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1.png", "https://img/2.png", "https://img/3.png"}, urls)
}

func TestGeneratePalette_StripsMarkdownFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse("```json\n[\"#FFFFFF\", \"#E8E4DC\", \"#B0A695\"]\n```"))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	palette, err := client.GeneratePalette(context.Background(), "palette prompt")
	require.NoError(t, err)
	assert.Equal(t, []string{"#FFFFFF", "#E8E4DC", "#B0A695"}, palette)
}

func TestGenerateProductList_MalformedAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse("here are some great products for you!"))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.GenerateProductList(context.Background(), "products prompt")

	var providerErr *Error
	require.ErrorAs(t, err, &providerErr)
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bare array", `["a","b"]`, `["a","b"]`},
		{"fenced", "```json\n[\"a\"]\n```", `["a"]`},
		{"surrounded by prose", `Sure! Here it is: ["a","b"] Hope that helps.`, `["a","b"]`},
		{"no array", "no array here", "no array here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONArray(tt.content))
		})
	}
}
