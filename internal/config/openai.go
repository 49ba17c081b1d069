package config

import (
	"time"
)

type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	// Timeout bounds every provider call. Generation requests must never
	// hang the caller indefinitely.
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
	ImageSize   string
}

func DefaultOpenAIConfig() *OpenAIConfig {
	return &OpenAIConfig{
		APIKey:      getEnvWithDefault("OPENAI_API_KEY", ""),
		BaseURL:     getEnvWithDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		TextModel:   getEnvWithDefault("OPENAI_TEXT_MODEL", "gpt-4-turbo-preview"),
		ImageModel:  getEnvWithDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		Timeout:     getEnvDurationWithDefault("OPENAI_TIMEOUT", 30*time.Second),
		MaxTokens:   getEnvIntWithDefault("OPENAI_MAX_TOKENS", 1500),
		Temperature: 0.7,
		ImageSize:   getEnvWithDefault("OPENAI_IMAGE_SIZE", "1024x1024"),
	}
}
