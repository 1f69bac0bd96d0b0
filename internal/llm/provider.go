package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// Options identifies a backend and model for one invocation
type Options struct {
	Provider string // backend identifier (openai, deepseek, ollama, gemini, grok, claude)
	Model    string // backend model identifier
	APIKey   string
	BaseURL  string
}

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// CreateChatModel creates an Eino ChatModel instance
	CreateChatModel(ctx context.Context) (model.ChatModel, error)
}
