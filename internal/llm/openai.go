package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// OpenAIProvider implements Provider for OpenAI API
type OpenAIProvider struct {
	opts Options
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(opts Options) *OpenAIProvider {
	return &OpenAIProvider{opts: opts}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// CreateChatModel creates an Eino ChatModel for OpenAI
func (p *OpenAIProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.opts.APIKey,
		Model:   p.opts.Model,
		BaseURL: p.opts.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}
