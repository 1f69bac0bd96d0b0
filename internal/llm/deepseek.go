package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

const (
	// DeepseekDefaultBaseURL is the default API base URL for Deepseek
	DeepseekDefaultBaseURL = "https://api.deepseek.com/v1"
)

// DeepseekProvider implements Provider for Deepseek API
// Deepseek uses OpenAI-compatible API
type DeepseekProvider struct {
	opts Options
}

// NewDeepseekProvider creates a new Deepseek provider
func NewDeepseekProvider(opts Options) *DeepseekProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = DeepseekDefaultBaseURL
	}
	return &DeepseekProvider{opts: opts}
}

// Name returns the provider name
func (p *DeepseekProvider) Name() string {
	return "deepseek"
}

// CreateChatModel creates an Eino ChatModel for Deepseek
func (p *DeepseekProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.opts.APIKey,
		Model:   p.opts.Model,
		BaseURL: p.opts.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}
