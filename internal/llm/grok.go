package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

const (
	// GrokDefaultBaseURL is the default API base URL for Grok
	GrokDefaultBaseURL = "https://api.x.ai/v1"
)

// GrokProvider implements Provider for xAI Grok
// Grok uses OpenAI-compatible API
type GrokProvider struct {
	opts Options
}

// NewGrokProvider creates a new Grok provider
func NewGrokProvider(opts Options) *GrokProvider {
	if opts.BaseURL == "" {
		opts.BaseURL = GrokDefaultBaseURL
	}
	return &GrokProvider{opts: opts}
}

// Name returns the provider name
func (p *GrokProvider) Name() string {
	return "grok"
}

// CreateChatModel creates an Eino ChatModel for Grok
func (p *GrokProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.opts.APIKey,
		Model:   p.opts.Model,
		BaseURL: p.opts.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}
