package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/claude"
	"github.com/cloudwego/eino/components/model"
)

const (
	// claudeMaxTokens is the completion budget; commit messages are short
	claudeMaxTokens = 2048
)

// ClaudeProvider implements Provider for Anthropic Claude
type ClaudeProvider struct {
	opts Options
}

// NewClaudeProvider creates a new Claude provider
func NewClaudeProvider(opts Options) *ClaudeProvider {
	return &ClaudeProvider{opts: opts}
}

// Name returns the provider name
func (p *ClaudeProvider) Name() string {
	return "claude"
}

// CreateChatModel creates an Eino ChatModel for Claude
func (p *ClaudeProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &claude.Config{
		APIKey:    p.opts.APIKey,
		Model:     p.opts.Model,
		MaxTokens: claudeMaxTokens,
	}
	if p.opts.BaseURL != "" {
		cfg.BaseURL = &p.opts.BaseURL
	}

	return claude.NewChatModel(ctx, cfg)
}
