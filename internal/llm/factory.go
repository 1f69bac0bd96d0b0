package llm

import (
	"fmt"
)

// ProviderFactory creates LLM providers based on configuration
type ProviderFactory struct{}

// NewProviderFactory creates a new ProviderFactory
func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// Create creates a Provider for the given options
func (f *ProviderFactory) Create(opts Options) (Provider, error) {
	switch opts.Provider {
	case "openai":
		return NewOpenAIProvider(opts), nil
	case "deepseek":
		return NewDeepseekProvider(opts), nil
	case "ollama":
		return NewOllamaProvider(opts), nil
	case "gemini":
		return NewGeminiProvider(opts), nil
	case "grok":
		return NewGrokProvider(opts), nil
	case "claude":
		return NewClaudeProvider(opts), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", opts.Provider)
	}
}
