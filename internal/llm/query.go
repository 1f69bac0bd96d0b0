package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/gitmuse/gitmuse/internal/log"
)

// QueryRequest is the provider-agnostic generation request. The same
// shape works across every supported backend family.
type QueryRequest struct {
	Options
	Prompt   string   // instruction text (system message)
	Context  []string // supporting material (diff, project context)
	Examples []string // worked example outputs
}

// Querier issues one generation request and returns the raw response
// text. Transport and auth failures propagate; there is no internal
// retry here, regeneration is driven by user feedback upstream.
type Querier interface {
	Query(ctx context.Context, req QueryRequest) (string, error)
}

// ChatQuerier is the default Querier backed by the provider factory
type ChatQuerier struct {
	factory *ProviderFactory
}

// NewChatQuerier creates a ChatQuerier
func NewChatQuerier() *ChatQuerier {
	return &ChatQuerier{factory: NewProviderFactory()}
}

// Query builds the chat messages, issues a single Generate call and
// returns the raw content of the response
func (q *ChatQuerier) Query(ctx context.Context, req QueryRequest) (string, error) {
	provider, err := q.factory.Create(req.Options)
	if err != nil {
		return "", err
	}

	chatModel, err := provider.CreateChatModel(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create chat model for %s: %w", provider.Name(), err)
	}

	messages := []*schema.Message{
		schema.SystemMessage(req.Prompt),
		schema.UserMessage(buildUserContent(req)),
	}

	log.Debug("Querying %s model %s", provider.Name(), req.Model)
	resp, err := chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%s query failed: %w", provider.Name(), err)
	}

	return resp.Content, nil
}

// buildUserContent folds context blocks and examples into a single user
// message, each under its own heading
func buildUserContent(req QueryRequest) string {
	var parts []string
	parts = append(parts, req.Context...)
	if len(req.Examples) > 0 {
		parts = append(parts, "Example outputs:\n"+strings.Join(req.Examples, "\n\n"))
	}
	return strings.Join(parts, "\n\n")
}
