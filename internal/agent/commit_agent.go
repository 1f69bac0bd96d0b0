// Package agent drives the interactive generate/present/refine loop and
// parses backend responses into message/description pairs.
package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gitmuse/gitmuse/internal/llm"
	"github.com/gitmuse/gitmuse/internal/log"
	"github.com/gitmuse/gitmuse/internal/policy"
	"github.com/gitmuse/gitmuse/internal/prompt"
	"github.com/gitmuse/gitmuse/internal/ui"
)

// MaxAttempts bounds the refinement loop. Reaching it without
// acceptance terminates with the last generated pair, best effort.
const MaxAttempts = 10

// ErrEmptyResult is returned when the backend response contains no
// usable commit message. The whole command aborts; proceeding with
// empty content would produce a meaningless commit.
var ErrEmptyResult = errors.New("backend response contained no commit message")

// Outcome describes how the refinement loop terminated
type Outcome int

const (
	// OutcomeAccepted means the user accepted a generation
	OutcomeAccepted Outcome = iota
	// OutcomeCeilingReached means the attempt ceiling was hit and the
	// last generated pair was kept
	OutcomeCeilingReached
)

// CommitRequest carries the per-invocation inputs of the loop
type CommitRequest struct {
	Diff         string
	SmartContext string
	Policy       policy.Policy
	Language     string
}

// CommitResult is the terminal state of the loop
type CommitResult struct {
	Message     string
	Description string
	Outcome     Outcome
	Attempts    int
}

// CommitAgentOptions contains configuration for CommitAgent
type CommitAgentOptions struct {
	Querier    llm.Querier // generation backend
	LLM        llm.Options // provider/model/key for each query
	Input      io.Reader   // feedback source (default os.Stdin)
	Output     io.Writer   // presentation sink (default os.Stdout)
	AutoAccept bool        // accept the first generation without prompting
}

// Validate validates the options and sets defaults
func (o *CommitAgentOptions) Validate() error {
	if o.Querier == nil {
		return fmt.Errorf("querier is required")
	}
	if o.Input == nil {
		o.Input = os.Stdin
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	return nil
}

// CommitAgent runs the multi-round generation and refinement loop
type CommitAgent struct {
	opts CommitAgentOptions
}

// NewCommitAgent creates a new CommitAgent instance
func NewCommitAgent(opts CommitAgentOptions) (*CommitAgent, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &CommitAgent{opts: opts}, nil
}

// Run executes the loop until acceptance, the attempt ceiling, or a
// hard failure. History of rejected attempts is scoped to this call.
func (a *CommitAgent) Run(ctx context.Context, req CommitRequest) (*CommitResult, error) {
	var history []prompt.Attempt
	var last GenerationResult
	feedbackPrompt := ui.NewFeedbackPrompt(a.opts.Input, a.opts.Output)

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		result, err := a.generate(ctx, req, history)
		if err != nil {
			return nil, err
		}
		last = result

		if err := ui.ShowGeneration(result.Message, result.Description, attempt, a.opts.Output); err != nil {
			return nil, err
		}

		if a.opts.AutoAccept {
			return &CommitResult{
				Message:     result.Message,
				Description: result.Description,
				Outcome:     OutcomeAccepted,
				Attempts:    attempt,
			}, nil
		}

		feedback, err := feedbackPrompt.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read feedback: %w", err)
		}
		if feedback == "" {
			return &CommitResult{
				Message:     result.Message,
				Description: result.Description,
				Outcome:     OutcomeAccepted,
				Attempts:    attempt,
			}, nil
		}

		history = append(history, prompt.Attempt{
			Message:     result.Message,
			Description: result.Description,
			Feedback:    feedback,
		})
		log.Debug("Attempt %d rejected: %s", attempt, feedback)
	}

	log.Warn("Reached %d attempts without acceptance; using the last generated message", MaxAttempts)
	return &CommitResult{
		Message:     last.Message,
		Description: last.Description,
		Outcome:     OutcomeCeilingReached,
		Attempts:    MaxAttempts,
	}, nil
}

// generate runs one prompt-build/query/parse cycle
func (a *CommitAgent) generate(ctx context.Context, req CommitRequest, history []prompt.Attempt) (GenerationResult, error) {
	preq, err := prompt.Build(prompt.BuildInput{
		Diff:         req.Diff,
		SmartContext: req.SmartContext,
		Conventional: req.Policy.Conventional,
		Ticket:       req.Policy.Ticket,
		Language:     req.Language,
		History:      history,
	})
	if err != nil {
		return GenerationResult{}, err
	}

	log.DebugPrompt("Prompt", preq.Instructions)

	raw, err := a.opts.Querier.Query(ctx, llm.QueryRequest{
		Options:  a.opts.LLM,
		Prompt:   preq.Instructions,
		Context:  preq.Context,
		Examples: preq.Examples,
	})
	if err != nil {
		return GenerationResult{}, err
	}

	result := ParseResponse(raw)
	if result.Empty() {
		return GenerationResult{}, ErrEmptyResult
	}

	result.Message = ApplyTicket(result.Message, req.Policy.Ticket, req.Policy.Conventional)
	return result, nil
}
