package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FeedbackPrompt collects refinement feedback across multiple rounds.
// It holds a single scanner over the input stream; creating a scanner
// per round would buffer ahead and drop later lines.
type FeedbackPrompt struct {
	scanner *bufio.Scanner
	output  io.Writer
}

// NewFeedbackPrompt creates a FeedbackPrompt over one input stream
func NewFeedbackPrompt(input io.Reader, output io.Writer) *FeedbackPrompt {
	return &FeedbackPrompt{scanner: bufio.NewScanner(input), output: output}
}

// Read prompts for feedback on a generated commit. An empty line
// accepts the generation; any other text is returned as feedback for
// the next attempt. EOF counts as acceptance so piped input behaves
// like pressing Enter.
func (p *FeedbackPrompt) Read() (string, error) {
	dim := color.New(color.FgHiBlack)

	_, err := dim.Fprintln(p.output, "Press Enter to accept, or describe what to change:")
	if err != nil {
		return "", err
	}
	_, err = fmt.Fprint(p.output, "> ")
	if err != nil {
		return "", err
	}

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}
