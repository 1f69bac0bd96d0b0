// Package prompt composes the instruction payload sent to the
// completion backend, branching on commit-format policy, smart-context
// availability and accumulated refinement history.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// Attempt records one rejected generation and the feedback that
// rejected it. History is ordered oldest first.
type Attempt struct {
	Message     string
	Description string
	Feedback    string
}

// BuildInput carries everything the builder branches on
type BuildInput struct {
	Diff         string
	SmartContext string
	Conventional bool
	Ticket       string
	Language     string
	History      []Attempt
}

// Request is the opaque payload handed to the query abstraction
type Request struct {
	Instructions string
	Context      []string
	Examples     []string
}

// instructionsTemplate is the system instruction text. The output
// contract (the two labeled lines) is identical across modes; the
// formatting rules and examples vary with the active policy.
const instructionsTemplate = `You are a commit message generator. Analyze the staged changes and produce a commit message and description.

## Output Format
Respond with exactly two lines, nothing else:
COMMIT_MESSAGE: <one-line summary>
COMMIT_DESCRIPTION: <one-paragraph description of what changed and why>

{{if .Conventional -}}
## Commit Message Rules
1. Use the Conventional Commits format: type(scope): summary
2. Valid types: feat, fix, docs, style, refactor, perf, test, chore, build, ci, revert
3. The scope is optional; use it when the change is clearly localized
4. Use imperative mood ("add" not "added"), no trailing period
5. Keep the summary under 72 characters
{{- if .Ticket}}
6. Do NOT include the ticket identifier yourself; it is added automatically after the type and scope
{{- end}}
{{- else -}}
## Commit Message Rules
1. One concise summary line in imperative mood ("Add" not "Added")
2. No trailing period, keep it under 72 characters
3. Do not use the type(scope): prefix style
{{- if .Ticket}}
4. Do NOT include a ticket identifier; it is prefixed automatically
{{- end}}
{{- end}}

## Description Rules
The description explains what changed and why, not how. One short paragraph.
{{if .Language}}
## Output Language
Write the message and description in: {{.Language}}
{{end}}
{{- if .SmartContext}}
## Project Context
The "Project context" section below describes components, imports and
usage relationships of the changed files. Use it to pick an accurate
scope and to describe the impact of the change.
{{- end}}
{{- if .History}}
## Previous Attempts
The following attempts were rejected. Do not repeat rejected phrasing;
address each piece of feedback.
{{range $i, $a := .History}}
Attempt {{inc $i}}:
COMMIT_MESSAGE: {{$a.Message}}
COMMIT_DESCRIPTION: {{$a.Description}}
Feedback: {{$a.Feedback}}
{{end}}
{{- end}}`

var tmpl = template.Must(template.New("instructions").
	Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
	Parse(instructionsTemplate))

// conventionalExamples are worked example pairs for conventional mode
var conventionalExamples = []string{
	"COMMIT_MESSAGE: feat(auth): add login form validation\nCOMMIT_DESCRIPTION: Validates email and password fields client side before submitting, so obvious mistakes no longer round-trip to the server.",
	"COMMIT_MESSAGE: fix(api): handle empty response body\nCOMMIT_DESCRIPTION: The client crashed on 204 responses because the decoder expected a body. Skip decoding when the body is empty.",
}

// freeformExamples are worked example pairs for free-form mode
var freeformExamples = []string{
	"COMMIT_MESSAGE: Add login form validation\nCOMMIT_DESCRIPTION: Validates email and password fields client side before submitting, so obvious mistakes no longer round-trip to the server.",
	"COMMIT_MESSAGE: Handle empty API response body\nCOMMIT_DESCRIPTION: The client crashed on 204 responses because the decoder expected a body. Skip decoding when the body is empty.",
}

// Build composes the generation request for one loop cycle
func Build(in BuildInput) (Request, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return Request{}, fmt.Errorf("failed to render prompt: %w", err)
	}

	context := []string{"Staged changes (diff):\n" + in.Diff}
	if in.SmartContext != "" {
		context = append(context, "Project context:\n"+in.SmartContext)
	}

	examples := freeformExamples
	if in.Conventional {
		examples = conventionalExamples
	}

	return Request{
		Instructions: buf.String(),
		Context:      context,
		Examples:     examples,
	}, nil
}
