package agent

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	messagePrefix     = "COMMIT_MESSAGE:"
	descriptionPrefix = "COMMIT_DESCRIPTION:"
)

// GenerationResult holds one generated message/description pair.
// A zero Message signals an unusable response.
type GenerationResult struct {
	Message     string
	Description string
}

// Empty reports whether the generation failed to produce a usable message
func (r GenerationResult) Empty() bool {
	return r.Message == ""
}

// ParseResponse extracts the labeled message and description lines from
// the raw backend response. A well-formed response contains each label
// exactly once; if a label repeats, the first occurrence wins and later
// ones are ignored as malformed noise. A missing message line yields an
// empty result.
func ParseResponse(raw string) GenerationResult {
	var result GenerationResult
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, messagePrefix):
			if result.Message == "" {
				result.Message = strings.TrimSpace(strings.TrimPrefix(line, messagePrefix))
			}
		case strings.HasPrefix(line, descriptionPrefix):
			if result.Description == "" {
				result.Description = strings.TrimSpace(strings.TrimPrefix(line, descriptionPrefix))
			}
		}
	}
	if result.Message == "" {
		return GenerationResult{}
	}
	return result
}

// conventionalHead matches the leading type(scope)?: token of a
// conventional commit message
var conventionalHead = regexp.MustCompile(`^([a-z]+(?:\([^)]*\))?!?:)\s*(.*)$`)

// ApplyTicket injects the ticket identifier into a generated message.
// Conventional mode inserts the ticket between the type/scope token and
// the summary; when the token is not found, or in free-form mode, the
// ticket becomes a plain prefix. An empty ticket leaves the message
// unchanged.
func ApplyTicket(message, ticket string, conventional bool) string {
	if ticket == "" {
		return message
	}
	if conventional {
		if m := conventionalHead.FindStringSubmatch(message); m != nil {
			return fmt.Sprintf("%s %s %s", m[1], ticket, m[2])
		}
	}
	return fmt.Sprintf("%s: %s", ticket, message)
}
