// Package policy resolves the per-invocation generation policy: which
// ticket identifier to attach and whether conventional-commit formatting
// applies in the current repository.
package policy

import (
	"regexp"
	"strings"

	"github.com/gitmuse/gitmuse/internal/config"
)

// Policy is resolved once per invocation and treated as read-only afterwards
type Policy struct {
	Conventional bool
	Ticket       string
}

// branchTicketPattern matches branch names like feature/AB-123-login or
// bugfix/PROJ-9. The ticket token is a letter run, a hyphen and digits.
var branchTicketPattern = regexp.MustCompile(`^(?:feature|feat|bugfix|fix|hotfix|release)[/_-]([A-Za-z][A-Za-z0-9]*-\d+)`)

// Resolve builds the Policy for one invocation
func Resolve(branch, currentPath string, cfg *config.Config) Policy {
	return Policy{
		Conventional: UseConventionalCommits(currentPath, cfg),
		Ticket:       TicketFromBranch(branch, currentPath, cfg),
	}
}

// TicketFromBranch derives a ticket identifier for the current invocation.
// Precedence: branch-name pattern match > default_ticket_for path rule >
// default_ticket > empty string.
func TicketFromBranch(branch, currentPath string, cfg *config.Config) string {
	if m := branchTicketPattern.FindStringSubmatch(branch); m != nil {
		return m[1]
	}

	for _, rule := range cfg.DefaultTicketFor {
		if pathMatches(currentPath, rule.Path) {
			return rule.Ticket
		}
	}

	return cfg.DefaultTicket
}

// UseConventionalCommits reports whether any configured path entry
// matches the current working directory
func UseConventionalCommits(currentPath string, cfg *config.Config) bool {
	for _, pattern := range cfg.UseConventionalCommitsIn {
		if pathMatches(currentPath, pattern) {
			return true
		}
	}
	return false
}

// pathMatches tests pattern against path as a regular expression,
// degrading to a plain substring test when the pattern does not compile
func pathMatches(path, pattern string) bool {
	if pattern == "" {
		return false
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return strings.Contains(path, pattern)
	}
	return re.MatchString(path)
}
