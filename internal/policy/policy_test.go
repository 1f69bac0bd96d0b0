package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitmuse/gitmuse/internal/config"
)

func TestTicketFromBranch_BranchPattern(t *testing.T) {
	tests := []struct {
		name     string
		branch   string
		expected string
	}{
		{"feature branch", "feature/AB-123", "AB-123"},
		{"feature with suffix", "feature/AB-123-login-form", "AB-123"},
		{"feat shorthand", "feat/XY-7", "XY-7"},
		{"bugfix branch", "bugfix/PROJ-42", "PROJ-42"},
		{"hotfix underscore", "hotfix_OPS-1", "OPS-1"},
		{"release branch", "release/REL-100", "REL-100"},
		{"main has no ticket", "main", ""},
		{"plain branch", "my-branch", ""},
		{"prefix without ticket token", "feature/login-form", ""},
	}

	cfg := &config.Config{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TicketFromBranch(tt.branch, "/work/repo", cfg))
		})
	}
}

func TestTicketFromBranch_BranchWinsOverConfiguredDefault(t *testing.T) {
	cfg := &config.Config{
		DefaultTicketFor: []config.TicketRule{
			{Path: "/work/repo", Ticket: "CONF-1"},
		},
	}

	ticket := TicketFromBranch("feature/AB-123", "/work/repo", cfg)
	assert.Equal(t, "AB-123", ticket)
}

func TestTicketFromBranch_ConfiguredDefaultFallback(t *testing.T) {
	cfg := &config.Config{
		DefaultTicketFor: []config.TicketRule{
			{Path: "/other/place", Ticket: "OTHER-1"},
			{Path: "/work/repo", Ticket: "PROJ-9"},
		},
	}

	assert.Equal(t, "PROJ-9", TicketFromBranch("main", "/work/repo", cfg))
	assert.Equal(t, "", TicketFromBranch("main", "/somewhere/else", cfg))
}

func TestTicketFromBranch_FirstMatchingRuleWins(t *testing.T) {
	cfg := &config.Config{
		DefaultTicketFor: []config.TicketRule{
			{Path: "repo", Ticket: "FIRST-1"},
			{Path: "/work/repo", Ticket: "SECOND-1"},
		},
	}

	assert.Equal(t, "FIRST-1", TicketFromBranch("main", "/work/repo", cfg))
}

func TestTicketFromBranch_RegexPath(t *testing.T) {
	cfg := &config.Config{
		DefaultTicketFor: []config.TicketRule{
			{Path: `.*frontend.*`, Ticket: "WEB-5"},
		},
	}

	assert.Equal(t, "WEB-5", TicketFromBranch("main", "/work/frontend/app", cfg))
}

func TestTicketFromBranch_InvalidRegexFallsBackToSubstring(t *testing.T) {
	cfg := &config.Config{
		DefaultTicketFor: []config.TicketRule{
			{Path: `[invalid(regex`, Ticket: "BAD-1"},
		},
	}

	assert.Equal(t, "BAD-1", TicketFromBranch("main", "/work/[invalid(regex/repo", cfg))
	assert.Equal(t, "", TicketFromBranch("main", "/work/repo", cfg))
}

func TestTicketFromBranch_GlobalDefault(t *testing.T) {
	cfg := &config.Config{DefaultTicket: "FALL-1"}
	assert.Equal(t, "FALL-1", TicketFromBranch("main", "/anywhere", cfg))
}

func TestUseConventionalCommits(t *testing.T) {
	cfg := &config.Config{
		UseConventionalCommitsIn: []string{"/work/backend", `.*api.*`},
	}

	assert.True(t, UseConventionalCommits("/work/backend/svc", cfg))
	assert.True(t, UseConventionalCommits("/home/me/api-gateway", cfg))
	assert.False(t, UseConventionalCommits("/work/frontend", cfg))
	assert.False(t, UseConventionalCommits("/work/frontend", &config.Config{}))
}

func TestResolve(t *testing.T) {
	cfg := &config.Config{
		UseConventionalCommitsIn: []string{"/work/repo"},
	}

	pol := Resolve("feature/AB-123", "/work/repo", cfg)
	assert.True(t, pol.Conventional)
	assert.Equal(t, "AB-123", pol.Ticket)
}
