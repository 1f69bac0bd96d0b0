package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitmuse/gitmuse/internal/config"
)

const defaultConfigTemplate = `# Gitmuse Configuration File

# Completion backend: openai, deepseek, ollama, gemini, grok, claude
provider: openai

# Backend model identifier
model: gpt-4o-mini

# API key; ${VAR} references resolve from the environment (a project
# .env file is loaded too)
api_key: ${OPENAI_API_KEY}

# Custom API endpoint (optional; providers ship sensible defaults)
# base_url: https://api.openai.com/v1

# Output language for generated messages (en, zh, ja, etc.)
# language: en

# Ticket to attach when the branch name carries none
# default_ticket: ""

# Per-path default tickets; path may be a substring or a regex.
# First matching entry wins.
# default_ticket_for:
#   - path: projects/backend
#     ticket: PROJ-1
#   - path: .*frontend.*
#     ticket: WEB-1

# Repositories where conventional-commit formatting applies.
# Same substring-or-regex matching as above.
# use_conventional_commits_in:
#   - projects/backend
`

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize gitmuse configuration",
	Long:  `Create a default configuration file (~/.gitmuse.yaml).`,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created configuration file: %s\n", path)
	fmt.Println("Edit it to set your provider, model and API key.")
	return nil
}
