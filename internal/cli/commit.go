package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitmuse/gitmuse/internal/agent"
	"github.com/gitmuse/gitmuse/internal/config"
	"github.com/gitmuse/gitmuse/internal/diff"
	"github.com/gitmuse/gitmuse/internal/git"
	"github.com/gitmuse/gitmuse/internal/llm"
	"github.com/gitmuse/gitmuse/internal/log"
	"github.com/gitmuse/gitmuse/internal/policy"
	"github.com/gitmuse/gitmuse/internal/smartctx"
)

var (
	commitDryRun   bool
	commitNoVerify bool
	commitAddAll   bool
	commitAutoYes  bool
	commitSmart    bool
	commitLanguage string
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a commit message for staged changes",
	Long: `Generate a commit message and description from your staged changes.

The generated pair is shown for review. Press Enter to accept it, or
type feedback to regenerate; previous attempts and feedback are fed
back to the model so it can avoid rejected phrasing.

Examples:
  gitmuse commit
  gitmuse commit --add --smart
  gitmuse commit -y --no-verify
  gitmuse commit --dry-run`,
	RunE: runCommit,
}

func init() {
	commitCmd.Flags().BoolVar(&commitDryRun, "dry-run", false, "Generate the message but skip the final commit")
	commitCmd.Flags().BoolVar(&commitNoVerify, "no-verify", false, "Pass --no-verify to git commit")
	commitCmd.Flags().BoolVar(&commitAddAll, "add", false, "Stage all changes before diffing")
	commitCmd.Flags().BoolVarP(&commitAutoYes, "yes", "y", false, "Accept the first generation without prompting")
	commitCmd.Flags().BoolVar(&commitSmart, "smart", false, "Augment the diff with static-analysis context")
	commitCmd.Flags().StringVarP(&commitLanguage, "language", "l", "", "Output language (en, zh, ja, etc.)")
	rootCmd.AddCommand(commitCmd)
}

func runCommit(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.DebugConfig("Configuration", cfg)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	gitExec := git.NewExecutor(cwd)

	if !gitExec.IsRepository(ctx) {
		return fmt.Errorf("not a git repository: %s", cwd)
	}

	if commitAddAll {
		if err := gitExec.StageAll(ctx); err != nil {
			return fmt.Errorf("failed to stage changes: %w", err)
		}
	}

	diffText, err := gitExec.DiffCached(ctx)
	if err != nil {
		return fmt.Errorf("failed to get staged changes: %w", err)
	}
	if strings.TrimSpace(diffText) == "" {
		return fmt.Errorf("no staged changes found; stage changes with 'git add' or pass --add")
	}

	branch, err := gitExec.CurrentBranch(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve current branch: %w", err)
	}

	pol := policy.Resolve(branch, cwd, cfg)
	log.Debug("Policy: conventional=%v ticket=%q (branch %s)", pol.Conventional, pol.Ticket, branch)

	changedFiles := diff.ChangedFiles(diffText)
	promptDiff := diff.StripLockFiles(diffText)

	var smartContext string
	if commitSmart {
		smartContext = smartctx.GatherSafe(changedFiles, cwd)
		log.Debug("Smart context: %d chars for %d files", len(smartContext), len(changedFiles))
	}

	commitAgent, err := agent.NewCommitAgent(agent.CommitAgentOptions{
		Querier: llm.NewChatQuerier(),
		LLM: llm.Options{
			Provider: cfg.Provider,
			Model:    cfg.Model,
			APIKey:   cfg.ResolvedAPIKey(),
			BaseURL:  cfg.BaseURL,
		},
		Input:      os.Stdin,
		Output:     os.Stdout,
		AutoAccept: commitAutoYes,
	})
	if err != nil {
		return fmt.Errorf("failed to create commit agent: %w", err)
	}

	result, err := commitAgent.Run(ctx, agent.CommitRequest{
		Diff:         promptDiff,
		SmartContext: smartContext,
		Policy:       pol,
		Language:     cfg.GetLanguage(commitLanguage),
	})
	if err != nil {
		return fmt.Errorf("failed to generate commit message: %w", err)
	}

	if commitDryRun {
		fmt.Println("\nDry run: no commit was created.")
		return nil
	}

	if err := gitExec.Commit(ctx, result.Message, result.Description, commitNoVerify); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	fmt.Println("\n✅ Commit created successfully!")
	return nil
}
