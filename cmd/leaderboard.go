// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/neptechtribe/contrib-tracker/internal/gateway"
	"github.com/neptechtribe/contrib-tracker/internal/participants"
	"github.com/neptechtribe/contrib-tracker/internal/report"
	"github.com/neptechtribe/contrib-tracker/internal/usecase"
)

// defaultRepos is the built-in repository list, overridable with --repos.
var defaultRepos = []string{
	"NepTechTribe/CodeVault",
	"NepTechTribe/EventLog",
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Aggregates participant contributions and writes a markdown leaderboard",
	Long: `Aggregates all-time activity (commits, and optionally PRs and issues) for
every tracked participant across the configured repositories, and writes the
result as a ranked markdown table.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
		}

		includeZero, _ := cmd.Flags().GetBool("include-zero")
		includePRsIssues, _ := cmd.Flags().GetBool("include-prs-issues")
		repos, _ := cmd.Flags().GetStringSlice("repos")
		participantsPath, _ := cmd.Flags().GetString("participants")
		outputPath, _ := cmd.Flags().GetString("output")
		if len(repos) == 0 {
			repos = defaultRepos
		}

		// A .env file may carry the token for local runs; absence is fine.
		_ = godotenv.Load()
		token := os.Getenv("GITHUB_TOKEN")
		if token == "" {
			token = os.Getenv("TOKEN")
		}
		if token == "" {
			fmt.Fprintln(os.Stderr, "Warning: no GITHUB_TOKEN set. Unauthenticated requests are severely rate-limited and private repos won't be included.")
		}

		set, err := participants.Load(participantsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load participants: %v\n", err)
			os.Exit(1)
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(token, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create GitHub gateway: %v\n", err)
			os.Exit(1)
		}
		aggregator := usecase.NewAggregator(githubGateway, set, logger)

		results, err := aggregator.Aggregate(ctx, repos, usecase.Options{
			IncludePRsIssues: includePRsIssues,
			IncludeZero:      includeZero,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to aggregate contributions: %v\n", err)
			os.Exit(1)
		}

		markdown := report.Markdown(results, includePRsIssues)
		if err := os.WriteFile(outputPath, []byte(markdown), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write leaderboard to %s: %v\n", outputPath, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote leaderboard to %s\n", outputPath)
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
	leaderboardCmd.Flags().Bool("include-zero", false, "Include participants with zero contributions in the leaderboard")
	leaderboardCmd.Flags().Bool("include-prs-issues", false, "Count PRs and issues in addition to commits (adds PRs and Issues columns)")
	leaderboardCmd.Flags().StringSlice("repos", nil, "Override the built-in repository list; pass owner/repo pairs")
	leaderboardCmd.Flags().String("participants", "data/participants.json", "Path to the JSON array of tracked participant logins")
	leaderboardCmd.Flags().String("output", "README.md", "Path the markdown leaderboard is written to")
}
