// Package report renders the leaderboard as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/neptechtribe/contrib-tracker/internal/domain"
)

// Markdown renders the leaderboard table for rows already sorted into rank
// order. With includePRsIssues the table carries PR, issue and total columns;
// otherwise it is the commits-only layout.
func Markdown(users []*domain.UserStats, includePRsIssues bool) string {
	var b strings.Builder
	if includePRsIssues {
		b.WriteString("# 🧑‍💻 All-time Contribution Leaderboard (Commits + PRs + Issues)\n\n")
		b.WriteString("| Rank | Avatar | User | Total Commits | PRs | Issues | Total |\n")
		b.WriteString("|------|---------|------|----------------|-----:|-------:|------:|\n")
		for i, u := range users {
			fmt.Fprintf(&b, "| %d | %s | [%s](%s) | %d | %d | %d | %d |\n",
				i+1, avatarCell(u.AvatarURL), u.Login, u.ProfileURL,
				u.Commits, u.PullRequests, u.Issues, u.Total())
		}
	} else {
		b.WriteString("# 🧑‍💻 All-time Contribution Leaderboard (Commits)\n\n")
		b.WriteString("| Rank | Avatar | User | Total Commits |\n")
		b.WriteString("|------|---------|------|----------------|\n")
		for i, u := range users {
			fmt.Fprintf(&b, "| %d | %s | [%s](%s) | %d |\n",
				i+1, avatarCell(u.AvatarURL), u.Login, u.ProfileURL, u.Commits)
		}
	}
	if footer := summary(users); footer != "" {
		b.WriteString("\n")
		b.WriteString(footer)
	}
	return b.String()
}

func avatarCell(avatarURL string) string {
	if avatarURL == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" width="40" height="40" style="border-radius:50%%"/>`, avatarURL)
}

// summary is a one-line footer with the participant count and the mean and
// median of the totals. Empty when there are no rows.
func summary(users []*domain.UserStats) string {
	if len(users) == 0 {
		return ""
	}
	totals := make([]float64, len(users))
	for i, u := range users {
		totals[i] = float64(u.Total())
	}
	mean, err := stats.Mean(totals)
	if err != nil {
		return ""
	}
	median, err := stats.Median(totals)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("_%d participants ranked. Mean total: %.1f, median: %.1f_\n", len(users), mean, median)
}
