// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"log"
	"sort"

	"github.com/neptechtribe/contrib-tracker/internal/domain"
	"github.com/neptechtribe/contrib-tracker/internal/gateway"
	"github.com/neptechtribe/contrib-tracker/internal/participants"
)

// Options controls which counters are collected and which rows are emitted.
type Options struct {
	// IncludePRsIssues enables the per-participant issue/PR counting pass
	// and switches the sort key from commits to total activity.
	IncludePRsIssues bool
	// IncludeZero keeps participants with no activity in the output.
	IncludeZero bool
}

// Aggregator is the use case for building the leaderboard.
// It orchestrates the fetching and combining of data for the tracked
// participants, one blocking call at a time.
type Aggregator struct {
	fetcher gateway.Fetcher
	set     participants.Set
	logger  *log.Logger
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(fetcher gateway.Fetcher, set participants.Set, logger *log.Logger) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		set:     set,
		logger:  logger,
	}
}

// Aggregate performs the main business logic: accumulate per-participant
// counters across repos, attach profile metadata, and return the rows sorted
// for the leaderboard. Only logins in the participant set are ever counted.
func (a *Aggregator) Aggregate(ctx context.Context, repos []string, opts Options) ([]*domain.UserStats, error) {
	a.logger.Println("Usecase: Starting contribution aggregation...")

	commits := make(map[string]int)
	prs := make(map[string]int)
	issues := make(map[string]int)

	for _, repo := range repos {
		a.logger.Printf("Usecase: Processing contributors for %s", repo)
		counts, err := a.fetcher.FetchContributors(ctx, repo)
		if err != nil {
			return nil, err
		}
		for login, n := range counts {
			if a.set.Contains(login) {
				commits[login] += n
			}
		}
	}

	if opts.IncludePRsIssues {
		a.logger.Println("Usecase: Counting authored issues and pull requests...")
		for _, repo := range repos {
			for _, login := range a.set.Sorted() {
				issueCount, prCount, err := a.fetcher.FetchAuthoredCounts(ctx, repo, login)
				if err != nil {
					return nil, err
				}
				issues[login] += issueCount
				prs[login] += prCount
			}
		}
	}

	results := make([]*domain.UserStats, 0, len(a.set))
	for _, login := range a.set.Sorted() {
		user := &domain.UserStats{
			Login:        login,
			Commits:      commits[login],
			PullRequests: prs[login],
			Issues:       issues[login],
		}
		if user.Total() == 0 && !opts.IncludeZero {
			continue
		}
		profile, err := a.fetcher.FetchProfile(ctx, login)
		if err != nil {
			a.logger.Printf("Warning: profile lookup for %s failed, using fallback: %v", login, err)
			profile = domain.DefaultProfile(login)
		}
		user.AvatarURL = profile.AvatarURL
		user.ProfileURL = profile.HTMLURL
		results = append(results, user)
	}

	// Rank by total activity in full mode, by commits in commits-only mode.
	// Ties break by login so runs are deterministic.
	key := func(u *domain.UserStats) int { return u.Commits }
	if opts.IncludePRsIssues {
		key = func(u *domain.UserStats) int { return u.Total() }
	}
	sort.SliceStable(results, func(i, j int) bool {
		if key(results[i]) != key(results[j]) {
			return key(results[i]) > key(results[j])
		}
		return results[i].Login < results[j].Login
	})

	a.logger.Println("Usecase: Aggregation complete.")
	return results, nil
}
