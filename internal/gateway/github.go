// Package gateway provides a gateway to the GitHub REST API,
// abstracting away the underlying client and its pagination.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/neptechtribe/contrib-tracker/internal/domain"
)

const (
	// defaultPerPage is the page size requested from every listing endpoint.
	defaultPerPage = 100

	// backoffBuffer is added to the rate-limit reset wait so we never retry
	// a hair before the window actually opens.
	backoffBuffer = 2 * time.Second
)

// Fetcher defines the behavior of a gateway for fetching information from GitHub.
type Fetcher interface {
	// FetchContributors returns commit counts per login for a repository.
	FetchContributors(ctx context.Context, repo string) (map[string]int, error)
	// FetchAuthoredCounts returns the number of issues and pull requests a
	// given author created in a repository, across all states.
	FetchAuthoredCounts(ctx context.Context, repo, author string) (issues, prs int, err error)
	// FetchProfile looks up the public profile metadata for a login.
	FetchProfile(ctx context.Context, login string) (domain.Profile, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client  *github.Client
	logger  *log.Logger
	perPage int
	sleep   func(time.Duration)
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// An empty token degrades to unauthenticated, heavily rate-limited access.
func NewGitHubGateway(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &GitHubGateway{
		client:  github.NewClient(&http.Client{Transport: transport}),
		logger:  logger,
		perPage: defaultPerPage,
		sleep:   time.Sleep,
	}, nil
}

// splitRepo splits an "owner/name" repository string.
func splitRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("invalid repository %q: want owner/name", repo)
	}
	return owner, name, nil
}

// rateLimitBackoff reports whether err is a primary rate-limit error, and if
// so, how long to sleep before retrying the same request.
func rateLimitBackoff(err error) (time.Duration, bool) {
	var rle *github.RateLimitError
	if !errors.As(err, &rle) || rle.Rate.Remaining != 0 {
		return 0, false
	}
	wait := time.Until(rle.Rate.Reset.Time) + backoffBuffer
	if wait < backoffBuffer {
		wait = backoffBuffer
	}
	return wait, true
}

// FetchContributors pages through the contributors listing for repo and
// returns commit counts keyed by login. A rate-limit error pauses and retries
// the same page; any other failure logs a warning and returns the pages
// collected so far.
func (g *GitHubGateway) FetchContributors(ctx context.Context, repo string) (map[string]int, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}
	g.logger.Printf("Fetching contributors for %s...", repo)
	opts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{PerPage: g.perPage, Page: 1},
	}
	counts := make(map[string]int)
	for {
		contributors, _, err := g.client.Repositories.ListContributors(ctx, owner, name, opts)
		if err != nil {
			if wait, ok := rateLimitBackoff(err); ok {
				g.logger.Printf("  Rate limit reached, sleeping %s before retrying page %d...", wait, opts.Page)
				g.sleep(wait)
				continue
			}
			g.logger.Printf("Warning: failed to fetch contributors for %s (page %d): %v", repo, opts.Page, err)
			break
		}
		for _, c := range contributors {
			if login := c.GetLogin(); login != "" {
				counts[login] += c.GetContributions()
			}
		}
		if len(contributors) < g.perPage {
			break
		}
		opts.Page++
		g.logger.Println("  Fetching next page of contributors...")
	}
	g.logger.Printf("Completed fetching contributors for %s.", repo)
	return counts, nil
}

// FetchAuthoredCounts pages through the issues listing for repo filtered by
// creator, classifying each item as issue or pull request by its pull_request
// field. Failure handling matches FetchContributors: backoff-and-retry on
// rate limits, warn and keep partial counts on anything else.
func (g *GitHubGateway) FetchAuthoredCounts(ctx context.Context, repo, author string) (issues, prs int, err error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return 0, 0, err
	}
	opts := &github.IssueListByRepoOptions{
		Creator:     author,
		State:       "all",
		ListOptions: github.ListOptions{PerPage: g.perPage, Page: 1},
	}
	for {
		items, _, err := g.client.Issues.ListByRepo(ctx, owner, name, opts)
		if err != nil {
			if wait, ok := rateLimitBackoff(err); ok {
				g.logger.Printf("  Rate limit reached, sleeping %s before retrying page %d...", wait, opts.Page)
				g.sleep(wait)
				continue
			}
			g.logger.Printf("Warning: failed to fetch issues for %s in %s (page %d): %v", author, repo, opts.Page, err)
			break
		}
		for _, item := range items {
			if item.IsPullRequest() {
				prs++
			} else {
				issues++
			}
		}
		if len(items) < g.perPage {
			break
		}
		opts.Page++
	}
	return issues, prs, nil
}

// FetchProfile looks up the avatar and profile URLs for login. Rate limits
// are retried; any other failure is returned to the caller, which is expected
// to fall back to domain.DefaultProfile.
func (g *GitHubGateway) FetchProfile(ctx context.Context, login string) (domain.Profile, error) {
	for {
		user, _, err := g.client.Users.Get(ctx, login)
		if err != nil {
			if wait, ok := rateLimitBackoff(err); ok {
				g.logger.Printf("  Rate limit reached, sleeping %s before retrying profile lookup for %s...", wait, login)
				g.sleep(wait)
				continue
			}
			return domain.Profile{}, fmt.Errorf("failed to fetch profile for %s: %w", login, err)
		}
		return domain.Profile{
			AvatarURL: user.GetAvatarURL(),
			HTMLURL:   user.GetHTMLURL(),
		}, nil
	}
}
