// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// UserStats holds the accumulated activity counts for a single participant.
// It is the core domain entity of this application: one row of the leaderboard.
type UserStats struct {
	Login        string `json:"login"`
	AvatarURL    string `json:"avatar_url"`
	ProfileURL   string `json:"profile_url"`
	Commits      int    `json:"commits"`
	PullRequests int    `json:"pull_requests"`
	Issues       int    `json:"issues"`
}

// Total is the combined activity across all counters.
func (u *UserStats) Total() int {
	return u.Commits + u.PullRequests + u.Issues
}

// Profile holds the public profile metadata for a participant.
type Profile struct {
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// DefaultProfile returns the fallback profile used when the lookup fails:
// no avatar and a constructed profile URL.
func DefaultProfile(login string) Profile {
	return Profile{HTMLURL: fmt.Sprintf("https://github.com/%s", login)}
}
