// Package participants loads the tracked participant set from disk.
package participants

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Set is the collection of tracked logins. Membership is the only operation
// the rest of the application needs.
type Set map[string]struct{}

// Contains reports whether login is a tracked participant.
func (s Set) Contains(login string) bool {
	_, ok := s[login]
	return ok
}

// Sorted returns the logins in ascending order, for deterministic iteration.
func (s Set) Sorted() []string {
	logins := make([]string, 0, len(s))
	for login := range s {
		logins = append(logins, login)
	}
	sort.Strings(logins)
	return logins
}

// Load reads a JSON array of login strings from path and returns the set.
// Duplicates collapse; an empty array is an error because a leaderboard with
// no participants is meaningless.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read participants file %s: %w", path, err)
	}
	var logins []string
	if err := json.Unmarshal(data, &logins); err != nil {
		return nil, fmt.Errorf("failed to parse participants file %s: %w", path, err)
	}
	set := make(Set, len(logins))
	for _, login := range logins {
		if login == "" {
			continue
		}
		set[login] = struct{}{}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("participants file %s contains no logins", path)
	}
	return set, nil
}
