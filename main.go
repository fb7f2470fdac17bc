// contrib-tracker aggregates commit, pull request and issue counts for a
// tracked set of participants across a list of GitHub repositories and
// writes a sorted markdown leaderboard.
package main

import (
	"github.com/neptechtribe/contrib-tracker/cmd"
)

func main() {
	cmd.Execute()
}
