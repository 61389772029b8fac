package graph

import (
	"math"
	"strings"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

var kolKeywords = []string{
	"crypto", "blockchain", "bitcoin", "ethereum", "web3", "defi",
	"nft", "token", "analyst", "trader", "investor",
}

// KOLScore rates how much an account looks like a key opinion leader,
// on a 0-100 scale. The second return is false when the profile carries
// too little data to score.
func KOLScore(user twitter.User) (int, bool) {
	if user.Metrics == nil || user.Metrics.Followers == 0 {
		return 0, false
	}
	m := user.Metrics

	// Base score from followers (max 70 points).
	score := math.Min(70, math.Log10(float64(m.Followers))*15)

	// Follower/following ratio (max 15 points).
	if m.Following > 0 {
		ratio := float64(m.Followers) / float64(m.Following)
		score += math.Min(15, ratio*1.5)
	}

	// Activity (max 15 points).
	if m.Tweets > 0 {
		score += math.Min(15, math.Log10(float64(m.Tweets))*5)
	}

	// Keyword bonus from the profile description.
	description := strings.ToLower(user.Description)
	for _, kw := range kolKeywords {
		if strings.Contains(description, kw) {
			score += 2
		}
	}

	return int(math.Min(100, math.Round(score))), true
}

// IsLikelyKOL applies score and profile heuristics.
func IsLikelyKOL(user twitter.User) bool {
	score, ok := KOLScore(user)
	if !ok {
		return false
	}

	if score >= 75 {
		return true
	}

	description := strings.ToLower(user.Description)
	if score >= 60 && containsAny(description, []string{"crypto", "blockchain", "bitcoin", "analyst", "expert"}) {
		return true
	}

	return containsAny(description, []string{
		"kol", "key opinion leader", "thought leader", "crypto analyst", "crypto expert",
	})
}
