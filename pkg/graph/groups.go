package graph

import (
	"strings"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

// Keyword tables for profile-text classification.
var (
	projectKeywords  = []string{"blockchain", "protocol", "network", "chain"}
	investorKeywords = []string{"investor", "capital", "ventures", "investing"}
	companyKeywords  = []string{"exchange", "trading", "company", "platform"}
)

// DetermineGroup classifies an account from its profile text. KOL detection
// runs first; accounts matching nothing default to influencer.
func DetermineGroup(user twitter.User) string {
	if IsLikelyKOL(user) {
		return GroupKOL
	}

	description := strings.ToLower(user.Description)
	name := strings.ToLower(user.Name)
	username := strings.ToLower(user.Username)

	if containsAny(description, projectKeywords) {
		return GroupProject
	}
	if strings.Contains(description, "dao") || strings.Contains(name, "dao") || strings.Contains(username, "dao") {
		return GroupDAO
	}
	if containsAny(description, investorKeywords) {
		return GroupInvestor
	}
	if containsAny(description, companyKeywords) {
		return GroupCompany
	}
	return GroupInfluencer
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
