package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

func TestValidateDropsDanglingLinks(t *testing.T) {
	g := Graph{
		Nodes: []Node{{ID: "a"}, {ID: "b"}},
		Links: []Link{
			{Source: "a", Target: "b", Type: LinkFollows, Value: 5},
			{Source: "a", Target: "ghost", Type: LinkFollows, Value: 5},
			{Source: "ghost", Target: "b", Type: LinkMentioned, Value: 3},
		},
	}

	valid := Validate(g)
	require.Len(t, valid.Links, 1)
	assert.Equal(t, "a", valid.Links[0].Source)
	assert.Equal(t, "b", valid.Links[0].Target)
	assert.Len(t, valid.Nodes, 2)
}

func TestValidateEmptyGraph(t *testing.T) {
	valid := Validate(Graph{})
	assert.Empty(t, valid.Nodes)
	assert.Empty(t, valid.Links)
}

func TestDetermineGroup(t *testing.T) {
	tests := []struct {
		name string
		user twitter.User
		want string
	}{
		{
			name: "project by description",
			user: twitter.User{Name: "Somechain", Description: "A Layer 1 blockchain for payments"},
			want: GroupProject,
		},
		{
			name: "dao by name",
			user: twitter.User{Name: "MakerDAO", Description: "Decentralized finance"},
			want: GroupDAO,
		},
		{
			name: "investor",
			user: twitter.User{Name: "Acme", Description: "Early-stage ventures fund"},
			want: GroupInvestor,
		},
		{
			name: "company",
			user: twitter.User{Name: "Acme", Description: "A crypto exchange for everyone"},
			want: GroupCompany,
		},
		{
			name: "default influencer",
			user: twitter.User{Name: "Someone", Description: "I tweet about things"},
			want: GroupInfluencer,
		},
		{
			name: "explicit kol phrase wins",
			user: twitter.User{
				Name:        "Analyst",
				Description: "Crypto analyst and thought leader",
				Metrics:     &twitter.UserMetrics{Followers: 1000, Following: 500, Tweets: 100},
			},
			want: GroupKOL,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineGroup(tt.user))
		})
	}
}

func TestKOLScore(t *testing.T) {
	user := twitter.User{
		Description: "Crypto analyst covering bitcoin and defi",
		Metrics:     &twitter.UserMetrics{Followers: 1000000, Following: 100, Tweets: 50000},
	}

	score, ok := KOLScore(user)
	require.True(t, ok)
	// 70 (followers capped) + 15 (ratio capped) + 15 (activity capped)
	// already saturates the scale before keyword bonuses.
	assert.Equal(t, 100, score)
	assert.True(t, IsLikelyKOL(user))
}

func TestKOLScoreNoMetrics(t *testing.T) {
	_, ok := KOLScore(twitter.User{Description: "crypto"})
	assert.False(t, ok)
	assert.False(t, IsLikelyKOL(twitter.User{Description: "crypto"}))
}

func TestKOLScoreModestAccount(t *testing.T) {
	user := twitter.User{
		Description: "photography and food",
		Metrics:     &twitter.UserMetrics{Followers: 300, Following: 500, Tweets: 1000},
	}

	score, ok := KOLScore(user)
	require.True(t, ok)
	assert.Less(t, score, 60)
	assert.False(t, IsLikelyKOL(user))
}

func TestSampleGraph(t *testing.T) {
	g := SampleGraph("vitalik")

	require.NotEmpty(t, g.Nodes)
	require.NotEmpty(t, g.Links)

	// Referential integrity holds for the built-in dataset.
	ids := make(map[string]bool)
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, l := range g.Links {
		assert.True(t, ids[l.Source], "link source %s", l.Source)
		assert.True(t, ids[l.Target], "link target %s", l.Target)
	}

	seed := g.Node("vitalik")
	require.NotNil(t, seed)
	assert.Equal(t, GroupSeed, seed.Group)
}

func TestSampleGraphUnknownSeed(t *testing.T) {
	g := SampleGraph("nosuchuser")
	require.NotEmpty(t, g.Nodes)

	// Falls back to the default seed account.
	seed := g.Node("vitalik")
	require.NotNil(t, seed)
	assert.Equal(t, GroupSeed, seed.Group)
}

func TestSampleGraphDeterministic(t *testing.T) {
	assert.Equal(t, SampleGraph("vitalik"), SampleGraph("vitalik"))
}
