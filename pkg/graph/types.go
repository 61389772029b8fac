// Package graph builds and validates the account/interaction graph that
// the analytics layer runs over.
package graph

import (
	"time"

	"github.com/minseolee/cryptolens/pkg/sentiment"
)

// Node group classifications, mutually exclusive and assigned once at ingestion.
const (
	GroupSeed       = "seed"
	GroupKOL        = "kol"
	GroupProject    = "project"
	GroupDAO        = "dao"
	GroupInvestor   = "investor"
	GroupCompany    = "company"
	GroupInfluencer = "influencer"
)

// LinkType classifies a directed interaction between two accounts.
type LinkType string

const (
	LinkFollows   LinkType = "follows"
	LinkMentioned LinkType = "mentioned"
	LinkRetweeted LinkType = "retweeted"
	LinkQuoted    LinkType = "quoted"
	LinkReplied   LinkType = "replied"
)

// Node is an account in the graph. Identity fields are immutable; derived
// fields are recomputed on each analytics pass.
type Node struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Username    string             `json:"username"`
	Group       string             `json:"group"`
	Followers   int                `json:"followers"`
	ImageURL    string             `json:"imageUrl,omitempty"`
	Description string             `json:"description,omitempty"`
	KOLRank     int                `json:"kolRank,omitempty"`
	Sentiment   *sentiment.Summary `json:"sentiment,omitempty"`
}

// Link is a directed, typed edge. Value saturates as repeat interactions
// accumulate; Count aggregates merged observations of the same
// (source, target, type).
type Link struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Value     float64   `json:"value"`
	Type      LinkType  `json:"type"`
	Timestamp time.Time `json:"timestamp,omitempty"`
	Count     int       `json:"count,omitempty"`
}

// Graph is a snapshot of nodes and links for one analytics pass.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Validate drops links whose source or target does not reference a known
// node. Every analytics entry point runs on validated graphs.
func Validate(g Graph) Graph {
	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}

	valid := make([]Link, 0, len(g.Links))
	for _, l := range g.Links {
		if ids[l.Source] && ids[l.Target] {
			valid = append(valid, l)
		}
	}
	return Graph{Nodes: g.Nodes, Links: valid}
}

// Node returns the node with the given id, or nil.
func (g Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}
