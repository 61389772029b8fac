package graph

import "strings"

// sampleNodes is a small, deterministic crypto-Twitter network used when no
// API credentials are available.
var sampleNodes = []Node{
	{ID: "vitalik", Name: "Vitalik Buterin", Username: "VitalikButerin", Group: GroupKOL, Followers: 2400000, KOLRank: 98,
		Description: "Ethereum co-founder. Interested in cryptography, economics, and decentralized systems."},
	{ID: "ethereum", Name: "Ethereum", Username: "ethereum", Group: GroupProject, Followers: 3200000,
		Description: "Ethereum is a global, open-source platform for decentralized applications."},
	{ID: "optimism", Name: "Optimism", Username: "optimismFND", Group: GroupProject, Followers: 450000,
		Description: "Optimism is a Layer 2 scaling solution for Ethereum."},
	{ID: "arbitrum", Name: "Arbitrum", Username: "arbitrum", Group: GroupProject, Followers: 380000,
		Description: "Arbitrum is a Layer 2 scaling solution for Ethereum."},
	{ID: "balaji", Name: "Balaji Srinivasan", Username: "balajis", Group: GroupKOL, Followers: 780000, KOLRank: 92,
		Description: "Angel investor, entrepreneur, former CTO of Coinbase. Crypto analyst and thought leader."},
	{ID: "a16z", Name: "a16z", Username: "a16z", Group: GroupInvestor, Followers: 950000,
		Description: "Andreessen Horowitz (a16z) is a venture capital firm that backs bold entrepreneurs building the future."},
	{ID: "coinbase", Name: "Coinbase", Username: "coinbase", Group: GroupCompany, Followers: 1800000,
		Description: "Coinbase is a secure platform that makes it easy to buy, sell, and store cryptocurrency."},
	{ID: "binance", Name: "Binance", Username: "binance", Group: GroupCompany, Followers: 2100000,
		Description: "Binance is the world's leading blockchain ecosystem and cryptocurrency infrastructure provider."},
	{ID: "cz", Name: "CZ", Username: "cz_binance", Group: GroupKOL, Followers: 1500000, KOLRank: 95,
		Description: "Founder & CEO of Binance. Crypto expert and industry leader."},
	{ID: "uniswap", Name: "Uniswap", Username: "Uniswap", Group: GroupProject, Followers: 680000,
		Description: "Uniswap is a decentralized protocol for automated liquidity provision on Ethereum."},
	{ID: "aave", Name: "Aave", Username: "AaveAave", Group: GroupProject, Followers: 420000,
		Description: "Aave is an open source and non-custodial liquidity protocol."},
	{ID: "polygon", Name: "Polygon", Username: "0xPolygon", Group: GroupProject, Followers: 750000,
		Description: "Polygon is a protocol and a framework for building Ethereum-compatible blockchain networks."},
	{ID: "cryptoKaleo", Name: "Kaleo", Username: "CryptoKaleo", Group: GroupKOL, Followers: 560000, KOLRank: 88,
		Description: "Crypto analyst and trader. Sharing market insights and technical analysis for Bitcoin and altcoins."},
	{ID: "cryptoCred", Name: "Cred", Username: "CryptoCred", Group: GroupKOL, Followers: 420000, KOLRank: 85,
		Description: "Crypto educator and technical analyst. Helping traders understand market dynamics."},
	{ID: "coinBureau", Name: "Coin Bureau", Username: "coinbureau", Group: GroupKOL, Followers: 850000, KOLRank: 90,
		Description: "Independent crypto educator and researcher."},
	{ID: "bitcoin", Name: "Bitcoin", Username: "bitcoin", Group: GroupProject, Followers: 4500000,
		Description: "Bitcoin is a decentralized digital currency on the peer-to-peer bitcoin network."},
}

var sampleLinks = []Link{
	{Source: "vitalik", Target: "ethereum", Value: 10, Type: LinkFollows},
	{Source: "vitalik", Target: "optimism", Value: 8, Type: LinkFollows},
	{Source: "vitalik", Target: "balaji", Value: 5, Type: LinkFollows},
	{Source: "ethereum", Target: "optimism", Value: 7, Type: LinkFollows},
	{Source: "ethereum", Target: "arbitrum", Value: 7, Type: LinkFollows},
	{Source: "ethereum", Target: "uniswap", Value: 8, Type: LinkFollows},
	{Source: "ethereum", Target: "aave", Value: 6, Type: LinkFollows},
	{Source: "balaji", Target: "a16z", Value: 9, Type: LinkFollows},
	{Source: "balaji", Target: "coinbase", Value: 7, Type: LinkFollows},
	{Source: "a16z", Target: "coinbase", Value: 8, Type: LinkFollows},
	{Source: "a16z", Target: "uniswap", Value: 6, Type: LinkFollows},
	{Source: "binance", Target: "cz", Value: 10, Type: LinkFollows},
	{Source: "polygon", Target: "ethereum", Value: 8, Type: LinkFollows},
	{Source: "polygon", Target: "aave", Value: 5, Type: LinkFollows},
	{Source: "aave", Target: "uniswap", Value: 6, Type: LinkFollows},
	{Source: "cryptoKaleo", Target: "coinBureau", Value: 7, Type: LinkFollows},
	{Source: "cryptoKaleo", Target: "cryptoCred", Value: 6, Type: LinkFollows},
	{Source: "cryptoCred", Target: "coinBureau", Value: 8, Type: LinkFollows},
	{Source: "vitalik", Target: "cryptoKaleo", Value: 4, Type: LinkFollows},
	{Source: "balaji", Target: "cryptoCred", Value: 5, Type: LinkFollows},
	{Source: "cz", Target: "coinBureau", Value: 6, Type: LinkFollows},
	{Source: "coinBureau", Target: "ethereum", Value: 7, Type: LinkFollows},
	{Source: "cryptoCred", Target: "uniswap", Value: 5, Type: LinkFollows},
	{Source: "cryptoKaleo", Target: "polygon", Value: 4, Type: LinkFollows},

	{Source: "vitalik", Target: "ethereum", Value: 6, Type: LinkMentioned, Count: 12},
	{Source: "vitalik", Target: "optimism", Value: 4, Type: LinkRetweeted, Count: 5},
	{Source: "balaji", Target: "vitalik", Value: 5, Type: LinkMentioned, Count: 8},
	{Source: "cz", Target: "binance", Value: 7, Type: LinkMentioned, Count: 15},
	{Source: "coinBureau", Target: "ethereum", Value: 5, Type: LinkRetweeted, Count: 7},
	{Source: "cryptoKaleo", Target: "bitcoin", Value: 6, Type: LinkMentioned, Count: 10},
	{Source: "cryptoCred", Target: "vitalik", Value: 4, Type: LinkQuoted, Count: 3},
	{Source: "ethereum", Target: "polygon", Value: 5, Type: LinkMentioned, Count: 6},
	{Source: "uniswap", Target: "ethereum", Value: 6, Type: LinkMentioned, Count: 9},
	{Source: "aave", Target: "ethereum", Value: 5, Type: LinkRetweeted, Count: 8},
}

// SampleGraph returns the built-in network centered on the requested
// account. Unknown usernames default to vitalik.
func SampleGraph(username string) Graph {
	lower := strings.ToLower(username)
	seedID := "vitalik"
	for _, n := range sampleNodes {
		if strings.ToLower(n.Username) == lower || strings.Contains(strings.ToLower(n.Name), lower) {
			seedID = n.ID
			break
		}
	}

	nodes := make([]Node, len(sampleNodes))
	copy(nodes, sampleNodes)
	for i := range nodes {
		if nodes[i].ID == seedID {
			nodes[i].Group = GroupSeed
		}
	}

	links := make([]Link, len(sampleLinks))
	copy(links, sampleLinks)
	return Graph{Nodes: nodes, Links: links}
}
