package twitter

import (
	"strconv"
	"time"
)

// sampleEpoch anchors the sample timeline so window keys stay stable
// between runs.
var sampleEpoch = time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)

type sampleTweet struct {
	author string
	minute int
	text   string
}

var sampleTweetData = []sampleTweet{
	// Window 1
	{"vitalik", 2, "Layer 2 rollups keep getting cheaper. Very bullish on scaling #eth #layer2"},
	{"cryptoKaleo", 5, "Bitcoin is going to the moon, very bullish! #btc #bullrun"},
	{"coinBureau", 9, "New research report on staking yield across protocols #eth #staking #defi"},
	{"cryptoCred", 14, "Watch the weekly close, a correction here would be healthy #btc"},
	{"balaji", 21, "Decentralized networks win in the long run. Adoption is accelerating #web3 #defi"},
	{"cz", 28, "Great week for builders. Keep shipping #bnb #web3"},
	{"cryptoKaleo", 33, "This altcoin chart looks terrible, expect a dump #altcoins"},
	{"coinBureau", 41, "Liquid staking is the fastest growing sector right now #defi #staking"},
	{"vitalik", 47, "Interesting new zk proof system announced today #eth #zk"},
	{"cryptoCred", 55, "Another rugpull in that ecosystem, what a scam #altcoins #nft"},

	// Window 2
	{"cryptoKaleo", 63, "Massive gains on the breakout, defi season is here #defi #eth"},
	{"coinBureau", 68, "DeFi total value locked hits a yearly high, very bullish #defi #tvl"},
	{"balaji", 74, "Stablecoin adoption in emerging markets keeps growing #stablecoins #defi"},
	{"vitalik", 79, "Account abstraction makes wallets safer for everyone #eth #wallets"},
	{"cz", 85, "Security first. Funds are safe. #bnb"},
	{"cryptoCred", 91, "The defi yield trade is crowded, be careful with leverage #defi #yield"},
	{"cryptoKaleo", 98, "NFT volume creeping back up, interesting #nft #eth"},
	{"coinBureau", 104, "Comparing L2 fees this week: impressive progress #eth #layer2"},
	{"balaji", 109, "Bearish headlines, bullish fundamentals #btc"},
	{"cryptoKaleo", 115, "If this level breaks we crash hard, hedge accordingly #btc #trading"},

	// Window 3
	{"coinBureau", 123, "Restaking protocols are the emerging narrative #defi #restaking #eth"},
	{"cryptoCred", 129, "Defi yields compressing, rotation into majors #defi #yield"},
	{"vitalik", 136, "Excited about the next protocol upgrade milestone #eth #upgrade"},
	{"cryptoKaleo", 142, "Defi majors leading today, good breadth #defi #eth"},
	{"balaji", 148, "Decentralized identity is underrated #web3 #identity"},
	{"cz", 155, "Volatile day. Zoom out. #btc #bnb"},
	{"coinBureau", 161, "Restaking TVL doubled this month, emerging trend confirmed #defi #restaking"},
	{"cryptoCred", 168, "Taking profit on the defi basket, great trade #defi #trading"},
	{"cryptoKaleo", 174, "The nft market feels like a ghost town again #nft"},
}

// SampleTweets returns a deterministic tweet stream spanning three hourly
// windows, used when no credentials are configured.
func SampleTweets() []Tweet {
	tweets := make([]Tweet, 0, len(sampleTweetData))
	for i, st := range sampleTweetData {
		tweets = append(tweets, Tweet{
			ID:        "sample-" + strconv.Itoa(i+1),
			Text:      st.text,
			AuthorID:  st.author,
			CreatedAt: sampleEpoch.Add(time.Duration(st.minute) * time.Minute),
		})
	}
	return tweets
}
