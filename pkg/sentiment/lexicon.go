package sentiment

// baseLexicon is an AFINN-style term weight table covering the general
// English vocabulary that shows up in crypto Twitter chatter.
var baseLexicon = map[string]int{
	"abandon": -2, "absurd": -2, "abuse": -3, "accident": -2, "accomplish": 2,
	"achieve": 2, "admire": 3, "adopt": 1, "advantage": 2, "adventure": 2,
	"afraid": -2, "aggressive": -2, "agree": 1, "alarm": -2, "alert": -1,
	"amazing": 4, "ambitious": 2, "angry": -3, "annoy": -2, "anxious": -2,
	"approval": 2, "attack": -1, "awesome": 4, "awful": -3, "bad": -3,
	"ban": -2, "bankrupt": -3, "beautiful": 3, "believe": 1, "benefit": 2,
	"best": 3, "better": 2, "big": 1, "blame": -2, "block": -1,
	"bold": 2, "boom": 1, "boring": -3, "breakthrough": 3, "bright": 1,
	"brilliant": 4, "broke": -2, "broken": -1, "bug": -2, "build": 1,
	"calm": 2, "cancel": -1, "capable": 1, "careless": -2, "celebrate": 3,
	"champion": 2, "chaos": -2, "cheap": -1, "cheat": -3, "clean": 2,
	"clever": 2, "collapse": -2, "comfort": 2, "complain": -2, "confident": 2,
	"confuse": -2, "congratulations": 2, "cool": 1, "corrupt": -3, "crazy": -2,
	"create": 1, "crime": -2, "crisis": -3, "critical": -2, "cry": -1,
	"damage": -3, "danger": -2, "dead": -3, "deal": 1, "death": -2,
	"defeat": -2, "delay": -1, "delight": 3, "deny": -2, "depressed": -2,
	"destroy": -3, "die": -3, "difficult": -1, "dirty": -2, "disappoint": -2,
	"disaster": -3, "dishonest": -2, "dislike": -2, "dispute": -2, "disrupt": -2,
	"doom": -2, "doubt": -1, "dream": 1, "drop": -1, "dumb": -3,
	"eager": 2, "easy": 1, "efficient": 2, "elegant": 2, "embarrass": -2,
	"empower": 2, "encourage": 2, "enemy": -2, "energy": 1, "enjoy": 2,
	"epic": 3, "error": -2, "evil": -3, "excellent": 3, "excited": 3,
	"exciting": 3, "expand": 1, "fail": -2, "failure": -2, "fake": -3,
	"fantastic": 4, "fast": 1, "fault": -2, "favorite": 2, "fear": -2,
	"fine": 2, "fire": -2, "flawless": 2, "fool": -2, "forbid": -2,
	"fraud": -4, "free": 1, "fresh": 1, "friendly": 2, "frustrated": -2,
	"fun": 4, "funny": 4, "gain": 2, "generous": 2, "genius": 3,
	"gift": 2, "glad": 3, "gloomy": -1, "good": 3, "grand": 3,
	"great": 3, "greed": -3, "grow": 1, "growth": 2, "happy": 3,
	"hard": -1, "harm": -2, "hate": -3, "healthy": 2, "help": 2,
	"hero": 2, "honest": 2, "hope": 2, "hopeful": 2, "horrible": -3,
	"huge": 1, "hurt": -2, "ignore": -1, "illegal": -3, "important": 2,
	"impressive": 3, "improve": 2, "incredible": 4, "innovative": 2, "insecure": -2,
	"inspire": 2, "interesting": 2, "invest": 1, "jail": -2, "joy": 3,
	"kill": -3, "launch": 1, "lawsuit": -2, "lazy": -1, "leading": 2,
	"legend": 2, "lie": -2, "like": 2, "limit": -1, "lose": -3,
	"loss": -3, "love": 3, "lucky": 3, "mad": -3, "magic": 1,
	"massive": 2, "mature": 2, "mess": -2, "milestone": 2, "miss": -2,
	"mistake": -2, "murder": -2, "negative": -2, "new": 1, "nice": 3,
	"notorious": -2, "opportunity": 2, "optimistic": 2, "outstanding": 5, "panic": -3,
	"peace": 2, "perfect": 3, "pessimistic": -2, "poor": -2, "popular": 3,
	"positive": 2, "powerful": 2, "praise": 3, "pretty": 1, "problem": -2,
	"progress": 2, "promise": 1, "protect": 1, "proud": 2, "prove": 1,
	"quality": 2, "quit": -1, "rally": 1, "reject": -1, "reliable": 2,
	"rescue": 2, "revolutionary": 2, "reward": 2, "rich": 2, "rise": 1,
	"risk": -2, "robust": 2, "ruin": -2, "sad": -2, "safe": 1,
	"save": 2, "scandal": -3, "scare": -2, "secure": 2, "sell": -1,
	"serious": -1, "share": 1, "shame": -2, "shock": -2, "significant": 1,
	"simple": 1, "slow": -2, "smart": 1, "solid": 2, "solution": 1,
	"sorry": -1, "stable": 1, "steal": -2, "stolen": -2, "strange": -1,
	"strength": 2, "strong": 2, "struggle": -2, "stupid": -2, "succeed": 3,
	"success": 2, "successful": 3, "suffer": -2, "super": 3, "support": 2,
	"surge": 1, "suspicious": -2, "sweet": 2, "terrible": -3, "terrific": 4,
	"thank": 2, "threat": -2, "thrilled": 5, "top": 2, "tough": -2,
	"toxic": -2, "tragedy": -2, "trouble": -2, "trust": 1, "ugly": -3,
	"uncertain": -1, "unhappy": -2, "unstable": -2, "useful": 2, "useless": -2,
	"value": 1, "vibrant": 3, "victory": 3, "vulnerable": -2, "war": -2,
	"warning": -3, "wealth": 3, "weak": -2, "welcome": 2, "win": 4,
	"winner": 4, "wonderful": 4, "worry": -3, "worse": -3, "worst": -3,
	"wow": 4, "wrong": -2,
}

// cryptoLexicon overrides and extends the base table with domain terms.
// Weights follow the original product's tuning.
var cryptoLexicon = map[string]int{
	// Positive crypto terms
	"bullish":       2,
	"moon":          2,
	"hodl":          1,
	"adoption":      1,
	"decentralized": 1,
	"defi":          1,
	"staking":       1,
	"yield":         1,
	"gains":         2,
	"profitable":    2,

	// Negative crypto terms
	"bearish":    -2,
	"dump":       -2,
	"scam":       -3,
	"hack":       -3,
	"crash":      -3,
	"rugpull":    -3,
	"ponzi":      -3,
	"fud":        -2,
	"volatile":   -1,
	"correction": -1,
}

// negators flip the sign of the token that follows them.
var negators = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"dont": true, "don't": true, "doesnt": true, "doesn't": true,
	"isnt": true, "isn't": true, "wasnt": true, "wasn't": true,
	"cant": true, "can't": true, "cannot": true, "wont": true, "won't": true,
}

func buildLexicon() map[string]int {
	lex := make(map[string]int, len(baseLexicon)+len(cryptoLexicon))
	for term, weight := range baseLexicon {
		lex[term] = weight
	}
	for term, weight := range cryptoLexicon {
		lex[term] = weight
	}
	return lex
}
