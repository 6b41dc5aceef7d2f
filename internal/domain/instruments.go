package domain

var stockLists = map[string][]string{
	"major":    {"AAPL", "MSFT", "AMZN", "GOOGL", "META", "TSLA", "NVDA", "JPM", "BAC", "WMT"},
	"tech":     {"AAPL", "MSFT", "GOOGL", "META", "AMZN", "NVDA", "TSLA", "NFLX", "CRM", "ADBE", "INTC", "AMD", "PYPL", "UBER", "ABNB"},
	"finance":  {"JPM", "BAC", "WFC", "C", "GS", "MS", "BLK", "AXP", "V", "MA", "COF", "SCHW"},
	"volatile": {"TSLA", "GME", "AMC", "COIN", "RIVN", "DKNG", "PLTR", "NIO", "SNAP", "RBLX", "HOOD", "SPCE"},
	"meme":     {"GME", "AMC", "BB", "EXPR", "KOSS", "NOK", "BBBY", "WISH", "CLOV", "MVIS", "TLRY", "SNDL"},
}

var cryptoLists = map[string][]string{
	"major": {"BTC", "ETH", "BNB", "SOL", "XRP", "ADA", "DOGE", "DOT", "AVAX", "MATIC"},
	"meme":  {"DOGE", "SHIB", "PEPE", "FLOKI", "BONK", "ELON", "SAMO", "WIF", "MONA", "BABYDOGE"},
}

// StockList returns curated equity instruments for the given list name.
// Unknown names fall back to the major list.
func StockList(name string) []Instrument {
	symbols, ok := stockLists[name]
	if !ok {
		symbols = stockLists["major"]
	}
	return toInstruments(symbols, AssetTypeEquity)
}

// CryptoList returns curated crypto instruments for the given list name.
func CryptoList(name string) []Instrument {
	symbols, ok := cryptoLists[name]
	if !ok {
		symbols = cryptoLists["major"]
	}
	return toInstruments(symbols, AssetTypeCrypto)
}

func toInstruments(symbols []string, assetType AssetType) []Instrument {
	out := make([]Instrument, 0, len(symbols))
	for _, symbol := range symbols {
		out = append(out, Instrument{Symbol: symbol, AssetType: assetType})
	}
	return out
}
