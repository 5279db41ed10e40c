package pricefeed

import "strings"

// Instrument is the enriched symbol listing served to clients.
type Instrument struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Digits       int     `json:"digits"`
	ContractSize float64 `json:"contractSize"`
	MinVolume    float64 `json:"minVolume"`
	MaxVolume    float64 `json:"maxVolume"`
	VolumeStep   float64 `json:"volumeStep"`
	Popular      bool    `json:"popular"`
}

// DefaultSymbols is the polling universe when the provider symbol list is
// not reachable.
func DefaultSymbols() []string {
	return []string{
		// Forex majors
		"EURUSD", "GBPUSD", "USDJPY", "USDCHF", "AUDUSD", "NZDUSD", "USDCAD",
		// Forex crosses
		"EURGBP", "EURJPY", "GBPJPY", "EURCHF", "EURAUD", "EURCAD", "GBPAUD",
		"AUDCAD", "AUDJPY", "CADJPY", "CHFJPY", "NZDJPY",
		// Metals
		"XAUUSD", "XAGUSD",
		// Crypto
		"BTCUSD", "ETHUSD",
	}
}

var popularInstruments = map[string][]string{
	"Forex":  {"EURUSD", "GBPUSD", "USDJPY", "USDCHF", "AUDUSD", "NZDUSD", "USDCAD", "EURGBP", "EURJPY", "GBPJPY", "EURCHF", "EURAUD", "AUDCAD", "AUDJPY", "CADJPY"},
	"Metals": {"XAUUSD", "XAGUSD"},
	"Crypto": {"BTCUSD", "ETHUSD"},
}

var instrumentNames = map[string]string{
	"EURUSD": "EUR/USD", "GBPUSD": "GBP/USD", "USDJPY": "USD/JPY", "USDCHF": "USD/CHF",
	"AUDUSD": "AUD/USD", "NZDUSD": "NZD/USD", "USDCAD": "USD/CAD", "EURGBP": "EUR/GBP",
	"EURJPY": "EUR/JPY", "GBPJPY": "GBP/JPY", "EURCHF": "EUR/CHF", "EURAUD": "EUR/AUD",
	"EURCAD": "EUR/CAD", "GBPAUD": "GBP/AUD", "AUDCAD": "AUD/CAD", "AUDJPY": "AUD/JPY",
	"CADJPY": "CAD/JPY", "CHFJPY": "CHF/JPY", "NZDJPY": "NZD/JPY",
	"XAUUSD": "Gold", "XAGUSD": "Silver", "XPTUSD": "Platinum", "XPDUSD": "Palladium",
	"USOIL": "US Oil", "UKOIL": "UK Oil", "NGAS": "Natural Gas", "COPPER": "Copper",
	"BTCUSD": "Bitcoin", "ETHUSD": "Ethereum", "SOLUSD": "Solana", "XRPUSD": "XRP",
	"ADAUSD": "Cardano", "DOGEUSD": "Dogecoin", "LTCUSD": "Litecoin", "BCHUSD": "Bitcoin Cash",
	"DOTUSD": "Polkadot", "LINKUSD": "Chainlink", "AVAXUSD": "Avalanche", "BNBUSD": "BNB",
}

func categorizeSymbol(symbol string) string {
	s := strings.ToUpper(symbol)
	switch {
	case strings.Contains(s, "XAU") || strings.Contains(s, "XAG") || strings.Contains(s, "XPT") || strings.Contains(s, "XPD"):
		return "Metals"
	case strings.Contains(s, "OIL") || strings.Contains(s, "BRENT") || strings.Contains(s, "WTI") || strings.Contains(s, "NGAS") || strings.Contains(s, "COPPER"):
		return "Commodities"
	case strings.Contains(s, "BTC") || strings.Contains(s, "ETH") || strings.Contains(s, "SOL") || strings.Contains(s, "XRP") || strings.Contains(s, "DOGE"):
		return "Crypto"
	default:
		return "Forex"
	}
}

func instrumentName(symbol string) string {
	if name, ok := instrumentNames[symbol]; ok {
		return name
	}
	return symbol
}

func symbolDigits(symbol string) int {
	switch {
	case strings.Contains(symbol, "JPY"):
		return 3
	case symbol == "XAUUSD":
		return 2
	case symbol == "XAGUSD":
		return 3
	case strings.Contains(symbol, "BTC") || strings.Contains(symbol, "ETH"):
		return 2
	default:
		return 5
	}
}

func contractSize(symbol string) float64 {
	switch {
	case strings.Contains(symbol, "BTC") || strings.Contains(symbol, "ETH"):
		return 1
	case symbol == "XAUUSD" || symbol == "XAGUSD":
		return 100
	default:
		return 100000
	}
}

func buildInstrument(symbol string) Instrument {
	category := categorizeSymbol(symbol)
	popular := false
	for _, s := range popularInstruments[category] {
		if s == symbol {
			popular = true
			break
		}
	}
	return Instrument{
		Symbol:       symbol,
		Name:         instrumentName(symbol),
		Category:     category,
		Digits:       symbolDigits(symbol),
		ContractSize: contractSize(symbol),
		MinVolume:    0.01,
		MaxVolume:    100,
		VolumeStep:   0.01,
		Popular:      popular,
	}
}

// DefaultInstruments is the static fallback listing.
func DefaultInstruments() []Instrument {
	symbols := DefaultSymbols()
	instruments := make([]Instrument, len(symbols))
	for i, s := range symbols {
		instruments[i] = buildInstrument(s)
	}
	return instruments
}
