package catalog

import "strings"

// FeaturedToken is a token shown on the legacy token detail page
type FeaturedToken struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change24h     float64 `json:"change_24h"`
	Volume24h     float64 `json:"volume_24h"`
	MarketCap     float64 `json:"market_cap"`
	FDV           float64 `json:"fdv"`
	CurrentSupply string  `json:"current_supply"`
	MaxSupply     string  `json:"max_supply"`
	ATH           float64 `json:"ath"`
	ATL           float64 `json:"atl"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
}

// Chain is a legacy transfer chain with its display attributes
type Chain struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CarouselEntity is a headline entity for the home page carousel
type CarouselEntity struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Change     string `json:"change"`
	IsPositive bool   `json:"is_positive"`
	Icon       string `json:"icon"`
}

// ExchangeFlow is one row of the home page exchange flow table
type ExchangeFlow struct {
	Asset         string  `json:"asset"`
	Icon          string  `json:"icon"`
	Price         string  `json:"price"`
	PriceChange   float64 `json:"price_change"`
	Volume        string  `json:"volume"`
	VolumeChange  float64 `json:"volume_change"`
	Netflow       string  `json:"netflow"`
	NetflowChange float64 `json:"netflow_change"`
}

// EntityBalanceChange is an entity's holding change for a token
type EntityBalanceChange struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Value       string `json:"value"`
	ValueChange string `json:"value_change"`
	USD         string `json:"usd"`
	USDChange   string `json:"usd_change"`
}

// TopHolder is a token holder row
type TopHolder struct {
	Name     string  `json:"name"`
	IsEntity bool    `json:"is_entity"`
	Icon     *string `json:"icon"`
	Value    string  `json:"value"`
	Pct      string  `json:"pct"`
	USD      string  `json:"usd"`
}

// MarketStats is the global market header
type MarketStats struct {
	TotalMarketCap  string `json:"total_market_cap"`
	MarketCapChange string `json:"market_cap_change"`
	BTCDominance    string `json:"btc_dominance"`
	BTCChange       string `json:"btc_change"`
	ETHDominance    string `json:"eth_dominance"`
	ETHChange       string `json:"eth_change"`
	Volume24h       string `json:"volume_24h"`
	VolumeChange    string `json:"volume_change"`
	FearGreed       int    `json:"fear_greed"`
}

// TransferLabels is a from/to label pair used by legacy transfers
type TransferLabels struct {
	From *string
	To   *string
}

// DefaultFeaturedTokenID is served for unknown token ids
const DefaultFeaturedTokenID = "xpl"

var featuredTokens = []FeaturedToken{
	{
		ID: "xpl", Name: "XPL Token", Symbol: "XPL",
		Price: 0.203, Change24h: 26.07, Volume24h: 60470396,
		MarketCap: 419533333.33, FDV: 419533333.33,
		CurrentSupply: "1,942,420,283,027", MaxSupply: "1,942,420,283,027",
		ATH: 1.68, ATL: 0.12, Icon: "🌀", Color: "#10B981",
	},
	{
		ID: "awe", Name: "AWE Network", Symbol: "AWE",
		Price: 0.0554, Change24h: -3.64, Volume24h: 5909008,
		MarketCap: 107683895.65, FDV: 107683895.65,
		CurrentSupply: "1,942,420,283,027", MaxSupply: "1,942,420,283,027",
		ATH: 0.270, ATL: 0.00647, Icon: "🔷", Color: "#3B82F6",
	},
}

var legacyChains = []Chain{
	{ID: "ethereum", Color: "#627EEA", Icon: "⟠"},
	{ID: "base", Color: "#0052FF", Icon: "⟠"},
	{ID: "polygon", Color: "#8247E5", Icon: "⬡"},
	{ID: "tron", Color: "#FF0013", Icon: "◆"},
	{ID: "bsc", Color: "#F3BA2F", Icon: "◈"},
}

var carouselEntities = []CarouselEntity{
	{Name: "Bybit", Price: "$28.41B", Change: "+0.38%", IsPositive: true, Icon: "🟡"},
	{Name: "MetaPlanet", Price: "$3.19B", Change: "-0.47%", IsPositive: false, Icon: "🔵"},
	{Name: "ARK Invest", Price: "$3.39B", Change: "+9.49%", IsPositive: true, Icon: "📊"},
	{Name: "Donald Trump", Price: "$1.02M", Change: "-0.5%", IsPositive: false, Icon: "🇺🇸"},
	{Name: "Multisig Exploit", Price: "$318.9M", Change: "-1.17%", IsPositive: false, Icon: "☠️"},
	{Name: "Exchange", Price: "$34.89M", Change: "-0.45%", IsPositive: false, Icon: "⬛"},
	{Name: "Wintermute", Price: "$205.4M", Change: "-0.23%", IsPositive: false, Icon: "❄️"},
	{Name: "Kraken", Price: "$12.4B", Change: "+0.12%", IsPositive: true, Icon: "🐙"},
}

var exchangeFlows = []ExchangeFlow{
	{Asset: "AWE", Icon: "🔵", Price: "$0.055", PriceChange: -3.64, Volume: "$890.92K", VolumeChange: -33.92, Netflow: "+$870.44K", NetflowChange: -33.22},
	{Asset: "BARD", Icon: "🟡", Price: "$0.79", PriceChange: 1.11, Volume: "$660.87K", VolumeChange: 163.78, Netflow: "+$643.82K", NetflowChange: 162.97},
	{Asset: "AXS", Icon: "🔴", Price: "$0.95", PriceChange: 0.07, Volume: "$419.45K", VolumeChange: -24.83, Netflow: "+$375.8K", NetflowChange: -22.1},
	{Asset: "JASMY", Icon: "🟠", Price: "$0.0089", PriceChange: 3.28, Volume: "$2.84M", VolumeChange: 156.45, Netflow: "+$2.44M", NetflowChange: 177.69},
	{Asset: "PYTH", Icon: "🟣", Price: "$0.066", PriceChange: -1.29, Volume: "$1.11M", VolumeChange: -64.9, Netflow: "+$914.37K", NetflowChange: -64.4},
	{Asset: "CTC", Icon: "⚪", Price: "$0.03", PriceChange: -1.48, Volume: "$2.75M", VolumeChange: -30.37, Netflow: "+$2.26M", NetflowChange: -22.35},
}

var entityBalanceChanges = []EntityBalanceChange{
	{Name: "CoinDCX", Type: "CEX", Icon: "⚪", Value: "2.1M", ValueChange: "+117.6%", USD: "$120.96K", USDChange: "+119.45%"},
	{Name: "Bithumb", Type: "CEX", Icon: "🟠", Value: "28.45M", ValueChange: "+1.28%", USD: "$1.64M", USDChange: "+2.14%"},
	{Name: "HTX", Type: "CEX", Icon: "🔵", Value: "5.15M", ValueChange: "+1.07%", USD: "$296.7K", USDChange: "+1.93%"},
	{Name: "Binance", Type: "CEX", Icon: "🟡", Value: "412.81M", ValueChange: "+0.77%", USD: "$23.79M", USDChange: "+1.63%"},
	{Name: "Poloniex", Type: "CEX", Icon: "🟢", Value: "1.95M", ValueChange: "±0%", USD: "$112.54K", USDChange: "+0.85%"},
	{Name: "Aerodrome Finance", Type: "DEX", Icon: "🔷", Value: "5M", ValueChange: "-0.39%", USD: "$288.36K", USDChange: "+0.46%"},
	{Name: "OKX", Type: "CEX", Icon: "⚫", Value: "89.2M", ValueChange: "+2.45%", USD: "$5.14M", USDChange: "+3.31%"},
	{Name: "Kraken", Type: "CEX", Icon: "🟣", Value: "15.67M", ValueChange: "-0.12%", USD: "$903.5K", USDChange: "+0.74%"},
}

var topHolders = []TopHolder{
	{Name: "Binance: Cold Wallet (0xF97)", IsEntity: true, Icon: strPtr("◇"), Value: "398,417,870.95", Pct: "19.92%", USD: "$22.09M"},
	{Name: "0xa2B741C8b4c840082c14A4aDEBFA3F2eAE45d022", IsEntity: false, Value: "293,116,664", Pct: "14.66%", USD: "$16.25M"},
	{Name: "Upbit: Cold Wallet (0xb93)", IsEntity: true, Icon: strPtr("UP"), Value: "229,965,767.73", Pct: "11.5%", USD: "$12.75M"},
	{Name: "0x74f50212ac259BA648F0BF4f0C02FaaB098cf7d6", IsEntity: false, Value: "133,362,169.33", Pct: "6.67%", USD: "$7.39M"},
	{Name: "0x18051a9c643077DC1A14d49E1B804dC857750287", IsEntity: false, Value: "119,638,020.93", Pct: "5.98%", USD: "$6.63M"},
}

var marketStats = MarketStats{
	TotalMarketCap:  "$3.102.5B",
	MarketCapChange: "+0.49%",
	BTCDominance:    "58.47%",
	BTCChange:       "-0.01%",
	ETHDominance:    "12.13%",
	ETHChange:       "+0.08%",
	Volume24h:       "$58.3B",
	VolumeChange:    "+28.19%",
	FearGreed:       40,
}

// Legacy transfer vocabulary.
var (
	TransferTokens = []string{"AWE", "USDT", "USDC", "ETH", "TRX"}
	TransferTimes  = []string{"just now", "1 minute ago", "5 minutes ago", "10 minutes ago", "30 minutes ago", "1 hour ago"}
)

// TransferLabelPairs includes an unlabeled pair on purpose.
var TransferLabelPairs = []TransferLabels{
	{From: strPtr("Binance Deposit"), To: strPtr("Binance: Hot Wallet")},
	{From: strPtr("HTX Deposit"), To: strPtr("HTX: Hot Wallet")},
	{},
	{From: strPtr("Kraken Deposit"), To: strPtr("Kraken: Hot Wallet")},
}

var transferTokenColors = map[string]string{
	"AWE":  "#3B82F6",
	"USDT": "#26A17B",
	"USDC": "#2775CA",
	"ETH":  "#627EEA",
	"TRX":  "#FF0013",
}

// DefaultTokenColor is used for tokens without a configured color
const DefaultTokenColor = "#627EEA"

// FeaturedTokens returns the legacy featured tokens
func FeaturedTokens() []FeaturedToken {
	return append([]FeaturedToken(nil), featuredTokens...)
}

// FeaturedTokenOrDefault finds a featured token by id, case-insensitively,
// and falls back to DefaultFeaturedTokenID for anything else.
func FeaturedTokenOrDefault(id string) FeaturedToken {
	id = strings.ToLower(id)
	var fallback FeaturedToken
	for _, t := range featuredTokens {
		if t.ID == id {
			return t
		}
		if t.ID == DefaultFeaturedTokenID {
			fallback = t
		}
	}
	return fallback
}

// LegacyChains returns the chains used by legacy transfers
func LegacyChains() []Chain {
	return append([]Chain(nil), legacyChains...)
}

// TransferTokenColor returns the display color for a transfer token
func TransferTokenColor(symbol string) string {
	if c, ok := transferTokenColors[symbol]; ok {
		return c
	}
	return DefaultTokenColor
}

// CarouselEntities returns the home page carousel
func CarouselEntities() []CarouselEntity {
	return append([]CarouselEntity(nil), carouselEntities...)
}

// ExchangeFlows returns the home page exchange flow rows
func ExchangeFlows() []ExchangeFlow {
	return append([]ExchangeFlow(nil), exchangeFlows...)
}

// EntityBalanceChanges returns the entity balance changes shown for every token
func EntityBalanceChanges() []EntityBalanceChange {
	return append([]EntityBalanceChange(nil), entityBalanceChanges...)
}

// TopHolders returns the holder table shown for every token
func TopHolders() []TopHolder {
	return append([]TopHolder(nil), topHolders...)
}

// CurrentMarketStats returns the static market header
func CurrentMarketStats() MarketStats {
	return marketStats
}

func strPtr(s string) *string { return &s }
