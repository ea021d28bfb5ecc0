package catalog

import "strings"

// Category classifies a known address
type Category string

const (
	CategoryExchange Category = "exchange"
	CategoryWallet   Category = "wallet"
	CategoryContract Category = "contract"
	CategoryPool     Category = "pool"
	CategoryProtocol Category = "protocol"
)

// Network describes a supported chain
type Network struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Icon   string `json:"icon"`
}

// Token is a catalog token with its reference price in USD
type Token struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
}

// KnownAddress is a real-world labeled address
type KnownAddress struct {
	Address  string   `json:"address"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
}

var networks = []Network{
	{ID: "ethereum", Name: "Ethereum", Symbol: "ETH", Color: "#627EEA", Icon: "⟠"},
	{ID: "bsc", Name: "BNB Chain", Symbol: "BNB", Color: "#F3BA2F", Icon: "◈"},
	{ID: "polygon", Name: "Polygon", Symbol: "MATIC", Color: "#8247E5", Icon: "⬡"},
	{ID: "arbitrum", Name: "Arbitrum", Symbol: "ETH", Color: "#28A0F0", Icon: "◭"},
	{ID: "base", Name: "Base", Symbol: "ETH", Color: "#0052FF", Icon: "◯"},
}

// The first entry is the fallback for unknown symbols.
var tokens = []Token{
	{Symbol: "ETH", Name: "Ethereum", BasePrice: 3245.67},
	{Symbol: "BTC", Name: "Wrapped Bitcoin", BasePrice: 67432.18},
	{Symbol: "USDT", Name: "Tether USD", BasePrice: 1.00},
	{Symbol: "USDC", Name: "USD Coin", BasePrice: 1.00},
	{Symbol: "BNB", Name: "BNB", BasePrice: 598.42},
	{Symbol: "MATIC", Name: "Polygon", BasePrice: 0.72},
	{Symbol: "ARB", Name: "Arbitrum", BasePrice: 1.12},
	{Symbol: "LINK", Name: "Chainlink", BasePrice: 14.56},
	{Symbol: "UNI", Name: "Uniswap", BasePrice: 7.89},
	{Symbol: "AAVE", Name: "Aave", BasePrice: 92.34},
	{Symbol: "DAI", Name: "Dai Stablecoin", BasePrice: 1.00},
}

var knownAddresses = []KnownAddress{
	{Address: "0x28c6c06298d514db089934071355e5743bf21d60", Label: "Binance 14", Category: CategoryExchange},
	{Address: "0xf977814e90da44bfa03b6295a0616a897441acec", Label: "Binance: Cold Wallet", Category: CategoryExchange},
	{Address: "0x21a31ee1afc51d94c2efccaa2092ad1028285549", Label: "Binance: Hot Wallet", Category: CategoryExchange},
	{Address: "0x71660c4005ba85c37ccec55d0c4493e66fe775d3", Label: "Coinbase 1", Category: CategoryExchange},
	{Address: "0xa9d1e08c7793af67e9d92fe308d5697fb81d3e43", Label: "Coinbase 10", Category: CategoryExchange},
	{Address: "0x2910543af39aba0cd09dbb2d50200b3e800a63d2", Label: "Kraken", Category: CategoryExchange},
	{Address: "0x6cc5f688a315f3dc28a7781717a9a798a59fda7b", Label: "OKX", Category: CategoryExchange},
	{Address: "0x1151314c646ce4e0efd76d1af4760ae66a9fe30f", Label: "Bitfinex: Hot Wallet", Category: CategoryExchange},
	{Address: "0xe592427a0aece92de3edee1f18e0157c05861564", Label: "Uniswap V3: Router", Category: CategoryContract},
	{Address: "0x7a250d5630b4cf539739df2c5dacb4c659f2488d", Label: "Uniswap V2: Router", Category: CategoryContract},
	{Address: "0x1111111254eeb25477b68fb85ed929f73a960582", Label: "1inch: Aggregation Router", Category: CategoryContract},
	{Address: "0x88e6a0c2ddd26feeb64f039a2c41296fcb3f5640", Label: "Uniswap V3: USDC/ETH", Category: CategoryPool},
	{Address: "0xb4e16d0168e52d35cacd2c6185b44281ec28c9dc", Label: "Uniswap V2: USDC/ETH", Category: CategoryPool},
	{Address: "0xbebc44782c7db0a1a60cb6fe97d0b483032ff1c7", Label: "Curve: 3pool", Category: CategoryPool},
	{Address: "0x87870bca3f3fd6335c3f4ce8392d69350b4fa4e2", Label: "Aave V3: Pool", Category: CategoryProtocol},
	{Address: "0xae7ab96520de3a18e5e111b5eaab095312d7fe84", Label: "Lido: stETH", Category: CategoryProtocol},
	{Address: "0x0000006daea1723962647b7e189d311d757fb793", Label: "Wintermute", Category: CategoryWallet},
	{Address: "0xf584f8728b874a6a5c7a8d4d387c9aae9172d621", Label: "Jump Trading", Category: CategoryWallet},
	{Address: "0xd8da6bf26964af9d7eed9e03e53415d37aa96045", Label: "Vitalik Buterin", Category: CategoryWallet},
	{Address: "0x5754284f345afc66a98fbb0a0afe71e0f007b949", Label: "Tether: Treasury", Category: CategoryWallet},
}

var (
	networkByID    = make(map[string]Network, len(networks))
	tokenBySymbol  = make(map[string]Token, len(tokens))
	knownByAddress = make(map[string]KnownAddress, len(knownAddresses))
)

func init() {
	for _, n := range networks {
		networkByID[n.ID] = n
	}
	for _, t := range tokens {
		tokenBySymbol[t.Symbol] = t
	}
	for _, k := range knownAddresses {
		knownByAddress[k.Address] = k
	}
}

// Networks returns a copy of the network catalog
func Networks() []Network {
	return append([]Network(nil), networks...)
}

// NetworkIDs returns the catalog network ids in catalog order
func NetworkIDs() []string {
	ids := make([]string, len(networks))
	for i, n := range networks {
		ids[i] = n.ID
	}
	return ids
}

// LookupNetwork finds a network by id
func LookupNetwork(id string) (Network, bool) {
	n, ok := networkByID[strings.ToLower(id)]
	return n, ok
}

// Tokens returns a copy of the token catalog
func Tokens() []Token {
	return append([]Token(nil), tokens...)
}

// LookupToken finds a token by symbol, case-insensitively
func LookupToken(symbol string) (Token, bool) {
	t, ok := tokenBySymbol[strings.ToUpper(symbol)]
	return t, ok
}

// TokenOrDefault returns the token for symbol or the first catalog entry
func TokenOrDefault(symbol string) Token {
	if t, ok := LookupToken(symbol); ok {
		return t
	}
	return tokens[0]
}

// KnownAddresses returns a copy of the known address catalog
func KnownAddresses() []KnownAddress {
	return append([]KnownAddress(nil), knownAddresses...)
}

// LookupKnown finds a known address, case-insensitively
func LookupKnown(address string) (KnownAddress, bool) {
	k, ok := knownByAddress[strings.ToLower(address)]
	return k, ok
}

// SearchKnown returns catalog entries whose label or address contains q, ignoring case
func SearchKnown(q string) []KnownAddress {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []KnownAddress
	for _, k := range knownAddresses {
		if strings.Contains(strings.ToLower(k.Label), q) || strings.Contains(k.Address, q) {
			out = append(out, k)
		}
	}
	return out
}

// KnownByCategory returns the known addresses in one category
func KnownByCategory(c Category) []KnownAddress {
	var out []KnownAddress
	for _, k := range knownAddresses {
		if k.Category == c {
			out = append(out, k)
		}
	}
	return out
}
