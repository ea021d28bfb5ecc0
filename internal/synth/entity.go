package synth

import (
	"sort"
	"time"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

var (
	freshEntityTypes   = []EntityType{EntityWallet, EntityExchange, EntityContract, EntityPool, EntityProtocol}
	freshEntityWeights = []float64{0.5, 0.15, 0.15, 0.1, 0.1}

	syntheticLabels = map[EntityType][]string{
		EntityWallet:   {"Whale", "Smart Money", "Fund", "Market Maker", "Trader"},
		EntityExchange: {"Exchange Deposit", "Exchange Hot Wallet"},
		EntityContract: {"Contract", "Proxy"},
		EntityPool:     {"LP Pool"},
		EntityProtocol: {"Protocol Vault", "Treasury"},
	}

	typeTags = map[EntityType]string{
		EntityExchange: "exchange",
		EntityContract: "smart_contract",
		EntityPool:     "liquidity_pool",
		EntityProtocol: "defi",
	}
)

// EntityOptions scope Entity. Empty fields are drawn at random.
type EntityOptions struct {
	Network string
	Address string
}

// Entity generates one entity profile. A pinned or reused catalog address
// carries its real label and high confidence.
func (g *Generator) Entity(opts EntityOptions) Entity {
	var (
		addr  = opts.Address
		known catalog.KnownAddress
		isKey bool
	)
	switch {
	case addr != "":
		known, isKey = catalog.LookupKnown(addr)
	case g.rnd.Chance(knownReuseRate):
		known, isKey = rng.Choice(g.rnd, catalog.KnownAddresses()), true
		addr = known.Address
	default:
		addr = g.rnd.Address()
	}

	e := Entity{
		ID:      g.rnd.UUID(),
		Address: addr,
		Network: g.network(opts.Network),
	}
	if isKey {
		e.Label = known.Label
		e.EntityType = EntityType(known.Category)
		e.Confidence = ConfidenceHigh
	} else {
		e.EntityType = rng.Weighted(g.rnd, freshEntityTypes, freshEntityWeights)
		e.Confidence = rng.Weighted(g.rnd, []Confidence{ConfidenceMedium, ConfidenceLow}, []float64{0.6, 0.4})
		e.Label = rng.Choice(g.rnd, syntheticLabels[e.EntityType]) + " " + shortAddress(addr)
	}

	e.Balances = g.balances()
	values := make([]float64, len(e.Balances))
	for i, b := range e.Balances {
		values[i] = b.USDValue
	}
	e.TotalBalanceUSD = sumUSD(values)

	e.Inflow24h = round(e.TotalBalanceUSD*g.rnd.Uniform(0, 0.15), 2)
	e.Outflow24h = round(e.TotalBalanceUSD*g.rnd.Uniform(0, 0.15), 2)
	e.Inflow7d = round(e.Inflow24h*g.rnd.Uniform(3, 7), 2)
	e.Outflow7d = round(e.Outflow24h*g.rnd.Uniform(3, 7), 2)

	if e.EntityType == EntityExchange {
		e.TxCount = g.rnd.IntRange(100_000, 5_000_000)
	} else {
		e.TxCount = g.rnd.IntRange(10, 50_000)
	}

	days := g.rnd.Uniform(30, 1000)
	e.FirstSeen = g.now.Add(-time.Duration(days * 24 * float64(time.Hour)))
	e.LastActive = g.hoursAgo(0, 72)

	e.Tags = entityTags(e, isKey)
	if isKey {
		e.RiskScore = g.rnd.IntRange(0, 20)
	} else {
		e.RiskScore = g.rnd.IntRange(0, 100)
	}
	return e
}

func (g *Generator) balances() []Balance {
	tokens := rng.Sample(g.rnd, catalog.Tokens(), g.rnd.IntRange(1, 5))
	out := make([]Balance, 0, len(tokens))
	for _, t := range tokens {
		amount, value := amountFor(g.usdTier(), t.BasePrice)
		out = append(out, Balance{
			Symbol:    t.Symbol,
			Amount:    amount,
			Price:     t.BasePrice,
			USDValue:  value,
			Change24h: round(g.rnd.Uniform(-12, 12), 2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].USDValue > out[j].USDValue })
	return out
}

func entityTags(e Entity, verified bool) []string {
	tags := []string{}
	if e.TotalBalanceUSD > whaleBalanceUSD {
		tags = append(tags, "whale")
	}
	if t, ok := typeTags[e.EntityType]; ok {
		tags = append(tags, t)
	}
	if verified {
		tags = append(tags, "verified")
	}
	switch {
	case e.Inflow24h > 1.5*e.Outflow24h && e.Inflow24h > largeTransferUSD:
		tags = append(tags, "accumulating")
	case e.Outflow24h > 1.5*e.Inflow24h && e.Outflow24h > largeTransferUSD:
		tags = append(tags, "distributing")
	}
	return tags
}

// Counterparties generates n addresses ranked by volume exchanged with an entity
func (g *Generator) Counterparties(n int) []Counterparty {
	out := make([]Counterparty, 0, n)
	for i := 0; i < n; i++ {
		addr, label := g.party()
		kind := rng.Weighted(g.rnd, freshEntityTypes, freshEntityWeights)
		if k, ok := catalog.LookupKnown(addr); ok {
			kind = EntityType(k.Category)
		}
		out = append(out, Counterparty{
			Address:     addr,
			Label:       label,
			EntityType:  kind,
			TotalVolume: round(g.usdTier()*g.rnd.Uniform(1, 10), 2),
			TxCount:     g.rnd.IntRange(1, 2_000),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalVolume > out[j].TotalVolume })
	return out
}

// EntityDetail generates the detail view of address with its top counterparties
func (g *Generator) EntityDetail(address string) Entity {
	e := g.Entity(EntityOptions{Address: address})
	e.TopCounterparties = g.Counterparties(g.rnd.IntRange(5, 10))
	return e
}
