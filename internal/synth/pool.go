package synth

import (
	"math"
	"sort"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

var (
	eventWeights = []float64{0.25, 0.2, 0.55}
	v3FeeTiers   = []float64{0.0005, 0.003, 0.01}
)

// PoolOptions scope Pool. Empty fields are drawn at random.
type PoolOptions struct {
	Network string
	Address string
}

// Pool generates one two-token liquidity pool
func (g *Generator) Pool(opts PoolOptions) Pool {
	addr := opts.Address
	if addr == "" {
		addr = g.rnd.Address()
	}
	pair := rng.Sample(g.rnd, catalog.Tokens(), 2)
	protocol := rng.Choice(g.rnd, Protocols)

	r0, v0 := amountFor(g.rnd.Uniform(50_000, 50_000_000), pair[0].BasePrice)
	r1, v1 := amountFor(g.rnd.Uniform(50_000, 50_000_000), pair[1].BasePrice)
	total := sumUSD([]float64{v0, v1})
	volume := round(total*g.rnd.Uniform(0.02, 0.6), 2)
	fees := round(volume*g.feeTier(protocol), 2)

	apy := 0.0
	if total > 0 {
		apy = round(fees*365/total*100, 2)
	}

	return Pool{
		ID:                 g.rnd.UUID(),
		Address:            addr,
		Name:               pair[0].Symbol + "/" + pair[1].Symbol,
		Protocol:           protocol,
		Network:            g.network(opts.Network),
		Token0Symbol:       pair[0].Symbol,
		Token0Reserve:      r0,
		Token1Symbol:       pair[1].Symbol,
		Token1Reserve:      r1,
		TotalLiquidityUSD:  total,
		Volume24h:          volume,
		Fees24h:            fees,
		APY:                apy,
		LiquidityChange24h: round(g.rnd.Uniform(-15, 15), 2),
		LiquidityChange7d:  round(g.rnd.Uniform(-30, 30), 2),
	}
}

func (g *Generator) feeTier(protocol string) float64 {
	switch protocol {
	case "Uniswap V3":
		return rng.Choice(g.rnd, v3FeeTiers)
	case "Curve":
		return 0.0004
	case "Balancer":
		return 0.002
	case "PancakeSwap":
		return 0.0025
	default:
		return 0.003
	}
}

// LPHolders generates the top liquidity providers of p, largest share first.
// Shares sum to at most 100.
func (g *Generator) LPHolders(p Pool) []LPHolder {
	n := g.rnd.IntRange(5, 10)
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = math.Pow(g.rnd.Uniform(1, 10), 2)
		sum += weights[i]
	}
	covered := g.rnd.Uniform(40, 95)

	out := make([]LPHolder, 0, n)
	for _, w := range weights {
		share := math.Floor(w/sum*covered*100) / 100
		addr, label := g.party()
		out = append(out, LPHolder{
			Address:         addr,
			Label:           label,
			SharePercentage: share,
			LiquidityUSD:    round(share/100*p.TotalLiquidityUSD, 2),
		})
	}
	SortLPHolders(out)
	return out
}

// SortLPHolders orders by share_percentage descending
func SortLPHolders(hs []LPHolder) {
	sort.SliceStable(hs, func(i, j int) bool { return hs[i].SharePercentage > hs[j].SharePercentage })
}

// PoolEvents generates recent activity on p, newest first
func (g *Generator) PoolEvents(p Pool) []PoolEvent {
	n := g.rnd.IntRange(10, 20)
	out := make([]PoolEvent, 0, n)
	for i := 0; i < n; i++ {
		addr, label := g.party()
		out = append(out, PoolEvent{
			ID:        g.rnd.UUID(),
			EventType: rng.Weighted(g.rnd, EventTypes, eventWeights),
			Address:   addr,
			Label:     label,
			AmountUSD: round(p.TotalLiquidityUSD*g.rnd.Uniform(0.0001, 0.05), 2),
			TxHash:    g.rnd.TxHash(),
			Timestamp: g.hoursAgo(0, 72),
		})
	}
	SortPoolEvents(out)
	return out
}

// SortPoolEvents orders newest first
func SortPoolEvents(es []PoolEvent) {
	sort.SliceStable(es, func(i, j int) bool { return es[i].Timestamp.After(es[j].Timestamp) })
}

// PoolDetail generates the detail view of address with holders and events
func (g *Generator) PoolDetail(address string) Pool {
	p := g.Pool(PoolOptions{Address: address})
	p.TopLPHolders = g.LPHolders(p)
	p.RecentEvents = g.PoolEvents(p)
	return p
}

// SortPools orders by total_liquidity_usd descending
func SortPools(ps []Pool) {
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].TotalLiquidityUSD > ps[j].TotalLiquidityUSD })
}
