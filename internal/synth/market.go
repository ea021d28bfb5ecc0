package synth

import (
	"strings"
	"time"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

// Periods accepted by PriceHistory, with their hourly point counts
var periodPoints = map[string]int{
	"1d":  24,
	"7d":  168,
	"30d": 720,
	"90d": 2160,
}

// DefaultPeriod is used when no period is requested
const DefaultPeriod = "7d"

// maxDrift bounds each price point relative to the base price
const maxDrift = 0.05

// PeriodPoints returns the number of hourly points in period
func PeriodPoints(period string) (int, bool) {
	n, ok := periodPoints[period]
	return n, ok
}

// Periods lists the accepted price history periods, shortest first
func Periods() []string {
	return []string{"1d", "7d", "30d", "90d"}
}

// PriceHistory generates an hourly price series ending at the current hour.
// Unknown symbols use the first catalog token's price; an unknown period
// falls back to DefaultPeriod.
func (g *Generator) PriceHistory(symbol, period string) PriceHistory {
	n, ok := PeriodPoints(period)
	if !ok {
		period = DefaultPeriod
		n = periodPoints[period]
	}
	base := catalog.TokenOrDefault(symbol).BasePrice

	end := g.now.Truncate(time.Hour)
	data := make([]PricePoint, n)
	for i := range data {
		price := base * (1 + g.rnd.Uniform(-maxDrift, maxDrift))
		data[i] = PricePoint{
			Timestamp: end.Add(-time.Duration(n-1-i) * time.Hour),
			Price:     clampRound(price, base),
			Volume:    round(g.rnd.Uniform(1_000_000, 500_000_000), 2),
		}
	}
	return PriceHistory{
		Symbol:    strings.ToUpper(symbol),
		Period:    period,
		BasePrice: base,
		Data:      data,
	}
}

// clampRound rounds price without letting rounding push it past the drift band
func clampRound(price, base float64) float64 {
	p := round(price, 6)
	lo, hi := base*(1-maxDrift), base*(1+maxDrift)
	switch {
	case p < lo:
		return lo
	case p > hi:
		return hi
	}
	return p
}

// DashboardStats generates the headline counters. Values are independent per call.
func (g *Generator) DashboardStats() DashboardStats {
	return DashboardStats{
		TotalVolume24h:       round(g.rnd.Uniform(1_000_000_000, 5_000_000_000), 2),
		TotalTransactions24h: g.rnd.IntRange(1_000_000, 2_000_000),
		ActiveEntities:       g.rnd.IntRange(50_000, 150_000),
		WhaleMovements:       g.rnd.IntRange(50, 300),
		TotalLiquidityUSD:    round(g.rnd.Uniform(10_000_000_000, 50_000_000_000), 2),
		ActiveAlerts:         g.rnd.IntRange(10, 100),
		NetworksTracked:      len(catalog.NetworkIDs()),
	}
}

// FlowGraph samples up to limit known addresses as nodes and links distinct
// pairs of them. A graph with fewer than two nodes has no links.
func (g *Generator) FlowGraph(network string, limit int) FlowGraph {
	known := rng.Sample(g.rnd, catalog.KnownAddresses(), limit)

	graph := FlowGraph{
		Nodes: make([]FlowNode, 0, len(known)),
		Links: []FlowLink{},
	}
	for _, k := range known {
		graph.Nodes = append(graph.Nodes, FlowNode{
			ID:          k.Address,
			Label:       k.Label,
			EntityType:  EntityType(k.Category),
			Network:     g.network(network),
			TotalVolume: round(g.rnd.Uniform(1_000_000, 500_000_000), 2),
		})
	}
	if len(graph.Nodes) < 2 {
		return graph
	}

	want := g.rnd.IntRange(len(graph.Nodes), 2*len(graph.Nodes))
	seen := make(map[[2]int]bool, want)
	for attempt := 0; attempt < want*4 && len(graph.Links) < want; attempt++ {
		i, j := g.rnd.Intn(len(graph.Nodes)), g.rnd.Intn(len(graph.Nodes))
		if i == j || seen[[2]int{i, j}] {
			continue
		}
		seen[[2]int{i, j}] = true
		graph.Links = append(graph.Links, FlowLink{
			Source:  graph.Nodes[i].ID,
			Target:  graph.Nodes[j].ID,
			Value:   round(g.rnd.Uniform(100_000, 50_000_000), 2),
			TxCount: g.rnd.IntRange(1, 500),
		})
	}
	return graph
}
