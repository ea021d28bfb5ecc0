package synth

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

var (
	addrRe = regexp.MustCompile(`^0x[0-9a-f]{40}$`)
	hashRe = regexp.MustCompile(`^0x[0-9a-f]{64}$`)
	now    = time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
)

func newGen(seed int64) *Generator {
	return New(rng.New(rng.Deterministic, seed).Stream(), now)
}

func TestEntityInvariants(t *testing.T) {
	t.Parallel()

	g := newGen(1)
	for i := 0; i < 300; i++ {
		e := g.Entity(EntityOptions{})

		assert.Regexp(t, addrRe, e.Address)
		assert.Contains(t, EntityTypes, e.EntityType)
		assert.Contains(t, Confidences, e.Confidence)
		assert.Contains(t, catalog.NetworkIDs(), e.Network)
		require.NotEmpty(t, e.Balances)

		sum := 0.0
		for _, b := range e.Balances {
			assert.InDelta(t, b.Amount*b.Price, b.USDValue, 0.01)
			assert.GreaterOrEqual(t, b.Amount, 0.0)
			sum += b.USDValue
		}
		assert.InDelta(t, sum, e.TotalBalanceUSD, 0.01)

		if e.TotalBalanceUSD > whaleBalanceUSD {
			assert.Contains(t, e.Tags, "whale")
		} else {
			assert.NotContains(t, e.Tags, "whale")
		}

		_, known := catalog.LookupKnown(e.Address)
		assert.Equal(t, known, e.Confidence == ConfidenceHigh, "high confidence only for catalog addresses")

		for _, v := range []float64{e.Inflow24h, e.Outflow24h, e.Inflow7d, e.Outflow7d} {
			assert.GreaterOrEqual(t, v, 0.0)
		}
		assert.True(t, e.FirstSeen.Before(now.Add(-30*24*time.Hour)))
		assert.True(t, e.FirstSeen.After(now.Add(-1000*24*time.Hour)))
		assert.False(t, e.LastActive.After(now))
		assert.True(t, e.LastActive.After(now.Add(-72*time.Hour)))
		assert.Empty(t, e.TopCounterparties)
	}
}

func TestEntityReusesKnownAddresses(t *testing.T) {
	t.Parallel()

	g := newGen(2)
	known := 0
	for i := 0; i < 500; i++ {
		if _, ok := catalog.LookupKnown(g.Entity(EntityOptions{}).Address); ok {
			known++
		}
	}
	assert.InDelta(t, 500*knownReuseRate, known, 60)
}

func TestEntityDetail(t *testing.T) {
	t.Parallel()

	t.Run("known address is enriched", func(t *testing.T) {
		e := newGen(3).EntityDetail("0x28C6C06298D514DB089934071355E5743BF21D60")
		assert.Equal(t, "0x28C6C06298D514DB089934071355E5743BF21D60", e.Address)
		assert.Equal(t, "Binance 14", e.Label)
		assert.Equal(t, EntityExchange, e.EntityType)
		assert.Equal(t, ConfidenceHigh, e.Confidence)
		assert.Contains(t, e.Tags, "verified")
		assert.GreaterOrEqual(t, len(e.TopCounterparties), 5)
	})

	t.Run("unknown address keeps requested value", func(t *testing.T) {
		e := newGen(4).EntityDetail("0xUNKNOWNADDRESS")
		assert.Equal(t, "0xUNKNOWNADDRESS", e.Address)
		assert.NotEqual(t, ConfidenceHigh, e.Confidence)
		assert.NotContains(t, e.Tags, "verified")

		cps := e.TopCounterparties
		require.NotEmpty(t, cps)
		assert.True(t, slices.IsSortedFunc(cps, func(a, b Counterparty) int {
			switch {
			case a.TotalVolume > b.TotalVolume:
				return -1
			case a.TotalVolume < b.TotalVolume:
				return 1
			}
			return 0
		}))
	})
}

func TestTransactionInvariants(t *testing.T) {
	t.Parallel()

	g := newGen(5)
	failed := 0
	for i := 0; i < 2000; i++ {
		tx := g.Transaction(TransactionOptions{Network: "polygon"})

		assert.Regexp(t, hashRe, tx.Hash)
		assert.Regexp(t, addrRe, tx.FromAddress)
		assert.Regexp(t, addrRe, tx.ToAddress)
		assert.Equal(t, "polygon", tx.Network)
		assert.Contains(t, TxTypes, tx.TxType)
		assert.Contains(t, TxStatuses, tx.Status)
		assert.InDelta(t, tx.TokenAmount*tx.TokenPrice, tx.USDValue, 0.01)
		assert.GreaterOrEqual(t, tx.GasFeeUSD, 0.0)
		assert.Positive(t, tx.BlockNumber)
		assert.False(t, tx.Timestamp.After(now))
		assert.True(t, tx.Timestamp.After(now.Add(-1440*time.Minute)))
		assert.Empty(t, tx.InternalTxs)

		if tx.USDValue > largeTransferUSD {
			assert.Contains(t, tx.Tags, "large_transfer")
		}
		if tx.USDValue > whaleTransferUSD {
			assert.Contains(t, tx.Tags, "whale_movement")
		}
		if tx.Status == TxFailed {
			failed++
		}
	}
	assert.InDelta(t, 2000*failedTxRate, failed, 25)
}

func TestUnknownNetworkIsStoredAsGiven(t *testing.T) {
	t.Parallel()

	g := newGen(6)
	assert.Equal(t, "solana", g.Transaction(TransactionOptions{Network: "solana"}).Network)
	assert.Equal(t, "solana", g.Entity(EntityOptions{Network: "solana"}).Network)
}

func TestTransactionDetail(t *testing.T) {
	t.Parallel()

	const hash = "0xabc"
	tx := newGen(7).TransactionDetail(hash)
	assert.Equal(t, hash, tx.Hash)

	steps := tx.InternalTxs
	require.GreaterOrEqual(t, len(steps), 2)
	assert.Equal(t, tx.FromAddress, steps[0].FromAddress)
	assert.Equal(t, tx.ToAddress, steps[len(steps)-1].ToAddress)
	for i, s := range steps {
		assert.Equal(t, i+1, s.Step)
		assert.GreaterOrEqual(t, s.TokenAmount, 0.0)
		if i > 0 {
			assert.Equal(t, steps[i-1].ToAddress, s.FromAddress)
		}
	}
}

func TestPoolInvariants(t *testing.T) {
	t.Parallel()

	g := newGen(8)
	for i := 0; i < 200; i++ {
		p := g.Pool(PoolOptions{})

		assert.Regexp(t, addrRe, p.Address)
		assert.Equal(t, p.Token0Symbol+"/"+p.Token1Symbol, p.Name)
		assert.NotEqual(t, p.Token0Symbol, p.Token1Symbol)
		assert.Contains(t, Protocols, p.Protocol)

		p0 := catalog.TokenOrDefault(p.Token0Symbol).BasePrice
		p1 := catalog.TokenOrDefault(p.Token1Symbol).BasePrice
		assert.InDelta(t, p.Token0Reserve*p0+p.Token1Reserve*p1, p.TotalLiquidityUSD, 0.03)
		assert.GreaterOrEqual(t, p.Fees24h, 0.0)
		assert.LessOrEqual(t, p.Fees24h, p.Volume24h)
		assert.GreaterOrEqual(t, p.APY, 0.0)
	}
}

func TestPoolDetail(t *testing.T) {
	t.Parallel()

	p := newGen(9).PoolDetail("0xpool")
	assert.Equal(t, "0xpool", p.Address)

	require.NotEmpty(t, p.TopLPHolders)
	total := 0.0
	for i, h := range p.TopLPHolders {
		if i > 0 {
			assert.LessOrEqual(t, h.SharePercentage, p.TopLPHolders[i-1].SharePercentage)
		}
		assert.GreaterOrEqual(t, h.SharePercentage, 0.0)
		total += h.SharePercentage
	}
	assert.LessOrEqual(t, total, 100.0)

	require.NotEmpty(t, p.RecentEvents)
	for i, ev := range p.RecentEvents {
		assert.Contains(t, EventTypes, ev.EventType)
		assert.Regexp(t, hashRe, ev.TxHash)
		assert.True(t, ev.Timestamp.After(now.Add(-72*time.Hour)))
		if i > 0 {
			assert.False(t, ev.Timestamp.After(p.RecentEvents[i-1].Timestamp))
		}
	}
}

func TestGasFeeUsesNativeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		network string
		symbol  string
	}{
		{network: "ethereum", symbol: "ETH"},
		{network: "bsc", symbol: "BNB"},
		{network: "polygon", symbol: "MATIC"},
		{network: "arbitrum", symbol: "ETH"},
		{network: "solana", symbol: "ETH"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.network, func(t *testing.T) {
			t.Parallel()

			price := catalog.TokenOrDefault(tc.symbol).BasePrice
			tx := newGen(21).Transaction(TransactionOptions{Network: tc.network})

			assert.GreaterOrEqual(t, tx.GasPrice, 5.0)
			assert.LessOrEqual(t, tx.GasPrice, 120.0)
			assert.InDelta(t, float64(tx.GasUsed)*tx.GasPrice*1e-9*price, tx.GasFeeUSD, 0.01)
		})
	}
}

func TestAlertInvariants(t *testing.T) {
	t.Parallel()

	severityOf := map[AlertType]Severity{}
	for _, tpl := range alertTemplates {
		severityOf[tpl.kind] = tpl.severity
	}

	g := newGen(10)
	for i := 0; i < 300; i++ {
		a := g.Alert(AlertOptions{})

		assert.Contains(t, AlertTypes, a.AlertType)
		assert.Contains(t, Severities, a.Severity)
		assert.Equal(t, severityOf[a.AlertType], a.Severity)
		assert.Regexp(t, hashRe, a.TransactionHash)
		assert.NotContains(t, a.Description, "%!")
		assert.Contains(t, a.Tags, string(a.AlertType))
		assert.True(t, a.Timestamp.After(now.Add(-72*time.Hour)))

		if a.AlertType == AlertExchangeInflow {
			k, ok := catalog.LookupKnown(a.EntityAddress)
			require.True(t, ok)
			assert.Equal(t, catalog.CategoryExchange, k.Category)
		}
		if a.AlertType == AlertWhaleMovement {
			assert.Greater(t, a.USDValue, float64(whaleTransferUSD))
		}
	}
}

func TestFlowGraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		nodes int
	}{
		{name: "single node has no links", limit: 1, nodes: 1},
		{name: "ten nodes", limit: 10, nodes: 10},
		{name: "capped by catalog", limit: 50, nodes: len(catalog.KnownAddresses())},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGen(11).FlowGraph("base", tc.limit)
			require.Len(t, g.Nodes, tc.nodes)

			ids := map[string]bool{}
			for _, n := range g.Nodes {
				_, ok := catalog.LookupKnown(n.ID)
				assert.True(t, ok)
				assert.Equal(t, "base", n.Network)
				ids[n.ID] = true
			}
			if tc.nodes < 2 {
				assert.Empty(t, g.Links)
				return
			}
			assert.NotEmpty(t, g.Links)

			pairs := map[[2]string]bool{}
			for _, l := range g.Links {
				assert.NotEqual(t, l.Source, l.Target)
				assert.True(t, ids[l.Source])
				assert.True(t, ids[l.Target])
				assert.False(t, pairs[[2]string{l.Source, l.Target}], "duplicate link")
				pairs[[2]string{l.Source, l.Target}] = true
			}
		})
	}
}

func TestPriceHistory(t *testing.T) {
	t.Parallel()

	for _, period := range Periods() {
		t.Run(period, func(t *testing.T) {
			want, ok := PeriodPoints(period)
			require.True(t, ok)

			h := newGen(12).PriceHistory("eth", period)
			assert.Equal(t, "ETH", h.Symbol)
			require.Len(t, h.Data, want)

			for i, p := range h.Data {
				assert.InDelta(t, 3245.67, p.Price, 3245.67*maxDrift+1e-6)
				assert.GreaterOrEqual(t, p.Volume, 0.0)
				if i > 0 {
					assert.Equal(t, time.Hour, p.Timestamp.Sub(h.Data[i-1].Timestamp))
				}
			}
			assert.Equal(t, now.Truncate(time.Hour), h.Data[len(h.Data)-1].Timestamp)
		})
	}

	h := newGen(13).PriceHistory("DOGE", "1y")
	assert.Equal(t, DefaultPeriod, h.Period)
	assert.Equal(t, catalog.TokenOrDefault("").BasePrice, h.BasePrice)
}

func TestDeterministicOutput(t *testing.T) {
	t.Parallel()

	a, b := newGen(99), newGen(99)
	assert.Equal(t, a.Entity(EntityOptions{}), b.Entity(EntityOptions{}))
	assert.Equal(t, a.TransactionDetail("0x1"), b.TransactionDetail("0x1"))
	assert.Equal(t, a.PoolDetail("0x2"), b.PoolDetail("0x2"))
	assert.Equal(t, a.DashboardStats(), b.DashboardStats())
}

func TestLegacyGenerators(t *testing.T) {
	t.Parallel()

	g := newGen(14)

	for _, tr := range g.Transfers(30) {
		assert.Len(t, tr.FromAddress, truncatedAddressLen+3)
		assert.Contains(t, catalog.TransferTokens, tr.Token)
		assert.Equal(t, catalog.TransferTokenColor(tr.Token), tr.TokenColor)
		assert.Equal(t, tr.FromLabel == nil, tr.ToLabel == nil)
		assert.Regexp(t, `^\$\d+$`, tr.USD)
	}

	prices := g.TokenPriceHistory(2)
	require.Len(t, prices, 7)
	assert.Equal(t, "2020", prices[0].Date)
	for _, p := range prices {
		assert.GreaterOrEqual(t, p.Price, 1.0)
		assert.LessOrEqual(t, p.Price, 5.0)
	}

	oi := g.OpenInterest()
	require.Len(t, oi, 12)
	assert.Equal(t, "33", oi[11].Date)

	vol := g.CEXVolume()
	require.Len(t, vol, 20)
	assert.Equal(t, "19:00", vol[19].Time)
	for _, v := range vol {
		assert.GreaterOrEqual(t, v.Binance, 30.0)
		assert.LessOrEqual(t, v.Bybit, 150.0)
	}
}
