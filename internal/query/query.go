// Package query turns a requested count and optional filters into record
// collections. Every collection is generated first, then filtered, then
// sorted, so a filtered result may hold fewer items than requested.
package query

import (
	"strings"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/metrics"
	"github.com/liamashdown/flowintel/internal/synth"
)

// Kinds reported to metrics
const (
	KindEntities     = "entities"
	KindTransactions = "transactions"
	KindPools        = "pools"
	KindAlerts       = "alerts"
	KindSearch       = "search"
)

// EntityQuery filters an entity batch. Zero values disable a filter.
type EntityQuery struct {
	Network    string
	EntityType string
	Search     string
	Limit      int
}

// Match reports whether e satisfies every set filter
func (q EntityQuery) Match(e synth.Entity) bool {
	if q.Network != "" && e.Network != q.Network {
		return false
	}
	if q.EntityType != "" && string(e.EntityType) != q.EntityType {
		return false
	}
	if q.Search != "" && !containsFold(e.Address, q.Search) && !containsFold(e.Label, q.Search) {
		return false
	}
	return true
}

// TransactionQuery filters a transaction batch. Nil bounds are open.
type TransactionQuery struct {
	Network  string
	TxType   string
	MinValue *float64
	MaxValue *float64
	Address  string
	Limit    int
}

// Match reports whether tx satisfies every set filter
func (q TransactionQuery) Match(tx synth.Transaction) bool {
	if q.Network != "" && tx.Network != q.Network {
		return false
	}
	if q.TxType != "" && string(tx.TxType) != q.TxType {
		return false
	}
	if q.MinValue != nil && tx.USDValue < *q.MinValue {
		return false
	}
	if q.MaxValue != nil && tx.USDValue > *q.MaxValue {
		return false
	}
	if q.Address != "" && !containsFold(tx.FromAddress, q.Address) && !containsFold(tx.ToAddress, q.Address) {
		return false
	}
	return true
}

// PoolQuery filters a pool batch
type PoolQuery struct {
	Network      string
	Protocol     string
	MinLiquidity *float64
	Limit        int
}

// Match reports whether p satisfies every set filter
func (q PoolQuery) Match(p synth.Pool) bool {
	if q.Network != "" && p.Network != q.Network {
		return false
	}
	if q.Protocol != "" && !strings.EqualFold(p.Protocol, q.Protocol) {
		return false
	}
	if q.MinLiquidity != nil && p.TotalLiquidityUSD < *q.MinLiquidity {
		return false
	}
	return true
}

// AlertQuery filters an alert batch
type AlertQuery struct {
	Network   string
	AlertType string
	Severity  string
	Limit     int
}

// Match reports whether a satisfies every set filter
func (q AlertQuery) Match(a synth.Alert) bool {
	if q.Network != "" && a.Network != q.Network {
		return false
	}
	if q.AlertType != "" && string(a.AlertType) != q.AlertType {
		return false
	}
	if q.Severity != "" && string(a.Severity) != q.Severity {
		return false
	}
	return true
}

// Entities generates q.Limit entities and keeps the matching ones
func Entities(g *synth.Generator, q EntityQuery) []synth.Entity {
	batch := generate(q.Limit, func() synth.Entity {
		return g.Entity(synth.EntityOptions{Network: q.Network})
	})
	out := Filter(batch, q.Match)
	metrics.RecordQuery(KindEntities, len(batch), len(out))
	return out
}

// Transactions generates q.Limit transactions, keeps the matching ones and
// orders them newest first
func Transactions(g *synth.Generator, q TransactionQuery) []synth.Transaction {
	batch := generate(q.Limit, func() synth.Transaction {
		return g.Transaction(synth.TransactionOptions{Network: q.Network})
	})
	out := Filter(batch, q.Match)
	synth.SortTransactions(out)
	metrics.RecordQuery(KindTransactions, len(batch), len(out))
	return out
}

// Pools generates q.Limit pools, keeps the matching ones and orders them by
// liquidity, largest first
func Pools(g *synth.Generator, q PoolQuery) []synth.Pool {
	batch := generate(q.Limit, func() synth.Pool {
		return g.Pool(synth.PoolOptions{Network: q.Network})
	})
	out := Filter(batch, q.Match)
	synth.SortPools(out)
	metrics.RecordQuery(KindPools, len(batch), len(out))
	return out
}

// Alerts generates q.Limit alerts, keeps the matching ones and orders them
// newest first
func Alerts(g *synth.Generator, q AlertQuery) []synth.Alert {
	batch := generate(q.Limit, func() synth.Alert {
		return g.Alert(synth.AlertOptions{Network: q.Network})
	})
	out := Filter(batch, q.Match)
	synth.SortAlerts(out)
	metrics.RecordQuery(KindAlerts, len(batch), len(out))
	return out
}

// Search returns up to limit entities for catalog addresses matching q, then
// pads the result with fresh entities until it holds exactly limit.
func Search(g *synth.Generator, q string, limit int) []synth.Entity {
	hits := catalog.SearchKnown(q)
	if len(hits) > limit {
		hits = hits[:limit]
	}

	out := make([]synth.Entity, 0, limit)
	for _, k := range hits {
		out = append(out, g.Entity(synth.EntityOptions{Address: k.Address}))
	}
	for len(out) < limit {
		out = append(out, g.Entity(synth.EntityOptions{}))
	}
	metrics.RecordQuery(KindSearch, limit, len(out))
	return out
}

// SearchTransactions generates limit transactions and keeps those whose hash,
// address or label contains q, newest first
func SearchTransactions(g *synth.Generator, q string, limit int) []synth.Transaction {
	batch := generate(limit, func() synth.Transaction {
		return g.Transaction(synth.TransactionOptions{})
	})
	out := Filter(batch, func(tx synth.Transaction) bool {
		return containsFold(tx.Hash, q) ||
			containsFold(tx.FromAddress, q) || containsFold(tx.ToAddress, q) ||
			labelContains(tx.FromLabel, q) || labelContains(tx.ToLabel, q)
	})
	synth.SortTransactions(out)
	metrics.RecordQuery(KindSearch, len(batch), len(out))
	return out
}

// SearchPools generates limit pools and keeps those whose name or address
// contains q, largest first
func SearchPools(g *synth.Generator, q string, limit int) []synth.Pool {
	batch := generate(limit, func() synth.Pool {
		return g.Pool(synth.PoolOptions{})
	})
	out := Filter(batch, func(p synth.Pool) bool {
		return containsFold(p.Name, q) || containsFold(p.Address, q)
	})
	synth.SortPools(out)
	metrics.RecordQuery(KindSearch, len(batch), len(out))
	return out
}

// Filter returns the items keep accepts, preserving order
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func generate[T any](n int, next func() T) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = next()
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func labelContains(label *string, substr string) bool {
	return label != nil && containsFold(*label, substr)
}
