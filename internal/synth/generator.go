// Package synth produces randomized on-chain analytics records from the fixture
// catalog. Generators never fail and perform no I/O; all randomness comes from
// the injected stream.
package synth

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

const (
	// knownReuseRate is the probability that a generated party is drawn from
	// the known address catalog instead of a fresh random address.
	knownReuseRate = 0.35

	failedTxRate = 0.02

	whaleBalanceUSD  = 1_000_000
	largeTransferUSD = 100_000
	whaleTransferUSD = 1_000_000
)

// Generator builds records from one random stream. It is not safe for
// concurrent use; take one per request.
type Generator struct {
	rnd *rng.Rand
	now time.Time
}

// New returns a generator anchored at now
func New(rnd *rng.Rand, now time.Time) *Generator {
	return &Generator{rnd: rnd, now: now.UTC()}
}

// Now is the reference time the generator subtracts offsets from
func (g *Generator) Now() time.Time {
	return g.now
}

func (g *Generator) network(scope string) string {
	if scope != "" {
		return scope
	}
	return rng.Choice(g.rnd, catalog.NetworkIDs())
}

// party returns an address with its label, reusing a known address at knownReuseRate
func (g *Generator) party() (string, *string) {
	if g.rnd.Chance(knownReuseRate) {
		k := rng.Choice(g.rnd, catalog.KnownAddresses())
		return k.Address, strPtr(k.Label)
	}
	return g.rnd.Address(), nil
}

func (g *Generator) minutesAgo(lo, hi float64) time.Time {
	return g.now.Add(-time.Duration(g.rnd.Uniform(lo, hi) * float64(time.Minute)))
}

func (g *Generator) hoursAgo(lo, hi float64) time.Time {
	return g.now.Add(-time.Duration(g.rnd.Uniform(lo, hi) * float64(time.Hour)))
}

// usdTier draws a dollar amount with a heavy tail so whales show up regularly
func (g *Generator) usdTier() float64 {
	switch rng.Weighted(g.rnd, []int{0, 1, 2}, []float64{0.5, 0.3, 0.2}) {
	case 0:
		return g.rnd.Uniform(1_000, 100_000)
	case 1:
		return g.rnd.Uniform(100_000, 1_000_000)
	default:
		return g.rnd.Uniform(1_000_000, 50_000_000)
	}
}

// amountFor converts a dollar target into a token amount and its exact dollar value
func amountFor(usd, price float64) (amount, value float64) {
	amount = round(usd/price, 4)
	return amount, usdValue(amount, price)
}

// usdValue is amount × price rounded to cents
func usdValue(amount, price float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(price)).
		Round(2).
		InexactFloat64()
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func sumUSD(values []float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(2).InexactFloat64()
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func labelOr(label *string, addr string) string {
	if label != nil {
		return *label
	}
	return shortAddress(addr)
}

func addTag(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func strPtr(s string) *string {
	return &s
}
