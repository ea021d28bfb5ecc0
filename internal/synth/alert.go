package synth

import (
	"fmt"
	"sort"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

// alertTemplate is one fixed (type, title, description, severity) tuple.
// description takes the entity name, token amount, token symbol and dollar value.
type alertTemplate struct {
	kind        AlertType
	title       string
	description string
	severity    Severity
}

var alertTemplates = []alertTemplate{
	{
		kind:        AlertWhaleMovement,
		title:       "Whale Movement Detected",
		description: "%[1]s moved %[2]s %[3]s (%[4]s) in a single transaction",
		severity:    SeverityCritical,
	},
	{
		kind:        AlertLiquidityRisk,
		title:       "Liquidity Pool Imbalance",
		description: "%[1]s withdrew %[4]s of %[3]s liquidity, leaving the pool imbalanced",
		severity:    SeverityImportant,
	},
	{
		kind:        AlertExchangeInflow,
		title:       "Large Exchange Inflow",
		description: "%[2]s %[3]s (%[4]s) deposited to %[1]s",
		severity:    SeverityNormal,
	},
	{
		kind:        AlertSuspiciousActivity,
		title:       "Suspicious Activity",
		description: "%[1]s interacted with a flagged contract, moving %[4]s",
		severity:    SeverityCritical,
	},
}

// AlertOptions scope Alert. Empty fields are drawn at random.
type AlertOptions struct {
	Network string
}

// Alert generates one alert from a fixed template
func (g *Generator) Alert(opts AlertOptions) Alert {
	tpl := rng.Choice(g.rnd, alertTemplates)

	var (
		addr  string
		label *string
	)
	if tpl.kind == AlertExchangeInflow {
		k := rng.Choice(g.rnd, catalog.KnownByCategory(catalog.CategoryExchange))
		addr, label = k.Address, strPtr(k.Label)
	} else {
		addr, label = g.party()
	}

	usd := g.rnd.Uniform(100_000, 10_000_000)
	if tpl.kind == AlertWhaleMovement {
		usd = g.rnd.Uniform(1_000_000, 50_000_000)
	}
	token := rng.Choice(g.rnd, catalog.Tokens())
	amount, value := amountFor(usd, token.BasePrice)

	tags := []string{string(tpl.kind)}
	if value > largeTransferUSD {
		tags = addTag(tags, "large_transfer")
	}
	if value > whaleTransferUSD {
		tags = addTag(tags, "whale_movement")
	}

	return Alert{
		ID:        g.rnd.UUID(),
		Timestamp: g.hoursAgo(0, 72),
		AlertType: tpl.kind,
		Severity:  tpl.severity,
		Title:     tpl.title,
		Description: fmt.Sprintf(tpl.description,
			labelOr(label, addr), formatAmount(amount), token.Symbol, formatUSD(value)),
		EntityAddress:   addr,
		EntityLabel:     label,
		TransactionHash: g.rnd.TxHash(),
		Network:         g.network(opts.Network),
		USDValue:        value,
		Tags:            tags,
	}
}

// SortAlerts orders newest first
func SortAlerts(as []Alert) {
	sort.SliceStable(as, func(i, j int) bool { return as[i].Timestamp.After(as[j].Timestamp) })
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatUSD(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.2fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}
