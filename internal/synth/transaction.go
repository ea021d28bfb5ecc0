package synth

import (
	"sort"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

var (
	txTypeWeights = []float64{0.45, 0.3, 0.08, 0.07, 0.1}

	// block height ranges per network; unknown networks use ethereum's
	blockRanges = map[string][2]int64{
		"ethereum": {19_000_000, 19_500_000},
		"bsc":      {37_000_000, 38_000_000},
		"polygon":  {55_000_000, 56_000_000},
		"arbitrum": {190_000_000, 200_000_000},
		"base":     {12_000_000, 13_000_000},
	}

	traceActions = map[TxType][]string{
		TxSwap:                {"approve", "transferFrom", "swap", "transfer"},
		TxTransfer:            {"call", "transfer"},
		TxMint:                {"call", "mint", "transfer"},
		TxBurn:                {"call", "burn"},
		TxContractInteraction: {"call", "delegatecall", "staticcall", "transfer"},
	}
)

// TransactionOptions scope Transaction. Empty fields are drawn at random.
type TransactionOptions struct {
	Network string
	Hash    string
}

// Transaction generates one transaction
func (g *Generator) Transaction(opts TransactionOptions) Transaction {
	network := g.network(opts.Network)
	hash := opts.Hash
	if hash == "" {
		hash = g.rnd.TxHash()
	}

	token := rng.Choice(g.rnd, catalog.Tokens())
	amount, value := amountFor(g.usdTier(), token.BasePrice)
	from, fromLabel := g.party()
	to, toLabel := g.party()

	gasUsed := int64(g.rnd.IntRange(21_000, 450_000))
	gwei := round(g.rnd.Uniform(5, 120), 2)
	native := nativePrice(network)

	tx := Transaction{
		ID:          g.rnd.UUID(),
		Hash:        hash,
		BlockNumber: g.blockNumber(network),
		Timestamp:   g.minutesAgo(0, 1440),
		Network:     network,
		TxType:      rng.Weighted(g.rnd, TxTypes, txTypeWeights),
		FromAddress: from,
		FromLabel:   fromLabel,
		ToAddress:   to,
		ToLabel:     toLabel,
		TokenSymbol: token.Symbol,
		TokenAmount: amount,
		TokenPrice:  token.BasePrice,
		USDValue:    value,
		GasUsed:     gasUsed,
		GasPrice:    gwei,
		GasFeeUSD:   round(float64(gasUsed)*gwei*1e-9*native, 2),
		Status:      TxSuccess,
	}
	if g.rnd.Chance(failedTxRate) {
		tx.Status = TxFailed
	}
	tx.Tags = transactionTags(tx)
	return tx
}

func (g *Generator) blockNumber(network string) int64 {
	r, ok := blockRanges[network]
	if !ok {
		r = blockRanges["ethereum"]
	}
	return r[0] + g.rnd.Int63n(r[1]-r[0])
}

// nativePrice is the USD price of the token gas is paid in on network.
// Unknown networks pay in ETH.
func nativePrice(network string) float64 {
	symbol := "ETH"
	if n, ok := catalog.LookupNetwork(network); ok {
		symbol = n.Symbol
	}
	return catalog.TokenOrDefault(symbol).BasePrice
}

func transactionTags(tx Transaction) []string {
	tags := []string{}
	if tx.USDValue > largeTransferUSD {
		tags = append(tags, "large_transfer")
	}
	if tx.USDValue > whaleTransferUSD {
		tags = append(tags, "whale_movement")
	}
	if tx.TxType == TxSwap {
		tags = append(tags, "dex_trade")
	}
	if k, ok := catalog.LookupKnown(tx.ToAddress); ok && k.Category == catalog.CategoryExchange {
		tags = append(tags, "exchange_inflow")
	}
	if k, ok := catalog.LookupKnown(tx.FromAddress); ok && k.Category == catalog.CategoryExchange {
		tags = append(tags, "exchange_outflow")
	}
	if tx.Status == TxFailed {
		tags = append(tags, "failed")
	}
	return tags
}

// InternalTxs generates the call trace of tx. The first step leaves the
// sender and the last step reaches the recipient.
func (g *Generator) InternalTxs(tx Transaction) []InternalTx {
	actions := traceActions[tx.TxType]
	if len(actions) == 0 {
		actions = traceActions[TxTransfer]
	}
	n := g.rnd.IntRange(2, 5)

	hops := make([]struct {
		addr  string
		label *string
	}, n+1)
	hops[0].addr, hops[0].label = tx.FromAddress, tx.FromLabel
	hops[n].addr, hops[n].label = tx.ToAddress, tx.ToLabel
	for i := 1; i < n; i++ {
		hops[i].addr, hops[i].label = g.party()
	}

	symbols := []string{tx.TokenSymbol}
	if tx.TxType == TxSwap {
		symbols = append(symbols, rng.Choice(g.rnd, catalog.Tokens()).Symbol)
	}

	out := make([]InternalTx, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, InternalTx{
			Step:        i + 1,
			Action:      actions[i%len(actions)],
			FromAddress: hops[i].addr,
			FromLabel:   hops[i].label,
			ToAddress:   hops[i+1].addr,
			ToLabel:     hops[i+1].label,
			TokenSymbol: symbols[i%len(symbols)],
			TokenAmount: round(tx.TokenAmount*g.rnd.Uniform(0.1, 1), 4),
		})
	}
	return out
}

// TransactionDetail generates the detail view of hash with its call trace
func (g *Generator) TransactionDetail(hash string) Transaction {
	tx := g.Transaction(TransactionOptions{Hash: hash})
	tx.InternalTxs = g.InternalTxs(tx)
	return tx
}

// SortTransactions orders newest first
func SortTransactions(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Timestamp.After(txs[j].Timestamp) })
}
