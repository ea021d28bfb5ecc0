package synth

import (
	"fmt"
	"strconv"

	"github.com/liamashdown/flowintel/internal/catalog"
	"github.com/liamashdown/flowintel/internal/rng"
)

// Transfer is a display-formatted transfer row of the legacy home page
type Transfer struct {
	ID          string  `json:"id"`
	Chain       string  `json:"chain"`
	Time        string  `json:"time"`
	FromAddress string  `json:"from_address"`
	FromLabel   *string `json:"from_label"`
	ToAddress   string  `json:"to_address"`
	ToLabel     *string `json:"to_label"`
	Value       string  `json:"value"`
	Token       string  `json:"token"`
	TokenColor  string  `json:"token_color"`
	USD         string  `json:"usd"`
}

// DatedPrice is one point of the legacy yearly price chart
type DatedPrice struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// VenueSample is one point of a per-exchange chart
type VenueSample struct {
	Date    string  `json:"date,omitempty"`
	Time    string  `json:"time,omitempty"`
	Binance float64 `json:"binance"`
	Bybit   float64 `json:"bybit"`
}

var priceYears = []string{"2020", "2021", "2022", "2023", "2024", "2025", "2026"}

// truncatedAddressLen is how much of an address the transfer feed shows
const truncatedAddressLen = 25

// Transfer generates one legacy transfer row
func (g *Generator) Transfer() Transfer {
	chain := rng.Choice(g.rnd, catalog.LegacyChains())
	token := rng.Choice(g.rnd, catalog.TransferTokens)
	labels := rng.Choice(g.rnd, catalog.TransferLabelPairs)

	return Transfer{
		ID:          g.rnd.UUID(),
		Chain:       chain.ID,
		Time:        rng.Choice(g.rnd, catalog.TransferTimes),
		FromAddress: g.rnd.Address()[:truncatedAddressLen] + "...",
		FromLabel:   labels.From,
		ToAddress:   g.rnd.Address()[:truncatedAddressLen] + "...",
		ToLabel:     labels.To,
		Value:       strconv.Itoa(g.rnd.IntRange(1, 1000)),
		Token:       token,
		TokenColor:  catalog.TransferTokenColor(token),
		USD:         fmt.Sprintf("$%d", g.rnd.IntRange(1, 10000)),
	}
}

// Transfers generates n legacy transfer rows
func (g *Generator) Transfers(n int) []Transfer {
	out := make([]Transfer, n)
	for i := range out {
		out[i] = g.Transfer()
	}
	return out
}

// TokenPriceHistory generates one yearly price per year between 0.5x and 2.5x of base
func (g *Generator) TokenPriceHistory(base float64) []DatedPrice {
	out := make([]DatedPrice, len(priceYears))
	for i, y := range priceYears {
		out[i] = DatedPrice{Date: y, Price: round(base*g.rnd.Uniform(0.5, 2.5), 4)}
	}
	return out
}

// OpenInterest generates twelve open interest samples, in billions
func (g *Generator) OpenInterest() []VenueSample {
	out := make([]VenueSample, 12)
	for i := range out {
		out[i] = VenueSample{
			Date:    strconv.Itoa(i * 3),
			Binance: round(g.rnd.Uniform(1.5, 3.0), 2),
			Bybit:   round(g.rnd.Uniform(0.5, 1.2), 2),
		}
	}
	return out
}

// CEXVolume generates twenty hourly exchange volume samples
func (g *Generator) CEXVolume() []VenueSample {
	out := make([]VenueSample, 20)
	for i := range out {
		out[i] = VenueSample{
			Time:    fmt.Sprintf("%02d:00", i%24),
			Binance: float64(g.rnd.IntRange(30, 700)),
			Bybit:   float64(g.rnd.IntRange(20, 150)),
		}
	}
	return out
}
