package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"market_gateway/internal/feature/marketdata/domain/entity"
)

func printJSON(w io.Writer, env entity.Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// printEnvelope renders a successful envelope as a human-readable table.
func printEnvelope(w io.Writer, env entity.Envelope) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	switch d := env.Data.(type) {
	case entity.Quote:
		fmt.Fprintf(tw, "%s\t%s\n", d.Symbol, humanize.CommafWithDigits(d.Price, 2))
		fmt.Fprintf(tw, "change\t%s (%s%%)\n", signed(d.Change), signed(d.ChangePercent))
		fmt.Fprintf(tw, "volume\t%s\n", humanize.Comma(d.Volume))
		if !d.LastUpdate.IsZero() {
			fmt.Fprintf(tw, "trading day\t%s\n", d.LastUpdate.Format("2006-01-02"))
		}
	case entity.CryptoSnapshot:
		fmt.Fprintf(tw, "COIN\tPRICE (%s)\t24H\tMARKET CAP\n", strings.ToUpper(d.VsCurrency))
		for _, id := range sortedKeys(d.Coins) {
			p := d.Coins[id]
			fmt.Fprintf(tw, "%s\t%s\t%s%%\t%s\n", id,
				humanize.CommafWithDigits(p.Price, 2), signed(p.Change24h), humanize.SIWithDigits(p.MarketCap, 2, ""))
		}
	case entity.RateTable:
		fmt.Fprintf(tw, "1 %s =\t(%s)\n", d.Base, d.Provider)
		for _, code := range sortedKeys(d.Rates) {
			fmt.Fprintf(tw, "%s\t%s\n", code, humanize.FormatFloat("#,###.####", d.Rates[code]))
		}
	case entity.Conversion:
		fmt.Fprintf(tw, "%s %s\t= %s %s\n",
			humanize.CommafWithDigits(d.Amount, 2), d.From, humanize.CommafWithDigits(d.Result, 2), d.To)
		fmt.Fprintf(tw, "rate\t%s\n", humanize.FormatFloat("#,###.######", d.Rate))
	case entity.IndicatorSeries:
		fmt.Fprintf(tw, "%s\t%s\n", d.Indicator, d.Name)
		if d.Unit != "" || d.Interval != "" {
			fmt.Fprintf(tw, "\t%s, %s\n", d.Interval, d.Unit)
		}
		for _, p := range d.Data {
			fmt.Fprintf(tw, "%s\t%s\n", p.Date, humanize.CommafWithDigits(p.Value, 3))
		}
	default:
		return printJSON(w, env)
	}

	if env.Cached {
		fmt.Fprintf(tw, "\t(cached)\n")
	}
	return tw.Flush()
}

func signed(f float64) string {
	if f > 0 {
		return "+" + humanize.CommafWithDigits(f, 2)
	}
	return humanize.CommafWithDigits(f, 2)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
