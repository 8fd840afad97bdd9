package portfolio

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// AlignedPrices holds the closes of several securities on their common dates.
//
// A date belongs to the index only if every symbol has a close on that date.
type AlignedPrices struct {
	dates   []Date
	symbols []string
	closes  map[string][]decimal.Decimal // symbol -> closes, parallel to dates
}

// Align inner-joins the histories of symbols on their dates.
//
// Dates missing in any history are dropped, there is no forward fill. A
// symbol without history (absent or empty) empties the whole index.
func Align(histories map[string]*PriceHistory, symbols []string) *AlignedPrices {
	a := &AlignedPrices{
		symbols: append([]string(nil), symbols...),
		closes:  make(map[string][]decimal.Decimal, len(symbols)),
	}
	if len(symbols) == 0 {
		return a
	}

	// candidates are the dates of the first symbol, every other symbol can only narrow them.
	for _, day := range histories[symbols[0]].Days() {
		common := true
		for _, s := range symbols[1:] {
			if _, ok := histories[s].Get(day); !ok {
				common = false
				break
			}
		}
		if !common {
			continue
		}
		a.dates = append(a.dates, day)
		for _, s := range symbols {
			v, _ := histories[s].Get(day)
			a.closes[s] = append(a.closes[s], v)
		}
	}
	return a
}

// Len returns the number of common dates.
func (a *AlignedPrices) Len() int { return len(a.dates) }

// Dates returns the common dates in chronological order.
func (a *AlignedPrices) Dates() []Date { return append([]Date(nil), a.dates...) }

// Symbols returns the aligned symbols.
func (a *AlignedPrices) Symbols() []string { return append([]string(nil), a.symbols...) }

// Close returns the close of symbol at the i-th common date, zero if symbol is not aligned.
func (a *AlignedPrices) Close(symbol string, i int) decimal.Decimal {
	closes := a.closes[symbol]
	if i < 0 || i >= len(closes) {
		return decimal.Zero
	}
	return closes[i]
}

// FetchAligned fetches the history of each symbol between from and to, and aligns them.
//
// Any provider failure is fatal: the join cannot be computed without every history.
func FetchAligned(ctx context.Context, provider Provider, symbols []string, from, to Date) (*AlignedPrices, error) {
	histories := make(map[string]*PriceHistory, len(symbols))
	for _, s := range symbols {
		h, err := provider.History(ctx, s, from, to)
		if err != nil {
			return nil, &Error{Kind: Fatal, Symbol: s, Op: "history", Err: err}
		}
		if h.Len() == 0 {
			log.WithField("symbol", s).Warn("empty price history, the value series will be empty")
		}
		histories[s] = h
	}
	aligned := Align(histories, symbols)
	log.Debugf("aligned %d symbols on %d common dates between %s and %s", len(symbols), aligned.Len(), from, to)
	return aligned, nil
}
