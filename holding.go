package portfolio

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// OverviewRow is the current market value of one holding.
type OverviewRow struct {
	Symbol   string          `json:"symbol"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"`
}

// Overview is the latest market value of the portfolio, from real-time quotes.
type Overview struct {
	Rows    []OverviewRow   `json:"rows"`
	Total   decimal.Decimal `json:"total"`
	Skipped []*Error        `json:"skipped,omitempty"`
}

// BuildOverview quotes every holding with a positive net quantity in a single
// provider call and values it.
//
// A symbol missing from the quotes is skipped. A failing quote call is fatal.
func BuildOverview(ctx context.Context, ledger *Ledger, provider Provider) (*Overview, error) {
	holdings := ledger.NetHoldings()
	o := &Overview{Rows: []OverviewRow{}, Total: decimal.Zero}
	if len(holdings) == 0 {
		return o, nil
	}

	symbols := make([]string, 0, len(holdings))
	for _, h := range holdings {
		symbols = append(symbols, h.Symbol)
	}
	quotes, err := provider.Quotes(ctx, symbols)
	if err != nil {
		return nil, &Error{Kind: Fatal, Op: "quotes", Err: err}
	}

	for _, h := range holdings {
		price, ok := quotes[h.Symbol]
		if !ok {
			log.WithField("symbol", h.Symbol).Warn("no quote, skipping symbol")
			o.Skipped = append(o.Skipped, Skip("quotes", h.Symbol, errors.New("no quote")))
			continue
		}
		row := OverviewRow{
			Symbol:   h.Symbol,
			Quantity: h.Quantity,
			Price:    price,
			Value:    h.Quantity.Value(price),
		}
		o.Rows = append(o.Rows, row)
		o.Total = o.Total.Add(row.Value)
	}
	return o, nil
}
