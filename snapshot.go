package portfolio

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Return is a return figure over a lookback window.
type Return struct {
	Label string  `json:"label"`
	Value Percent `json:"value"`
}

// SnapshotRow is the current state of one holding.
type SnapshotRow struct {
	Symbol      string
	Name        string // empty when the provider has no metadata
	Quantity    Quantity
	Price       decimal.Decimal // latest close, rounded to 2 decimals
	MarketValue decimal.Decimal // latest close times quantity, exact
	Weight      Percent         // share of the total market value, rounded to 2 decimals
	Returns     []Return        // one per lookback, in lookback order
}

// Return returns the figure for the lookback labeled label, or Undefined.
func (r SnapshotRow) Return(label string) Percent {
	for _, ret := range r.Returns {
		if ret.Label == label {
			return ret.Value
		}
	}
	return Undefined
}

// MarshalJSON keeps the columns in display order, each lookback label being a key.
func (r SnapshotRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Optional("name", r.Name)
	w.Append("quantity", r.Quantity)
	w.Append("price", r.Price)
	w.Append("marketValue", r.MarketValue)
	w.Append("weight", r.Weight)
	for _, ret := range r.Returns {
		w.Append(ret.Label, ret.Value)
	}
	return w.MarshalJSON()
}

// Snapshot is the per-holding view of the portfolio: latest price, weight and
// trailing returns of every symbol with a positive net quantity.
type Snapshot struct {
	On        Date            `json:"on"`
	Lookbacks []Lookback      `json:"-"`
	Rows      []SnapshotRow   `json:"rows"`
	Total     decimal.Decimal `json:"total"`
	Skipped   []*Error        `json:"skipped,omitempty"`
}

// Row returns the row of symbol.
func (s *Snapshot) Row(symbol string) (SnapshotRow, bool) {
	for _, r := range s.Rows {
		if r.Symbol == symbol {
			return r, true
		}
	}
	return SnapshotRow{}, false
}

func (s *Snapshot) skip(err *Error) {
	log.WithField("symbol", err.Symbol).Warnf("skipping symbol: %v", err.Err)
	s.Skipped = append(s.Skipped, err)
}

// SnapshotOptions configures BuildSnapshot. Zero values get defaults.
type SnapshotOptions struct {
	Today     Date       // defaults to Today()
	From      Date       // start of the history window, defaults to one year before Today
	Lookbacks []Lookback // defaults to DefaultLookbacks(Today)
}

func (o SnapshotOptions) withDefaults() SnapshotOptions {
	if o.Today.IsZero() {
		o.Today = Today()
	}
	if o.From.IsZero() {
		o.From = o.Today.AddMonth(-12)
	}
	if o.Lookbacks == nil {
		o.Lookbacks = DefaultLookbacks(o.Today)
	}
	return o
}

// BuildSnapshot computes the snapshot of the ledger's final holdings.
//
// Symbols are processed sequentially in order of first appearance. A symbol
// whose history cannot be fetched, or is empty, is skipped and recorded in
// Snapshot.Skipped. A missing company name only leaves the name empty.
func BuildSnapshot(ctx context.Context, ledger *Ledger, provider Provider, opts SnapshotOptions) (*Snapshot, error) {
	opts = opts.withDefaults()
	s := &Snapshot{
		On:        opts.Today,
		Lookbacks: opts.Lookbacks,
		Rows:      []SnapshotRow{},
		Total:     decimal.Zero,
	}

	for _, h := range ledger.NetHoldings() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger := log.WithField("symbol", h.Symbol)

		info, err := provider.Info(ctx, h.Symbol)
		if err != nil {
			logger.Warnf("could not fetch security info: %v", err)
			info = SecurityInfo{}
		}

		hist, err := provider.History(ctx, h.Symbol, opts.From, opts.Today)
		if err != nil {
			s.skip(Skip("history", h.Symbol, err))
			continue
		}
		if hist.Len() == 0 {
			s.skip(Skip("history", h.Symbol, errors.New("no price data")))
			continue
		}

		_, latest := hist.Latest()
		row := SnapshotRow{
			Symbol:      h.Symbol,
			Name:        info.Name,
			Quantity:    h.Quantity,
			Price:       latest.Round(2),
			MarketValue: h.Quantity.Value(latest),
			Returns:     calculateReturns(hist, opts.Lookbacks),
		}
		s.Rows = append(s.Rows, row)
		s.Total = s.Total.Add(row.MarketValue)
	}

	for i := range s.Rows {
		s.Rows[i].Weight = weight(s.Rows[i].MarketValue, s.Total)
	}
	return s, nil
}

// weight returns value / total * 100 rounded to 2 decimals, or 0 when total is zero.
func weight(value, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(value.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()).Round2()
}

// calculateReturns computes, for each lookback, the percent change between the
// latest close and the close at the most recent date on or before latest date
// minus the lookback days.
func calculateReturns(hist *PriceHistory, lookbacks []Lookback) []Return {
	res := make([]Return, 0, len(lookbacks))
	latestDay, latest := hist.Latest()
	for _, lb := range lookbacks {
		ret := Undefined
		if _, past, ok := hist.AsOf(latestDay.Add(-lb.Days)); ok {
			ret = PercentChange(past, latest).Round2()
		}
		res = append(res, Return{Label: lb.Label, Value: ret})
	}
	return res
}
