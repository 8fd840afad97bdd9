package portfolio

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Dashboard gathers everything needed to compute the dashboard's views of a
// ledger: the market data provider and the display settings.
//
// It holds no computed state, every call fetches and recomputes from scratch.
type Dashboard struct {
	Ledger      *Ledger
	Provider    Provider
	Benchmark   string     // symbol of the benchmark
	Lookbacks   []Lookback // return windows of the snapshot
	Today       Date       // end of every window
	HistoryFrom Date       // start of the snapshot history window, zero means one year before Today
	Currency    string     // display currency
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithBenchmark sets the benchmark symbol, an empty symbol keeps the default.
func WithBenchmark(symbol string) Option {
	return func(d *Dashboard) {
		if symbol != "" {
			d.Benchmark = symbol
		}
	}
}

// WithLookbacks sets the return windows.
func WithLookbacks(lookbacks []Lookback) Option {
	return func(d *Dashboard) { d.Lookbacks = lookbacks }
}

// WithToday sets the end date of every window.
func WithToday(today Date) Option {
	return func(d *Dashboard) { d.Today = today }
}

// WithHistoryFrom sets the start of the snapshot history window.
func WithHistoryFrom(from Date) Option {
	return func(d *Dashboard) { d.HistoryFrom = from }
}

// WithCurrency sets the display currency.
func WithCurrency(code string) Option {
	return func(d *Dashboard) { d.Currency = strings.ToUpper(code) }
}

// NewDashboard creates a dashboard over ledger.
//
// Defaults are the XIU.TO benchmark, the 1D, 1M, YTD and 1Y lookbacks, today and USD.
func NewDashboard(ledger *Ledger, provider Provider, opts ...Option) (*Dashboard, error) {
	d := &Dashboard{
		Ledger:    ledger,
		Provider:  provider,
		Benchmark: DefaultBenchmark,
		Today:     Today(),
		Currency:  "USD",
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.Lookbacks == nil {
		d.Lookbacks = DefaultLookbacks(d.Today)
	}
	if err := ValidateCurrency(d.Currency); err != nil {
		return nil, fmt.Errorf("invalid display currency: %w", err)
	}
	return d, nil
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency %q", code)
	}
	return nil
}

// On returns a copy of the dashboard dated day. A YTD lookback is recomputed
// for day, other lookbacks are kept.
func (d *Dashboard) On(day Date) *Dashboard {
	c := *d
	c.Today = day
	c.Lookbacks = make([]Lookback, 0, len(d.Lookbacks))
	for _, l := range d.Lookbacks {
		if l.Label == "YTD" {
			l = YTD(day)
		}
		c.Lookbacks = append(c.Lookbacks, l)
	}
	return &c
}

// Money returns value in the display currency.
func (d *Dashboard) Money(value decimal.Decimal) Money { return M(value, d.Currency) }

// Snapshot computes the per-holding snapshot.
func (d *Dashboard) Snapshot(ctx context.Context) (*Snapshot, error) {
	return BuildSnapshot(ctx, d.Ledger, d.Provider, SnapshotOptions{
		Today:     d.Today,
		From:      d.HistoryFrom,
		Lookbacks: d.Lookbacks,
	})
}

// Overview computes the current value of every holding from real-time quotes.
func (d *Dashboard) Overview(ctx context.Context) (*Overview, error) {
	return BuildOverview(ctx, d.Ledger, d.Provider)
}

// Performance computes the value series since inception and compares it with the benchmark.
//
// Unlike the snapshot, a symbol whose history cannot be fetched makes the
// whole computation fail. A missing benchmark only removes the comparison.
func (d *Dashboard) Performance(ctx context.Context) (*Performance, error) {
	p := &Performance{
		From:  d.Ledger.InceptionDate(),
		To:    d.Today,
		Value: Series{},
		Comparison: Comparison{
			Benchmark:       d.Benchmark,
			Portfolio:       Series{},
			BenchmarkSeries: Series{},
			PortfolioReturn: Undefined,
			BenchmarkReturn: Undefined,
		},
	}
	if d.Ledger.Len() == 0 {
		log.Warn("empty ledger, nothing to chart")
		return p, nil
	}

	aligned, err := FetchAligned(ctx, d.Provider, d.Ledger.Symbols(), p.From, p.To)
	if err != nil {
		return nil, err
	}
	p.Value = BuildValueSeries(d.Ledger, aligned)

	bench := FetchBenchmark(ctx, d.Provider, d.Benchmark, p.From, p.To)
	p.Comparison = Compare(p.Value, bench)
	p.Comparison.Benchmark = d.Benchmark
	return p, nil
}
