package portfolio

import (
	"context"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// DefaultBenchmark is the index fund used to compare the portfolio with, when none is configured.
const DefaultBenchmark = "XIU.TO"

// FetchBenchmark fetches the closes of the benchmark symbol between from and to.
//
// It never fails: a provider error is logged and yields an empty series, the
// performance is then displayed without a benchmark line.
func FetchBenchmark(ctx context.Context, provider Provider, symbol string, from, to Date) Series {
	h, err := provider.History(ctx, symbol, from, to)
	if err != nil {
		log.WithField("symbol", symbol).Warnf("benchmark unavailable: %v", err)
		return Series{}
	}
	series := make(Series, 0, h.Len())
	for day, v := range h.Values() {
		series = append(series, Point{Date: day, Value: v})
	}
	return series
}

// Comparison holds the portfolio and benchmark series on their common dates,
// both rebased to 100 at the first point.
type Comparison struct {
	Benchmark       string  `json:"benchmark"`
	Portfolio       Series  `json:"portfolio"`
	BenchmarkSeries Series  `json:"benchmarkSeries"`
	PortfolioReturn Percent `json:"portfolioReturn"`
	BenchmarkReturn Percent `json:"benchmarkReturn"`
}

// IsEmpty reports whether there is no benchmark line to display.
func (c Comparison) IsEmpty() bool { return len(c.Portfolio) == 0 }

// Compare rebases the portfolio and the benchmark series to 100.
//
// Only dates present in both series are kept. The base is the first common
// date where both values are non-zero, earlier common dates are dropped since
// they cannot be rebased.
func Compare(portfolio, benchmark Series) Comparison {
	bench := make(map[Date]decimal.Decimal, len(benchmark))
	for _, p := range benchmark {
		bench[p.Date] = p.Value
	}

	c := Comparison{Portfolio: Series{}, BenchmarkSeries: Series{}}
	var basePortfolio, baseBenchmark decimal.Decimal
	based := false
	for _, p := range portfolio {
		b, ok := bench[p.Date]
		if !ok {
			continue
		}
		if !based {
			if p.Value.IsZero() || b.IsZero() {
				continue
			}
			basePortfolio, baseBenchmark, based = p.Value, b, true
		}
		c.Portfolio = append(c.Portfolio, Point{Date: p.Date, Value: rebase(p.Value, basePortfolio)})
		c.BenchmarkSeries = append(c.BenchmarkSeries, Point{Date: p.Date, Value: rebase(b, baseBenchmark)})
	}
	c.PortfolioReturn = c.Portfolio.Return()
	c.BenchmarkReturn = c.BenchmarkSeries.Return()
	return c
}

var hundred = decimal.NewFromInt(100)

func rebase(v, base decimal.Decimal) decimal.Decimal {
	return v.Div(base).Mul(hundred)
}
