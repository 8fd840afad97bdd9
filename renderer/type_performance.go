package renderer

import (
	"github.com/sgc/portfolio"
)

// Performance is the rendering view of the value series and its benchmark comparison.
type Performance struct {
	From            portfolio.Date    `json:"from"`
	To              portfolio.Date    `json:"to"`
	Latest          portfolio.Money   `json:"latest"`
	Benchmark       string            `json:"benchmark"`
	HasBenchmark    bool              `json:"hasBenchmark"`
	PortfolioReturn portfolio.Percent `json:"portfolioReturn"`
	BenchmarkReturn portfolio.Percent `json:"benchmarkReturn"`
	Points          []PerformancePoint `json:"points"`
}

// PerformancePoint is one day of the value series.
// Portfolio and Benchmark are the rebased values, empty when the benchmark has no close that day.
type PerformancePoint struct {
	Date      portfolio.Date  `json:"date"`
	Value     portfolio.Money `json:"value"`
	Portfolio string          `json:"portfolio,omitempty"`
	Benchmark string          `json:"benchmark,omitempty"`
}

// NewPerformance creates the view of p with amounts in currency.
func NewPerformance(p *portfolio.Performance, currency string) *Performance {
	c := p.Comparison
	v := &Performance{
		From:            p.From,
		To:              p.To,
		Latest:          portfolio.M(p.Value.Last().Value, currency),
		Benchmark:       c.Benchmark,
		HasBenchmark:    p.HasBenchmark(),
		PortfolioReturn: c.PortfolioReturn,
		BenchmarkReturn: c.BenchmarkReturn,
		Points:          make([]PerformancePoint, 0, len(p.Value)),
	}
	if !v.HasBenchmark {
		v.PortfolioReturn = p.Return()
	}
	for _, pt := range p.Value {
		point := PerformancePoint{Date: pt.Date, Value: portfolio.M(pt.Value, currency)}
		if rebased, ok := c.Portfolio.Get(pt.Date); ok {
			point.Portfolio = rebased.StringFixed(2)
		}
		if rebased, ok := c.BenchmarkSeries.Get(pt.Date); ok {
			point.Benchmark = rebased.StringFixed(2)
		}
		v.Points = append(v.Points, point)
	}
	return v
}
