package portfolio

// Performance is the daily market value of the portfolio since inception,
// compared with its benchmark.
type Performance struct {
	From       Date       `json:"from"`
	To         Date       `json:"to"`
	Value      Series     `json:"value"`
	Comparison Comparison `json:"comparison"`
}

// Return is the total return of the value series.
//
// It is a price change of the holdings value, cash flows are not removed:
// buying more shares shows up as growth.
func (p *Performance) Return() Percent { return p.Value.Return() }

// HasBenchmark reports whether the benchmark line can be displayed.
func (p *Performance) HasBenchmark() bool { return !p.Comparison.IsEmpty() }
