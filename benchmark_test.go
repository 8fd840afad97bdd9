package portfolio

import (
	"context"
	"testing"
)

func series(points ...any) Series {
	var s Series
	for i := 0; i < len(points); i += 2 {
		s = append(s, Point{Date: MustParse(points[i].(string)), Value: D(float64(points[i+1].(int)))})
	}
	return s
}

func TestCompare(t *testing.T) {
	testCases := []struct {
		name          string
		portfolio     Series
		benchmark     Series
		wantPortfolio []float64
		wantBenchmark []float64
	}{
		{
			name:          "same dates",
			portfolio:     series("2024-01-02", 100, "2024-02-01", 72, "2024-02-02", 78),
			benchmark:     series("2024-01-02", 20, "2024-02-01", 21, "2024-02-02", 22),
			wantPortfolio: []float64{100, 72, 78},
			wantBenchmark: []float64{100, 105, 110},
		},
		{
			name:          "only common dates",
			portfolio:     series("2024-01-01", 50, "2024-01-02", 200, "2024-01-03", 250),
			benchmark:     series("2024-01-02", 10, "2024-01-03", 9, "2024-01-04", 8),
			wantPortfolio: []float64{100, 125},
			wantBenchmark: []float64{100, 90},
		},
		{
			name:          "zero base is skipped",
			portfolio:     series("2024-01-02", 0, "2024-01-03", 40, "2024-01-04", 50),
			benchmark:     series("2024-01-02", 10, "2024-01-03", 10, "2024-01-04", 12),
			wantPortfolio: []float64{100, 125},
			wantBenchmark: []float64{100, 120},
		},
		{
			name:          "no benchmark",
			portfolio:     series("2024-01-02", 100),
			benchmark:     Series{},
			wantPortfolio: nil,
			wantBenchmark: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := Compare(tc.portfolio, tc.benchmark)
			check := func(label string, got Series, want []float64) {
				if got.Len() != len(want) {
					t.Fatalf("%s = %v want %v", label, got, want)
				}
				for i, p := range got {
					if !p.Value.Equal(D(want[i])) {
						t.Errorf("%s point #%d = %v want %v", label, i, p.Value, want[i])
					}
				}
			}
			check("portfolio", c.Portfolio, tc.wantPortfolio)
			check("benchmark", c.BenchmarkSeries, tc.wantBenchmark)
			if c.IsEmpty() != (len(tc.wantPortfolio) == 0) {
				t.Errorf("IsEmpty() = %v", c.IsEmpty())
			}
		})
	}
}

func TestCompare_Returns(t *testing.T) {
	c := Compare(
		series("2024-01-02", 100, "2024-02-02", 78),
		series("2024-01-02", 20, "2024-02-02", 22),
	)
	if !c.PortfolioReturn.Equal(-22) {
		t.Errorf("PortfolioReturn = %v want -22", c.PortfolioReturn)
	}
	if !c.BenchmarkReturn.Equal(10) {
		t.Errorf("BenchmarkReturn = %v want 10", c.BenchmarkReturn)
	}
}

func TestFetchBenchmark(t *testing.T) {
	p := &fakeProvider{
		prices:  map[string]map[string]float64{"XIU.TO": {"2024-01-02": 30, "2024-01-03": 31}},
		failing: map[string]bool{"BAD": true},
	}
	ctx := context.Background()
	from, to := MustParse("2024-01-01"), MustParse("2024-01-31")

	if got := FetchBenchmark(ctx, p, "XIU.TO", from, to); got.Len() != 2 {
		t.Errorf("FetchBenchmark(XIU.TO) = %v want 2 points", got)
	}
	got := FetchBenchmark(ctx, p, "BAD", from, to)
	if got == nil || got.Len() != 0 {
		t.Errorf("FetchBenchmark(BAD) = %#v want an empty series", got)
	}
}
