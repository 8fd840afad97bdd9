package portfolio

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// fakeProvider is an in-memory Provider for tests.
type fakeProvider struct {
	prices     map[string]map[string]float64 // symbol -> "YYYY-MM-DD" -> close
	names      map[string]string
	quotes     map[string]float64
	failing    map[string]bool // symbols whose History fails
	infoFails  bool
	quotesFail bool
	calls      []string
}

func (p *fakeProvider) Quotes(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	p.calls = append(p.calls, fmt.Sprintf("quotes %v", symbols))
	if p.quotesFail {
		return nil, fmt.Errorf("quotes unavailable")
	}
	res := make(map[string]decimal.Decimal)
	for _, s := range symbols {
		if v, ok := p.quotes[s]; ok {
			res[s] = decimal.NewFromFloat(v)
		}
	}
	return res, nil
}

func (p *fakeProvider) History(ctx context.Context, symbol string, from, to Date) (*PriceHistory, error) {
	p.calls = append(p.calls, "history "+symbol)
	if p.failing[symbol] {
		return nil, fmt.Errorf("no data for %q", symbol)
	}
	h := NewPriceHistory()
	for day, v := range p.prices[symbol] {
		h.Append(MustParse(day), decimal.NewFromFloat(v))
	}
	return h.Between(from, to), nil
}

func (p *fakeProvider) Info(ctx context.Context, symbol string) (SecurityInfo, error) {
	p.calls = append(p.calls, "info "+symbol)
	if p.infoFails {
		return SecurityInfo{}, fmt.Errorf("no fundamentals for %q", symbol)
	}
	return SecurityInfo{Name: p.names[symbol], Currency: "USD"}, nil
}

// D is a helper for tests to create a decimal from a const.
func D(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }
