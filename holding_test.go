package portfolio

import (
	"context"
	"strings"
	"testing"
)

func TestBuildOverview(t *testing.T) {
	ledger := NewLedger(
		NewBuy(MustParse("2024-01-02"), "AAA", Q(10)),
		NewBuy(MustParse("2024-01-03"), "BBB", Q(2)),
		NewBuy(MustParse("2024-01-04"), "CCC", Q(1)),
		NewSell(MustParse("2024-01-05"), "AAA", Q(4)),
		NewSell(MustParse("2024-01-05"), "CCC", Q(1)),
		NewBuy(MustParse("2024-01-06"), "DDD", Q(3)),
	)
	p := &fakeProvider{quotes: map[string]float64{"AAA": 13, "BBB": 50.5, "CCC": 1000}}

	o, err := BuildOverview(context.Background(), ledger, p)
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}

	if len(p.calls) != 1 || p.calls[0] != "quotes [AAA BBB DDD]" {
		t.Errorf("provider calls = %v want a single batched quotes call", p.calls)
	}
	if len(o.Rows) != 2 {
		t.Fatalf("BuildOverview() returned %d rows want 2", len(o.Rows))
	}
	if r := o.Rows[0]; r.Symbol != "AAA" || !r.Value.Equal(D(78)) {
		t.Errorf("row #0 = %+v want AAA valued 78", r)
	}
	if r := o.Rows[1]; r.Symbol != "BBB" || !r.Value.Equal(D(101)) {
		t.Errorf("row #1 = %+v want BBB valued 101", r)
	}
	if !o.Total.Equal(D(179)) {
		t.Errorf("Total = %v want 179", o.Total)
	}
	if len(o.Skipped) != 1 || o.Skipped[0].Symbol != "DDD" {
		t.Errorf("Skipped = %v want DDD", o.Skipped)
	}
}

func TestBuildOverview_QuotesFail(t *testing.T) {
	ledger := NewLedger(NewBuy(MustParse("2024-01-02"), "AAA", Q(10)))
	p := &fakeProvider{quotesFail: true}

	_, err := BuildOverview(context.Background(), ledger, p)
	if !IsFatal(err) {
		t.Fatalf("BuildOverview() error = %v want a fatal error", err)
	}
	if !strings.Contains(err.Error(), "quotes unavailable") {
		t.Errorf("BuildOverview() error = %v", err)
	}
}

func TestBuildOverview_Empty(t *testing.T) {
	p := &fakeProvider{}
	o, err := BuildOverview(context.Background(), NewLedger(), p)
	if err != nil {
		t.Fatalf("BuildOverview() unexpected error: %v", err)
	}
	if len(o.Rows) != 0 || !o.Total.IsZero() || len(p.calls) != 0 {
		t.Errorf("BuildOverview(empty) = %+v, calls %v want nothing", o, p.calls)
	}
}
