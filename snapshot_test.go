package portfolio

import (
	"context"
	"testing"
)

func snapshotFixture() (*Ledger, *fakeProvider) {
	ledger := NewLedger(
		NewBuy(MustParse("2024-01-02"), "AAA", Q(10)),
		NewBuy(MustParse("2024-01-03"), "BBB", Q(5)),
		NewBuy(MustParse("2024-01-04"), "CCC", Q(2)),
		NewBuy(MustParse("2024-01-05"), "DDD", Q(1)),
		NewBuy(MustParse("2024-01-06"), "EEE", Q(3)),
		NewSell(MustParse("2024-02-01"), "AAA", Q(4)),
		NewSell(MustParse("2024-02-01"), "BBB", Q(5)), // closed
	)
	provider := &fakeProvider{
		prices: map[string]map[string]float64{
			"AAA": {"2024-01-02": 10, "2024-02-01": 12, "2024-02-02": 13},
			"BBB": {"2024-02-02": 100},
			"EEE": {"2024-02-02": 2},
		},
		names:   map[string]string{"AAA": "Triple A Inc", "EEE": "Quintuple E"},
		failing: map[string]bool{"CCC": true},
	}
	return ledger, provider
}

func TestBuildSnapshot(t *testing.T) {
	ledger, provider := snapshotFixture()
	opts := SnapshotOptions{Today: MustParse("2024-02-02")}

	s, err := BuildSnapshot(context.Background(), ledger, provider, opts)
	if err != nil {
		t.Fatalf("BuildSnapshot() unexpected error: %v", err)
	}

	if len(s.Rows) != 2 {
		t.Fatalf("BuildSnapshot() returned %d rows want 2: %+v", len(s.Rows), s.Rows)
	}
	if s.Rows[0].Symbol != "AAA" || s.Rows[1].Symbol != "EEE" {
		t.Errorf("rows = [%s %s] want [AAA EEE]", s.Rows[0].Symbol, s.Rows[1].Symbol)
	}
	if _, ok := s.Row("BBB"); ok {
		t.Errorf("closed position BBB must not appear in the snapshot")
	}
	if !s.Total.Equal(D(84)) {
		t.Errorf("Total = %v want 84", s.Total)
	}

	aaa, _ := s.Row("AAA")
	testCases := []struct {
		name string
		got  any
		want any
	}{
		{"name", aaa.Name, "Triple A Inc"},
		{"quantity", aaa.Quantity.String(), "6"},
		{"price", aaa.Price.String(), "13"},
		{"market value", aaa.MarketValue.String(), "78"},
		{"weight", aaa.Weight, Percent(92.86)},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("AAA %s = %v want %v", tc.name, tc.got, tc.want)
		}
	}

	returns := []struct {
		label string
		want  Percent
	}{
		{"1D", 8.33},       // 13 vs 12 on 2024-02-01
		{"1M", 30},         // 13 vs 10 on 2024-01-02, the closest date before 2024-01-03
		{"YTD", Undefined}, // no price on or before 2024-01-01
		{"1Y", Undefined},
	}
	for _, r := range returns {
		if got := aaa.Return(r.label); !got.Equal(r.want) {
			t.Errorf("AAA return %s = %v want %v", r.label, got, r.want)
		}
	}

	var sum Percent
	for _, r := range s.Rows {
		sum += r.Weight
	}
	if !sum.Equal(100) {
		t.Errorf("sum of weights = %v want 100", sum)
	}

	if len(s.Skipped) != 2 {
		t.Fatalf("Skipped = %v want CCC and DDD", s.Skipped)
	}
	for i, want := range []string{"CCC", "DDD"} {
		if s.Skipped[i].Symbol != want || IsFatal(s.Skipped[i]) {
			t.Errorf("Skipped[%d] = %v want a recoverable error for %s", i, s.Skipped[i], want)
		}
	}
}

func TestBuildSnapshot_MissingInfo(t *testing.T) {
	ledger, provider := snapshotFixture()
	provider.infoFails = true

	s, err := BuildSnapshot(context.Background(), ledger, provider, SnapshotOptions{Today: MustParse("2024-02-02")})
	if err != nil {
		t.Fatalf("BuildSnapshot() unexpected error: %v", err)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("BuildSnapshot() returned %d rows want 2", len(s.Rows))
	}
	for _, r := range s.Rows {
		if r.Name != "" {
			t.Errorf("row %s has name %q, want empty", r.Symbol, r.Name)
		}
	}
}

func TestBuildSnapshot_ZeroTotal(t *testing.T) {
	ledger := NewLedger(NewBuy(MustParse("2024-01-02"), "ZZZ", Q(10)))
	provider := &fakeProvider{prices: map[string]map[string]float64{
		"ZZZ": {"2024-01-01": 0, "2024-01-02": 0},
	}}

	s, err := BuildSnapshot(context.Background(), ledger, provider, SnapshotOptions{
		Today:     MustParse("2024-01-02"),
		Lookbacks: []Lookback{{"1D", 1}},
	})
	if err != nil {
		t.Fatalf("BuildSnapshot() unexpected error: %v", err)
	}
	if len(s.Rows) != 1 {
		t.Fatalf("BuildSnapshot() returned %d rows want 1", len(s.Rows))
	}
	if w := s.Rows[0].Weight; w != 0 {
		t.Errorf("weight = %v want 0", w)
	}
	if r := s.Rows[0].Return("1D"); !r.IsUndefined() {
		t.Errorf("1D return from a zero price = %v want undefined", r)
	}
}

func TestBuildSnapshot_AllSkipped(t *testing.T) {
	ledger := NewLedger(NewBuy(MustParse("2024-01-02"), "CCC", Q(1)))
	provider := &fakeProvider{failing: map[string]bool{"CCC": true}}

	s, err := BuildSnapshot(context.Background(), ledger, provider, SnapshotOptions{Today: MustParse("2024-01-02")})
	if err != nil {
		t.Fatalf("BuildSnapshot() unexpected error: %v", err)
	}
	if len(s.Rows) != 0 || !s.Total.IsZero() {
		t.Errorf("BuildSnapshot() = %d rows, total %v want an empty snapshot", len(s.Rows), s.Total)
	}
}

func TestCalculateReturns(t *testing.T) {
	h := history(map[string]float64{
		"2023-12-29": 100, // friday
		"2024-01-02": 110,
		"2024-01-03": 99,
	})
	got := calculateReturns(h, []Lookback{{"0D", 0}, {"1D", 1}, {"3D", 3}, {"5D", 5}, {"10D", 10}})
	want := []Percent{0, -10, -1, -1, Undefined}
	// 1D: 99 vs 110, 3D: target 2023-12-31 -> 2023-12-29, 5D: target 2023-12-29
	for i, r := range got {
		if !r.Value.Equal(want[i]) {
			t.Errorf("return %s = %v want %v", r.Label, r.Value, want[i])
		}
	}
}
