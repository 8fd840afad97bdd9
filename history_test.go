package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceHistory_Append(t *testing.T) {
	h := NewPriceHistory()
	d1, v1 := NewDate(2025, 7, 1), decimal.NewFromInt(25)
	d2, v2 := NewDate(2024, 7, 1), decimal.NewFromInt(24)

	// Appending two values in reverse order must keep the history sorted.

	if h.Len() != 0 {
		t.Errorf("PriceHistory.Len() = %v want 0", h.Len())
	}
	h.Append(d1, v1)
	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Fatalf("Append(d2, v2).Len() = %v want 2", h.Len())
	}
	if h.days[0] != d2 || h.days[1] != d1 {
		t.Errorf("history days = %v want [%v %v]", h.days, d2, d1)
	}
	if !h.values[0].Equal(v2) || !h.values[1].Equal(v1) {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// same day overwrites
	h.Append(d1, decimal.NewFromInt(26))
	if h.Len() != 2 {
		t.Errorf("Append(d1, 26).Len() = %v want 2", h.Len())
	}
	if day, v := h.Latest(); day != d1 || !v.Equal(decimal.NewFromInt(26)) {
		t.Errorf("Latest() = %v, %v want %v, 26", day, v, d1)
	}
}

func TestPriceHistory_AsOf(t *testing.T) {
	h := NewPriceHistory()
	h.Append(MustParse("2024-01-02"), decimal.NewFromInt(10))
	h.Append(MustParse("2024-01-05"), decimal.NewFromInt(11))
	h.Append(MustParse("2024-01-08"), decimal.NewFromInt(12))

	testCases := []struct {
		on        string
		wantDay   string
		wantOK    bool
		wantPrice int64
	}{
		{on: "2024-01-01", wantOK: false},
		{on: "2024-01-02", wantDay: "2024-01-02", wantOK: true, wantPrice: 10},
		{on: "2024-01-04", wantDay: "2024-01-02", wantOK: true, wantPrice: 10},
		{on: "2024-01-07", wantDay: "2024-01-05", wantOK: true, wantPrice: 11},
		{on: "2024-02-01", wantDay: "2024-01-08", wantOK: true, wantPrice: 12},
	}
	for _, tc := range testCases {
		t.Run(tc.on, func(t *testing.T) {
			day, v, ok := h.AsOf(MustParse(tc.on))
			if ok != tc.wantOK {
				t.Fatalf("AsOf(%s) ok = %v want %v", tc.on, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if day != MustParse(tc.wantDay) || !v.Equal(decimal.NewFromInt(tc.wantPrice)) {
				t.Errorf("AsOf(%s) = %v, %v want %v, %v", tc.on, day, v, tc.wantDay, tc.wantPrice)
			}
		})
	}

	if _, ok := h.Get(MustParse("2024-01-04")); ok {
		t.Errorf("Get(2024-01-04) found a value, want none")
	}
	if got := h.Between(MustParse("2024-01-03"), MustParse("2024-01-08")).Len(); got != 2 {
		t.Errorf("Between().Len() = %d want 2", got)
	}
}

func TestPriceHistory_Empty(t *testing.T) {
	var h *PriceHistory
	if h.Len() != 0 {
		t.Errorf("nil history Len() = %d want 0", h.Len())
	}
	if day, v := h.Latest(); !day.IsZero() || !v.IsZero() {
		t.Errorf("nil history Latest() = %v, %v want zero values", day, v)
	}
	if _, _, ok := h.AsOf(Today()); ok {
		t.Errorf("nil history AsOf() found a value")
	}
}
