package portfolio

import (
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// PriceHistory stores a chronological series of closing prices for one security.
// Dates are unique and the series is always sorted.
type PriceHistory struct {
	days   []Date
	values []decimal.Decimal
}

// NewPriceHistory returns an empty history.
func NewPriceHistory() *PriceHistory { return &PriceHistory{} }

// Len returns the number of points in the history.
func (h *PriceHistory) Len() int {
	if h == nil {
		return 0
	}
	return len(h.days)
}

// Append adds a point to the history.
//
// An existing value at that date is overwritten.
func (h *PriceHistory) Append(on Date, price decimal.Decimal) *PriceHistory {
	i, found := slices.BinarySearchFunc(h.days, on, Date.Compare)
	if found {
		// later data has priority
		h.values[i] = price
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, price)
	return h
}

// Latest returns the latest date and price in the history.
// If the history is empty, it returns zero values.
func (h *PriceHistory) Latest() (Date, decimal.Decimal) {
	last := h.Len() - 1
	if last < 0 {
		return Date{}, decimal.Zero
	}
	return h.days[last], h.values[last]
}

// Get returns the price at 'day' and true or zero and false.
func (h *PriceHistory) Get(day Date) (decimal.Decimal, bool) {
	if h.Len() == 0 {
		return decimal.Zero, false
	}
	i, found := slices.BinarySearchFunc(h.days, day, Date.Compare)
	if !found {
		return decimal.Zero, false
	}
	return h.values[i], true
}

// AsOf returns the most recent date on or before 'day' and its price.
// It returns false if the history has no such date.
func (h *PriceHistory) AsOf(day Date) (Date, decimal.Decimal, bool) {
	if h.Len() == 0 {
		return Date{}, decimal.Zero, false
	}
	i, found := slices.BinarySearchFunc(h.days, day, Date.Compare)
	if found {
		return h.days[i], h.values[i], true
	}
	// i is where day would be inserted, the previous entry is the last one before day.
	if i == 0 {
		return Date{}, decimal.Zero, false
	}
	return h.days[i-1], h.values[i-1], true
}

// Days returns a copy of the dates of the history, in chronological order.
func (h *PriceHistory) Days() []Date {
	if h == nil {
		return nil
	}
	return slices.Clone(h.days)
}

// Values returns an iterator over all date/price pairs in the history, in chronological order.
func (h *PriceHistory) Values() iter.Seq2[Date, decimal.Decimal] {
	return func(yield func(Date, decimal.Decimal) bool) {
		for i := 0; i < h.Len(); i++ {
			if !yield(h.days[i], h.values[i]) {
				return
			}
		}
	}
}

// Between returns the points of the history dated in [from, to].
func (h *PriceHistory) Between(from, to Date) *PriceHistory {
	res := NewPriceHistory()
	for day, price := range h.Values() {
		if day.Before(from) || day.After(to) {
			continue
		}
		res.days = append(res.days, day)
		res.values = append(res.values, price)
	}
	return res
}
