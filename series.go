package portfolio

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Point is a dated value.
type Point struct {
	Date  Date            `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// Series is an ordered sequence of points, ascending by date.
type Series []Point

// Len returns the number of points.
func (s Series) Len() int { return len(s) }

// First returns the first point, or the zero Point.
func (s Series) First() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[0]
}

// Last returns the last point, or the zero Point.
func (s Series) Last() Point {
	if len(s) == 0 {
		return Point{}
	}
	return s[len(s)-1]
}

// Get returns the value at day.
func (s Series) Get(day Date) (decimal.Decimal, bool) {
	for _, p := range s {
		if p.Date == day {
			return p.Value, true
		}
	}
	return decimal.Zero, false
}

// Return is the percent change from the first point to the last one, or
// Undefined when the series is empty or starts at zero.
func (s Series) Return() Percent {
	if len(s) == 0 {
		return Undefined
	}
	return PercentChange(s.First().Value, s.Last().Value)
}

// MarshalJSON encodes an empty series as an empty array rather than null.
func (s Series) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Point(s))
}

// BuildValueSeries computes the daily market value of the ledger over the aligned dates.
//
// Only transactions dated on an aligned date count: a transaction on a date
// missing from the index is ignored, it is not carried to the next date. The
// value at a date is the sum over symbols of the position as of that date
// times the close.
func BuildValueSeries(ledger *Ledger, aligned *AlignedPrices) Series {
	dates := aligned.Dates()
	series := make(Series, 0, len(dates))
	if len(dates) == 0 {
		return series
	}

	index := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		index[d] = struct{}{}
	}
	onIndex := ledger.Filter(func(tx Transaction) bool {
		_, ok := index[tx.Date]
		return ok
	})

	symbols := ledger.Symbols()
	for i, day := range dates {
		value := decimal.Zero
		for _, s := range symbols {
			qty := onIndex.Position(s, day)
			if qty.IsZero() {
				continue
			}
			value = value.Add(qty.Value(aligned.Close(s, i)))
		}
		series = append(series, Point{Date: day, Value: value})
	}
	return series
}
