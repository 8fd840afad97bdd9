package portfolio

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Percent is a percentage (5 means 5%). NaN means the figure is undefined.
type Percent float64

// Undefined is the NaN percent used when a figure cannot be computed.
var Undefined = Percent(math.NaN())

// PercentChange returns (to - from) / from * 100, or Undefined if from is zero.
func PercentChange(from, to decimal.Decimal) Percent {
	if from.IsZero() {
		return Undefined
	}
	return Percent(to.Sub(from).Div(from).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// IsUndefined reports whether p is NaN.
func (p Percent) IsUndefined() bool { return math.IsNaN(float64(p)) }

// Round2 rounds p to 2 decimals, an undefined percent stays undefined.
func (p Percent) Round2() Percent {
	if p.IsUndefined() {
		return p
	}
	return Percent(math.Round(float64(p)*100) / 100)
}

func (p Percent) Equal(q Percent) bool {
	if p.IsUndefined() || q.IsUndefined() {
		return p.IsUndefined() && q.IsUndefined()
	}
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if p.IsUndefined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if p.IsUndefined() {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MarshalJSON encodes an undefined percent as null.
func (p Percent) MarshalJSON() ([]byte, error) {
	if p.IsUndefined() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(p))
}

// ReturnStyle maps a return figure to the CSS used to display it: positive
// figures are green, negative ones red, zero and undefined are neutral.
func ReturnStyle(p Percent) string {
	switch {
	case p.IsUndefined():
		return ""
	case p > 0:
		return "color: mediumseagreen"
	case p < 0:
		return "color: orangered"
	default:
		return ""
	}
}
