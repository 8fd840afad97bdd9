package portfolio

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookback is a named trailing window used to compute a return figure.
type Lookback struct {
	Label string
	Days  int
}

func (l Lookback) String() string { return fmt.Sprintf("%s=%d", l.Label, l.Days) }

// YTD returns the year-to-date lookback: the number of days elapsed since
// January 1st of today's year.
func YTD(today Date) Lookback {
	return Lookback{Label: "YTD", Days: today.Sub(today.StartOfYear())}
}

// DefaultLookbacks returns the standard windows 1D, 1M, YTD and 1Y.
func DefaultLookbacks(today Date) []Lookback {
	return []Lookback{
		{Label: "1D", Days: 1},
		{Label: "1M", Days: 30},
		YTD(today),
		{Label: "1Y", Days: 365},
	}
}

// DefaultLookbacksSpec is the textual form of DefaultLookbacks.
const DefaultLookbacksSpec = "1D=1,1M=30,YTD,1Y=365"

// ParseLookbacks parses a comma separated list of windows like "1D=1,1M=30,YTD".
//
// Each item is LABEL=DAYS, or the bare label YTD which is computed from today.
func ParseLookbacks(s string, today Date) ([]Lookback, error) {
	var res []Lookback
	seen := make(map[string]bool)
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		var l Lookback
		label, days, found := strings.Cut(item, "=")
		label = strings.TrimSpace(label)
		switch {
		case !found && strings.EqualFold(label, "YTD"):
			l = YTD(today)
		case !found:
			return nil, fmt.Errorf("invalid lookback %q, want LABEL=DAYS or YTD", item)
		default:
			n, err := strconv.Atoi(strings.TrimSpace(days))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid lookback %q, want a non-negative number of days", item)
			}
			l = Lookback{Label: label, Days: n}
		}
		if l.Label == "" {
			return nil, fmt.Errorf("invalid lookback %q, label is missing", item)
		}
		if seen[l.Label] {
			return nil, fmt.Errorf("duplicate lookback %q", l.Label)
		}
		seen[l.Label] = true
		res = append(res, l)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("no lookback in %q", s)
	}
	return res, nil
}
