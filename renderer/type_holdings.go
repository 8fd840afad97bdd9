package renderer

import (
	"github.com/sgc/portfolio"
)

// Holdings is the rendering view of a snapshot.
// Amounts are portfolio.Money so that they are already formatted in the display currency.
type Holdings struct {
	// Date of the snapshot.
	Date portfolio.Date `json:"date"`
	// Total is the total market value of the rows.
	Total portfolio.Money `json:"total"`
	// Lookbacks are the labels of the return columns.
	Lookbacks []string `json:"lookbacks"`
	// Rows in display order.
	Rows []HoldingsRow `json:"rows"`
	// Skipped lists the symbols that could not be valued.
	Skipped []string `json:"skipped,omitempty"`
}

// HoldingsRow represents a single holding.
type HoldingsRow struct {
	Symbol      string              `json:"symbol"`
	Name        string              `json:"name,omitempty"`
	Quantity    portfolio.Quantity  `json:"quantity"`
	Price       portfolio.Money     `json:"price"`
	MarketValue portfolio.Money     `json:"marketValue"`
	Weight      portfolio.Percent   `json:"weight"`
	Returns     []portfolio.Percent `json:"returns"` // parallel to Holdings.Lookbacks
}

// NewHoldings creates the view of s with amounts in currency.
func NewHoldings(s *portfolio.Snapshot, currency string) *Holdings {
	h := &Holdings{
		Date:      s.On,
		Total:     portfolio.M(s.Total, currency),
		Lookbacks: make([]string, 0, len(s.Lookbacks)),
		Rows:      make([]HoldingsRow, 0, len(s.Rows)),
	}
	for _, l := range s.Lookbacks {
		h.Lookbacks = append(h.Lookbacks, l.Label)
	}
	for _, r := range s.Rows {
		row := HoldingsRow{
			Symbol:      r.Symbol,
			Name:        r.Name,
			Quantity:    r.Quantity,
			Price:       portfolio.M(r.Price, currency),
			MarketValue: portfolio.M(r.MarketValue, currency),
			Weight:      r.Weight,
			Returns:     make([]portfolio.Percent, 0, len(h.Lookbacks)),
		}
		for _, label := range h.Lookbacks {
			row.Returns = append(row.Returns, r.Return(label))
		}
		h.Rows = append(h.Rows, row)
	}
	for _, err := range s.Skipped {
		h.Skipped = append(h.Skipped, err.Error())
	}
	return h
}
