package renderer

import "github.com/sgc/portfolio"

// Overview is the rendering view of the portfolio overview.
type Overview struct {
	Total   portfolio.Money `json:"total"`
	Rows    []OverviewRow   `json:"rows"`
	Skipped []string        `json:"skipped,omitempty"`
}

// OverviewRow represents the latest value of a single holding.
type OverviewRow struct {
	Symbol   string             `json:"symbol"`
	Quantity portfolio.Quantity `json:"quantity"`
	Price    portfolio.Money    `json:"price"`
	Value    portfolio.Money    `json:"value"`
}

// NewOverview creates the view of o with amounts in currency.
func NewOverview(o *portfolio.Overview, currency string) *Overview {
	v := &Overview{
		Total: portfolio.M(o.Total, currency),
		Rows:  make([]OverviewRow, 0, len(o.Rows)),
	}
	for _, r := range o.Rows {
		v.Rows = append(v.Rows, OverviewRow{
			Symbol:   r.Symbol,
			Quantity: r.Quantity,
			Price:    portfolio.M(r.Price, currency),
			Value:    portfolio.M(r.Value, currency),
		})
	}
	for _, err := range o.Skipped {
		v.Skipped = append(v.Skipped, err.Error())
	}
	return v
}
