package portfolio

import (
	"context"

	"github.com/shopspring/decimal"
)

// SecurityInfo holds the descriptive metadata of a security.
type SecurityInfo struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Provider is a source of market data.
//
// Implementations must be safe to call sequentially with the same context;
// nothing in this package calls them concurrently.
type Provider interface {
	// Quotes returns the latest price of each symbol. Symbols without a quote
	// are simply absent from the result.
	Quotes(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
	// History returns the daily closes of symbol between from and to inclusive.
	History(ctx context.Context, symbol string, from, to Date) (*PriceHistory, error)
	// Info returns the metadata of symbol.
	Info(ctx context.Context, symbol string) (SecurityInfo, error)
}
