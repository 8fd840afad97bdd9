package portfolio

import (
	"fmt"
	"strings"
)

// Action is the side of a transaction.
type Action string

// The two transaction actions found in the ledger.
const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)

// ParseAction parses "buy" or "sell" in any case.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToUpper(strings.TrimSpace(s))); a {
	case Buy, Sell:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action %q, want %q or %q", s, Buy, Sell)
	}
}

// Transaction is a single ledger row: a quantity of a security bought or sold on a given day.
type Transaction struct {
	Date     Date     `json:"date"`
	Symbol   string   `json:"symbol"`
	Action   Action   `json:"action"`
	Quantity Quantity `json:"quantity"` // Quantity is always positive, Action gives the sign.
}

// NewBuy creates a new buy transaction.
func NewBuy(day Date, symbol string, quantity Quantity) Transaction {
	return Transaction{Date: day, Symbol: symbol, Action: Buy, Quantity: quantity}
}

// NewSell creates a new sell transaction.
func NewSell(day Date, symbol string, quantity Quantity) Transaction {
	return Transaction{Date: day, Symbol: symbol, Action: Sell, Quantity: quantity}
}

// Signed returns the quantity with the sign of the action: positive for a buy, negative for a sell.
func (t Transaction) Signed() Quantity {
	if t.Action == Sell {
		return t.Quantity.Neg()
	}
	return t.Quantity
}

// Validate checks the invariants of a single transaction.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("transaction date is missing")
	}
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("transaction symbol is missing")
	}
	if _, err := ParseAction(string(t.Action)); err != nil {
		return err
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("transaction quantity must be positive, got %s", t.Quantity)
	}
	return nil
}

// BySymbol returns a predicate selecting the transactions of a symbol.
func BySymbol(symbol string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Symbol == symbol }
}
