package portfolio

import (
	"iter"
	"slices"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order. Transactions
// on the same day keep the order in which they were appended.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates a ledger holding txs, sorted by date.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the transactions by date, keeping the insertion order within a day.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of the transactions, in chronological order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// All returns an iterator over the transactions in chronological order.
func (l *Ledger) All() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Filter returns a new ledger with the transactions matching the predicate.
func (l *Ledger) Filter(predicate func(Transaction) bool) *Ledger {
	res := &Ledger{transactions: make([]Transaction, 0, len(l.transactions))}
	for _, tx := range l.transactions {
		if predicate(tx) {
			res.transactions = append(res.transactions, tx)
		}
	}
	return res
}

// Symbols returns the unique symbols of the ledger in order of first appearance.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]struct{})
	symbols := make([]string, 0)
	for _, tx := range l.transactions {
		if _, ok := seen[tx.Symbol]; ok {
			continue
		}
		seen[tx.Symbol] = struct{}{}
		symbols = append(symbols, tx.Symbol)
	}
	return symbols
}

// InceptionDate returns the date of the first transaction, or the zero date for an empty ledger.
func (l *Ledger) InceptionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}

// LastDate returns the date of the last transaction, or the zero date for an empty ledger.
func (l *Ledger) LastDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// Position computes the net quantity held of a security at the end of day 'on'.
//
// It is the signed sum of every buy and sell of that symbol dated on or
// before 'on'. Nothing prevents it from being negative.
func (l *Ledger) Position(symbol string, on Date) Quantity {
	var pos Quantity
	for _, tx := range l.transactions {
		if tx.Date.After(on) {
			break // transactions are sorted
		}
		if tx.Symbol == symbol {
			pos = pos.Add(tx.Signed())
		}
	}
	return pos
}

// Holding is the position of a symbol.
type Holding struct {
	Symbol   string
	Quantity Quantity
}

// Positions returns the position of every symbol of the ledger as of 'on', in
// order of first appearance.
func (l *Ledger) Positions(on Date) []Holding {
	symbols := l.Symbols()
	res := make([]Holding, 0, len(symbols))
	for _, s := range symbols {
		res = append(res, Holding{Symbol: s, Quantity: l.Position(s, on)})
	}
	return res
}

// NetHoldings returns the final positions that are strictly positive, in order of first appearance.
func (l *Ledger) NetHoldings() []Holding {
	all := l.Positions(l.LastDate())
	return slices.DeleteFunc(all, func(h Holding) bool { return !h.Quantity.IsPositive() })
}
