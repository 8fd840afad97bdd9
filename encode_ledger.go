package portfolio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ledgerColumns is the list of columns a ledger file must have, in canonical order.
var ledgerColumns = []string{"date", "symbol", "action", "quantity"}

// DecodeLedger decodes transactions from a CSV stream with a header line and
// returns a sorted Ledger.
//
// Columns can appear in any order, header names are matched case-insensitively
// and unknown columns are ignored. Any malformed row aborts the decoding with
// an error naming its line.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows are checked against the header below
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ledger is empty, want a header with columns %s", strings.Join(ledgerColumns, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("could not read ledger header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	var txs []Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read ledger: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}
		tx, err := decodeTransaction(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	ledger.Append(txs...)
	return ledger, nil
}

// columnIndex maps each required column to its position in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	var missing []string
	for _, c := range ledgerColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("ledger header %q is missing column(s) %s", strings.Join(header, ","), strings.Join(missing, ", "))
	}
	return index, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// decodeTransaction decodes a single CSV record.
func decodeTransaction(record []string, index map[string]int) (Transaction, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var tx Transaction
	var err error
	if tx.Date, err = parseDataDate(field("date")); err != nil {
		return tx, fmt.Errorf("invalid date: %w", err)
	}
	tx.Symbol = field("symbol")
	if tx.Action, err = ParseAction(field("action")); err != nil {
		return tx, err
	}
	if tx.Quantity, err = ParseQuantity(field("quantity")); err != nil {
		return tx, fmt.Errorf("invalid quantity %q: %w", field("quantity"), err)
	}
	if err := tx.Validate(); err != nil {
		return tx, err
	}
	return tx, nil
}

// EncodeLedger writes the ledger in its canonical CSV form: a header, then one
// row per transaction in chronological order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ledgerColumns); err != nil {
		return err
	}
	for tx := range ledger.All() {
		record := []string{tx.Date.String(), tx.Symbol, string(tx.Action), tx.Quantity.String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not encode transaction on %s for %q: %w", tx.Date, tx.Symbol, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
