package portfolio

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// LoadTransactions opens and decodes the ledger file at path.
func LoadTransactions(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	log.WithField("file", path).Debugf("loaded %d transactions for %d symbols", ledger.Len(), len(ledger.Symbols()))
	return ledger, nil
}

// SaveLedger writes the ledger to path in its canonical form, replacing any existing file.
func SaveLedger(path string, ledger *Ledger) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer file.Close()

	if err := EncodeLedger(file, ledger); err != nil {
		return fmt.Errorf("could not encode ledger file %q: %w", path, err)
	}
	return nil
}
