package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sgc/portfolio"
)

type formatLedgerCmd struct {
	output string
}

func (*formatLedgerCmd) Name() string     { return "format-ledger" }
func (*formatLedgerCmd) Synopsis() string { return "formats the ledger file into a canonical form" }
func (*formatLedgerCmd) Usage() string {
	return `sgc format-ledger [-o <file>]

  Rewrites the ledger in its canonical form: the date, symbol, action and
  quantity columns, sorted by date. See the ledger topic.
`
}

func (p *formatLedgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.output, "o", "", "Output file, '-' for stdout. Defaults to the ledger file itself.")
}

func (p *formatLedgerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	switch p.output {
	case "-":
		err = portfolio.EncodeLedger(os.Stdout, ledger)
	case "":
		err = portfolio.SaveLedger(*ledgerFile, ledger)
	default:
		err = portfolio.SaveLedger(p.output, ledger)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if p.output == "" {
		fmt.Printf("Ledger file '%s' has been formatted.\n", *ledgerFile)
	}
	return subcommands.ExitSuccess
}
