// Package cmd implements the CLI application of the portfolio dashboard.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/sgc/portfolio"
	"github.com/sgc/portfolio/eodhd"
	log "github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&snapshotCmd{}, "reports")
	c.Register(&overviewCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")

	c.Register(&serveCmd{}, "dashboard")
	c.Register(&AssistCmd{}, "dashboard")

	c.Register(&formatLedgerCmd{}, "ledger")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.csv", "Path to the ledger file containing transactions (CSV format)")
var apiKey = flag.String("eodhd-api-key", "", "EODHD API key, defaults to the EODHD_API_KEY environment variable, then to the demo key")
var benchmark = flag.String("benchmark", portfolio.DefaultBenchmark, "Symbol of the benchmark")
var currency = flag.String("currency", "USD", "Display currency of the amounts")
var lookbacks = flag.String("lookbacks", portfolio.DefaultLookbacksSpec, "Comma separated return windows, LABEL=DAYS or YTD")
var today = flag.String("today", "0d", "Date of the reports. See the dates topic for supported formats.")
var verbose = flag.Bool("v", false, "Enable debug logs")

// SetupLogging configures the package logger from the global flags.
func SetupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// DecodeLedger decodes the ledger from the application's ledger file.
func DecodeLedger() (*portfolio.Ledger, error) {
	return portfolio.LoadTransactions(*ledgerFile)
}

// EODHDKey returns the API key to use: the flag, the environment or the demo key.
func EODHDKey() string {
	if *apiKey != "" {
		return *apiKey
	}
	if key := os.Getenv("EODHD_API_KEY"); key != "" {
		return key
	}
	log.Warn("no EODHD API key, using the demo key which only knows a few tickers")
	return eodhd.DemoKey
}

// NewDashboard loads the ledger and creates the dashboard configured by the global flags.
func NewDashboard() (*portfolio.Dashboard, error) {
	on, err := portfolio.ParseDate(*today)
	if err != nil {
		return nil, fmt.Errorf("invalid -today: %w", err)
	}
	lbs, err := portfolio.ParseLookbacks(*lookbacks, on)
	if err != nil {
		return nil, fmt.Errorf("invalid -lookbacks: %w", err)
	}
	ledger, err := DecodeLedger()
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return portfolio.NewDashboard(ledger, eodhd.New(EODHDKey()),
		portfolio.WithToday(on),
		portfolio.WithLookbacks(lbs),
		portfolio.WithBenchmark(strings.TrimSpace(*benchmark)),
		portfolio.WithCurrency(*currency),
	)
}
