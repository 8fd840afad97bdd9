// Package portfolio computes the figures of a personal portfolio dashboard
// from a small ledger of buy and sell transactions and an external source of
// market prices.
//
// The core functionalities include:
//   - Ledger Loading: reading the transactions CSV into a Ledger, always in
//     chronological order, with a single canonical Position function.
//   - Market Data: a Provider contract for quotes, daily closing histories and
//     company names, and the alignment of several histories on common dates.
//   - Snapshot: the table of current holdings with latest price, weight and
//     returns over fixed lookback windows.
//   - Performance: the daily portfolio value series and its comparison with a
//     benchmark, both normalized to 100.
//
// Everything is stateless: a Dashboard recomputes all figures from the ledger
// and the provider on every call. Per-symbol provider failures are reported as
// recoverable *Error values and never abort a computation; malformed ledgers
// and failed joins do.
package portfolio
