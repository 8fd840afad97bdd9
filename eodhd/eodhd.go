// Package eodhd implements a portfolio.Provider backed by the EOD Historical Data API.
//
// Symbols in the ledger use the Yahoo Finance convention ("SHOP.TO",
// "VOD.L", "SAP.DE", bare "AAPL" for US listings); they are translated to
// EODHD tickers ("SHOP.TO", "VOD.LSE", "SAP.XETRA", "AAPL.US") before any
// call.
package eodhd

import (
	"context"
	"net/http"
	"strings"

	"github.com/sgc/portfolio"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the root of the EODHD API.
const DefaultBaseURL = "https://eodhd.com/api"

// DemoKey is the public API key, it is limited to a handful of tickers like AAPL.US or MCD.US.
const DemoKey = "demo"

// Client is an EODHD API client.
type Client struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	exchange string // exchange code for bare tickers
}

var _ portfolio.Provider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mostly for tests.
func WithBaseURL(addr string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(addr, "/") }
}

// WithHTTPClient sets the http.Client used for every call.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.client = client }
}

// WithExchange sets the EODHD exchange code given to symbols without a suffix. Defaults to "US".
func WithExchange(code string) Option {
	return func(c *Client) { c.exchange = strings.ToUpper(code) }
}

// New returns a client for apiKey.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		baseURL:  DefaultBaseURL,
		exchange: "US",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = newLoggingClient()
	}
	return c
}

// yahooSuffixes maps Yahoo Finance exchange suffixes to EODHD exchange codes.
var yahooSuffixes = map[string]string{
	"TO": "TO",    // Toronto
	"V":  "V",     // TSX Venture
	"NE": "NEO",   // Cboe Canada
	"L":  "LSE",   // London
	"DE": "XETRA", // Xetra
	"F":  "F",     // Frankfurt
	"PA": "PA",    // Euronext Paris
	"AS": "AS",    // Euronext Amsterdam
	"BR": "BR",    // Euronext Brussels
	"LS": "LS",    // Euronext Lisbon
	"IR": "IR",    // Euronext Dublin
	"MI": "MI",    // Milan
	"MC": "MC",    // Madrid
	"SW": "SW",    // SIX Swiss
	"VI": "VI",    // Vienna
	"ST": "ST",    // Stockholm
	"OL": "OL",    // Oslo
	"CO": "CO",    // Copenhagen
	"HE": "HE",    // Helsinki
	"AX": "AU",    // Australia
	"HK": "HK",    // Hong Kong
	"KS": "KO",    // Korea
	"SS": "SHG",   // Shanghai
	"SZ": "SHE",   // Shenzhen
	"NS": "NSE",   // India NSE
	"BO": "BSE",   // India BSE
	"SA": "SA",    // Sao Paulo
	"MX": "MX",    // Mexico
	"JO": "JSE",   // Johannesburg
}

// Ticker returns the EODHD ticker of a Yahoo style symbol.
//
// Indices ("^GSPC") go to the INDX exchange, unknown suffixes are kept as is
// so that EODHD tickers can be used directly in the ledger.
func (c *Client) Ticker(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if strings.HasPrefix(s, "^") {
		return s[1:] + ".INDX"
	}
	if i := strings.LastIndex(s, "."); i > 0 {
		base, suffix := s[:i], s[i+1:]
		if code, ok := yahooSuffixes[suffix]; ok {
			return base + "." + code
		}
		return s
	}
	return s + "." + c.exchange
}

// Quotes returns the latest price of each symbol in a single call.
//
// Symbols EODHD has no price for are absent from the result.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	res := make(map[string]decimal.Decimal, len(symbols))
	if len(symbols) == 0 {
		return res, nil
	}
	tickers := make([]string, 0, len(symbols))
	bySymbol := make(map[string]string, len(symbols)) // ticker -> symbol
	for _, s := range symbols {
		t := c.Ticker(s)
		tickers = append(tickers, t)
		bySymbol[t] = s
	}

	quotes, err := c.fetchRealTime(ctx, tickers)
	if err != nil {
		return nil, err
	}
	for ticker, price := range quotes {
		if s, ok := bySymbol[ticker]; ok {
			res[s] = price
		}
	}
	return res, nil
}

// History returns the split and dividend adjusted daily closes of symbol between from and to.
func (c *Client) History(ctx context.Context, symbol string, from, to portfolio.Date) (*portfolio.PriceHistory, error) {
	return c.fetchHistory(ctx, c.Ticker(symbol), from, to)
}

// Info returns the company name and trading currency of symbol.
func (c *Client) Info(ctx context.Context, symbol string) (portfolio.SecurityInfo, error) {
	return c.fetchFundamentals(ctx, c.Ticker(symbol))
}
