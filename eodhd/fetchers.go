package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sgc/portfolio"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// This file contains functions to access the EODHD API.

// endpoint returns the address of an API path, with the api key and json format set.
func (c *Client) endpoint(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_token", c.apiKey)
	query.Set("fmt", "json")
	return c.baseURL + path + "?" + query.Encode()
}

// fetchHistory returns the daily adjusted closes of a given EODHD ticker.
// The EODHD ticker format is typically "SYMBOL.EXCHANGECODE".
func (c *Client) fetchHistory(ctx context.Context, ticker string, from, to portfolio.Date) (*portfolio.PriceHistory, error) {
	// https://eodhd.com/api/eod/MCD.US?api_token=demo&fmt=json&from=2024-01-01&to=2024-02-01
	// [
	//	{
	//		"date": "2024-02-13",
	//		"open": 675.066,
	//		"high": 684.219,
	//		"low": 648.659,
	//		"close": 668.445,
	//		"adjusted_close": 67.705,
	//		"volume": 0
	//	},
	// bounds are included in the response.
	query := url.Values{}
	query.Set("period", "d")
	if !from.IsZero() {
		query.Set("from", from.String())
	}
	if !to.IsZero() {
		query.Set("to", to.String())
	}
	addr := c.endpoint("/eod/"+url.PathEscape(ticker), query)

	type Info struct {
		Date          portfolio.Date  `json:"date"`
		Close         decimal.Decimal `json:"close"`
		AdjustedClose decimal.Decimal `json:"adjusted_close"`
	}
	// that's the payload
	content := make([]Info, 0)
	if err := jwget(ctx, c.client, addr, &content); err != nil {
		return nil, fmt.Errorf("could not fetch history of %s: %w", ticker, err)
	}

	h := portfolio.NewPriceHistory()
	for _, info := range content {
		price := info.AdjustedClose
		if price.IsZero() {
			price = info.Close
		}
		h.Append(info.Date, price)
	}
	return h, nil
}

// fetchRealTime returns the latest price of each ticker, keyed by ticker.
func (c *Client) fetchRealTime(ctx context.Context, tickers []string) (map[string]decimal.Decimal, error) {
	// https://eodhd.com/api/real-time/AAPL.US?s=VTI.US,EUR.FOREX&api_token=demo&fmt=json
	// one ticker:
	//	{"code":"AAPL.US","timestamp":1700251200,"gmtoffset":0,"open":189.57,"close":189.69,...}
	// several tickers:
	//	[{"code":"AAPL.US",...,"close":189.69}, {"code":"VTI.US",...,"close":"NA"}]
	query := url.Values{}
	if len(tickers) > 1 {
		query.Set("s", strings.Join(tickers[1:], ","))
	}
	addr := c.endpoint("/real-time/"+url.PathEscape(tickers[0]), query)

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("could not fetch quotes: %w", err)
	}
	items, ok := jobj.([]any)
	if !ok {
		items = []any{jobj}
	}

	res := make(map[string]decimal.Decimal, len(items))
	for _, item := range items {
		code, err := jsonpathString("$.code", item)
		if err != nil {
			return nil, fmt.Errorf("invalid quote payload: %w", err)
		}
		jval, err := jsonpathGet("$.close", item)
		if err != nil {
			return nil, fmt.Errorf("invalid quote for %s: %w", code, err)
		}
		price, ok := jval.(float64)
		if !ok {
			// "NA" when there is no trade
			log.WithField("ticker", code).Debugf("no quote: %v", jval)
			continue
		}
		res[code] = decimal.NewFromFloat(price)
	}
	return res, nil
}

// fetchFundamentals returns the general information of a given EODHD ticker.
func (c *Client) fetchFundamentals(ctx context.Context, ticker string) (portfolio.SecurityInfo, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	//	{"General": {"Code": "AAPL", "Type": "Common Stock", "Name": "Apple Inc", "CurrencyCode": "USD", ...}, ...}
	addr := c.endpoint("/fundamentals/"+url.PathEscape(ticker), nil)

	var jobj any
	if err := jwget(ctx, c.client, addr, &jobj); err != nil {
		return portfolio.SecurityInfo{}, fmt.Errorf("could not fetch fundamentals of %s: %w", ticker, err)
	}
	name, err := jsonpathString("$.General.Name", jobj)
	if err != nil {
		return portfolio.SecurityInfo{}, fmt.Errorf("invalid fundamentals for %s: %w", ticker, err)
	}
	currency, err := jsonpathString("$.General.CurrencyCode", jobj)
	if err != nil {
		// some funds have no currency code
		log.WithField("ticker", ticker).Debugf("no currency: %v", err)
	}
	return portfolio.SecurityInfo{Name: name, Currency: currency}, nil
}
