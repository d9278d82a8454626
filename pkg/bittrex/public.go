package bittrex

import (
	"context"

	"bittrexapi/pkg/query"
)

func (c *Client) GetMarkets(ctx context.Context) (*Response, error) {
	return c.mustCall(ctx, EndpointGetMarkets, nil)
}

func (c *Client) GetCurrencies(ctx context.Context) (*Response, error) {
	return c.mustCall(ctx, EndpointGetCurrencies, nil)
}

// GetTicker ожидает market, например BTC-LTC.
func (c *Client) GetTicker(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetTicker, params)
}

func (c *Client) GetMarketSummaries(ctx context.Context) (*Response, error) {
	return c.mustCall(ctx, EndpointGetMarketSummaries, nil)
}

func (c *Client) GetMarketSummary(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetMarketSummary, params)
}

// GetOrderBook ожидает market и type (buy, sell или both).
func (c *Client) GetOrderBook(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetOrderBook, params)
}

func (c *Client) GetMarketHistory(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetMarketHistory, params)
}

// GetCandles ходит в v2: marketName и tickInterval (oneMin, fiveMin, hour, day...).
func (c *Client) GetCandles(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetCandles, params)
}
