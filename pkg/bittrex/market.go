package bittrex

import (
	"context"

	"bittrexapi/pkg/query"
)

func (c *Client) BuyLimit(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointBuyLimit, params)
}

func (c *Client) BuyMarket(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointBuyMarket, params)
}

func (c *Client) SellLimit(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointSellLimit, params)
}

func (c *Client) SellMarket(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointSellMarket, params)
}

func (c *Client) TradeBuy(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointTradeBuy, params)
}

func (c *Client) TradeSell(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointTradeSell, params)
}

func (c *Client) Cancel(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointCancel, params)
}

func (c *Client) GetOpenOrders(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetOpenOrders, params)
}
