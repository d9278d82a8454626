package bittrex

import (
	"context"

	"bittrexapi/pkg/query"
)

func (c *Client) GetBalances(ctx context.Context) (*Response, error) {
	return c.mustCall(ctx, EndpointGetBalances, nil)
}

func (c *Client) GetBalance(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetBalance, params)
}

func (c *Client) GetWithdrawalHistory(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetWithdrawalHistory, params)
}

func (c *Client) GetDepositAddress(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetDepositAddress, params)
}

func (c *Client) GetDepositHistory(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetDepositHistory, params)
}

// GetOrderHistory можно звать без параметров.
func (c *Client) GetOrderHistory(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetOrderHistory, params)
}

func (c *Client) GetOrder(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointGetOrder, params)
}

func (c *Client) Withdraw(ctx context.Context, params query.Params) (*Response, error) {
	return c.mustCall(ctx, EndpointWithdraw, params)
}
