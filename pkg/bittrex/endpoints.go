package bittrex

import (
	"context"
	"fmt"
	"strings"

	"bittrexapi/pkg/query"
)

type Version int

const (
	V1 Version = iota + 1
	V2
)

type Endpoint struct {
	Name    string
	Version Version
	Path    string
	Auth    bool
}

const (
	EndpointGetMarkets           = "getmarkets"
	EndpointGetCurrencies        = "getcurrencies"
	EndpointGetTicker            = "getticker"
	EndpointGetMarketSummaries   = "getmarketsummaries"
	EndpointGetMarketSummary     = "getmarketsummary"
	EndpointGetOrderBook         = "getorderbook"
	EndpointGetMarketHistory     = "getmarkethistory"
	EndpointGetCandles           = "getcandles"
	EndpointBuyLimit             = "buylimit"
	EndpointBuyMarket            = "buymarket"
	EndpointSellLimit            = "selllimit"
	EndpointSellMarket           = "sellmarket"
	EndpointTradeBuy             = "tradebuy"
	EndpointTradeSell            = "tradesell"
	EndpointCancel               = "cancel"
	EndpointGetOpenOrders        = "getopenorders"
	EndpointGetBalances          = "getbalances"
	EndpointGetBalance           = "getbalance"
	EndpointGetWithdrawalHistory = "getwithdrawalhistory"
	EndpointGetDepositAddress    = "getdepositaddress"
	EndpointGetDepositHistory    = "getdeposithistory"
	EndpointGetOrderHistory      = "getorderhistory"
	EndpointGetOrder             = "getorder"
	EndpointWithdraw             = "withdraw"
)

var endpoints = []Endpoint{
	{Name: EndpointGetMarkets, Version: V1, Path: "/public/getmarkets"},
	{Name: EndpointGetCurrencies, Version: V1, Path: "/public/getcurrencies"},
	{Name: EndpointGetTicker, Version: V1, Path: "/public/getticker"},
	{Name: EndpointGetMarketSummaries, Version: V1, Path: "/public/getmarketsummaries"},
	{Name: EndpointGetMarketSummary, Version: V1, Path: "/public/getmarketsummary"},
	{Name: EndpointGetOrderBook, Version: V1, Path: "/public/getorderbook"},
	{Name: EndpointGetMarketHistory, Version: V1, Path: "/public/getmarkethistory"},
	{Name: EndpointGetCandles, Version: V2, Path: "/pub/market/GetTicks"},

	{Name: EndpointBuyLimit, Version: V1, Path: "/market/buylimit", Auth: true},
	{Name: EndpointBuyMarket, Version: V1, Path: "/market/buymarket", Auth: true},
	{Name: EndpointSellLimit, Version: V1, Path: "/market/selllimit", Auth: true},
	{Name: EndpointSellMarket, Version: V1, Path: "/market/sellmarket", Auth: true},
	{Name: EndpointTradeBuy, Version: V2, Path: "/key/market/TradeBuy", Auth: true},
	{Name: EndpointTradeSell, Version: V2, Path: "/key/market/TradeSell", Auth: true},
	{Name: EndpointCancel, Version: V1, Path: "/market/cancel", Auth: true},
	{Name: EndpointGetOpenOrders, Version: V1, Path: "/market/getopenorders", Auth: true},

	{Name: EndpointGetBalances, Version: V1, Path: "/account/getbalances", Auth: true},
	{Name: EndpointGetBalance, Version: V1, Path: "/account/getbalance", Auth: true},
	{Name: EndpointGetWithdrawalHistory, Version: V1, Path: "/account/getwithdrawalhistory", Auth: true},
	{Name: EndpointGetDepositAddress, Version: V1, Path: "/account/getdepositaddress", Auth: true},
	{Name: EndpointGetDepositHistory, Version: V1, Path: "/account/getdeposithistory", Auth: true},
	{Name: EndpointGetOrderHistory, Version: V1, Path: "/account/getorderhistory", Auth: true},
	{Name: EndpointGetOrder, Version: V1, Path: "/account/getorder", Auth: true},
	{Name: EndpointWithdraw, Version: V1, Path: "/account/withdraw", Auth: true},
}

func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

func LookupEndpoint(name string) (Endpoint, bool) {
	for _, ep := range endpoints {
		if strings.EqualFold(ep.Name, name) {
			return ep, true
		}
	}
	return Endpoint{}, false
}

func (c *Client) Call(ctx context.Context, name string, params query.Params) (*Response, error) {
	ep, ok := LookupEndpoint(name)
	if !ok {
		return nil, fmt.Errorf("Неизвестный метод API: %s", name)
	}
	return c.call(ctx, ep, params)
}

func (c *Client) mustCall(ctx context.Context, name string, params query.Params) (*Response, error) {
	ep, ok := LookupEndpoint(name)
	if !ok {
		panic("bittrex: метод не зарегистрирован: " + name)
	}
	return c.call(ctx, ep, params)
}
