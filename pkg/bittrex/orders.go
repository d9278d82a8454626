package bittrex

import (
	"bittrexapi/pkg/query"

	"github.com/shopspring/decimal"
)

type LimitOrder struct {
	Market   string
	Quantity decimal.Decimal
	Rate     decimal.Decimal
}

func (o LimitOrder) Params() query.Params {
	return query.New(
		"market", o.Market,
		"quantity", o.Quantity,
		"rate", o.Rate,
	)
}

type MarketOrder struct {
	Market   string
	Quantity decimal.Decimal
}

func (o MarketOrder) Params() query.Params {
	return query.New(
		"market", o.Market,
		"quantity", o.Quantity,
	)
}

// TradeOrder параметры v2 TradeBuy/TradeSell.
type TradeOrder struct {
	MarketName    string
	OrderType     string
	Quantity      decimal.Decimal
	Rate          decimal.Decimal
	TimeInEffect  string
	ConditionType string
	Target        decimal.Decimal
}

func (o TradeOrder) Params() query.Params {
	conditionType := o.ConditionType
	if conditionType == "" {
		conditionType = "NONE"
	}
	return query.New(
		"MarketName", o.MarketName,
		"OrderType", o.OrderType,
		"Quantity", o.Quantity,
		"Rate", o.Rate,
		"TimeInEffect", o.TimeInEffect,
		"ConditionType", conditionType,
		"Target", o.Target,
	)
}

type Withdrawal struct {
	Currency  string
	Quantity  decimal.Decimal
	Address   string
	PaymentID string
}

func (w Withdrawal) Params() query.Params {
	p := query.New(
		"currency", w.Currency,
		"quantity", w.Quantity,
		"address", w.Address,
	)
	if w.PaymentID != "" {
		p = p.Set("paymentid", w.PaymentID)
	}
	return p
}
