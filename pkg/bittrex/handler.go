package bittrex

import (
	"context"

	"bittrexapi/pkg/query"
)

// Handler получает результат ровно один раз: либо resp, либо err.
type Handler func(resp *Response, err error)

type Call func(ctx context.Context) (*Response, error)

func (c *Client) Go(ctx context.Context, call Call, h Handler) {
	if h == nil {
		h = func(*Response, error) {}
	}

	go func() {
		resp, err := call(ctx)
		if err != nil {
			h(nil, err)
			return
		}
		h(resp, nil)
	}()
}

func (c *Client) Async(ctx context.Context, name string, params query.Params, h Handler) {
	c.Go(ctx, func(ctx context.Context) (*Response, error) {
		return c.Call(ctx, name, params)
	}, h)
}

// Callback адаптирует Handler к позиционному обработчику. При
// InverseCallbackArguments ошибка идёт первой, иначе первым идёт ответ.
// Отсутствующий аргумент передаётся как nil.
func (c *Client) Callback(fn func(first, second any)) Handler {
	return func(resp *Response, err error) {
		var result, failure any
		if resp != nil {
			result = resp
		}
		if err != nil {
			failure = err
		}

		if c.store.Settings().InverseCallbackArguments {
			fn(failure, result)
			return
		}
		fn(result, failure)
	}
}
