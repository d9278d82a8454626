package bittrex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// RestyTransport выполняет Request как есть: строка запроса уже подписана,
// поэтому параметры не передаются через SetQueryParams, иначе resty
// пересортирует их.
type RestyTransport struct {
	http *resty.Client
}

func NewRestyTransport(client *resty.Client) *RestyTransport {
	if client == nil {
		client = resty.New()
	}
	return &RestyTransport{http: client}
}

func (t *RestyTransport) Get(ctx context.Context, req *Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	r := t.http.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header)

	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := r.Execute(method, req.URL)
	if err != nil {
		return nil, fmt.Errorf("Ошибка запроса: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       resp.Body(),
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}
