package bittrex

import (
	"context"
	"net/http"
	"slices"
	"time"

	"bittrexapi/pkg/query"
)

const (
	SignatureHeader = "apisign"
	contentType     = "application/x-www-form-urlencoded"
)

// Request описывает один вызов. После передачи в Transport не меняется.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	Timeout time.Duration
}

type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

type Transport interface {
	Get(ctx context.Context, req *Request) (*Response, error)
}

// NewRequest собирает шаблон запроса с заголовками по умолчанию.
func NewRequest(rawURL string, settings Settings) *Request {
	header := http.Header{}
	header.Set("User-Agent", settings.UserAgent)
	header.Set("Content-Type", contentType)

	return &Request{
		Method:  http.MethodGet,
		URL:     rawURL,
		Header:  header,
		Timeout: settings.RequestTimeout,
	}
}

func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	out := *r
	out.Header = r.Header.Clone()
	if out.Header == nil {
		out.Header = http.Header{}
	}
	out.Body = slices.Clone(r.Body)
	return &out
}

func (r *Request) Signature() string {
	return r.Header.Get(SignatureHeader)
}

func (r *Response) String() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

func publicRequest(settings Settings, rawURL string, params query.Params) (*Request, error) {
	target, err := query.Apply(rawURL, params)
	if err != nil {
		return nil, err
	}
	return NewRequest(target, settings), nil
}
