package bittrex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bittrexapi/pkg/nonce"
	"bittrexapi/pkg/query"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyTransportPreservesSignedRequest(t *testing.T) {
	var (
		gotQuery  string
		gotSign   string
		gotAgent  string
		gotMethod string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotSign = r.Header.Get("apisign")
		gotAgent = r.Header.Get("User-Agent")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"result":[]}`))
	}))
	defer srv.Close()

	log, _ := test.NewNullLogger()
	c := New(
		WithTransport(NewRestyTransport(resty.New())),
		WithNonceGenerator(nonce.New(nonce.WithClock(func() time.Time { return time.UnixMilli(5) }))),
		WithLogger(log),
	)
	require.NoError(t, c.Options(map[string]any{
		"api_key":    "K",
		"api_secret": "S",
		"base_url":   srv.URL,
	}))

	resp, err := c.GetBalance(context.Background(), query.New("currency", "BTC", "zeta", "1", "alpha", "2"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"success":true,"result":[]}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "apikey=K&nonce=5&currency=BTC&zeta=1&alpha=2", gotQuery)
	assert.Equal(t, Sign(srv.URL+"/account/getbalance?"+gotQuery, "S"), gotSign)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestRestyTransportStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"APIKEY_INVALID"}`))
	}))
	defer srv.Close()

	tr := NewRestyTransport(nil)
	resp, err := tr.Get(context.Background(), NewRequest(srv.URL+"/account/getbalances", NewStore().Settings()))
	assert.Nil(t, resp)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Contains(t, string(httpErr.Body), "APIKEY_INVALID")
	assert.Contains(t, httpErr.Error(), "401")
}

func TestRestyTransportTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	req := NewRequest(srv.URL, NewStore().Settings())
	req.Timeout = 50 * time.Millisecond

	_, err := NewRestyTransport(nil).Get(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRestyTransportConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	_, err := NewRestyTransport(nil).Get(context.Background(), NewRequest(target, NewStore().Settings()))
	assert.Error(t, err)
}
