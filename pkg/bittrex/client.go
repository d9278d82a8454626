package bittrex

import (
	"context"
	"strings"

	"bittrexapi/pkg/nonce"
	"bittrexapi/pkg/query"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Client struct {
	store     *Store
	nonces    *nonce.Generator
	transport Transport
	log       logrus.FieldLogger
}

type Option func(*Client)

func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

func WithNonceGenerator(g *nonce.Generator) Option {
	return func(c *Client) {
		c.nonces = g
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		store: NewStore(),
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.nonces == nil {
		c.nonces = nonce.New(nonce.WithWindow(c.store.Settings().NonceWindow))
	}
	if c.transport == nil {
		c.transport = NewRestyTransport(nil)
	}

	return c
}

// Options накладывает частичные настройки поверх текущих.
func (c *Client) Options(values map[string]any) error {
	settings, err := c.store.Merge(values)
	if err != nil {
		return err
	}
	c.nonces.SetWindow(settings.NonceWindow)
	return nil
}

func (c *Client) Settings() Settings {
	return c.store.Settings()
}

func (c *Client) Store() *Store {
	return c.store
}

func (c *Client) Signer() *Signer {
	return NewSigner(c.store.Settings(), c.nonces)
}

func (c *Client) call(ctx context.Context, ep Endpoint, params query.Params) (*Response, error) {
	settings := c.store.Settings()
	target := strings.TrimRight(settings.baseURL(ep.Version), "/") + ep.Path

	var (
		req *Request
		err error
	)
	if ep.Auth {
		req, err = NewSigner(settings, c.nonces).Authenticated(target, params)
	} else {
		req, err = publicRequest(settings, target, params)
	}
	if err != nil {
		return nil, err
	}

	return c.dispatch(ctx, ep.Name, settings.Verbose, req)
}

func (c *Client) dispatch(ctx context.Context, name string, verbose bool, req *Request) (*Response, error) {
	entry := c.log.WithFields(logrus.Fields{
		"component":  "bittrex_rest",
		"endpoint":   name,
		"request_id": uuid.NewString(),
	})

	if verbose {
		entry.WithField("url", req.URL).Info("Отправка запроса.")
	} else {
		entry.Debug("Отправка запроса.")
	}

	resp, err := c.transport.Get(ctx, req)
	if err != nil {
		entry.WithError(err).Warn("Запрос завершился ошибкой.")
		return nil, err
	}

	entry.WithField("status", resp.StatusCode).Debug("Ответ получен.")
	return resp, nil
}
