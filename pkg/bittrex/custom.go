package bittrex

import "context"

// SendCustomRequest отправляет произвольный URL. С credentials=true в запрос
// добавляются apikey, nonce и подпись.
func (c *Client) SendCustomRequest(ctx context.Context, rawURL string, credentials bool) (*Response, error) {
	settings := c.store.Settings()

	req := NewRequest(rawURL, settings)
	if credentials {
		var err error
		req, err = NewSigner(settings, c.nonces).Authenticated(rawURL, nil)
		if err != nil {
			return nil, err
		}
	}

	return c.dispatch(ctx, "custom", settings.Verbose, req)
}
