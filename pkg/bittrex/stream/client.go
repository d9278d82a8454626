package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"bittrexapi/pkg/bittrex"
	"bittrexapi/pkg/query"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	clientProtocol = "1.5"
	readLimit      = 2 << 20
)

var ErrNotConnected = errors.New("WS соединение не установлено")

func New(settings bittrex.Settings, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		url:    settings.StreamURL,
		hubs:   append([]string(nil), settings.StreamHubs...),
		log:    log,
		dialer: websocket.DefaultDialer,
		done:   make(chan struct{}),
	}
}

func (c *Client) Connect(ctx context.Context, h Handler) error {
	target, err := c.connectURL()
	if err != nil {
		return err
	}

	c.logEntry().WithField("url", target).Info("Подключение к WS.")

	conn, _, err := c.dialer.DialContext(ctx, target, nil)
	if err != nil {
		return fmt.Errorf("Не удалось подключиться к WS: %w", err)
	}
	conn.SetReadLimit(readLimit)

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.logEntry().Info("WS соединение установлено.")

	go c.readLoop(conn, h)

	return nil
}

func (c *Client) connectURL() (string, error) {
	hubs := make([]hubData, 0, len(c.hubs))
	for _, hub := range c.hubs {
		hubs = append(hubs, hubData{Name: strings.ToLower(hub)})
	}

	data, err := json.Marshal(hubs)
	if err != nil {
		return "", fmt.Errorf("Не удалось подготовить connectionData: %w", err)
	}

	return query.Apply(c.url, query.New(
		"transport", "webSockets",
		"clientProtocol", clientProtocol,
		"connectionData", string(data),
	))
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)

		c.mu.Lock()
		defer c.mu.Unlock()

		if c.conn == nil {
			return
		}
		_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		err = c.conn.Close()
	})
	return err
}

func (c *Client) logEntry() *logrus.Entry {
	return c.log.WithField("component", "bittrex_ws")
}
