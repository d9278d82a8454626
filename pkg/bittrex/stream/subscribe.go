package stream

import (
	"fmt"
	"strings"
)

// Subscribe вызывает метод первого хаба, например
// SubscribeToExchangeDeltas с рынком в аргументах.
func (c *Client) Subscribe(method string, args ...any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	hub := ""
	if len(c.hubs) > 0 {
		hub = strings.ToLower(c.hubs[0])
	}
	if args == nil {
		args = []any{}
	}

	c.invocation++
	msg := Invocation{
		Hub:    hub,
		Method: method,
		Args:   args,
		ID:     c.invocation,
	}

	if err := c.conn.WriteJSON(msg); err != nil {
		return fmt.Errorf("Не удалось отправить подписку: %w", err)
	}

	c.logEntry().WithFields(map[string]interface{}{
		"method": method,
		"id":     msg.ID,
	}).Debug("Подписка отправлена.")

	return nil
}
