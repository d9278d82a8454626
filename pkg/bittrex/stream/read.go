package stream

import (
	"github.com/gorilla/websocket"
)

func (c *Client) readLoop(conn *websocket.Conn, h Handler) {
	c.logEntry().Debug("readLoop запущен.")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				c.logEntry().Debug("readLoop остановлен.")
				return
			default:
			}

			c.logEntry().WithError(err).Warn("Ошибка чтения WS.")
			if h != nil {
				h(nil, err)
			}
			return
		}

		if h != nil {
			h(data, nil)
		}
	}
}
