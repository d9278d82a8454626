package stream

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Handler получает каждый кадр как есть. Ошибка чтения приходит один раз,
// после неё вызовов больше нет.
type Handler func(frame []byte, err error)

type Client struct {
	url    string
	hubs   []string
	log    logrus.FieldLogger
	dialer *websocket.Dialer

	mu         sync.Mutex
	conn       *websocket.Conn
	invocation int

	done      chan struct{}
	closeOnce sync.Once
}

type hubData struct {
	Name string `json:"name"`
}

// Invocation кадр вызова метода хаба.
type Invocation struct {
	Hub    string `json:"H"`
	Method string `json:"M"`
	Args   []any  `json:"A"`
	ID     int    `json:"I"`
}
