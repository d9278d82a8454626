package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bittrexapi/pkg/bittrex"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	data []byte
	err  error
}

func newServer(t *testing.T, serve func(conn *websocket.Conn, r *http.Request)) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		serve(conn, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server, hubs ...string) *Client {
	t.Helper()

	settings := bittrex.NewStore().Settings()
	settings.StreamURL = "ws" + strings.TrimPrefix(srv.URL, "http") + "/signalr/connect"
	if len(hubs) > 0 {
		settings.StreamHubs = hubs
	}

	log, _ := test.NewNullLogger()
	return New(settings, log)
}

func waitFrame(t *testing.T, ch <-chan frame) frame {
	t.Helper()
	select {
	case f := <-ch:
		return f
	case <-time.After(2 * time.Second):
		t.Fatal("no frame received")
		return frame{}
	}
}

func TestConnectSubscribeRelay(t *testing.T) {
	gotQuery := make(chan string, 1)
	gotInvocation := make(chan Invocation, 1)

	srv := newServer(t, func(conn *websocket.Conn, r *http.Request) {
		gotQuery <- r.URL.RawQuery

		var inv Invocation
		if err := conn.ReadJSON(&inv); err != nil {
			return
		}
		gotInvocation <- inv

		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"M":[{"H":"corehub","M":"updateExchangeState"}]}`))
		_, _, _ = conn.ReadMessage()
	})

	c := newClient(t, srv)
	frames := make(chan frame, 4)
	require.NoError(t, c.Connect(context.Background(), func(data []byte, err error) {
		frames <- frame{data: data, err: err}
	}))
	defer c.Close()

	q := <-gotQuery
	assert.Contains(t, q, "transport=webSockets")
	assert.Contains(t, q, "clientProtocol=1.5")
	assert.Contains(t, q, "connectionData="+`%5B%7B%22name%22%3A%22corehub%22%7D%5D`)

	require.NoError(t, c.Subscribe("SubscribeToExchangeDeltas", "BTC-ETH"))

	inv := <-gotInvocation
	assert.Equal(t, "corehub", inv.Hub)
	assert.Equal(t, "SubscribeToExchangeDeltas", inv.Method)
	assert.Equal(t, []any{"BTC-ETH"}, inv.Args)
	assert.Equal(t, 1, inv.ID)

	f := waitFrame(t, frames)
	require.NoError(t, f.err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(f.data, &payload))
	assert.Contains(t, payload, "M")
}

func TestReadErrorReportedOnce(t *testing.T) {
	srv := newServer(t, func(conn *websocket.Conn, r *http.Request) {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{}`))
	})

	c := newClient(t, srv)
	frames := make(chan frame, 4)
	require.NoError(t, c.Connect(context.Background(), func(data []byte, err error) {
		frames <- frame{data: data, err: err}
	}))

	first := waitFrame(t, frames)
	require.NoError(t, first.err)
	assert.Equal(t, "{}", string(first.data))

	second := waitFrame(t, frames)
	require.Error(t, second.err)
	assert.Nil(t, second.data)

	select {
	case extra := <-frames:
		t.Fatalf("unexpected frame after error: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}

	assert.NoError(t, c.Close())
}

func TestCloseStopsWithoutError(t *testing.T) {
	srv := newServer(t, func(conn *websocket.Conn, r *http.Request) {
		_, _, _ = conn.ReadMessage()
	})

	c := newClient(t, srv, "c2")
	frames := make(chan frame, 4)
	require.NoError(t, c.Connect(context.Background(), func(data []byte, err error) {
		frames <- frame{data: data, err: err}
	}))

	require.NoError(t, c.Close())
	assert.NoError(t, c.Close())

	select {
	case f := <-frames:
		t.Fatalf("handler called after Close: %+v", f)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscribeBeforeConnect(t *testing.T) {
	c := New(bittrex.NewStore().Settings(), nil)
	assert.ErrorIs(t, c.Subscribe("SubscribeToExchangeDeltas", "BTC-ETH"), ErrNotConnected)
}

func TestConnectDialError(t *testing.T) {
	settings := bittrex.NewStore().Settings()
	settings.StreamURL = "ws://127.0.0.1:1/signalr"

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := New(settings, nil).Connect(ctx, nil)
	assert.Error(t, err)
}
