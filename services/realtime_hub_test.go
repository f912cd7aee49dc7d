package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// Event fan-out and keep-alive pings hit the same connection from
// different goroutines; without per-client serialization gorilla
// panics with "concurrent write to websocket connection".
func TestRealtimeHubSerializesConcurrentWrites(t *testing.T) {
	hub := NewRealtimeHub()
	up := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		cl := &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)
		registered <- cl
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(cl)
				return
			}
		}
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()

	cl := <-registered

	const writers, msgs = 4, 25
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < msgs; j++ {
				hub.Send(1, GroupEvent{Kind: EventListShared, GroupID: 1})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		// pings interleave with the fan-out, like the ws handler's
		// keep-alive goroutine
		for j := 0; j < msgs; j++ {
			_ = cl.Write(websocket.PingMessage, nil)
		}
	}()

	// pings are control frames, so ReadMessage returns data frames only
	for received := 0; received < writers*msgs; received++ {
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Fatalf("read %d: %v", received, err)
		}
	}
	wg.Wait()
}
