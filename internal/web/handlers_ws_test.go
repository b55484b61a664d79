package web

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"nldump/internal/dumper"
)

func newTestHub() *WSHub {
	return NewWSHub(testLogger())
}

func messageEvent(family, text string) dumper.Event {
	return dumper.MessageEvent{Family: family, Text: text}.Event()
}

func TestWSHubRegisterUnregister(t *testing.T) {
	hub := newTestHub()
	go hub.Run()
	defer hub.Stop()

	client := &wsClient{send: make(chan []byte, 16)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	if n := hub.Clients(); n != 1 {
		t.Errorf("after register: count = %d, want 1", n)
	}

	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	if n := hub.Clients(); n != 0 {
		t.Errorf("after unregister: count = %d, want 0", n)
	}
}

func TestWSHubBroadcast(t *testing.T) {
	hub := newTestHub()
	go hub.Run()
	defer hub.Stop()

	c1 := &wsClient{send: make(chan []byte, 16)}
	c2 := &wsClient{send: make(chan []byte, 16)}
	hub.register <- c1
	hub.register <- c2
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(messageEvent("nl80211", "hello"))
	time.Sleep(10 * time.Millisecond)

	for i, c := range []*wsClient{c1, c2} {
		select {
		case msg := <-c.send:
			var ev struct {
				Type string `json:"type"`
				Data struct {
					Text string `json:"text"`
				} `json:"data"`
			}
			if err := json.Unmarshal(msg, &ev); err != nil {
				t.Fatal(err)
			}
			if ev.Type != dumper.EventMessage || ev.Data.Text != "hello" {
				t.Errorf("c%d got %s", i+1, msg)
			}
		default:
			t.Errorf("c%d did not receive broadcast", i+1)
		}
	}
}

func TestWSHubFilters(t *testing.T) {
	hub := newTestHub()
	go hub.Run()
	defer hub.Stop()

	onlyCtrl := &wsClient{send: make(chan []byte, 16), families: splitFilter("nlctrl")}
	onlyErrors := &wsClient{send: make(chan []byte, 16), types: splitFilter(dumper.EventSourceError)}
	hub.register <- onlyCtrl
	hub.register <- onlyErrors
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(messageEvent("nl80211", "a"))
	hub.Broadcast(messageEvent("nlctrl", "b"))
	hub.Broadcast(dumper.SourceEvent{Error: "x"}.Event())
	time.Sleep(20 * time.Millisecond)

	if n := len(onlyCtrl.send); n != 2 {
		t.Errorf("family filter delivered %d events, want 2", n)
	}
	if n := len(onlyErrors.send); n != 1 {
		t.Errorf("type filter delivered %d events, want 1", n)
	}
}

func TestSplitFilter(t *testing.T) {
	if splitFilter("") != nil {
		t.Error("empty filter not nil")
	}
	got := splitFilter(" a, b ,,")
	if len(got) != 2 || !got["a"] || !got["b"] {
		t.Errorf("got %v", got)
	}
}

func TestWSHubSlowClientEviction(t *testing.T) {
	hub := newTestHub()
	go hub.Run()
	defer hub.Stop()

	slow := &wsClient{send: make(chan []byte, 1)}
	fast := &wsClient{send: make(chan []byte, 64)}
	hub.register <- slow
	hub.register <- fast
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(messageEvent("nl80211", "1"))
	time.Sleep(10 * time.Millisecond)
	hub.Broadcast(messageEvent("nl80211", "2"))
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	_, slowPresent := hub.clients[slow]
	_, fastPresent := hub.clients[fast]
	hub.mu.RUnlock()

	if slowPresent {
		t.Error("slow client should have been evicted")
	}
	if !fastPresent {
		t.Error("fast client should still be present")
	}
}

func TestWSHubBroadcastDropsWhenFull(t *testing.T) {
	hub := newTestHub()
	// Run is not started, so nothing drains the channel.
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.Broadcast(messageEvent("nl80211", "fill"))
	}

	done := make(chan struct{})
	go func() {
		hub.Broadcast(messageEvent("nl80211", "overflow"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Error("Broadcast blocked when channel is full")
	}
}

func TestWSHubStopClosesClients(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	client := &wsClient{send: make(chan []byte, 16)}
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	hub.Stop()
	hub.Stop()
	time.Sleep(10 * time.Millisecond)

	if _, ok := <-client.send; ok {
		t.Error("client.send should be closed after hub stop")
	}
}

func TestWSStream(t *testing.T) {
	env := setupTestServer(t)
	ts := httptest.NewServer(env.srv)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?family=test"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	var hello struct {
		Type string         `json:"type"`
		Data map[string]any `json:"data"`
	}
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		t.Fatal(err)
	}
	if hello.Type != eventHello || hello.Data["version"] != "test" {
		t.Errorf("hello = %+v", hello)
	}

	deadline := time.Now().Add(2 * time.Second)
	for env.srv.wsHub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	env.events.PublishMessage(dumper.MessageEvent{Family: "nl80211", Text: "filtered out"})
	env.events.PublishMessage(dumper.MessageEvent{Family: "test", Text: "test GET v1 seq=1 pid=0 {}"})

	var ev struct {
		Type string              `json:"type"`
		Data dumper.MessageEvent `json:"data"`
	}
	if err := wsjson.Read(ctx, conn, &ev); err != nil {
		t.Fatal(err)
	}
	if ev.Type != dumper.EventMessage || ev.Data.Family != "test" {
		t.Errorf("event = %+v", ev)
	}
}
