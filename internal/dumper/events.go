package dumper

import (
	"log/slog"
	"sync"
	"time"
)

// Event types, as seen by WebSocket and MQTT consumers.
const (
	EventMessage     = "message"
	EventSourceError = "source_error"
	EventSourceDone  = "source_done"
)

// Event is the wire envelope of a bus event.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// MessageEvent is published for every decoded message.
type MessageEvent struct {
	ID      uint64    `json:"id,omitempty"`
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Family  string    `json:"family"`
	Command string    `json:"command,omitempty"`
	Seq     uint32    `json:"seq"`
	PID     uint32    `json:"pid"`
	Text    string    `json:"text"`
}

// Event wraps ev for the wire.
func (ev MessageEvent) Event() Event {
	return Event{Type: EventMessage, Data: ev}
}

// SourceEvent is published once when a source ends. Error is empty when
// the source was simply exhausted.
type SourceEvent struct {
	Source string `json:"source"`
	Error  string `json:"error,omitempty"`
	Stats  Stats  `json:"stats"`
}

// Event wraps ev for the wire as source_error or source_done.
func (ev SourceEvent) Event() Event {
	if ev.Error != "" {
		return Event{Type: EventSourceError, Data: ev}
	}
	return Event{Type: EventSourceDone, Data: ev}
}

// Subscriber receives bus events; either callback may be nil.
type Subscriber struct {
	Message func(MessageEvent)
	Source  func(SourceEvent)
}

// EventBus delivers dumper output to subscribers synchronously, in the
// dumper's goroutine. Subscribers that need to block must hand off.
type EventBus struct {
	mu     sync.RWMutex
	subs   map[uint64]Subscriber
	nextID uint64
	logger *slog.Logger
}

func NewEventBus(logger *slog.Logger) *EventBus {
	return &EventBus{
		subs:   make(map[uint64]Subscriber),
		logger: logger,
	}
}

// Subscribe adds s and returns a function that removes it.
func (eb *EventBus) Subscribe(s Subscriber) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	id := eb.nextID
	eb.nextID++
	eb.subs[id] = s
	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		delete(eb.subs, id)
	}
}

// PublishMessage hands ev to every message subscriber.
func (eb *EventBus) PublishMessage(ev MessageEvent) {
	for _, s := range eb.snapshot() {
		if s.Message != nil {
			eb.call(EventMessage, func() { s.Message(ev) })
		}
	}
}

// PublishSource hands ev to every source subscriber.
func (eb *EventBus) PublishSource(ev SourceEvent) {
	typ := ev.Event().Type
	for _, s := range eb.snapshot() {
		if s.Source != nil {
			eb.call(typ, func() { s.Source(ev) })
		}
	}
}

func (eb *EventBus) snapshot() []Subscriber {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	subs := make([]Subscriber, 0, len(eb.subs))
	for _, s := range eb.subs {
		subs = append(subs, s)
	}
	return subs
}

// call runs one callback; a panic is logged and does not reach the dumper.
func (eb *EventBus) call(typ string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			eb.logger.Error("subscriber panic", "type", typ, "panic", r)
		}
	}()
	fn()
}
