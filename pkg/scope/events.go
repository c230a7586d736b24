// pkg/scope/events.go
// Copyright(c) 2024-2026 globeview contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package scope

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/globeview/globeview/pkg/log"
	"github.com/globeview/globeview/pkg/model"
)

type EventType int

const (
	SelectionChangedEvent EventType = iota
	HoverChangedEvent
)

func (t EventType) String() string {
	return [...]string{"SelectionChanged", "HoverChanged"}[t]
}

// Event is posted by the scope when the selection or hover changes.
// Point is nil when the change is a clear.
type Event struct {
	Type  EventType
	Key   string
	Point *model.GeoPoint
}

func (e Event) String() string {
	return fmt.Sprintf("%s: %q", e.Type, e.Key)
}

// EventStream provides a basic pub/sub interface between the scope and
// whatever host UI cares about selection and hover changes; subscribers
// poll it rather than registering callbacks, which keeps all mutation of
// host state on the host's own schedule.
type EventStream struct {
	mu            sync.Mutex
	lg            *log.Logger
	events        []Event
	lastCompact   time.Time
	subscriptions map[*EventsSubscription]interface{}
}

type EventsSubscription struct {
	stream *EventStream
	// offset is the offset in the EventStream events array up to which
	// the subscriber has consumed events so far.
	offset int
	source string
}

func (e *EventsSubscription) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("offset", e.offset),
		slog.String("source", e.source))
}

func NewEventStream(lg *log.Logger) *EventStream {
	return &EventStream{
		lg:            lg,
		subscriptions: make(map[*EventsSubscription]interface{}),
	}
}

// Subscribe registers a new subscriber to the stream; it will see only
// events posted after this call.
func (e *EventStream) Subscribe() *EventsSubscription {
	// Record the subscriber's callsite, so that we can more easily debug
	// subscribers that aren't consuming events.
	_, fn, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", fn, line)

	e.mu.Lock()
	defer e.mu.Unlock()

	sub := &EventsSubscription{
		stream: e,
		offset: len(e.events),
		source: source,
	}
	e.subscriptions[sub] = nil
	return sub
}

// Unsubscribe removes a subscriber from the subscriber list.
func (e *EventsSubscription) Unsubscribe() {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to unsubscribe invalid subscription: %+v", e)
	}
	delete(e.stream.subscriptions, e)
	e.stream = nil
}

// Post adds an event to the stream.
func (e *EventStream) Post(event Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.lg.Debug("posted event", slog.Any("event", event))

	// Ignore the event if no one's paying attention.
	if len(e.subscriptions) > 0 {
		e.events = append(e.events, event)
	}
}

// Get returns all of the events posted to the stream since the
// subscriber last called Get.
func (e *EventsSubscription) Get() []Event {
	e.stream.mu.Lock()
	defer e.stream.mu.Unlock()

	if _, ok := e.stream.subscriptions[e]; !ok {
		e.stream.lg.Errorf("Attempted to get with unregistered subscription: %+v", e)
		return nil
	}

	events := e.stream.events[e.offset:]
	e.offset = len(e.stream.events)

	if time.Since(e.stream.lastCompact) > 1*time.Second {
		e.stream.compact()
		e.stream.lastCompact = time.Now()
	}

	return events
}

// compact reclaims storage for events that all subscribers have seen; it
// is called periodically so that EventStream memory usage doesn't grow
// without bound.
func (e *EventStream) compact() {
	minOffset := len(e.events)
	for sub := range e.subscriptions {
		if sub.offset < minOffset {
			minOffset = sub.offset
		}
	}

	if len(e.events) > 1000 {
		e.lg.Warnf("EventStream length %d", len(e.events))
	}

	if minOffset > cap(e.events)/2 {
		n := len(e.events) - minOffset

		copy(e.events, e.events[minOffset:])
		e.events = e.events[:n]

		for sub := range e.subscriptions {
			sub.offset -= minOffset
		}
	}
}
