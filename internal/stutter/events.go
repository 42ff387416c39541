package stutter

import (
	"slices"
	"sync"
)

// Event is a user request raised by an overlay.
type Event int

const (
	// EventClose ends the session.
	EventClose Event = iota
	// EventPauseToggle pauses when playing and plays otherwise.
	EventPauseToggle
	// EventSkipForward jumps ahead by the skip count.
	EventSkipForward
	// EventSkipPrevious jumps back by the skip count and eases back in.
	EventSkipPrevious
	// EventPause stops playback.
	EventPause
	// EventRestart plays again from the first word.
	EventRestart
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventClose:
		return "close"
	case EventPauseToggle:
		return "pauseToggle"
	case EventSkipForward:
		return "skipForward"
	case EventSkipPrevious:
		return "skipPrevious"
	case EventPause:
		return "pause"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// EventHub keeps handlers per event. Overlays embed it to provide the
// Subscribe half of the Overlay interface. The zero value is ready to use.
type EventHub struct {
	mu       sync.Mutex
	nextID   int
	handlers map[Event]map[int]func()
}

// Subscribe registers fn for e and returns a func that removes it.
func (h *EventHub) Subscribe(e Event, fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.handlers == nil {
		h.handlers = make(map[Event]map[int]func())
	}
	if h.handlers[e] == nil {
		h.handlers[e] = make(map[int]func())
	}
	id := h.nextID
	h.nextID++
	h.handlers[e][id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers[e], id)
	}
}

// Emit runs every handler registered for e, in registration order. Handlers
// run without the hub lock held, so they may subscribe or unsubscribe.
func (h *EventHub) Emit(e Event) {
	h.mu.Lock()
	ids := make([]int, 0, len(h.handlers[e]))
	for id := range h.handlers[e] {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, h.handlers[e][id])
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of handlers registered for e.
func (h *EventHub) Len(e Event) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.handlers[e])
}
