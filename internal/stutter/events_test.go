package stutter

import (
	"reflect"
	"testing"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		event    Event
		expected string
	}{
		{EventClose, "close"},
		{EventPauseToggle, "pauseToggle"},
		{EventSkipForward, "skipForward"},
		{EventSkipPrevious, "skipPrevious"},
		{EventPause, "pause"},
		{EventRestart, "restart"},
		{Event(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.expected {
			t.Errorf("Event(%d).String() = %q, want %q", tt.event, got, tt.expected)
		}
	}
}

func TestEventHub(t *testing.T) {
	var hub EventHub
	var calls []string

	hub.Subscribe(EventPause, func() { calls = append(calls, "a") })
	unsub := hub.Subscribe(EventPause, func() { calls = append(calls, "b") })
	hub.Subscribe(EventClose, func() { calls = append(calls, "close") })

	hub.Emit(EventPause)
	if want := []string{"a", "b"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls %v, want %v", calls, want)
	}

	unsub()
	calls = nil
	hub.Emit(EventPause)
	hub.Emit(EventRestart)
	if want := []string{"a"}; !reflect.DeepEqual(calls, want) {
		t.Errorf("calls %v, want %v", calls, want)
	}
}

func TestEventHubHandlerMayUnsubscribe(t *testing.T) {
	var hub EventHub
	var n int
	var unsub func()
	unsub = hub.Subscribe(EventClose, func() {
		n++
		unsub()
	})

	hub.Emit(EventClose)
	hub.Emit(EventClose)
	if n != 1 {
		t.Errorf("handler ran %d times, want 1", n)
	}
}
