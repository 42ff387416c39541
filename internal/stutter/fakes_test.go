package stutter

import (
	"time"

	"github.com/dgnsrekt/stutter/internal/block"
)

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// fakeScheduler records timers instead of running them.
type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) pending() []*fakeTimer {
	var out []*fakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// fire runs the single pending timer and reports whether there was one.
func (s *fakeScheduler) fire() bool {
	p := s.pending()
	if len(p) == 0 {
		return false
	}
	t := p[len(p)-1]
	t.fired = true
	t.f()
	return true
}

type shown struct {
	word string
	next string
}

// fakeOverlay records what the controller asks it to do.
type fakeOverlay struct {
	EventHub

	visible  bool
	paused   bool
	shows    []shown
	total    time.Duration
	updates  int
	context  string
	progress int
}

func (o *fakeOverlay) Reveal() { o.visible = true }
func (o *fakeOverlay) Hide()   { o.visible = false }
func (o *fakeOverlay) Resume() { o.paused = false }
func (o *fakeOverlay) Pause()  { o.paused = true }

func (o *fakeOverlay) Show(current block.Word, next *block.Word) {
	s := shown{word: current.Value}
	if next != nil {
		s.next = next.Value
	}
	o.shows = append(o.shows, s)
}

func (o *fakeOverlay) UpdateTime(total time.Duration) {
	o.total = total
	o.updates++
}

func (o *fakeOverlay) Highlight(context string) { o.context = context }
func (o *fakeOverlay) SetProgress(percent int)  { o.progress = percent }

func (o *fakeOverlay) words() []string {
	out := make([]string, len(o.shows))
	for i, s := range o.shows {
		out[i] = s.word
	}
	return out
}

// fakeConfig serves fixed option values.
type fakeConfig struct {
	values map[string]int
	hub    EventHub
}

func newFakeConfig(values map[string]int) *fakeConfig {
	return &fakeConfig{values: values}
}

func (c *fakeConfig) Int(name string) int { return c.values[name] }

func (c *fakeConfig) OnUpdate(fn func()) func() {
	return c.hub.Subscribe(EventRestart, fn)
}

func (c *fakeConfig) changed() { c.hub.Emit(EventRestart) }

func (c *fakeConfig) subscribers() int { return c.hub.Len(EventRestart) }
