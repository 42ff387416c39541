package stutter

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/dgnsrekt/stutter/internal/options"
)

func newTestPlayer() (*Player, *fakeOverlay, *fakeScheduler, *fakeConfig) {
	ov := &fakeOverlay{}
	sched := &fakeScheduler{}
	cfg := newFakeConfig(map[string]int{options.SkipCount: 1, options.WPM: 300})
	p := NewPlayer(ov, cfg, WithScheduler(sched), WithLogger(log.New(io.Discard)))
	return p, ov, sched, cfg
}

func TestPlayerStartPlaysFromTheTop(t *testing.T) {
	p, ov, _, _ := newTestPlayer()
	if p.Current() != nil {
		t.Fatal("no session before Start")
	}

	c := p.Start(Request{Text: "one two three", Locale: "en"})
	if c != p.Current() {
		t.Error("Current should return the started controller")
	}
	if s := c.Status(); s.State != StatePlaying || s.Index != 0 {
		t.Errorf("unexpected status %+v", s)
	}
	if len(ov.shows) != 1 || ov.shows[0].word != "one" {
		t.Errorf("expected the first word to be shown, got %v", ov.words())
	}
}

func TestPlayerStartResumesAtFragment(t *testing.T) {
	p, ov, _, _ := newTestPlayer()

	c := p.Start(Request{
		Text:      "go now and then go now again",
		Locale:    "en",
		StartText: "go now",
	})
	if s := c.Status(); s.Index != 4 || s.State != StatePlaying {
		t.Errorf("expected to resume at the last occurrence, got %+v", s)
	}
	if ov.words()[0] != "go" || ov.shows[0].next != "now" {
		t.Errorf("unexpected first show %+v", ov.shows[0])
	}
}

func TestPlayerStartFallsBackToTop(t *testing.T) {
	p, _, _, _ := newTestPlayer()

	c := p.Start(Request{Text: "one two", StartText: "missing words"})
	if s := c.Status(); s.Index != 0 || s.State != StatePlaying {
		t.Errorf("unexpected status %+v", s)
	}
}

func TestPlayerKeepsOneSession(t *testing.T) {
	p, ov, sched, cfg := newTestPlayer()

	first := p.Start(Request{Text: "first text"})
	second := p.Start(Request{Text: "second text"})

	if s := first.Status(); s.State != StateIdle {
		t.Errorf("previous session should be destroyed, got %s", s.State)
	}
	if n := ov.Len(EventClose); n != 1 {
		t.Errorf("expected one close handler, got %d", n)
	}
	if cfg.subscribers() != 1 {
		t.Errorf("expected one config subscriber, got %d", cfg.subscribers())
	}
	if n := len(sched.pending()); n != 1 {
		t.Errorf("expected one pending tick, got %d", n)
	}

	ov.Emit(EventClose)
	if s := second.Status(); s.State != StateIdle {
		t.Errorf("close should reach the live session, got %s", s.State)
	}

	p.Close()
	if p.Current() != nil {
		t.Error("Close should drop the session")
	}
	if n := ov.Len(EventPauseToggle); n != 0 {
		t.Errorf("expected no handlers after Close, got %d", n)
	}
}
