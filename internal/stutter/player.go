package stutter

import (
	"strings"
	"sync"
)

// Request describes what to read.
type Request struct {
	Text   string
	Locale string
	// StartText, when set, is a fragment previously highlighted by the
	// reader. Playback resumes at the word where it starts.
	StartText string
}

// Player guarantees at most one live Controller per overlay. Starting a new
// session closes the previous one first.
type Player struct {
	mu      sync.Mutex
	overlay Overlay
	cfg     Config
	opts    []Option
	current *Controller
}

// NewPlayer returns a Player whose sessions render on overlay.
func NewPlayer(overlay Overlay, cfg Config, opts ...Option) *Player {
	return &Player{
		overlay: overlay,
		cfg:     cfg,
		opts:    opts,
	}
}

// Start closes any running session and plays req in a new one.
func (p *Player) Start(req Request) *Controller {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Close()
	}

	c := New(p.overlay, p.cfg, req.Locale, p.opts...)
	c.SetText(req.Text)
	if strings.TrimSpace(req.StartText) != "" {
		c.Seek(req.StartText)
	} else {
		c.Play()
	}
	p.current = c
	return c
}

// Current returns the live Controller, or nil before the first Start.
func (p *Player) Current() *Controller {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Close ends the live session, if any.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.Close()
		p.current = nil
	}
}
