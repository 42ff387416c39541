package ui

import (
	"sync"
	"time"

	"github.com/dgnsrekt/stutter/internal/block"
	"github.com/dgnsrekt/stutter/internal/stutter"
)

// Frame is a copy of everything the overlay currently shows.
type Frame struct {
	Visible bool
	Paused  bool

	Word    string
	Next    string
	HasNext bool

	Context  string
	Progress int
	Total    time.Duration

	// Shown counts calls to Show.
	Shown int
}

// Overlay is the terminal surface a stutter.Controller renders on. Calls
// only update a guarded snapshot which the Bubble Tea model polls, so they
// never block on the terminal.
type Overlay struct {
	stutter.EventHub

	mu    sync.RWMutex
	frame Frame
}

var _ stutter.Overlay = (*Overlay)(nil)

// NewOverlay returns a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Frame returns a copy of the current snapshot.
func (o *Overlay) Frame() Frame {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.frame
}

// Reveal makes the reader visible.
func (o *Overlay) Reveal() {
	o.mu.Lock()
	o.frame.Visible = true
	o.mu.Unlock()
}

// Hide clears the reader from view.
func (o *Overlay) Hide() {
	o.mu.Lock()
	o.frame.Visible = false
	o.mu.Unlock()
}

// Resume drops the paused marker.
func (o *Overlay) Resume() {
	o.mu.Lock()
	o.frame.Paused = false
	o.mu.Unlock()
}

// Pause shows the paused marker.
func (o *Overlay) Pause() {
	o.mu.Lock()
	o.frame.Paused = true
	o.mu.Unlock()
}

// Show puts current on screen with next as the lookahead word.
func (o *Overlay) Show(current block.Word, next *block.Word) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.frame.Word = current.Value
	o.frame.Next, o.frame.HasNext = "", false
	if next != nil {
		o.frame.Next, o.frame.HasNext = next.Value, true
	}
	o.frame.Shown++
}

// UpdateTime sets the total reading time of the text.
func (o *Overlay) UpdateTime(total time.Duration) {
	o.mu.Lock()
	o.frame.Total = total
	o.mu.Unlock()
}

// Highlight sets the context line shown under the word.
func (o *Overlay) Highlight(context string) {
	o.mu.Lock()
	o.frame.Context = context
	o.mu.Unlock()
}

// SetProgress sets the progress bar, clamped to 0-100.
func (o *Overlay) SetProgress(percent int) {
	o.mu.Lock()
	o.frame.Progress = min(max(percent, 0), 100)
	o.mu.Unlock()
}
