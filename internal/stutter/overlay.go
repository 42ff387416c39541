package stutter

import (
	"time"

	"github.com/dgnsrekt/stutter/internal/block"
)

// Overlay renders the current word and raises user events. Implementations
// must not block and must not emit events from inside these calls.
type Overlay interface {
	Reveal()
	Hide()
	// Resume and Pause switch rendering only; playback state lives in the
	// Controller.
	Resume()
	Pause()
	// Show displays current with an optional lookahead word. next is nil
	// when there is nothing to preview.
	Show(current block.Word, next *block.Word)
	UpdateTime(total time.Duration)
	Highlight(context string)
	SetProgress(percent int)
	// Subscribe registers fn for e and returns a func that removes it.
	Subscribe(e Event, fn func()) func()
}

// Config is the read-only source of reader options.
type Config interface {
	Int(name string) int
	OnUpdate(fn func()) func()
}
