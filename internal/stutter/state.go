package stutter

// StateType represents the playback state of a Controller.
type StateType int

const (
	// StateIdle indicates there is no text loaded.
	StateIdle StateType = iota
	// StatePaused indicates text is loaded but the timer is not running.
	StatePaused
	// StatePlaying indicates words are being revealed on a timer.
	StatePlaying
	// StateEnded indicates the text ran out. Only Restart, Seek or a new
	// SetText leave this state.
	StateEnded
)

// String returns the string representation of the state.
func (s StateType) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Status is a point-in-time copy of a Controller's playback state.
type Status struct {
	State    StateType
	Index    int // cursor position in the block
	Total    int // number of words in the block, spacers included
	Progress int // last progress reported to the overlay, 0-100
	Word     string
}

// IsActive returns true if a text is loaded and has not ended.
func (s Status) IsActive() bool {
	return s.State == StatePlaying || s.State == StatePaused
}
