package ui

// Config contains TUI-specific configuration.
type Config struct {
	// Locale used to pick punctuation timings. Set from --locale, falling
	// back to the environment.
	Locale  string `env:"LANG"`
	HomeDir string `env:"HOME"`

	// Source names the document in the status bar.
	Source string

	ShowContext   bool
	ShowLookahead bool
	EnableMouse   bool

	// Frames per second used to poll the overlay.
	FrameRate int `env:"STUTTER_FRAME_RATE" envDefault:"30"`
	// Skips allowed per second when a skip key is held down.
	SkipRate float64 `env:"STUTTER_SKIP_RATE" envDefault:"8"`
}
