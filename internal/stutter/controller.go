// Package stutter drives rapid serial visual presentation: it reveals the
// words of a block one at a time on a timer and reacts to overlay events.
package stutter

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dgnsrekt/stutter/internal/block"
	"github.com/dgnsrekt/stutter/internal/locale"
	"github.com/dgnsrekt/stutter/internal/options"
)

// contextWords is the number of tokens sent to Overlay.Highlight.
const contextWords = 4

// Controller owns one playback session: a block, its overlay and a single
// pending timer.
type Controller struct {
	mu sync.Mutex

	overlay Overlay
	cfg     Config
	params  locale.Params
	sched   Scheduler
	logger  *log.Logger

	block   *block.Block
	current *block.Word
	next    *block.Word

	isPlaying bool
	isEnded   bool
	slowStart int
	progress  int

	timer Timer
	// gen identifies the live timer. Cancelling bumps it so a tick that
	// fired while waiting on mu is dropped.
	gen uint64

	unsubscribe []func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the wall clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a Controller for the given locale and subscribes it to the
// overlay's events and to configuration updates. Call Close to release the
// subscriptions.
func New(overlay Overlay, cfg Config, localeID string, opts ...Option) *Controller {
	c := &Controller{
		overlay: overlay,
		cfg:     cfg,
		params:  locale.Resolve(localeID),
		sched:   clock{},
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.unsubscribe = []func(){
		overlay.Subscribe(EventClose, c.Destroy),
		overlay.Subscribe(EventPauseToggle, c.PlayPauseToggle),
		overlay.Subscribe(EventSkipForward, func() {
			c.SkipForward(c.cfg.Int(options.SkipCount))
		}),
		overlay.Subscribe(EventSkipPrevious, c.skipPreviousSlow),
		overlay.Subscribe(EventPause, c.Pause),
		overlay.Subscribe(EventRestart, c.Restart),
		cfg.OnUpdate(c.configUpdated),
	}
	return c
}

// Close destroys the session and drops every subscription made by New.
func (c *Controller) Close() {
	c.mu.Lock()
	c.destroy()
	unsub := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	for _, fn := range unsub {
		fn()
	}
}

// SetText pauses any current playback and loads text as a fresh block. The
// session stays paused until Play is called.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pause()
	c.slowStart = c.cfg.Int(options.SlowStartCount)
	c.isEnded = false
	c.block = block.Tokenize(text, c.params, block.Options{
		WPM:           c.cfg.Int(options.WPM),
		MaxWordLength: c.cfg.Int(options.MaxWordLength),
	})
	c.refresh()
	c.overlay.UpdateTime(c.block.Duration())

	c.logger.Debug("Loaded text", "words", c.block.Len(), "locale", c.params.Tag, "duration", c.block.Duration())
}

// Play starts or resumes playback. It does nothing without a block or once
// the text has ended.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.play()
}

// Pause stops the timer. Pausing twice is harmless.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pause()
}

// PlayPauseToggle pauses when playing and plays otherwise.
func (c *Controller) PlayPauseToggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isPlaying {
		c.pause()
	} else {
		c.play()
	}
}

// Restart rewinds to the first word and plays, including after the text has
// ended.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restart()
}

// Destroy stops playback, hides the overlay and drops the block. Calling it
// again has no further effect.
func (c *Controller) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroy()
}

// SkipForward moves the cursor n tokens ahead and shows the word there
// straight away.
func (c *Controller) SkipForward(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skip(n, (*block.Block).Next)
}

// SkipPrevious moves the cursor n tokens back and shows the word there
// straight away.
func (c *Controller) SkipPrevious(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skip(n, (*block.Block).Prev)
}

// skipPreviousSlow handles the overlay's skip back event, easing back in
// with the slow start ramp.
func (c *Controller) skipPreviousSlow() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.slowStart = c.cfg.Int(options.SlowStartCount)
	c.skip(c.cfg.Int(options.SkipCount), (*block.Block).Prev)
}

// LocateIndex returns the block index where fragment starts. See
// block.Locate for the matching rules.
func (c *Controller) LocateIndex(fragment string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.block == nil {
		return 0, false
	}
	return block.Locate(c.block.Words(), fragment)
}

// Seek moves playback to the word where fragment starts and plays from
// there. Without a match playback starts from the first word. It reports
// whether the fragment was found.
func (c *Controller) Seek(fragment string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.block == nil {
		return false
	}
	c.pause()
	index, ok := block.Locate(c.block.Words(), fragment)
	if !ok {
		c.logger.Debug("Fragment not found, starting from the top", "fragment", fragment)
	}
	c.block.SetIndex(index)
	c.refresh()
	c.isEnded = false
	c.play()
	return ok
}

// Status returns a copy of the playback state.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Status{State: c.state(), Progress: c.progress}
	if c.block != nil {
		s.Index = c.block.Index()
		s.Total = c.block.Len()
	}
	if c.current != nil {
		s.Word = c.current.Value
	}
	return s
}

func (c *Controller) state() StateType {
	switch {
	case c.block == nil:
		return StateIdle
	case c.isEnded:
		return StateEnded
	case c.isPlaying:
		return StatePlaying
	default:
		return StatePaused
	}
}

func (c *Controller) play() {
	if c.block == nil || c.isEnded {
		return
	}
	if n := c.cfg.Int(options.SlowStartCount); n > 0 {
		c.slowStart = n
	}
	c.cancel()
	c.overlay.Reveal()
	c.overlay.Resume()
	c.isPlaying = true
	c.display()
}

func (c *Controller) pause() {
	c.cancel()
	c.isPlaying = false
	c.overlay.Pause()
}

func (c *Controller) restart() {
	if c.block == nil {
		return
	}
	if !c.isEnded {
		c.pause()
	}
	c.slowStart = c.cfg.Int(options.SlowStartCount)
	c.block.Restart()
	c.refresh()
	c.isEnded = false
	c.play()
}

// end is the teardown shared by Destroy and running out of text. The block
// is kept so Restart can replay it.
func (c *Controller) end() {
	c.cancel()
	c.overlay.Hide()
	c.isPlaying = false
	c.isEnded = true
}

func (c *Controller) destroy() {
	c.end()
	c.block = nil
	c.current = nil
	c.next = nil
}

func (c *Controller) skip(n int, step func(*block.Block)) {
	if c.block == nil {
		return
	}
	for i := 0; i < n; i++ {
		step(c.block)
	}
	c.refresh()
	if c.current == nil {
		return
	}
	if c.isPlaying {
		c.cancel()
		c.display()
		return
	}
	c.showWord()
}

// display shows the word under the cursor and schedules the next tick,
// stepping over spacers first. The loop runs at most once per remaining
// token.
func (c *Controller) display() {
	for {
		c.refresh()
		if c.current == nil {
			c.logger.Debug("Reached end of text")
			c.end()
			return
		}
		if !c.current.IsSpace() {
			break
		}
		c.block.Next()
	}

	c.showWord()

	gen := c.gen
	c.timer = c.sched.AfterFunc(c.getTime(), func() {
		c.tick(gen)
	})
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.block == nil {
		return
	}
	c.timer = nil
	c.block.Next()
	c.display()
}

func (c *Controller) showWord() {
	if c.current == nil || c.current.IsSpace() {
		return
	}
	var lookahead *block.Word
	if c.next != nil && !c.next.IsSpace() {
		lookahead = c.next
	}
	c.overlay.Show(*c.current, lookahead)

	c.progress = int(c.block.Progress() * 100)
	c.overlay.SetProgress(c.progress)
	c.overlay.Highlight(c.block.Context(contextWords))
}

// getTime returns how long the current word stays up. While the slow start
// counter is above one the base time is multiplied by it and the counter
// steps down.
func (c *Controller) getTime() time.Duration {
	d := c.block.Time()
	if c.slowStart > 1 {
		d *= time.Duration(c.slowStart)
		c.slowStart--
	}
	return d
}

func (c *Controller) cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Controller) refresh() {
	c.current, c.next = nil, nil
	if c.block == nil {
		return
	}
	if w, ok := c.block.Word(); ok {
		c.current = &w
	}
	if w, ok := c.block.NextWord(); ok {
		c.next = &w
	}
}

func (c *Controller) configUpdated() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.block != nil {
		c.overlay.UpdateTime(c.block.Duration())
	}
}
