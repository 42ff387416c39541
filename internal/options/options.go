// Package options resolves the reader's numeric knobs from viper and reports
// when the underlying configuration file changes.
package options

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Option names understood by the playback controller.
const (
	SkipCount      = "skipCount"
	SlowStartCount = "slowStartCount"
	WPM            = "wpm"
	MaxWordLength  = "maxWordLength"
)

// Prefix is the config section holding reader options.
const Prefix = "reader."

// Defaults lists the default value of every option.
var Defaults = map[string]int{
	SkipCount:      10,
	SlowStartCount: 5,
	WPM:            300,
	MaxWordLength:  0,
}

// Key returns the viper key for an option name.
func Key(name string) string {
	return Prefix + name
}

// SetDefaults registers option defaults on v.
func SetDefaults(v *viper.Viper) {
	for name, value := range Defaults {
		v.SetDefault(Key(name), value)
	}
}

// Store is a read-only view of reader options backed by viper.
type Store struct {
	v *viper.Viper

	mu     sync.Mutex
	nextID int
	subs   map[int]func()
}

// New returns a Store reading from v. Defaults are registered on v.
func New(v *viper.Viper) *Store {
	SetDefaults(v)
	return &Store{
		v:    v,
		subs: make(map[int]func()),
	}
}

// Int returns the current value of the named option.
func (s *Store) Int(name string) int {
	return s.v.GetInt(Key(name))
}

// OnUpdate registers fn to run whenever the configuration changes. The
// returned func removes the registration.
func (s *Store) OnUpdate(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Watch reloads the configuration file when it changes on disk and notifies
// subscribers. It is a no-op when no configuration file is in use.
func (s *Store) Watch() {
	if s.v.ConfigFileUsed() == "" {
		return
	}
	s.v.OnConfigChange(func(e fsnotify.Event) {
		log.Debug("Configuration changed", "path", e.Name, "op", e.Op.String())
		if err := s.Validate(); err != nil {
			log.Warn("Ignoring invalid configuration", "err", err)
			return
		}
		s.notify()
	})
	s.v.WatchConfig()
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Validate checks option ranges. The controller never validates on its own.
func (s *Store) Validate() error {
	for _, name := range []string{SkipCount, SlowStartCount, MaxWordLength} {
		if n := s.Int(name); n < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidOption, name, n)
		}
	}
	if n := s.Int(WPM); n < 50 || n > 2000 {
		return fmt.Errorf("%w: %s must be between 50 and 2000, got %d", ErrInvalidOption, WPM, n)
	}
	return nil
}
