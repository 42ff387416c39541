package block

import (
	"testing"
	"time"

	"github.com/dgnsrekt/stutter/internal/locale"
)

func words(values ...string) []Word {
	out := make([]Word, len(values))
	for i, v := range values {
		out[i] = Word{Value: v, Duration: 100 * time.Millisecond}
	}
	return out
}

func TestNextVisitsEveryWord(t *testing.T) {
	b := New(words("one", "two", "three", "four"))

	visited := 0
	last := b.Progress()
	for {
		if _, ok := b.Word(); !ok {
			break
		}
		visited++
		b.Next()

		p := b.Progress()
		if p < last {
			t.Fatalf("progress went backwards: %v -> %v", last, p)
		}
		last = p
	}

	if visited != b.Len() {
		t.Errorf("visited %d words, want %d", visited, b.Len())
	}
	if b.Index() != b.Len() {
		t.Errorf("index = %d, want %d", b.Index(), b.Len())
	}
	if b.Progress() != 1.0 {
		t.Errorf("progress = %v, want 1.0", b.Progress())
	}
}

func TestNavigationSaturates(t *testing.T) {
	b := New(words("a", "b"))

	b.Prev()
	if b.Index() != 0 {
		t.Errorf("Prev at start moved index to %d", b.Index())
	}

	for i := 0; i < 5; i++ {
		b.Next()
	}
	if b.Index() != 2 {
		t.Errorf("Next past end left index at %d, want 2", b.Index())
	}
	if _, ok := b.Word(); ok {
		t.Error("Word() should report none at end of text")
	}

	b.Prev()
	w, ok := b.Word()
	if !ok || w.Value != "b" {
		t.Errorf("Word() = %q, %v; want \"b\", true", w.Value, ok)
	}
	if _, ok := b.NextWord(); ok {
		t.Error("NextWord() should report none on the last word")
	}
}

func TestRestartKeepsDurations(t *testing.T) {
	b := Tokenize("Some words here. And more, later.", locale.Default(), Options{})
	before := append([]Word(nil), b.Words()...)

	b.Next()
	b.Next()
	b.Prev()
	b.Restart()

	if b.Index() != 0 {
		t.Errorf("index after Restart = %d, want 0", b.Index())
	}
	for i, w := range b.Words() {
		if w != before[i] {
			t.Errorf("word %d changed after Restart: %+v -> %+v", i, before[i], w)
		}
	}
}

func TestEmptyBlock(t *testing.T) {
	b := Tokenize("", locale.Default(), Options{})
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", b.Len())
	}
	if _, ok := b.Word(); ok {
		t.Error("empty block should report none immediately")
	}
	if b.Progress() != 1.0 {
		t.Errorf("Progress() = %v, want 1.0", b.Progress())
	}
	if b.Duration() != 0 {
		t.Errorf("Duration() = %v, want 0", b.Duration())
	}
}

func TestSetIndexClamps(t *testing.T) {
	b := New(words("a", "b", "c"))

	b.SetIndex(-4)
	if b.Index() != 0 {
		t.Errorf("SetIndex(-4) = %d, want 0", b.Index())
	}
	b.SetIndex(10)
	if b.Index() != 3 {
		t.Errorf("SetIndex(10) = %d, want 3", b.Index())
	}
}

func TestContext(t *testing.T) {
	b := New(words("one", "two", "three", "four", "five"))

	if got := b.Context(4); got != "one two three four" {
		t.Errorf("Context(4) = %q", got)
	}
	b.SetIndex(3)
	if got := b.Context(4); got != "four five" {
		t.Errorf("Context(4) near end = %q", got)
	}
	b.SetIndex(5)
	if got := b.Context(4); got != "" {
		t.Errorf("Context(4) at end = %q, want empty", got)
	}
}

func TestDurationSkipsSpacers(t *testing.T) {
	b := New([]Word{
		{Value: "Hello", Duration: time.Second},
		{Value: "\n\n", Duration: time.Hour},
		{Value: "World", Duration: 2 * time.Second},
	})
	if got := b.Duration(); got != 3*time.Second {
		t.Errorf("Duration() = %v, want 3s", got)
	}
}

func TestIsSpace(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"word", false},
		{" ", true},
		{"\n", true},
		{"\r\n\r\n", true},
		{"end.", false},
	}
	for _, tt := range tests {
		if got := (Word{Value: tt.value}).IsSpace(); got != tt.want {
			t.Errorf("Word{%q}.IsSpace() = %v, want %v", tt.value, got, tt.want)
		}
	}
}
