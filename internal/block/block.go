// Package block turns text into a navigable sequence of timed words.
package block

import (
	"strings"
	"time"
	"unicode"
)

// Word is a single token of a Block: a displayable word or a spacer holding
// the original line breaks.
type Word struct {
	Value    string
	Duration time.Duration
	// Split marks a piece of a longer word that continues in the next
	// Word. Its trailing hyphen was added by the tokenizer.
	Split bool
}

// IsSpace reports whether the word is a whitespace or newline spacer. Spacers
// are stepped over during playback and never shown.
func (w Word) IsSpace() bool {
	return strings.ContainsFunc(w.Value, unicode.IsSpace)
}

// Block is an ordered sequence of words plus a cursor. The words never
// change once the Block is built.
type Block struct {
	words []Word
	index int
}

// New returns a Block over the given words with the cursor at 0.
func New(words []Word) *Block {
	return &Block{words: words}
}

// Words returns the word sequence. Callers must not modify it.
func (b *Block) Words() []Word {
	return b.words
}

// Len returns the number of words, spacers included.
func (b *Block) Len() int {
	return len(b.words)
}

// Index returns the cursor position, between 0 and Len inclusive.
func (b *Block) Index() int {
	return b.index
}

// SetIndex moves the cursor, clamping to [0, Len].
func (b *Block) SetIndex(i int) {
	b.index = max(0, min(i, len(b.words)))
}

// Next advances the cursor by one, never past Len.
func (b *Block) Next() {
	if b.index < len(b.words) {
		b.index++
	}
}

// Prev moves the cursor back by one, never below 0.
func (b *Block) Prev() {
	if b.index > 0 {
		b.index--
	}
}

// Restart moves the cursor back to the first word.
func (b *Block) Restart() {
	b.index = 0
}

// Word returns the word under the cursor. ok is false once the cursor has
// run off the end of the text.
func (b *Block) Word() (Word, bool) {
	return b.at(b.index)
}

// NextWord returns the word after the cursor, if any.
func (b *Block) NextWord() (Word, bool) {
	return b.at(b.index + 1)
}

func (b *Block) at(i int) (Word, bool) {
	if i < 0 || i >= len(b.words) {
		return Word{}, false
	}
	return b.words[i], true
}

// Time returns the base display time of the word under the cursor.
func (b *Block) Time() time.Duration {
	w, _ := b.Word()
	return w.Duration
}

// Progress returns Index/Len in [0,1]. An empty Block is complete.
func (b *Block) Progress() float64 {
	if len(b.words) == 0 {
		return 1
	}
	return float64(b.index) / float64(len(b.words))
}

// Duration returns the total display time of all displayable words.
func (b *Block) Duration() time.Duration {
	var total time.Duration
	for _, w := range b.words {
		if !w.IsSpace() {
			total += w.Duration
		}
	}
	return total
}

// Context returns up to n word values starting at the cursor, joined by
// single spaces.
func (b *Block) Context(n int) string {
	end := min(b.index+n, len(b.words))
	if b.index >= end {
		return ""
	}
	values := make([]string, 0, end-b.index)
	for _, w := range b.words[b.index:end] {
		values = append(values, w.Value)
	}
	return strings.Join(values, " ")
}
