package block

import (
	"strings"
	"time"
	"unicode"

	"github.com/dgnsrekt/stutter/internal/locale"
	"github.com/rivo/uniseg"
)

// DefaultWPM is the reading speed used when Options.WPM is not set.
const DefaultWPM = 300

// Options tunes tokenization.
type Options struct {
	// WPM is the target reading speed in words per minute.
	WPM int
	// MaxWordLength splits longer words into hyphenated chunks marked with
	// Word.Split. Zero disables splitting. Locate joins the chunks again.
	MaxWordLength int
}

// Tokenize splits text into words and times each one with the locale
// parameters. Runs of whitespace containing a line break are kept as spacer
// words so paragraph boundaries survive; other whitespace only separates
// words.
func Tokenize(text string, params locale.Params, opts Options) *Block {
	wpm := opts.WPM
	if wpm <= 0 {
		wpm = DefaultWPM
	}
	perChar := params.CharDuration(wpm)

	var words []Word
	for _, tok := range split(text) {
		if isSpacer(tok) {
			words = append(words, Word{Value: tok})
			continue
		}
		pieces := chunks(tok, opts.MaxWordLength)
		for i, chunk := range pieces {
			words = append(words, Word{
				Value:    chunk,
				Duration: duration(chunk, params, perChar),
				Split:    i < len(pieces)-1,
			})
		}
	}
	return New(words)
}

func duration(token string, params locale.Params, perChar time.Duration) time.Duration {
	n := uniseg.GraphemeClusterCount(token)
	d := time.Duration(float64(perChar) * float64(n) * params.Multiplier(token))
	return max(params.MinDuration, d)
}

// split breaks text into words and whitespace runs. Whitespace runs without
// a line break are dropped.
func split(text string) []string {
	var (
		tokens []string
		start  int
		inWS   bool
	)
	flush := func(end int) {
		if start >= end {
			return
		}
		tok := text[start:end]
		if !inWS || strings.ContainsAny(tok, "\n\r") {
			tokens = append(tokens, tok)
		}
	}
	for i, r := range text {
		ws := unicode.IsSpace(r)
		if i == 0 {
			inWS = ws
			continue
		}
		if ws != inWS {
			flush(i)
			start = i
			inWS = ws
		}
	}
	flush(len(text))
	return tokens
}

func isSpacer(tok string) bool {
	return strings.ContainsFunc(tok, unicode.IsSpace)
}

// chunks splits a word into pieces of at most limit grapheme clusters, every
// piece but the last carrying a trailing hyphen.
func chunks(word string, limit int) []string {
	if limit < 2 || uniseg.GraphemeClusterCount(word) <= limit {
		return []string{word}
	}

	var (
		out   []string
		piece strings.Builder
		count int
	)
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		if count == limit-1 {
			out = append(out, piece.String()+"-")
			piece.Reset()
			count = 0
		}
		piece.WriteString(g.Str())
		count++
	}
	if piece.Len() > 0 {
		out = append(out, piece.String())
	}
	return out
}
