// Package locale resolves language-specific reading parameters used to time
// words during playback.
package locale

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Params holds the timing parameters for one language.
type Params struct {
	Tag language.Tag

	// CharsPerWord is the average word length, including the trailing space.
	// Combined with a words-per-minute rate it yields the per-character rate.
	CharsPerWord float64

	// SentenceMultiplier stretches words ending a sentence.
	SentenceMultiplier float64
	// CommaMultiplier stretches words ending with a clause separator.
	CommaMultiplier float64

	SentenceEnders string
	CommaMarks     string

	// MinDuration is the floor for any displayable word.
	MinDuration time.Duration
}

// closers are stripped from the end of a token before punctuation is
// inspected, so `done."` still counts as a sentence end.
const closers = `"')]}»”’」』）】`

const (
	defaultSentenceEnders = ".!?…"
	defaultCommaMarks     = ",;:–—"
	cjkSentenceEnders     = "。！？.!?…"
	cjkCommaMarks         = "、，；：,;:"
)

var defaultParams = Params{
	Tag:                language.English,
	CharsPerWord:       6.0,
	SentenceMultiplier: 2.5,
	CommaMultiplier:    1.5,
	SentenceEnders:     defaultSentenceEnders,
	CommaMarks:         defaultCommaMarks,
	MinDuration:        80 * time.Millisecond,
}

// table lists every supported language. The first entry is the fallback.
var table = []Params{
	defaultParams,
	latin(language.German, 7.3),
	latin(language.French, 5.8),
	latin(language.Spanish, 5.9),
	latin(language.Italian, 6.1),
	latin(language.Portuguese, 5.8),
	latin(language.Dutch, 6.3),
	latin(language.Russian, 7.2),
	{
		Tag:                language.Japanese,
		CharsPerWord:       2.0,
		SentenceMultiplier: 2.0,
		CommaMultiplier:    1.4,
		SentenceEnders:     cjkSentenceEnders,
		CommaMarks:         cjkCommaMarks,
		MinDuration:        80 * time.Millisecond,
	},
	{
		Tag:                language.Chinese,
		CharsPerWord:       1.6,
		SentenceMultiplier: 2.0,
		CommaMultiplier:    1.4,
		SentenceEnders:     cjkSentenceEnders,
		CommaMarks:         cjkCommaMarks,
		MinDuration:        80 * time.Millisecond,
	},
	{
		Tag:                language.Korean,
		CharsPerWord:       3.6,
		SentenceMultiplier: 2.2,
		CommaMultiplier:    1.4,
		SentenceEnders:     defaultSentenceEnders,
		CommaMarks:         defaultCommaMarks,
		MinDuration:        80 * time.Millisecond,
	},
	{
		Tag:                language.Arabic,
		CharsPerWord:       5.5,
		SentenceMultiplier: 2.5,
		CommaMultiplier:    1.5,
		SentenceEnders:     ".!?؟…",
		CommaMarks:         ",;:،؛",
		MinDuration:        80 * time.Millisecond,
	},
}

func latin(tag language.Tag, charsPerWord float64) Params {
	p := defaultParams
	p.Tag = tag
	p.CharsPerWord = charsPerWord
	return p
}

var matcher = language.NewMatcher(tags())

func tags() []language.Tag {
	t := make([]language.Tag, len(table))
	for i, p := range table {
		t[i] = p.Tag
	}
	return t
}

// Default returns the fallback parameter set.
func Default() Params {
	return defaultParams
}

// Resolve returns the parameters for a locale identifier such as "en-US",
// "pt_BR" or "zh-Hant". Unknown or malformed identifiers resolve to Default.
func Resolve(id string) Params {
	id = normalize(id)
	if id == "" {
		return defaultParams
	}
	tag, err := language.Parse(id)
	if err != nil {
		return defaultParams
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return defaultParams
	}
	return table[i]
}

// normalize turns POSIX style locales ("de_DE.UTF-8") into BCP 47 tags.
func normalize(id string) string {
	id = strings.TrimSpace(id)
	if i := strings.IndexAny(id, ".@"); i >= 0 {
		id = id[:i]
	}
	if id == "C" || id == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(id, "_", "-")
}

// CharDuration returns how long a single character should be displayed at
// the given words-per-minute rate.
func (p Params) CharDuration(wpm int) time.Duration {
	if wpm <= 0 || p.CharsPerWord <= 0 {
		return 0
	}
	return time.Duration(float64(time.Minute) / (float64(wpm) * p.CharsPerWord))
}

// Multiplier returns the punctuation pause multiplier for a token, 1.0 when
// the token does not end with sentence or clause punctuation.
func (p Params) Multiplier(token string) float64 {
	token = strings.TrimRightFunc(token, func(r rune) bool {
		return strings.ContainsRune(closers, r) || unicode.IsSpace(r)
	})
	last, _ := utf8.DecodeLastRuneInString(token)
	switch {
	case token == "":
		return 1.0
	case strings.ContainsRune(p.SentenceEnders, last):
		return p.SentenceMultiplier
	case strings.ContainsRune(p.CommaMarks, last):
		return p.CommaMultiplier
	default:
		return 1.0
	}
}
