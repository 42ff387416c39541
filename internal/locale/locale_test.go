package locale

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		id   string
		want language.Tag
	}{
		{"en", language.English},
		{"en-US", language.English},
		{"en_GB.UTF-8", language.English},
		{"de-AT", language.German},
		{"pt_BR", language.Portuguese},
		{"ja-JP", language.Japanese},
		{"zh-CN", language.Chinese},
		{"ar-EG", language.Arabic},
		{"", language.English},
		{"C", language.English},
		{"not a locale", language.English},
		{"qq-ZZ", language.English},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := Resolve(tt.id)
			if got.Tag != tt.want {
				t.Errorf("Resolve(%q).Tag = %v, want %v", tt.id, got.Tag, tt.want)
			}
		})
	}
}

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	got := Resolve("tlh")
	want := Default()
	if got.Tag != want.Tag || got.CharsPerWord != want.CharsPerWord {
		t.Errorf("expected default params, got %+v", got)
	}
}

func TestMultiplier(t *testing.T) {
	en := Resolve("en")
	ja := Resolve("ja")

	tests := []struct {
		name   string
		params Params
		token  string
		want   float64
	}{
		{"plain word", en, "hello", 1.0},
		{"full stop", en, "end.", en.SentenceMultiplier},
		{"question", en, "why?", en.SentenceMultiplier},
		{"quoted stop", en, `done."`, en.SentenceMultiplier},
		{"bracketed comma", en, "(aside,)", en.CommaMultiplier},
		{"comma", en, "first,", en.CommaMultiplier},
		{"semicolon", en, "clause;", en.CommaMultiplier},
		{"only punctuation", en, ".", en.SentenceMultiplier},
		{"only closers", en, `")`, 1.0},
		{"ideographic stop", ja, "です。", ja.SentenceMultiplier},
		{"ideographic comma", ja, "しかし、", ja.CommaMultiplier},
		{"ideographic stop in english", en, "です。", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.params.Multiplier(tt.token); got != tt.want {
				t.Errorf("Multiplier(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestCharDuration(t *testing.T) {
	p := Params{CharsPerWord: 6}
	// 300 wpm * 6 chars = 1800 chars per minute.
	want := time.Minute / 1800
	if got := p.CharDuration(300); got != want {
		t.Errorf("CharDuration(300) = %v, want %v", got, want)
	}
	if got := p.CharDuration(0); got != 0 {
		t.Errorf("CharDuration(0) = %v, want 0", got)
	}
}
