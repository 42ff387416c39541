package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// pivot returns the grapheme index of the letter the eye should fix on.
// It sits a little left of the middle and moves right slowly as words get
// longer.
func pivot(n int) int {
	switch {
	case n <= 1:
		return 0
	case n <= 5:
		return 1
	case n <= 9:
		return 2
	case n <= 13:
		return 3
	default:
		return 4
	}
}

// splitPivot cuts word around its pivot grapheme.
func splitPivot(word string) (left, focus, right string) {
	var clusters []string
	g := uniseg.NewGraphemes(word)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	if len(clusters) == 0 {
		return "", "", ""
	}
	// Leading punctuation such as an opening quote should not steal the
	// focus letter.
	start := 0
	for start < len(clusters)-1 && strings.ContainsAny(clusters[start], `"'“‘(«¿¡[`) {
		start++
	}
	i := min(start+pivot(len(clusters)-start), len(clusters)-1)
	return strings.Join(clusters[:i], ""), clusters[i], strings.Join(clusters[i+1:], "")
}

// renderWord lays word out so its pivot letter lands on column center.
func renderWord(word string, center int, focus func(...string) string, rest func(...string) string) string {
	left, mid, right := splitPivot(word)
	pad := max(center-runewidth.StringWidth(left), 0)
	return strings.Repeat(" ", pad) + rest(left) + focus(mid) + rest(right)
}
