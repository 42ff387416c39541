package block

import "strings"

// Locate finds the index in words where a text fragment begins. The fragment
// is split on whitespace; its first token may match the tail of a word and
// its last token the head of one, so selections that cut words in half
// still line up. Tokens in between must match exactly. Comparison is case
// sensitive.
//
// Words cut into Split pieces by the tokenizer are compared whole; a match
// on such a word reports the index of its first piece.
//
// Every start index is tried and the last matching one wins, so a repeated
// phrase resolves to its final occurrence. ok is false when nothing matches.
func Locate(words []Word, fragment string) (index int, ok bool) {
	targets := strings.Fields(fragment)
	if len(targets) == 0 {
		return 0, false
	}

	units := join(words)
	found := -1
	for i := range units {
		if windowMatches(units, i, targets) {
			found = i
		}
	}
	if found < 0 {
		return 0, false
	}
	return units[found].index, true
}

// unit is a whole word and the index of its first token.
type unit struct {
	value string
	index int
}

// join merges Split pieces back into the words they were cut from.
func join(words []Word) []unit {
	units := make([]unit, 0, len(words))
	for i := 0; i < len(words); i++ {
		start := i
		var sb strings.Builder
		for words[i].Split && i+1 < len(words) {
			sb.WriteString(strings.TrimSuffix(words[i].Value, "-"))
			i++
		}
		sb.WriteString(words[i].Value)
		units = append(units, unit{value: sb.String(), index: start})
	}
	return units
}

func windowMatches(units []unit, start int, targets []string) bool {
	last := len(targets) - 1
	for j, target := range targets {
		if start+j >= len(units) {
			return false
		}
		value := units[start+j].value
		var match bool
		switch {
		case j == 0:
			match = strings.HasSuffix(value, target)
		case j == last:
			match = strings.HasPrefix(value, target)
		default:
			match = value == target
		}
		if !match {
			return false
		}
	}
	return true
}
