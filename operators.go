package oneaway

import (
	"strings"
	"unicode"
)

// Operator is a single-edit transformation: it consumes a word and returns
// the typo variants reachable by applying the edit once. Operators never
// mutate their input and allocate a fresh result on every call, so the same
// word can be processed repeatedly (and concurrently) without coordination.
type Operator struct {
	Name string
	Fn   func(word string) []string
}

// DroppedLetter generates variations on word where one of the letters is
// missing. Variants are keyed by distinct rune value: only the first
// occurrence of each value produces a drop, so `test` yields `est`, `tst`
// and `tet` but never `tes` (the trailing `t` repeats an already processed
// value). A single-rune word yields the empty string, which is degenerate
// but valid (`a` mistyped as nothing at all).
func DroppedLetter(word string) []string {
	runes := []rune(word)
	seen := map[rune]struct{}{}
	var variants []string
	for i, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		variants = append(variants, string(runes[:i])+string(runes[i+1:]))
	}
	return variants
}

// SwappedLetter generates variations on word where adjacent letters `ab`
// appear as `ba`. Every adjacent position pair is processed, including pairs
// of identical runes whose swap reproduces the input; filtering those is the
// combinators' concern, not this operator's. Words shorter than two runes
// yield nothing.
func SwappedLetter(word string) []string {
	runes := []rune(word)
	if len(runes) < 2 {
		return nil
	}
	variants := make([]string, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		var sb strings.Builder
		sb.WriteString(string(runes[:i]))
		sb.WriteRune(runes[i+1])
		sb.WriteRune(runes[i])
		sb.WriteString(string(runes[i+2:]))
		variants = append(variants, sb.String())
	}
	return variants
}

// SwappedCasing generates variations on word where the user may have pressed
// shift or caps-lock incorrectly: each letter position produces the word with
// only that letter's case flipped. Positions holding uncased characters are
// skipped, as are flips that reproduce a string already emitted (repeated
// letters of the same case).
func SwappedCasing(word string) []string {
	runes := []rune(word)
	seen := map[string]struct{}{}
	var variants []string
	for i, r := range runes {
		var flipped rune
		switch {
		case unicode.IsLower(r):
			flipped = unicode.ToUpper(r)
		case unicode.IsUpper(r):
			flipped = unicode.ToLower(r)
		default:
			continue
		}
		variant := string(runes[:i]) + string(flipped) + string(runes[i+1:])
		if _, ok := seen[variant]; ok {
			continue
		}
		seen[variant] = struct{}{}
		variants = append(variants, variant)
	}
	return variants
}

// ProximityTypo generates variations on word where a letter may have been
// fat-fingered into a physically adjacent key, horizontally or vertically per
// axis. Like DroppedLetter it keys by distinct rune value at its first
// occurrence; for each value one variant is produced per neighbour, in
// neighbour-table order. Characters with no keyboard neighbours (digits,
// punctuation) simply produce no variants.
func ProximityTypo(word string, axis Axis) []string {
	runes := []rune(word)
	seen := map[rune]struct{}{}
	var variants []string
	for i, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		for _, neighbor := range Neighbors(r, axis) {
			variants = append(variants, string(runes[:i])+string(neighbor)+string(runes[i+1:]))
		}
	}
	return variants
}

// Named operators usable in combinators, config files and the -operators
// flag. Proximity operators close over their axis so all entries share the
// one-word signature.
var (
	OpDropped = Operator{Name: "dropped", Fn: DroppedLetter}
	OpSwapped = Operator{Name: "swapped", Fn: SwappedLetter}
	OpCasing  = Operator{Name: "casing", Fn: SwappedCasing}

	OpHorizontal = Operator{Name: "horizontal", Fn: func(word string) []string {
		return ProximityTypo(word, Horizontal)
	}}
	OpVertical = Operator{Name: "vertical", Fn: func(word string) []string {
		return ProximityTypo(word, Vertical)
	}}
)
