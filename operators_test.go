package oneaway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDroppedLetter(t *testing.T) {
	testcases := []struct {
		word     string
		expected []string
	}{
		// one variant per distinct letter at its first occurrence: the
		// trailing `t` of `test` produces no extra variant
		{word: "test", expected: []string{"est", "tst", "tet"}},
		{word: "ab", expected: []string{"b", "a"}},
		// single-letter word drops to the empty string, degenerate but valid
		{word: "a", expected: []string{""}},
		{word: "", expected: nil},
		// non-letters are droppable too
		{word: "a-b", expected: []string{"-b", "ab", "a-"}},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, DroppedLetter(tc.word), "dropped variants of %q", tc.word)
	}
}

func TestDroppedLetterLength(t *testing.T) {
	for _, word := range []string{"test", "keyboard", "aabbcc"} {
		variants := DroppedLetter(word)
		for _, v := range variants {
			require.Len(t, v, len(word)-1)
		}
		distinct := map[rune]struct{}{}
		for _, r := range word {
			distinct[r] = struct{}{}
		}
		require.Len(t, variants, len(distinct))
	}
}

func TestSwappedLetter(t *testing.T) {
	testcases := []struct {
		word     string
		expected []string
	}{
		// one variant per adjacent position pair
		{word: "test", expected: []string{"etst", "tset", "tets"}},
		{word: "ab", expected: []string{"ba"}},
		// identical adjacent pair reproduces the input; the operator
		// itself does not filter it
		{word: "aa", expected: []string{"aa"}},
		{word: "a", expected: nil},
		{word: "", expected: nil},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, SwappedLetter(tc.word), "swapped variants of %q", tc.word)
	}
}

func TestSwappedLetterLength(t *testing.T) {
	for _, word := range []string{"test", "keyboard"} {
		variants := SwappedLetter(word)
		require.Len(t, variants, len(word)-1)
		for _, v := range variants {
			require.Len(t, v, len(word))
		}
	}
}

func TestSwappedCasing(t *testing.T) {
	testcases := []struct {
		word     string
		expected []string
	}{
		{word: "test", expected: []string{"Test", "tEst", "teSt", "tesT"}},
		{word: "Tt", expected: []string{"tt", "TT"}},
		// non-letter positions produce no variant
		{word: "a1", expected: []string{"A1"}},
		{word: "11", expected: nil},
		{word: "", expected: nil},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, SwappedCasing(tc.word), "casing variants of %q", tc.word)
	}
}

func TestProximityTypo(t *testing.T) {
	testcases := []struct {
		word     string
		axis     Axis
		expected []string
	}{
		// 2 neighbours each for distinct letters t, e, s; the repeated `t`
		// produces nothing
		{word: "test", axis: Horizontal, expected: []string{"rest", "yest", "twst", "trst", "teat", "tedt"}},
		{word: "test", axis: Vertical, expected: []string{"fest", "gest", "tsst", "tdst", "tewt", "teet", "tezt", "text"}},
		// substitution preserves the case of the replaced character; the
		// trailing lowercase `t` is a distinct rune value from `T` so it
		// gets its own variants
		{word: "Test", axis: Horizontal, expected: []string{"Rest", "Yest", "Twst", "Trst", "Teat", "Tedt", "Tesr", "Tesy"}},
		// non-letters have no keyboard neighbours
		{word: "a1", axis: Horizontal, expected: []string{"s1"}},
		{word: "", axis: Horizontal, expected: nil},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, ProximityTypo(tc.word, tc.axis), "proximity variants of %q (%v)", tc.word, tc.axis)
	}
}

func TestProximityTypoBound(t *testing.T) {
	// at most sum over distinct letters of their neighbour counts
	word := "keyboard"
	bound := 0
	seen := map[rune]struct{}{}
	for _, r := range word {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		bound += len(Neighbors(r, Horizontal))
	}
	require.LessOrEqual(t, len(ProximityTypo(word, Horizontal)), bound)
}

// operators recompute from scratch on every call, consumers may iterate
// repeatedly and concurrently
func TestOperatorsRestartable(t *testing.T) {
	first := DroppedLetter("test")
	second := DroppedLetter("test")
	require.Equal(t, first, second)
	first[0] = "mutated"
	require.Equal(t, second, DroppedLetter("test"))
}
