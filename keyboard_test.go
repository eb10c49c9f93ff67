package oneaway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	testcases := []struct {
		char     rune
		axis     Axis
		expected []rune
	}{
		{char: 't', axis: Horizontal, expected: []rune{'r', 'y'}},
		{char: 't', axis: Vertical, expected: []rune{'f', 'g'}},
		{char: 'q', axis: Horizontal, expected: []rune{'w'}},
		{char: 'q', axis: Vertical, expected: []rune{'a'}},
		{char: 'a', axis: Vertical, expected: []rune{'q', 'w', 'z'}},
		{char: 's', axis: Vertical, expected: []rune{'w', 'e', 'z', 'x'}},
		{char: 'm', axis: Horizontal, expected: []rune{'n'}},
		// case-insensitive lookup, case-preserving result
		{char: 'T', axis: Horizontal, expected: []rune{'R', 'Y'}},
		{char: 'Q', axis: Vertical, expected: []rune{'A'}},
		// outside the modelled alphabet
		{char: '1', axis: Horizontal, expected: nil},
		{char: '-', axis: Vertical, expected: nil},
		{char: ' ', axis: Horizontal, expected: nil},
	}
	for _, tc := range testcases {
		require.Equalf(t, tc.expected, Neighbors(tc.char, tc.axis), "neighbors of %q (%v)", tc.char, tc.axis)
	}
}

func TestNeighborsInvalidAxis(t *testing.T) {
	require.Panics(t, func() {
		Neighbors('t', Axis(99))
	})
}

// the physical layout is symmetric: if a is a horizontal neighbour of b
// then b must be a horizontal neighbour of a
func TestHorizontalTableSymmetry(t *testing.T) {
	for char, neighbors := range qwertyHorizontal {
		for _, n := range neighbors {
			require.Containsf(t, qwertyHorizontal[n], char, "%q -> %q is not symmetric", char, n)
		}
	}
}

func TestVerticalTableSymmetry(t *testing.T) {
	for char, neighbors := range qwertyVertical {
		for _, n := range neighbors {
			require.Containsf(t, qwertyVertical[n], char, "%q -> %q is not symmetric", char, n)
		}
	}
}

func TestNeighborCountBounds(t *testing.T) {
	for char, neighbors := range qwertyHorizontal {
		require.LessOrEqualf(t, len(neighbors), 2, "horizontal neighbours of %q", char)
		require.GreaterOrEqualf(t, len(neighbors), 1, "horizontal neighbours of %q", char)
	}
	for char, neighbors := range qwertyVertical {
		require.LessOrEqualf(t, len(neighbors), 4, "vertical neighbours of %q", char)
		require.GreaterOrEqualf(t, len(neighbors), 1, "vertical neighbours of %q", char)
	}
}
