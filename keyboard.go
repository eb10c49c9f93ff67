package oneaway

import "unicode"

// Axis selects which physical direction on the keyboard a proximity lookup
// walks: keys to the left/right on the same row, or keys on the rows
// above/below in roughly the same column.
type Axis int

const (
	// Horizontal matches keys on the same row (ex: `g` -> `f`,`h`)
	Horizontal Axis = iota
	// Vertical matches keys on the rows above/below (ex: `g` -> `t`,`y`,`v`,`b`)
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return "unknown"
}

// qwertyHorizontal maps each letter to its same-row neighbours on a standard
// QWERTY layout. Row-edge keys (q, p, a, l, z, m) only have one neighbour.
var qwertyHorizontal = map[rune][]rune{
	// top row
	'q': {'w'},
	'w': {'q', 'e'},
	'e': {'w', 'r'},
	'r': {'e', 't'},
	't': {'r', 'y'},
	'y': {'t', 'u'},
	'u': {'y', 'i'},
	'i': {'u', 'o'},
	'o': {'i', 'p'},
	'p': {'o'},
	// home row
	'a': {'s'},
	's': {'a', 'd'},
	'd': {'s', 'f'},
	'f': {'d', 'g'},
	'g': {'f', 'h'},
	'h': {'g', 'j'},
	'j': {'h', 'k'},
	'k': {'j', 'l'},
	'l': {'k'},
	// bottom row
	'z': {'x'},
	'x': {'z', 'c'},
	'c': {'x', 'v'},
	'v': {'c', 'b'},
	'b': {'v', 'n'},
	'n': {'b', 'm'},
	'm': {'n'},
}

// qwertyVertical maps each letter to the keys on the rows above and below it.
// Rows on a physical keyboard are staggered, so home-row keys touch up to
// four keys (two above, two below) while the outer rows touch at most two.
// Does not account for ortholinear layouts.
var qwertyVertical = map[rune][]rune{
	// top row
	'q': {'a'},
	'w': {'a', 's'},
	'e': {'s', 'd'},
	'r': {'d', 'f'},
	't': {'f', 'g'},
	'y': {'g', 'h'},
	'u': {'h', 'j'},
	'i': {'j', 'k'},
	'o': {'k', 'l'},
	'p': {'l'},
	// home row
	'a': {'q', 'w', 'z'},
	's': {'w', 'e', 'z', 'x'},
	'd': {'e', 'r', 'x', 'c'},
	'f': {'r', 't', 'c', 'v'},
	'g': {'t', 'y', 'v', 'b'},
	'h': {'y', 'u', 'b', 'n'},
	'j': {'u', 'i', 'n', 'm'},
	'k': {'i', 'o', 'm'},
	'l': {'o', 'p'},
	// bottom row
	'z': {'a', 's'},
	'x': {'s', 'd'},
	'c': {'d', 'f'},
	'v': {'f', 'g'},
	'b': {'g', 'h'},
	'n': {'h', 'j'},
	'm': {'j', 'k'},
}

// Neighbors returns the physical QWERTY neighbours of r along the given axis.
// Lookups are case-insensitive and the returned runes carry the same case as
// r, so an uppercase input yields uppercase neighbours. Characters outside
// the modelled alphabet have no neighbours and return nil.
//
// Passing an axis other than Horizontal or Vertical is a programming error
// and panics, so callers can tell "no neighbours for this letter" apart from
// "invalid axis".
func Neighbors(r rune, axis Axis) []rune {
	var table map[rune][]rune
	switch axis {
	case Horizontal:
		table = qwertyHorizontal
	case Vertical:
		table = qwertyVertical
	default:
		panic("oneaway: invalid axis")
	}
	matched, ok := table[unicode.ToLower(r)]
	if !ok {
		return nil
	}
	if !unicode.IsUpper(r) {
		return matched
	}
	upper := make([]rune, len(matched))
	for i, n := range matched {
		upper[i] = unicode.ToUpper(n)
	}
	return upper
}
