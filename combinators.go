package oneaway

import "fmt"

// Multiple runs several operators against word and merges their outputs into
// one sequence, in operator order, with stable first-seen dedup across the
// whole stream. Variants equal to the input itself are excluded: a swap of
// two identical adjacent letters (or any other no-op edit) is not a typo.
func Multiple(word string, operators ...Operator) []string {
	seen := map[string]struct{}{word: {}}
	var merged []string
	for _, op := range operators {
		for _, variant := range op.Fn(word) {
			if _, ok := seen[variant]; ok {
				continue
			}
			seen[variant] = struct{}{}
			merged = append(merged, variant)
		}
	}
	return merged
}

// Common allows for missing letters, swapped letters and adjacent horizontal
// typos.
func Common(word string) []string {
	return Multiple(word, OpDropped, OpSwapped, OpHorizontal)
}

// Mix allows for missing letters, swapped letters and complete horizontal &
// vertical typos.
func Mix(word string) []string {
	return Multiple(word, OpDropped, OpSwapped, OpHorizontal, OpVertical)
}

// presets maps preset names usable on the CLI / in config files to their
// operator lists.
var presets = map[string][]Operator{
	"common": {OpDropped, OpSwapped, OpHorizontal},
	"mix":    {OpDropped, OpSwapped, OpHorizontal, OpVertical},
}

// operatorsByName resolves individual operator names (for custom -operators
// lists) to their implementations.
var operatorsByName = map[string]Operator{
	OpDropped.Name:    OpDropped,
	OpSwapped.Name:    OpSwapped,
	OpCasing.Name:     OpCasing,
	OpHorizontal.Name: OpHorizontal,
	OpVertical.Name:   OpVertical,
}

// ResolvePreset returns the operator list for a named preset
func ResolvePreset(name string) ([]Operator, error) {
	ops, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: common, mix)", name)
	}
	return ops, nil
}

// ResolveOperators maps operator names to operators, preserving order
func ResolveOperators(names []string) ([]Operator, error) {
	ops := make([]Operator, 0, len(names))
	for _, name := range names {
		op, ok := operatorsByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown operator %q (available: dropped, swapped, casing, horizontal, vertical)", name)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
