package oneaway

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// DefaultLineFormat is the template used for each variant line of a report.
// Available placeholders: {{variant}} and {{clash}} (expands to a clash
// marker or the empty string).
const DefaultLineFormat = `  - "{{variant}}"{{clash}}`

const clashMarker = " (clashes!)"

// Report cross-references generated variants against a word dictionary and
// renders them as a human readable summary plus a display-only regular
// expression alternation. Purely textual glue around the core generator.
type Report struct {
	// Dictionary used for clash detection, may be nil
	Dictionary *Dictionary
	// LineFormat overrides DefaultLineFormat when non-empty
	LineFormat string
}

// Clashes returns, in first-seen order, the variants that collide with
// known dictionary words
func (r *Report) Clashes(variants []string) []string {
	var clashes []string
	for _, v := range variants {
		if r.Dictionary.IsClash(v) {
			clashes = append(clashes, v)
		}
	}
	return clashes
}

// Alternation joins non-empty variants into a naive display-only regular
// expression alternation `(v1|v2|...)`. No metacharacter escaping is
// performed. Variants are ordered longest first, then by whether they use
// the same letters as the original word, then by sharing its first letter.
func (r *Report) Alternation(word string, variants []string) string {
	filtered := make([]string, 0, len(variants))
	for _, v := range variants {
		if v != "" {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == 0 {
		return ""
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := rankVariant(filtered[i], word), rankVariant(filtered[j], word)
		for k := range a {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
	return "(" + strings.Join(filtered, "|") + ")"
}

// rankVariant scores a variant for alternation ordering: length, then
// same-letter-set as the original, then same first letter
func rankVariant(variant, original string) [3]int {
	rank := [3]int{len(variant), 0, 0}
	if sameRuneSet(variant, original) {
		rank[1] = 1
	}
	if variant != "" && original != "" && strings.EqualFold(variant[:1], original[:1]) {
		rank[2] = 1
	}
	return rank
}

func sameRuneSet(a, b string) bool {
	setOf := func(s string) map[rune]struct{} {
		set := map[rune]struct{}{}
		for _, r := range strings.ToLower(s) {
			set[r] = struct{}{}
		}
		return set
	}
	sa, sb := setOf(a), setOf(b)
	if len(sa) != len(sb) {
		return false
	}
	for r := range sa {
		if _, ok := sb[r]; !ok {
			return false
		}
	}
	return true
}

// Write renders the full report for one word and its variants
func (r *Report) Write(w io.Writer, word string, variants []string) error {
	lineFormat := r.LineFormat
	if lineFormat == "" {
		lineFormat = DefaultLineFormat
	}
	if _, err := fmt.Fprintf(w, "# Variations for `%s`:\n", word); err != nil {
		return err
	}
	for _, v := range variants {
		clash := ""
		if r.Dictionary.IsClash(v) {
			clash = clashMarker
		}
		line := Replace(lineFormat, map[string]interface{}{
			"variant": v,
			"clash":   clash,
		})
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "# Total: %d\n", len(variants)); err != nil {
		return err
	}
	if clashes := r.Clashes(variants); len(clashes) > 0 {
		if _, err := fmt.Fprintf(w, "# Variations which clash with known words: %d\n", len(clashes)); err != nil {
			return err
		}
		for _, clash := range clashes {
			if _, err := fmt.Fprintf(w, "  - %q\n", clash); err != nil {
				return err
			}
		}
	}
	if alternation := r.Alternation(word, variants); alternation != "" {
		if _, err := fmt.Fprintf(w, "# Variations as a (naive) regular expression alternation:\n  - %s\n", alternation); err != nil {
			return err
		}
	}
	return nil
}
