package oneaway

import (
	"os"
	"strings"

	fileutil "github.com/projectdiscovery/utils/file"
)

// DefaultDictionaryPath is the usual unix word list location
const DefaultDictionaryPath = "/usr/share/dict/words"

// Dictionary is a set of known words used to flag variants that collide
// with real words ("clashes"). The core generator never consults it; only
// the report layer does.
type Dictionary struct {
	words map[string]struct{}
}

// Contains reports whether word (case-insensitively) is a known word
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[strings.ToLower(word)]
	return ok
}

// IsClash reports whether a variant is a meaningful dictionary collision.
// Single-letter variants are excluded: given `a` there is not much point in
// flagging that `s` is a word.
func (d *Dictionary) IsClash(variant string) bool {
	return len(variant) > 1 && d.Contains(variant)
}

// Len returns the number of known words
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// LoadDictionary reads a newline-separated word list from disk.
// A missing file is not an error: clash detection is best-effort and the
// report simply runs without it, so a nil Dictionary is returned instead.
func LoadDictionary(path string) (*Dictionary, error) {
	if !fileutil.FileExists(path) {
		return nil, nil
	}
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	words := map[string]struct{}{}
	for _, line := range strings.Fields(string(bin)) {
		words[strings.ToLower(line)] = struct{}{}
	}
	return &Dictionary{words: words}, nil
}
