package dedupe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedBackend(t *testing.T) {
	backend := NewOrderedBackend()
	for _, v := range []string{"tset", "est", "tst", "est", "tset", "tet"} {
		backend.Upsert(v)
	}
	var got []string
	backend.IterCallback(func(elem string) {
		got = append(got, elem)
	})
	// duplicates removed, first-seen order preserved
	require.Equal(t, []string{"tset", "est", "tst", "tet"}, got)
}
