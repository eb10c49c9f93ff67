package oneaway

import "github.com/kezabelle/oneaway/internal/dedupe"

type DedupeBackend interface {
	// Upsert add/update key to backend
	Upsert(elem string)
	// Execute given callback on each element while iterating
	IterCallback(callback func(elem string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe is a string deduplication type which removes all duplicates from a
// stream while preserving the order in which unique values first appeared.
// Variant sets are bounded by O(len(word) x neighbour count) so everything
// fits in memory.
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drains channel and dedupes it
func (d *Dedupe) Drain() {
	for {
		val, ok := <-d.receive
		if !ok {
			break
		}
		d.backend.Upsert(val)
	}
}

// GetResults iterates over dedupe storage and returns results in
// first-seen order
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(elem string) {
			send <- elem
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewDedupe returns a dedupe instance which removes all duplicates
// while keeping first-seen order
func NewDedupe(ch <-chan string) *Dedupe {
	return &Dedupe{
		receive: ch,
		backend: dedupe.NewOrderedBackend(),
	}
}
