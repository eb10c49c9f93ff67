package dedupe

// OrderedBackend is an insertion-ordered in-memory set. First-seen order of
// the deduplicated stream is a correctness requirement for variant output,
// so the backend keeps a key slice alongside the membership map instead of
// iterating an unordered map.
type OrderedBackend struct {
	membership map[string]struct{}
	order      []string
}

func NewOrderedBackend() *OrderedBackend {
	return &OrderedBackend{membership: map[string]struct{}{}}
}

func (o *OrderedBackend) Upsert(elem string) {
	if _, ok := o.membership[elem]; ok {
		return
	}
	o.membership[elem] = struct{}{}
	o.order = append(o.order, elem)
}

func (o *OrderedBackend) IterCallback(callback func(elem string)) {
	for _, k := range o.order {
		callback(k)
	}
}

func (o *OrderedBackend) Cleanup() {
	o.membership = nil
	o.order = nil
}
