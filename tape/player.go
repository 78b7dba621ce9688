package tape

// MapPlayer applies Items to a map. The zero value is not usable; create it
// with make or a composite literal.
type MapPlayer[K comparable, V any] map[K]V

// Advance applies item.
func (m MapPlayer[K, V]) Advance(item Item[K, V]) {
	switch item.Kind {
	case Add:
		m[item.Key] = item.Value
	case Remove:
		delete(m, item.Key)
	case Move:
		delete(m, item.Key)
		m[item.To] = item.Value
	case BatchAdd:
		for k, e := range item.Batch {
			m[k] = e.Value
		}
	case BatchRemove:
		for k := range item.Batch {
			delete(m, k)
		}
	}
}

// Rewind reverts item, assuming it was the last one applied.
func (m MapPlayer[K, V]) Rewind(item Item[K, V]) {
	switch item.Kind {
	case Add:
		m.restore(item.Key, item.Previous, item.HasPrevious)
	case Remove:
		m[item.Key] = item.Value
	case Move:
		delete(m, item.To)
		m[item.Key] = item.Value
	case BatchAdd:
		for k, e := range item.Batch {
			m.restore(k, e.Previous, e.HasPrevious)
		}
	case BatchRemove:
		for k, e := range item.Batch {
			m[k] = e.Value
		}
	}
}

func (m MapPlayer[K, V]) restore(key K, previous V, ok bool) {
	if !ok {
		delete(m, key)
		return
	}
	m[key] = previous
}
