package tape

import "fmt"

// Kind identifies the edit an Item performs.
type Kind uint8

const (
	// Add sets a key, remembering the value it replaced.
	Add Kind = iota
	// Remove deletes a key, remembering its value.
	Remove
	// Move relocates a value from one key to another.
	Move
	// BatchAdd adds every entry of Item.Batch.
	BatchAdd
	// BatchRemove removes every entry of Item.Batch.
	BatchRemove
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Move:
		return "move"
	case BatchAdd:
		return "batch-add"
	case BatchRemove:
		return "batch-remove"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Entry is one element of a batch edit.
type Entry[V any] struct {
	Value       V
	Previous    V
	HasPrevious bool
}

// Item is a single reversible edit of a collection keyed by K.
// Which fields are meaningful depends on Kind; see the package doc.
type Item[K comparable, V any] struct {
	Kind Kind
	Key  K
	To   K // Move only

	Value       V
	Previous    V
	HasPrevious bool

	Batch map[K]Entry[V] // BatchAdd and BatchRemove only
}

// NewAdd records setting key to value over an empty slot.
func NewAdd[K comparable, V any](key K, value V) Item[K, V] {
	return Item[K, V]{Kind: Add, Key: key, Value: value}
}

// NewAddReplacing records setting key to value where previous was stored.
func NewAddReplacing[K comparable, V any](key K, value, previous V) Item[K, V] {
	return Item[K, V]{Kind: Add, Key: key, Value: value, Previous: previous, HasPrevious: true}
}

// NewRemove records deleting key, whose value was value.
func NewRemove[K comparable, V any](key K, value V) Item[K, V] {
	return Item[K, V]{Kind: Remove, Key: key, Value: value}
}

// NewMove records moving value from one key to another.
func NewMove[K comparable, V any](from, to K, value V) Item[K, V] {
	return Item[K, V]{Kind: Move, Key: from, To: to, Value: value}
}

// NewBatchAdd records several adds as one edit. The map is used as is.
func NewBatchAdd[K comparable, V any](entries map[K]Entry[V]) Item[K, V] {
	return Item[K, V]{Kind: BatchAdd, Batch: entries}
}

// NewBatchRemove records several removals as one edit; each entry's Value is
// the value being removed.
func NewBatchRemove[K comparable, V any](entries map[K]Entry[V]) Item[K, V] {
	return Item[K, V]{Kind: BatchRemove, Batch: entries}
}

// Player applies Items to some state and reverts them.
type Player[K comparable, V any] interface {
	Advance(item Item[K, V])
	Rewind(item Item[K, V])
}

// Play advances p through items in order.
func Play[K comparable, V any](p Player[K, V], items []Item[K, V]) {
	for _, it := range items {
		p.Advance(it)
	}
}

// Unwind rewinds p through items in reverse order, undoing a previous Play.
func Unwind[K comparable, V any](p Player[K, V], items []Item[K, V]) {
	for i := len(items) - 1; i >= 0; i-- {
		p.Rewind(items[i])
	}
}
