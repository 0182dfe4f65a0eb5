// Package hashmap provides a generic separate-chaining hash map.
//
// Unlike the builtin map type, a [Map] places no constraint on its key type:
// key identity is defined entirely by the [Hasher] supplied at construction.
// The map owns only its internal chain nodes; the keys and values it stores
// remain the caller's.
//
// A Map is not safe for concurrent use.
package hashmap

// loadFactor is the occupancy threshold past which an insert grows the
// bucket array.
const loadFactor = 0.8

// node is a single entry in a bucket's collision chain.
type node[K, V any] struct {
	key   K
	value V
	next  *node[K, V]
}

// Map is a hash map backed by an array of singly linked collision chains.
//
// A Map must be created with [New]; the nil map behaves like an empty
// read-only map.
type Map[K, V any] struct {
	hasher  Hasher[K]
	buckets []*node[K, V]
	size    int
}

// New creates an empty map which uses hasher for key identity.
// No buckets are allocated until the first insert.
// A nil hasher returns a nil map.
func New[K, V any](hasher Hasher[K]) *Map[K, V] {
	if hasher == nil {
		return nil
	}
	return &Map[K, V]{hasher: hasher}
}

// lookup returns the chain node holding key, or nil.
// It is the shared lookup path of Get, GetZero, Has and Set.
func (m *Map[K, V]) lookup(key K) *node[K, V] {
	if m == nil || len(m.buckets) == 0 {
		return nil
	}
	index := m.hasher.Hash(key) % uint64(len(m.buckets))
	for n := m.buckets[index]; n != nil; n = n.next {
		if m.hasher.Equal(n.key, key) {
			return n
		}
	}
	return nil
}

// Set inserts a key-value pair into the map.
// If the key is already present, its value is overwritten in place and the
// size of the map is unchanged.
func (m *Map[K, V]) Set(key K, value V) {
	if m == nil {
		return
	}

	// lazily allocate the bucket array on the first insert
	if len(m.buckets) == 0 {
		m.Reserve(1)
	}

	found := m.lookup(key)

	// a fresh key pushing the load factor past the threshold grows the
	// bucket array before the node is placed
	if found == nil && float64(m.size+1) > loadFactor*float64(len(m.buckets)) {
		m.Reserve(2 * len(m.buckets))
	}

	if found != nil {
		found.value = value
		return
	}

	index := m.hasher.Hash(key) % uint64(len(m.buckets))
	m.buckets[index] = &node[K, V]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++
}

// Get retrieves the value for key.
// The second value indicates if the key was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.lookup(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// GetZero is like Get, but when the key does not exist returns the zero value.
func (m *Map[K, V]) GetZero(key K) V {
	value, _ := m.Get(key)
	return value
}

// Has reports whether key is present in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.lookup(key) != nil
}

// Remove unlinks the entry for key and returns its value.
// The second value indicates if the key was found; removing an absent key
// leaves the map untouched.
// Remove never shrinks the bucket array.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	if m == nil || len(m.buckets) == 0 {
		return zero, false
	}

	index := m.hasher.Hash(key) % uint64(len(m.buckets))

	// the head of the chain rewires the bucket itself
	if n := m.buckets[index]; n != nil && m.hasher.Equal(n.key, key) {
		m.buckets[index] = n.next
		m.size--
		return n.value, true
	}

	// interior nodes rewire their predecessor
	for n := m.buckets[index]; n != nil && n.next != nil; n = n.next {
		if m.hasher.Equal(n.next.key, key) {
			removed := n.next
			n.next = removed.next
			m.size--
			return removed.value, true
		}
	}

	return zero, false
}

// Reserve grows the bucket array to capacity buckets, rehashing every entry
// into its new chain.
// Nodes keep their identity; only chain membership changes, so relative order
// within a chain may differ afterwards.
// Reserve is a no-op when capacity is smaller than the current size; it never
// drops live entries.
func (m *Map[K, V]) Reserve(capacity int) {
	if m == nil || capacity < m.size {
		return
	}

	buckets := make([]*node[K, V], capacity)

	// splice every node onto the head of its new chain
	for _, head := range m.buckets {
		for n := head; n != nil; {
			next := n.next
			index := m.hasher.Hash(n.key) % uint64(len(buckets))
			n.next = buckets[index]
			buckets[index] = n
			n = next
		}
	}

	m.buckets = buckets
}

// Iterate calls f for every live key-value pair exactly once.
//
// When any f returns a non-nil error, that error is returned immediately to
// the caller and iteration stops.
//
// Visit order follows the bucket array and is an artifact of hashing and
// insertion history; treat it as unordered. The map must not be mutated from
// within f.
func (m *Map[K, V]) Iterate(f func(K, V) error) error {
	if m == nil || f == nil {
		return nil
	}
	for _, head := range m.buckets {
		for n := head; n != nil; n = n.next {
			if err := f(n.key, n.value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of entries in the map, or 0 for a nil map.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.size
}

// Cap returns the number of buckets in the map, or 0 for a nil map.
// The capacity stays 0 until the first insert or Reserve.
func (m *Map[K, V]) Cap() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Clear drops every entry and releases the bucket array.
// The stored keys and values belong to the caller and are not touched.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	m.buckets = nil
	m.size = 0
}
