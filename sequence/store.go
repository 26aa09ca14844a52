package sequence

import "sync"

// A Store represents a collection of Sequences keyed by string identifiers.
// A Store can be used simultaneously from multiple goroutines. Sequences are
// cloned on the way in and on the way out, so every value held by the store
// keeps exclusive ownership of its buffer.
type Store[T comparable] struct {
	m  map[string]*Sequence[T]
	mu sync.RWMutex
}

// NewStore creates and initializes a new Store.
func NewStore[T comparable]() *Store[T] {
	return &Store[T]{m: make(map[string]*Sequence[T])}
}

// Add adds a copy of x to the store using key as its identifier. If a
// Sequence already exists for the identifier it is silently replaced with
// the new Sequence.
func (st *Store[T]) Add(key string, x *Sequence[T]) {
	st.mu.Lock()
	st.m[key] = x.Clone()
	st.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return
// value is true if the key exists in the store and false if not.
func (st *Store[T]) Get(key string) (*Sequence[T], bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	x, ok := st.m[key]
	if !ok {
		return nil, false
	}
	return x.Clone(), true
}

// Delete removes the Sequence associated to key from the store, if any.
func (st *Store[T]) Delete(key string) {
	st.mu.Lock()
	delete(st.m, key)
	st.mu.Unlock()
}

// Keys returns the identifiers known in the store.
func (st *Store[T]) Keys() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	keys := make([]string, len(st.m))
	i := 0
	for k := range st.m {
		keys[i] = k
		i++
	}
	return keys
}

// Len returns the number of sequences held by the store.
func (st *Store[T]) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.m)
}
