package sequence

// A Sequence represents an exclusively owned, contiguous buffer of elements
// of type T. The zero length state holds no buffer at all, and the buffer
// never has spare capacity: every size change allocates a fresh buffer of
// the exact new size.
type Sequence[T comparable] struct {
	data []T
}

// New creates and initializes a new empty Sequence.
func New[T comparable]() *Sequence[T] {
	return &Sequence[T]{}
}

// NewFromValues creates a new Sequence using a deep copy of values as its
// initial content. The sequence is independent of values afterward.
func NewFromValues[T comparable](values []T) *Sequence[T] {
	s := New[T]()
	s.copyFrom(values)
	return s
}

// NewRepeat creates a new Sequence of count elements all set to value.
// A count less than or equal to zero yields an empty sequence.
func NewRepeat[T comparable](count int, value T) *Sequence[T] {
	if count <= 0 {
		return New[T]()
	}
	data := make([]T, count)
	for i := range data {
		data[i] = value
	}
	return &Sequence[T]{data: data}
}

// NewTerminated creates a new Sequence from src, scanning forward for the
// first zero-value element to determine the length and deep-copying that
// prefix. If src holds no zero value the whole slice is used. A nil src
// returns ErrNilSource.
func NewTerminated[T comparable](src []T) (*Sequence[T], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	var zero T
	n := len(src)
	for i, v := range src {
		if v == zero {
			n = i
			break
		}
	}
	s := New[T]()
	s.copyFrom(src[:n])
	return s, nil
}

// NewRange creates a new Sequence from a deep copy of src[begin:end).
// The range must be well formed and contained in src, otherwise the
// function returns ErrInvalidRange.
func NewRange[T comparable](src []T, begin, end int) (*Sequence[T], error) {
	if !(span{begin: begin, end: end}).within(len(src)) {
		return nil, ErrInvalidRange
	}
	s := New[T]()
	s.copyFrom(src[begin:end])
	return s, nil
}

// Take creates a new Sequence owning the buffer of src, leaving src empty.
// Nothing is copied.
func Take[T comparable](src *Sequence[T]) *Sequence[T] {
	s := &Sequence[T]{data: src.data}
	src.data = nil
	return s
}

// Clone returns a deep copy of s. The copy is fully independent: mutating
// it never affects s.
func (s *Sequence[T]) Clone() *Sequence[T] {
	clone := New[T]()
	clone.copyFrom(s.data)
	return clone
}

// Set replaces the contents of s with a deep copy of other, releasing the
// previous buffer. Assigning a sequence to itself is a no-op.
func (s *Sequence[T]) Set(other *Sequence[T]) {
	if s == other {
		return
	}
	s.copyFrom(other.data)
}

// Take replaces the contents of s with the buffer of other, leaving other
// empty. Nothing is copied. Taking from itself is a no-op.
func (s *Sequence[T]) Take(other *Sequence[T]) {
	if s == other {
		return
	}
	s.data = other.data
	other.data = nil
}

// Clear releases the buffer and resets the sequence to the empty state.
func (s *Sequence[T]) Clear() {
	s.data = nil
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return len(s.data)
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Sequence[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// copyFrom replaces the buffer of s with a deep copy of src, keeping the
// empty state buffer-free.
func (s *Sequence[T]) copyFrom(src []T) {
	if len(src) == 0 {
		s.data = nil
		return
	}
	data := make([]T, len(src))
	copy(data, src)
	s.data = data
}
