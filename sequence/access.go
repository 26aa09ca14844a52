package sequence

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

// At returns the element at index i, or ErrIndexOutOfRange if i is outside
// [0, Len()).
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, ErrIndexOutOfRange
	}
	return s.data[i], nil
}

// SetAt replaces the element at index i with v, or returns
// ErrIndexOutOfRange if i is outside [0, Len()).
func (s *Sequence[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(s.data) {
		return ErrIndexOutOfRange
	}
	s.data[i] = v
	return nil
}

// Ref returns a pointer to the element at index i, valid until the next
// size-changing operation on s, or ErrIndexOutOfRange if i is outside
// [0, Len()).
func (s *Sequence[T]) Ref(i int) (*T, error) {
	if i < 0 || i >= len(s.data) {
		return nil, ErrIndexOutOfRange
	}
	return &s.data[i], nil
}

// Slice returns a new Sequence holding a deep copy of up to length elements
// starting at start. A length overrunning the end of the sequence is clamped,
// never an error. A start offset that is negative or beyond Len() returns
// ErrStartOutOfRange. The result never shares storage with s.
func (s *Sequence[T]) Slice(start, length int) (*Sequence[T], error) {
	if start < 0 || start > len(s.data) {
		return nil, ErrStartOutOfRange
	}
	x := span{begin: start, end: start}
	if length > 0 {
		x.end = start + length
		if x.end < start {
			x.end = len(s.data)
		}
	}
	x = x.clampTo(len(s.data))
	out := New[T]()
	out.copyFrom(s.data[x.begin:x.end])
	return out, nil
}

// Values returns a forward, restartable iterator over the elements of the
// sequence in index order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return slices.Values(s.data)
}

// All returns a forward, restartable iterator over index-element pairs in
// index order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return slices.All(s.data)
}

// Refs returns a forward, restartable iterator over pointers to the elements
// in index order, allowing in-place mutation. The pointers are valid until
// the next size-changing operation on s.
func (s *Sequence[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.data {
			if !yield(&s.data[i]) {
				return
			}
		}
	}
}

// Emit writes each element in order to w using its default format, with no
// separators and no trailing terminator.
func (s *Sequence[T]) Emit(w io.Writer) error {
	for _, v := range s.data {
		if _, err := fmt.Fprintf(w, "%v", v); err != nil {
			return err
		}
	}
	return nil
}

// Format implements fmt.Formatter by formatting each element in order with
// the given verb and no separators, so that %c on a rune sequence prints
// plain text.
func (s *Sequence[T]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	for _, v := range s.data {
		fmt.Fprintf(f, format, v)
	}
}
