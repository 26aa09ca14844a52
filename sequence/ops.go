package sequence

import (
	"cmp"
	"slices"
)

// Concat returns a new Sequence holding the elements of s followed by the
// elements of other. Neither operand is modified and the result shares no
// storage with them.
func (s *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	n := len(s.data) + len(other.data)
	if n == 0 {
		return New[T]()
	}
	data := make([]T, n)
	copy(data, s.data)
	copy(data[len(s.data):], other.data)
	return &Sequence[T]{data: data}
}

// Append grows the sequence by exactly one element placed at the end and
// returns the receiver. The buffer is reallocated to the exact new size on
// every call, so appending n elements one at a time costs quadratic work;
// callers building large sequences should use NewFromValues instead.
func (s *Sequence[T]) Append(v T) *Sequence[T] {
	data := make([]T, len(s.data)+1)
	copy(data, s.data)
	data[len(s.data)] = v
	s.data = data
	return s
}

// Repeat returns a new Sequence holding n concatenated copies of s in order.
// An n less than or equal to zero yields an empty sequence.
func (s *Sequence[T]) Repeat(n int) *Sequence[T] {
	if n <= 0 || len(s.data) == 0 {
		return New[T]()
	}
	data := make([]T, len(s.data)*n)
	for i := 0; i < n; i++ {
		copy(data[i*len(s.data):], s.data)
	}
	return &Sequence[T]{data: data}
}

// Equal reports whether s and other have the same length and pairwise equal
// elements.
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	return slices.Equal(s.data, other.data)
}

// Compare compares a and b lexicographically element by element. The result
// is 0 if a == b, -1 if a < b, and +1 if a > b. A prefix orders before its
// extension.
func Compare[T cmp.Ordered](a, b *Sequence[T]) int {
	return slices.Compare(a.data, b.data)
}

// Less reports whether a orders lexicographically before b.
func Less[T cmp.Ordered](a, b *Sequence[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether a orders before b or equals it. It is derived
// from Less as !Less(b, a).
func LessEqual[T cmp.Ordered](a, b *Sequence[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders lexicographically after b. It is derived
// from Less as Less(b, a).
func Greater[T cmp.Ordered](a, b *Sequence[T]) bool {
	return Less(b, a)
}

// GreaterEqual reports whether a orders after b or equals it. It is derived
// from Less as !Less(a, b).
func GreaterEqual[T cmp.Ordered](a, b *Sequence[T]) bool {
	return !Less(a, b)
}
