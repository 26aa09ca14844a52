package sequence

// A Transformer maps an element to its replacement. It is the run-time
// polymorphic counterpart of the function accepted by Modify:
// implementations can be substituted behind the interface without
// recompiling callers.
type Transformer[T any] interface {
	Transform(T) T
}

// TransformerFunc adapts an ordinary function to the Transformer interface.
type TransformerFunc[T any] func(T) T

// Transform calls f(v).
func (f TransformerFunc[T]) Transform(v T) T {
	return f(v)
}

// Apply replaces every element of s, in index order, with the transformer's
// output for that element. Dispatch is dynamic through the Transformer
// interface.
func (s *Sequence[T]) Apply(t Transformer[T]) {
	for i := range s.data {
		s.data[i] = t.Transform(s.data[i])
	}
}

// Modify replaces every element of s, in index order, with fn applied to
// that element. The function is bound statically, with no interface
// indirection. For the same mapping, Modify and Apply produce identical
// results.
func (s *Sequence[T]) Modify(fn func(T) T) {
	for i := range s.data {
		s.data[i] = fn(s.data[i])
	}
}

// Convert creates a new Sequence of element type T from src by applying
// conv to every element in order, preserving order and count. It is the
// cross-type counterpart of Apply.
func Convert[T, U comparable](src *Sequence[U], conv func(U) T) *Sequence[T] {
	if len(src.data) == 0 {
		return New[T]()
	}
	data := make([]T, len(src.data))
	for i, v := range src.data {
		data[i] = conv(v)
	}
	return &Sequence[T]{data: data}
}
