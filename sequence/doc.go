/*
Package sequence implements a generic container owning a contiguous buffer of
elements. It defines the type Sequence, with methods for constructing,
accessing, combining, comparing and transforming sequences, and the type
Store, with methods for interacting with a named collection of sequences.

A Sequence exclusively owns its buffer: cloning and copy assignment deep-copy
every element, moving with Take transfers the buffer and leaves the source
empty, and no operation ever shares storage between two sequences. The buffer
is always sized exactly to the element count. Operations that change the size,
including Append, allocate a fresh buffer of the exact new size, so building a
sequence one element at a time costs quadratic work overall.

Failed operations report one of the package sentinel errors:

	var (
	  ErrInvalidRange    // range construction with a malformed half-open range
	  ErrIndexOutOfRange // element access outside [0, Len())
	  ErrStartOutOfRange // slicing with a start offset beyond Len()
	  ErrNilSource       // terminated-source construction from a nil slice
	)

Match them with errors.Is.

Per-element transformation is offered through two equivalent paths: Apply
dispatches dynamically through the Transformer interface, allowing
implementations to be swapped at run time, while Modify binds an ordinary
function statically. Both replace every element in index order and produce
identical results for the same mapping.

A Store is essentially a wrapper around a map of sequences that provides
convenience methods safe to use from multiple goroutines.
*/
package sequence
