package sequence

// A span represents a half-open index interval [begin, end).
type span struct {
	begin int
	end   int
}

// length returns the number of indexes covered by the span.
func (x span) length() int {
	return x.end - x.begin
}

// within reports whether the span is well formed and contained in a source
// of length n.
func (x span) within(n int) bool {
	return x.begin >= 0 && x.begin <= x.end && x.end <= n
}

// clampTo bounds the span to a source of length n, preserving begin. A span
// ending before its beginning collapses to an empty span at begin.
func (x span) clampTo(n int) span {
	if x.end > n {
		x.end = n
	}
	if x.end < x.begin {
		x.end = x.begin
	}
	return x
}
