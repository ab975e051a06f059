package jsonc

import "fmt"

// A Span describes a contiguous span of a source input. Offsets count
// Unicode scalar values from the start of the input, not bytes.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Union returns the smallest span covering both s and t.
func (s Span) Union(t Span) Span {
	return Span{Pos: min(s.Pos, t.Pos), End: max(s.End, t.End)}
}

// IsZero reports whether s is the zero span, meaning no location is known.
func (s Span) IsZero() bool { return s == Span{} }

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }
