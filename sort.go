package naturally

import "slices"

// Compare derives the keys of two tokens and compares them. It can be
// passed directly to [slices.SortFunc].
func Compare(a, b string) int {
	return DeriveKey(a).Compare(DeriveKey(b))
}

// Segments attaches the methods of [sort.Interface] to a slice of segments.
type Segments []Segment

func (s Segments) Len() int           { return len(s) }
func (s Segments) Less(i, j int) bool { return s[i].Less(s[j]) }
func (s Segments) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// NewSegments wraps each token in a segment, deriving all keys once.
func NewSegments(tokens []string) Segments {
	segs := make(Segments, len(tokens))
	for i, t := range tokens {
		segs[i] = NewSegment(t)
	}
	return segs
}

// Tokens returns the tokens of the segments in their current order.
func (s Segments) Tokens() []string {
	tokens := make([]string, len(s))
	for i, seg := range s {
		tokens[i] = seg.token
	}
	return tokens
}

// Sort sorts tokens in place in segment order. Tokens with equal keys, such
// as "IX" and "9", keep their original relative order.
func Sort(tokens []string) {
	segs := NewSegments(tokens)
	slices.SortStableFunc(segs, Segment.Compare)
	copy(tokens, segs.Tokens())
}
