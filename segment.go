package naturally

// Segment is one token of a larger identifier together with its derived
// [Key]. Segments are immutable values and safe to share between
// goroutines.
type Segment struct {
	token string
	key   Key
}

// NewSegment wraps token and derives its key.
func NewSegment(token string) Segment {
	return Segment{token: token, key: DeriveKey(token)}
}

// Token returns the token the segment was created from.
func (s Segment) Token() string {
	return s.token
}

// Key returns the segment's key.
func (s Segment) Key() Key {
	return s.key
}

// String returns the token.
func (s Segment) String() string {
	return s.token
}

// Compare returns -1, 0 or +1 depending on whether s orders before, equal to
// or after other. Segments compare by key only, so "IX" equals "9".
func (s Segment) Compare(other Segment) int {
	return s.key.Compare(other.key)
}

// Equal reports whether both segments have equal keys.
func (s Segment) Equal(other Segment) bool {
	return s.Compare(other) == 0
}

// Less reports whether s orders before other.
func (s Segment) Less(other Segment) bool {
	return s.Compare(other) < 0
}

// LessOrEqual reports whether s does not order after other.
func (s Segment) LessOrEqual(other Segment) bool {
	return s.Compare(other) <= 0
}

// Greater reports whether s orders after other.
func (s Segment) Greater(other Segment) bool {
	return s.Compare(other) > 0
}

// GreaterOrEqual reports whether s does not order before other.
func (s Segment) GreaterOrEqual(other Segment) bool {
	return s.Compare(other) >= 0
}
