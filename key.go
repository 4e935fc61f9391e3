package naturally

import (
	"cmp"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies the shape a token was classified as. See [DeriveKey] for
// the classification rules.
type Kind int

// The four segment shapes, in classification order of their tag class.
const (
	Numeric           Kind = iota // Digits or a Roman numeral, e.g. "42", "IX".
	NumericWithSuffix             // Digits followed by letters, e.g. "633a".
	AlphaWithNumber               // Letters followed by digits, e.g. "MATH101".
	Text                          // Anything else, e.g. "hello-world".
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case NumericWithSuffix:
		return "NumericWithSuffix"
	case AlphaWithNumber:
		return "AlphaWithNumber"
	case Text:
		return "Text"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Tags leading every key sequence. Keys compare by tag name first, so all
// integer-led keys order before all string-led keys.
const (
	TagInt = "int"
	TagStr = "str"
)

// Key is the comparable representation of a segment. The zero value is the
// Numeric key 0.
//
// A key reduces to a sequence with a leading tag:
//
//	Numeric            [int n]
//	NumericWithSuffix  [int n suffix]
//	AlphaWithNumber    [str prefix n]
//	Text               [str value]
//
// Keys order by lexicographic comparison of these sequences, where a proper
// prefix is less, integers compare numerically and strings bytewise.
type Key struct {
	kind Kind

	// digits is the integer value as canonical decimal digits: ASCII only,
	// no leading zeros, "0" for zero. Empty for Text and for the zero Key.
	digits string

	// text is the suffix, the prefix or the whole value depending on kind.
	text string
}

// Kind returns the shape of the key.
func (k Key) Kind() Kind {
	return k.kind
}

// Tag returns the leading element of the key's sequence, [TagInt] or
// [TagStr].
func (k Key) Tag() string {
	if k.kind == Numeric || k.kind == NumericWithSuffix {
		return TagInt
	}
	return TagStr
}

// Int returns a newly allocated copy of the key's integer value, or nil for
// Text keys.
func (k Key) Int() *big.Int {
	if k.kind == Text {
		return nil
	}
	n, ok := new(big.Int).SetString(k.decimal(), 10)
	if !ok {
		return new(big.Int)
	}
	return n
}

// Int64 returns the key's integer value if it has one and it fits in an
// int64.
func (k Key) Int64() (int64, bool) {
	if k.kind == Text {
		return 0, false
	}
	n, err := strconv.ParseInt(k.decimal(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Suffix returns the trailing letters of a NumericWithSuffix key.
func (k Key) Suffix() string {
	if k.kind == NumericWithSuffix {
		return k.text
	}
	return ""
}

// Prefix returns the leading letters of an AlphaWithNumber key.
func (k Key) Prefix() string {
	if k.kind == AlphaWithNumber {
		return k.text
	}
	return ""
}

// Text returns the value of a Text key.
func (k Key) Text() string {
	if k.kind == Text {
		return k.text
	}
	return ""
}

// Elements returns the key's tagged sequence. Integer elements are *big.Int.
func (k Key) Elements() []any {
	switch k.kind {
	case NumericWithSuffix:
		return []any{TagInt, k.Int(), k.text}
	case AlphaWithNumber:
		return []any{TagStr, k.text, k.Int()}
	case Text:
		return []any{TagStr, k.text}
	}
	return []any{TagInt, k.Int()}
}

// String formats the key as its tagged sequence, e.g. "[int 633 a]".
func (k Key) String() string {
	var b strings.Builder
	b.WriteByte('[')
	switch k.kind {
	case NumericWithSuffix:
		fmt.Fprintf(&b, "%s %s %q", TagInt, k.decimal(), k.text)
	case AlphaWithNumber:
		fmt.Fprintf(&b, "%s %q %s", TagStr, k.text, k.decimal())
	case Text:
		fmt.Fprintf(&b, "%s %q", TagStr, k.text)
	default:
		fmt.Fprintf(&b, "%s %s", TagInt, k.decimal())
	}
	b.WriteByte(']')
	return b.String()
}

// Compare returns -1 if k orders before other, +1 if it orders after, and 0
// if both keys reduce to the same sequence.
func (k Key) Compare(other Key) int {
	if c := strings.Compare(k.Tag(), other.Tag()); c != 0 {
		return c
	}

	if k.Tag() == TagInt {
		// [int n] or [int n suffix]
		if c := compareDecimal(k.decimal(), other.decimal()); c != 0 {
			return c
		}
		return compareTail(k.kind == NumericWithSuffix, other.kind == NumericWithSuffix, func() int {
			return strings.Compare(k.text, other.text)
		})
	}

	// [str value] or [str prefix n]
	if c := strings.Compare(k.text, other.text); c != 0 {
		return c
	}
	return compareTail(k.kind == AlphaWithNumber, other.kind == AlphaWithNumber, func() int {
		return compareDecimal(k.decimal(), other.decimal())
	})
}

// Equal reports whether k and other reduce to the same sequence.
func (k Key) Equal(other Key) bool {
	return k.Compare(other) == 0
}

// Less reports whether k orders before other.
func (k Key) Less(other Key) bool {
	return k.Compare(other) < 0
}

// decimal returns the canonical digits of the integer value.
func (k Key) decimal() string {
	if k.digits == "" {
		return "0"
	}
	return k.digits
}

// compareTail compares the optional third sequence element once the first
// two are equal. A sequence without it is a proper prefix and orders first.
func compareTail(hasA, hasB bool, third func() int) int {
	switch {
	case hasA && hasB:
		return third()
	case hasA:
		return 1
	case hasB:
		return -1
	}
	return 0
}

// compareDecimal compares two canonical decimal digit strings numerically.
func compareDecimal(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
