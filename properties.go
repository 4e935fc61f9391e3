package naturally

import "unicode"

// Character classes used by the segment classifier.
const (
	prAny   = iota // Anything else (must be 0)
	prDigit        // Decimal digit (general category Nd)
	prAlpha        // Alphabetic (L*, Nl and Other_Alphabetic)
)

// property returns the character class (see constants above) of the given
// code point while fast tracking ASCII digits and letters.
func property(r rune) int {
	if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
		return prAlpha
	}
	if r >= '0' && r <= '9' {
		return prDigit
	}
	if r < 0x80 {
		return prAny
	}
	if unicode.IsDigit(r) {
		return prDigit
	}
	if unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic) {
		return prAlpha
	}
	return prAny
}

// digitValue returns the decimal value of a code point of class prDigit.
//
// Unicode allocates decimal digits in contiguous runs of complete 0-9 sets,
// so the value is the distance from the start of the run modulo ten.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

// leadingRun returns the byte length of the longest prefix of s whose code
// points all have the given class.
func leadingRun(s string, class int) int {
	for i, r := range s {
		if property(r) != class {
			return i
		}
	}
	return len(s)
}
