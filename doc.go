/*
Package naturally orders the segments of identifiers the way people read
them: numerically when numeric, alphabetically when alphabetic, and
sensibly when numbers are written as Roman numerals or mixed with letters.

A segment is one already-isolated token of a larger string, such as one
component of a filename ("chapter", "IX"), a version string ("10", "2") or a
legal citation ("633a"). Splitting the larger string is left to the caller.

# Keys

[DeriveKey] classifies a token into one of four shapes:

	"42", "IX"       Numeric            [int 42], [int 9]
	"633a"           NumericWithSuffix  [int 633 "a"]
	"MATH101"        AlphaWithNumber    [str "MATH" 101]
	"hello-world"    Text               [str "hello-world"]

Roman numerals are recognized in any case up to the nineties. Digits are
any Unicode decimal digits and letters any Unicode alphabetic characters.

# Ordering

Keys compare as their tagged sequences, element by element. Integers
compare numerically, so "9" orders before "10" and "MATH9" before "MATH10".
A sequence that is a prefix of another orders first, so "633" orders before
"633a", which orders before "634". Tags compare by name: every numeric key
orders before every textual key.

Use [Segment] to hold a token together with its key, [Compare] as a
comparison function for [slices.SortFunc], or [Sort] to sort a slice of
tokens in place:

	tokens := []string{"10", "2", "1a", "MATH101", "MATH20", "IX", "foo"}
	naturally.Sort(tokens)
	// [1a 2 IX 10 MATH20 MATH101 foo]

All functions are pure and safe for concurrent use. None of them fail: a
token that matches no numeric shape is kept as text.
*/
package naturally
