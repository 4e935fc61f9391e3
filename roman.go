package naturally

import (
	"regexp"
	"strconv"
	"strings"
)

// romanPattern accepts Roman numerals up to the nineties. It is deliberately
// permissive: it also accepts the empty string and combinations such as
// "XLIV" whose summed value differs from the strict reading.
var romanPattern = regexp.MustCompile(`(?i)^(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

// Subtractive pairs in substitution priority. Only the first pair present in
// a numeral is collapsed, into a placeholder worth its value.
var romanPairs = []struct {
	pair        string
	placeholder string
}{
	{"iv", "4"},
	{"ix", "9"},
	{"xl", "f"},
	{"xc", "n"},
}

// romanDigits maps numeral letters and pair placeholders to their values.
var romanDigits = map[rune]int{
	'i': 1,
	'4': 4,
	'v': 5,
	'9': 9,
	'x': 10,
	'f': 40,
	'l': 50,
	'n': 90,
	'c': 100,
}

// isRoman reports whether token is accepted as a Roman numeral.
func isRoman(token string) bool {
	return romanPattern.MatchString(token)
}

// romanValue returns the value of a token accepted by isRoman. After one
// family of subtractive pairs is collapsed the value is a flat sum.
func romanValue(token string) int {
	s := strings.ToLower(token)
	for _, p := range romanPairs {
		if strings.Contains(s, p.pair) {
			s = strings.ReplaceAll(s, p.pair, p.placeholder)
			break
		}
	}

	var sum int
	for _, r := range s {
		sum += romanDigits[r]
	}
	return sum
}

func canonicalInt(n int) string {
	return strconv.Itoa(n)
}
