package naturally

import "strings"

// DeriveKey classifies token and returns its key. The first matching rule
// wins:
//
//  1. Digits followed by letters ("633a") give a [NumericWithSuffix] key.
//  2. Letters followed by digits ("MATH101") give an [AlphaWithNumber] key.
//  3. Digits only ("42") give a [Numeric] key.
//  4. A Roman numeral in any case ("IX", "xl") gives a [Numeric] key holding
//     its value. The empty token falls here with value 0.
//  5. Anything else gives a [Text] key holding the token unchanged.
//
// Digits are Unicode decimal digits and letters are Unicode alphabetic code
// points. Every string has a key; DeriveKey never fails.
func DeriveKey(token string) Key {
	if n := leadingRun(token, prDigit); n > 0 {
		rest := token[n:]
		if rest == "" {
			return Key{kind: Numeric, digits: canonicalDigits(token)}
		}
		if leadingRun(rest, prAlpha) == len(rest) {
			return Key{kind: NumericWithSuffix, digits: canonicalDigits(token[:n]), text: rest}
		}
		return Key{kind: Text, text: token}
	}

	if n := leadingRun(token, prAlpha); n > 0 && n < len(token) {
		if leadingRun(token[n:], prDigit) == len(token)-n {
			return Key{kind: AlphaWithNumber, digits: canonicalDigits(token[n:]), text: token[:n]}
		}
	}

	if isRoman(token) {
		return Key{kind: Numeric, digits: canonicalInt(romanValue(token))}
	}

	return Key{kind: Text, text: token}
}

// canonicalDigits converts a run of decimal digits to ASCII digits without
// leading zeros.
func canonicalDigits(run string) string {
	var b strings.Builder
	b.Grow(len(run))
	for _, r := range run {
		d := digitValue(r)
		if d == 0 && b.Len() == 0 {
			continue
		}
		b.WriteByte(byte('0' + d))
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
