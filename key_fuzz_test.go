package naturally

import (
	"math/big"
	"strings"
	"testing"
)

// FuzzCompare checks that any three tokens are ordered consistently: keys are
// stable across derivations, comparison is antisymmetric and transitive.
func FuzzCompare(f *testing.F) {
	f.Add("10", "2", "1a")
	f.Add("MATH101", "MATH20", "IX")
	f.Add("633", "633a", "634")
	f.Add("", "xliv", "hello-world")
	f.Add("abc", "abc1", "abcd")
	f.Add("٣", "३अ", "\xff")

	f.Fuzz(func(t *testing.T, a, b, c string) {
		// Keep the roman regexp and digit runs cheap
		if len(a) > 1000 || len(b) > 1000 || len(c) > 1000 {
			t.Skip()
		}

		ka, kb, kc := DeriveKey(a), DeriveKey(b), DeriveKey(c)

		if ka != DeriveKey(a) {
			t.Fatalf("DeriveKey(%q) is not stable", a)
		}
		if ka.Compare(ka) != 0 {
			t.Fatalf("%q does not equal itself", a)
		}

		ab, ba := ka.Compare(kb), kb.Compare(ka)
		if ab != -ba || ab < -1 || ab > 1 {
			t.Fatalf("Compare(%q, %q) = %d, reverse = %d", a, b, ab, ba)
		}

		if ab <= 0 && kb.Compare(kc) <= 0 && ka.Compare(kc) > 0 {
			t.Fatalf("not transitive: %q <= %q <= %q but %q > %q", a, b, c, a, c)
		}
	})
}

// FuzzDeriveKeyDigits checks that ASCII digit runs always classify as
// Numeric with their integer value.
func FuzzDeriveKeyDigits(f *testing.F) {
	f.Add(uint64(0), 0)
	f.Add(uint64(9), 1)
	f.Add(uint64(18446744073709551615), 3)

	f.Fuzz(func(t *testing.T, n uint64, zeros int) {
		if zeros < 0 || zeros > 64 {
			t.Skip()
		}
		want := new(big.Int).SetUint64(n)
		token := strings.Repeat("0", zeros) + want.String()

		key := DeriveKey(token)
		if key.Kind() != Numeric {
			t.Fatalf("DeriveKey(%q) kind = %v, want Numeric", token, key.Kind())
		}
		if key.Int().Cmp(want) != 0 {
			t.Fatalf("DeriveKey(%q) value = %v, want %v", token, key.Int(), want)
		}

		next := DeriveKey(new(big.Int).Add(want, big.NewInt(1)).String())
		if !key.Less(next) {
			t.Fatalf("%q does not order before its successor", token)
		}
	})
}

// FuzzDeriveKeyText checks that Text keys keep the token unchanged.
func FuzzDeriveKeyText(f *testing.F) {
	f.Add("hello-world")
	f.Add("@@")
	f.Add("1.2.3")

	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 1000 {
			t.Skip()
		}
		key := DeriveKey(s)
		if key.Kind() == Text && key.Text() != s {
			t.Fatalf("DeriveKey(%q) text = %q", s, key.Text())
		}
		if key.Kind() != Text && key.Int() == nil {
			t.Fatalf("DeriveKey(%q) has no integer value", s)
		}
	})
}
