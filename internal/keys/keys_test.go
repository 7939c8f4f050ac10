package keys

import "testing"

func TestJoinSplit(t *testing.T) {
	cases := []struct{ ns, key string }{
		{"users", "42"},
		{"users", ""},
		{"a%3Ab", "c%3Ad"},
	}
	for _, tc := range cases {
		sk := Join(tc.ns, tc.key)
		ns, key, ok := Split(sk)
		if !ok {
			t.Fatalf("Split(%q) not ok", sk)
		}
		if ns != tc.ns || key != tc.key {
			t.Fatalf("Split(%q) = %q,%q want %q,%q", sk, ns, key, tc.ns, tc.key)
		}
	}
}

func TestSplitRejectsMalformed(t *testing.T) {
	for _, sk := range []string{"", "nosep", "a:b:c", "::"} {
		if _, _, ok := Split(sk); ok {
			t.Fatalf("Split(%q) should fail", sk)
		}
	}
}

func TestPrefix(t *testing.T) {
	if got := Prefix("users"); got != "users:" {
		t.Fatalf("Prefix = %q", got)
	}
}
