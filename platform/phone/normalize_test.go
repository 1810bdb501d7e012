package phone

import "testing"

func TestNormalizeE164(t *testing.T) {
	n := NewNormalizer("AE")

	cases := []struct {
		in   string
		want string
	}{
		{"050 123 4567", "+971501234567"},
		{"+971 50 123 4567", "+971501234567"},
		{"  ", ""},
		{"call me maybe", "call me maybe"},
		{" 12 ", "12"},
	}

	for _, tc := range cases {
		if got := n.NormalizeE164(tc.in); got != tc.want {
			t.Errorf("NormalizeE164(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewNormalizerDefaultsRegion(t *testing.T) {
	if got := NewNormalizer("").region; got != DefaultRegion {
		t.Fatalf("region = %q, want %q", got, DefaultRegion)
	}
}
