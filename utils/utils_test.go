package utils

import (
	"testing"
	"time"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	// 02:30 on Jan 2 in UTC+5 is still Jan 1 in UTC.
	local := time.Date(2026, 1, 2, 2, 30, 0, 0, loc)
	if got := DateKey(local); got != "2026-01-01" {
		t.Fatalf("expected 2026-01-01, got %s", got)
	}
}

func TestGenerateRandomStringLength(t *testing.T) {
	for _, n := range []int{1, 12, 32} {
		if got := GenerateRandomString(n); len(got) != n {
			t.Fatalf("expected length %d, got %d", n, len(got))
		}
	}
}

func TestGenerateRandomDigitStringDigitsOnly(t *testing.T) {
	s := GenerateRandomDigitString(20)
	for _, r := range s {
		if r < '0' || r > '9' {
			t.Fatalf("non-digit rune %q in %s", r, s)
		}
	}
}
