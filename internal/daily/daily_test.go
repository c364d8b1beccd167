package daily

import (
	"testing"
	"time"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	tm := time.Date(2024, 6, 2, 5, 0, 0, 0, loc) // 2024-06-01 19:00 UTC
	if got := DateKey(tm); got != "2024-06-01" {
		t.Errorf("DateKey = %q, want 2024-06-01", got)
	}
}

func TestWordIndexRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 400; d++ {
		idx := WordIndex(start.AddDate(0, 0, d), "salt", 7)
		if idx < 0 || idx >= 7 {
			t.Fatalf("day %d: index %d out of range", d, idx)
		}
	}
}

func TestWordIndexDeterministic(t *testing.T) {
	day := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	if WordIndex(day, "a", 1000) != WordIndex(day, "a", 1000) {
		t.Error("WordIndex is not deterministic")
	}
	if WordIndex(day, "", 1000) != WordIndex(day, DefaultSalt, 1000) {
		t.Error("empty salt should fall back to DefaultSalt")
	}
}

func TestWordIndexEmpty(t *testing.T) {
	if got := WordIndex(time.Now(), "salt", 0); got != 0 {
		t.Errorf("WordIndex with n=0 = %d, want 0", got)
	}
}
