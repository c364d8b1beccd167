// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Every player with the same salt gets the same word for a given UTC date.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DefaultSalt is used when no salt is configured.
const DefaultSalt = "local_dev_salt"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex maps a date onto [0, n) using HMAC-SHA256(salt, DateKey(date)).
// Returns 0 when n <= 0.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	if salt == "" {
		salt = DefaultSalt
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	sum := mac.Sum(nil)
	// first 8 bytes are plenty for an even modulus over a few thousand words
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
