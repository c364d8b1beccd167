package words

import (
	"time"

	"github.com/robalobadob/wordle/apps/go-tui/internal/daily"
)

// Daily returns the word of the day for date, together with its index.
func (l *List) Daily(date time.Time, salt string) (string, int) {
	idx := daily.WordIndex(date, salt, len(l.words))
	return l.words[idx], idx
}
