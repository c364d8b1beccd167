// internal/store/store.go
//
// Session history for finished games.
// A Record is written once per session when it ends (won, lost or abandoned);
// nothing here allows a session to be resumed.
//
// Implementations:
//   - memory.go: map-backed, lost on exit (default).
//   - sqlite.go: durable history in a sqlite file (--db).

package store

import (
	"context"
	"errors"
	"time"
)

// Outcome values stored with a record.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// Record is one finished session.
type Record struct {
	ID         string    `json:"id"`
	Secret     string    `json:"secret"`
	Outcome    string    `json:"outcome"`
	Guesses    int       `json:"guesses"`
	Rules      string    `json:"rules"`
	DailyDate  string    `json:"dailyDate,omitempty"` // YYYY-MM-DD for daily games
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Stats summarises the history. Abandoned sessions are not counted.
type Stats struct {
	Played       int         `json:"gamesPlayed"`
	Wins         int         `json:"wins"`
	Streak       int         `json:"streak"`
	MaxStreak    int         `json:"maxStreak"`
	Distribution map[int]int `json:"distribution"` // guesses -> wins
}

// Store persists session records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save inserts a record. Saving the same ID twice replaces it.
	Save(ctx context.Context, r Record) error

	// Get retrieves a record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]Record, error)

	// Stats aggregates all won/lost records.
	Stats(ctx context.Context) (Stats, error)

	// PlayedDaily reports whether a daily game for date already finished.
	PlayedDaily(ctx context.Context, date string) (bool, error)

	Close() error
}

// ComputeStats folds records, oldest first, into Stats.
// Wins extend the streak; a loss resets it.
func ComputeStats(records []Record) Stats {
	st := Stats{Distribution: map[int]int{}}
	for _, r := range records {
		switch r.Outcome {
		case OutcomeWon:
			st.Played++
			st.Wins++
			st.Streak++
			st.Distribution[r.Guesses]++
			if st.Streak > st.MaxStreak {
				st.MaxStreak = st.Streak
			}
		case OutcomeLost:
			st.Played++
			st.Streak = 0
		}
	}
	return st
}
