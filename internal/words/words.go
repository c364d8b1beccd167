// internal/words/words.go
//
// Word list management for the terminal game.
//
// Responsibilities:
//   - Load the word list from a file, or fall back to the embedded default.
//   - Validate every entry (exactly 5 ASCII letters) and normalise to uppercase.
//   - Select a secret word uniformly at random (crypto/rand).
//   - Answer membership queries for strict mode.
//
// File format:
//   - One word per line, newline-delimited.
//   - Surrounding whitespace is trimmed; blank lines and '#' comments are skipped.
//   - Any other line that is not 5 letters makes the whole file malformed.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-tui/assets"
)

// WordLen is the fixed length of every word in a list.
const WordLen = 5

var (
	// ErrEmptyWordList is returned when a list contains no usable words.
	ErrEmptyWordList = errors.New("words: word list is empty")
	// ErrMalformedWord is returned when a line is not exactly WordLen letters.
	ErrMalformedWord = errors.New("words: malformed word")
)

// List is an immutable, validated word list.
type List struct {
	words []string            // uppercase, file order
	set   map[string]struct{} // lookup set over words
}

// New builds a List from already-normalised words.
// Returns ErrEmptyWordList if words is empty.
func New(words []string) (*List, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	l := &List{
		words: make([]string, 0, len(words)),
		set:   make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if !IsWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrMalformedWord, w)
		}
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l, nil
}

// Load reads the word list at path. An empty path selects the embedded default list.
func Load(path string) (*List, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path == "" {
		rc, err = assets.DefaultWords()
	} else {
		rc, err = os.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer rc.Close()

	ws, err := Parse(rc)
	if err != nil {
		return nil, err
	}
	return New(ws)
}

// Parse reads one word per line from r and returns them uppercased.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		w = strings.ToUpper(w)
		if !IsWord(w) {
			return nil, fmt.Errorf("%w on line %d: %q", ErrMalformedWord, line, w)
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyWordList
	}
	return out, nil
}

// SelectSecretWord returns a cryptographically random element of words.
func SelectSecretWord(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(words))))
	if err != nil {
		return "", fmt.Errorf("select secret word: %w", err)
	}
	return words[n.Int64()], nil
}

// Random returns a uniformly random word from the list.
func (l *List) Random() (string, error) {
	return SelectSecretWord(l.words)
}

// Contains reports whether w (any case) is in the list.
func (l *List) Contains(w string) bool {
	_, ok := l.set[strings.ToUpper(w)]
	return ok
}

// Len returns the number of distinct words.
func (l *List) Len() int { return len(l.words) }

// At returns the i-th word in file order.
func (l *List) At(i int) string { return l.words[i] }

// IsWord reports whether s is exactly WordLen uppercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
