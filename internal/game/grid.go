package game

import "errors"

// ErrCursorAtStart is returned by RemoveChar when the cursor is already in column 0.
var ErrCursorAtStart = errors.New("cursor at start of row")

// Grid holds the typed letters, their feedback and the cursor.
// Only the active row is ever mutated; earlier rows are frozen.
type Grid struct {
	cells    [Rows][Cols]rune
	feedback [Rows][Cols]Feedback
	cursor   Cursor
}

// NewGrid returns a blank grid with the cursor at (0, 0).
func NewGrid() *Grid {
	g := &Grid{}
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = blank
		}
	}
	return g
}

// Cursor returns the active position.
func (g *Grid) Cursor() Cursor { return g.cursor }

// Cell returns the letter and feedback at (row, col).
func (g *Grid) Cell(row, col int) (rune, Feedback) {
	return g.cells[row][col], g.feedback[row][col]
}

// CanType reports whether the active cell is blank.
func (g *Grid) CanType() bool {
	return g.cells[g.cursor.Row][g.cursor.Col] == blank
}

// TypeChar writes an ASCII letter into the active cell and advances the
// cursor, stopping at the last column. Lowercase letters are uppercased.
// It is a no-op, returning false, when CanType is false or c is not a letter.
func (g *Grid) TypeChar(c rune) bool {
	c, ok := normalizeLetter(c)
	if !ok || !g.CanType() {
		return false
	}
	g.cells[g.cursor.Row][g.cursor.Col] = c
	if g.cursor.Col < Cols-1 {
		g.cursor.Col++
	}
	return true
}

// RemoveChar clears the active cell, moves the cursor back one column and
// clears that cell too. The cursor must not be in column 0.
func (g *Grid) RemoveChar() error {
	if g.cursor.Col == 0 {
		return ErrCursorAtStart
	}
	g.cells[g.cursor.Row][g.cursor.Col] = blank
	g.cursor.Col--
	g.cells[g.cursor.Row][g.cursor.Col] = blank
	return nil
}

// RowFull reports whether every cell of the active row holds a letter.
func (g *Grid) RowFull() bool {
	for _, c := range g.cells[g.cursor.Row] {
		if c == blank {
			return false
		}
	}
	return true
}

// RowWord returns the active row as a string (blanks included).
func (g *Grid) RowWord() string {
	return string(g.cells[g.cursor.Row][:])
}

// setFeedback stores the verification result for the active row.
func (g *Grid) setFeedback(fb [Cols]Feedback) {
	g.feedback[g.cursor.Row] = fb
}

// advance moves the cursor to the start of the next row.
func (g *Grid) advance() {
	g.cursor.Row++
	g.cursor.Col = 0
}

// normalizeLetter uppercases ASCII letters and rejects everything else.
func normalizeLetter(c rune) (rune, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c, true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', true
	}
	return 0, false
}
