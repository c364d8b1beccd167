package ui

import "github.com/robalobadob/wordle/apps/go-tui/internal/game"

// KeyboardRows is the on-screen keyboard, top to bottom.
var KeyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

const (
	tileW = 5
	tileH = 3
	keyW  = 3
	keyH  = 1
	gap   = 1

	gridTop = 2
)

// boardWidth is the widest element, the top keyboard row.
var boardWidth = len(KeyboardRows[0])*keyW + (len(KeyboardRows[0])-1)*gap

// view is everything one frame shows.
type view struct {
	title     string
	snap      game.Snapshot
	keys      [26]game.KeyTag // keyboard tags to display
	revealRow int             // row being revealed, or -1
	revealed  int             // tiles of revealRow already shown
	blink     rune            // key highlighted after typing, or 0
	status    string
}

// layout turns a view into drawables for a canvas width wide.
func layout(v view, th Theme, width int) []Drawable {
	left := 0
	if width > boardWidth {
		left = (width - boardWidth) / 2
	}
	var ds []Drawable
	ds = append(ds, Label{X: left + (boardWidth-len(v.title))/2, Y: 0, Text: v.title, Style: th.Title})

	gridW := game.Cols*tileW + (game.Cols-1)*gap
	gx := left + (boardWidth-gridW)/2
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			fb := v.snap.Feedback[r][c]
			if r == v.revealRow && c >= v.revealed {
				fb = game.Unevaluated
			}
			st := th.tile(fb)
			if fb == game.Unevaluated && v.snap.State == game.Guessing && v.revealRow < 0 &&
				r == v.snap.Cursor.Row && c == v.snap.Cursor.Col {
				st = th.TileCursor
			}
			ds = append(ds, Tile{
				X:     gx + c*(tileW+gap),
				Y:     gridTop + r*(tileH+gap),
				W:     tileW,
				H:     tileH,
				Ch:    v.snap.Cells[r][c],
				Style: st,
			})
		}
	}

	ky := keyboardTop()
	for i, row := range KeyboardRows {
		rowW := len(row)*keyW + (len(row)-1)*gap
		kx := left + (boardWidth-rowW)/2
		for j, ch := range row {
			st := th.key(v.keys[ch-'A'])
			if ch == v.blink {
				st = th.KeyBlink
			}
			ds = append(ds, Tile{
				X:     kx + j*(keyW+gap),
				Y:     ky + i*(keyH+gap),
				W:     keyW,
				H:     keyH,
				Ch:    ch,
				Style: st,
			})
		}
	}

	if v.status != "" {
		sx := left + (boardWidth-len(v.status))/2
		if sx < 0 {
			sx = 0
		}
		ds = append(ds, Label{X: sx, Y: statusTop(), Text: v.status, Style: th.Status})
	}
	return ds
}

func keyboardTop() int {
	return gridTop + game.Rows*(tileH+gap) + 1
}

func statusTop() int {
	return keyboardTop() + len(KeyboardRows)*(keyH+gap) + 1
}
