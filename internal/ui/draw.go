package ui

// Drawable is anything the render pass can put on a Canvas.
type Drawable interface {
	Draw(c Canvas)
}

// Tile is a filled box with a single centred letter.
type Tile struct {
	X, Y, W, H int
	Ch         rune
	Style      Style
}

func (t Tile) Draw(c Canvas) {
	for y := t.Y; y < t.Y+t.H; y++ {
		for x := t.X; x < t.X+t.W; x++ {
			c.SetCell(x, y, ' ', t.Style)
		}
	}
	if t.Ch != 0 && t.Ch != ' ' {
		c.SetCell(t.X+t.W/2, t.Y+t.H/2, t.Ch, t.Style)
	}
}

// Label is a run of text on one line.
type Label struct {
	X, Y  int
	Text  string
	Style Style
}

func (l Label) Draw(c Canvas) {
	x := l.X
	for _, ch := range l.Text {
		c.SetCell(x, l.Y, ch, l.Style)
		x++
	}
}

// render clears the canvas, draws ds in order and flushes.
func render(c Canvas, bg Style, ds []Drawable) error {
	c.Clear(bg)
	for _, d := range ds {
		d.Draw(c)
	}
	return c.Flush()
}
