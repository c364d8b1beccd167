package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/nsf/termbox-go"

	"github.com/robalobadob/wordle/apps/go-tui/internal/game"
)

// fakeCanvas records the last flushed frame.
type fakeCanvas struct {
	w, h    int
	cells   map[[2]int]rune
	styles  map[[2]int]Style
	flushes int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{w: 80, h: 40, cells: map[[2]int]rune{}, styles: map[[2]int]Style{}}
}

func (f *fakeCanvas) Size() (int, int) { return f.w, f.h }

func (f *fakeCanvas) Clear(bg Style) {
	f.cells = map[[2]int]rune{}
	f.styles = map[[2]int]Style{}
}

func (f *fakeCanvas) SetCell(x, y int, ch rune, st Style) {
	f.cells[[2]int{x, y}] = ch
	f.styles[[2]int{x, y}] = st
}

func (f *fakeCanvas) Flush() error {
	f.flushes++
	return nil
}

// line returns row y of the frame as text.
func (f *fakeCanvas) line(y int) string {
	var b strings.Builder
	for x := 0; x < f.w; x++ {
		if ch, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func newTestApp(t *testing.T, secret string, opts Options) (*App, *fakeCanvas) {
	t.Helper()
	g, err := game.New(secret, game.Options{Rules: game.RulesReference})
	if err != nil {
		t.Fatal(err)
	}
	c := newFakeCanvas()
	return New(g, c, DefaultTheme(), opts), c
}

func feed(ins ...Input) <-chan Input {
	ch := make(chan Input, len(ins))
	for _, in := range ins {
		ch <- in
	}
	close(ch)
	return ch
}

func word(w string) []Input {
	var out []Input
	for _, c := range w {
		out = append(out, Letter(c))
	}
	return append(out, Input{Key: KeyEnter})
}

func run(t *testing.T, a *App, ins []Input) Outcome {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	o, err := a.Run(ctx, feed(ins...))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return o
}

func TestAppWin(t *testing.T) {
	a, c := newTestApp(t, "CRANE", Options{})
	o := run(t, a, word("crane"))
	if o.State != game.Won || o.Abandoned || o.Guesses != 1 || o.Secret != "CRANE" {
		t.Errorf("outcome = %+v", o)
	}
	if !strings.Contains(o.Message(), "You won") {
		t.Errorf("message = %q", o.Message())
	}
	if c.flushes == 0 {
		t.Error("nothing was rendered")
	}
}

func TestAppLoss(t *testing.T) {
	a, _ := newTestApp(t, "CRANE", Options{})
	var ins []Input
	for i := 0; i < game.Rows; i++ {
		ins = append(ins, word("sloth")...)
	}
	o := run(t, a, ins)
	if o.State != game.Lost || o.Guesses != game.Rows {
		t.Errorf("outcome = %+v", o)
	}
	if !strings.Contains(o.Message(), "CRANE") {
		t.Errorf("loss message should reveal the word: %q", o.Message())
	}
}

func TestAppEscapeAbandons(t *testing.T) {
	a, _ := newTestApp(t, "CRANE", Options{})
	o := run(t, a, []Input{Letter('c'), {Key: KeyEscape}, Letter('r')})
	if !o.Abandoned || o.State != game.Guessing || o.Secret != "" {
		t.Errorf("outcome = %+v", o)
	}
}

func TestAppClosedInputAbandons(t *testing.T) {
	a, _ := newTestApp(t, "CRANE", Options{})
	o := run(t, a, nil)
	if !o.Abandoned {
		t.Errorf("outcome = %+v, want abandoned", o)
	}
}

func TestAppBackspaceAtStartIsIgnored(t *testing.T) {
	a, _ := newTestApp(t, "CRANE", Options{})
	ins := []Input{{Key: KeyBackspace}, {Key: KeyBackspace}}
	ins = append(ins, word("crane")...)
	if o := run(t, a, ins); o.State != game.Won {
		t.Errorf("outcome = %+v, want won", o)
	}
}

func TestAppIncompleteRowShowsStatus(t *testing.T) {
	a, c := newTestApp(t, "CRANE", Options{})
	o := run(t, a, []Input{Letter('c'), Letter('r'), {Key: KeyEnter}})
	if !o.Abandoned {
		t.Errorf("outcome = %+v", o)
	}
	if got := c.line(statusTop()); !strings.Contains(got, "Not enough letters") {
		t.Errorf("status line = %q", got)
	}
	if len(a.game.Guesses) != 0 {
		t.Error("incomplete row must not be submitted")
	}
}

func TestAppRevealAndEndDelay(t *testing.T) {
	a, _ := newTestApp(t, "CRANE", Options{
		RevealDelay: time.Millisecond,
		BlinkDelay:  time.Millisecond,
		EndDelay:    time.Millisecond,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	inputs := make(chan Input)
	done := make(chan Outcome, 1)
	go func() {
		o, _ := a.Run(ctx, inputs)
		done <- o
	}()
	for _, in := range word("crane") {
		inputs <- in
	}
	select {
	case o := <-done:
		if o.State != game.Won || o.Abandoned {
			t.Errorf("outcome = %+v", o)
		}
	case <-ctx.Done():
		t.Fatal("app did not finish after the end delay")
	}
}

func TestLayoutRevealMasksTiles(t *testing.T) {
	g, _ := game.New("CRANE", game.Options{})
	for _, c := range "CRATE" {
		g.TypeChar(c)
	}
	before := g.Keyboard().Tags()
	g.Submit()

	v := view{snap: g.Snapshot(), keys: before, revealRow: 0, revealed: 2}
	th := DefaultTheme()
	ds := layout(v, th, boardWidth)

	// tiles are appended row-major after the title label
	tiles := ds[1 : 1+game.Rows*game.Cols]
	if st := tiles[0].(Tile).Style; st != th.TileExact {
		t.Errorf("revealed tile style = %+v, want exact", st)
	}
	if st := tiles[3].(Tile).Style; st != th.TileBlank {
		t.Errorf("unrevealed tile style = %+v, want blank", st)
	}
	// keyboard still shows the tags from before the submission
	keys := ds[1+game.Rows*game.Cols:]
	for _, d := range keys {
		if k, ok := d.(Tile); ok && k.Ch == 'T' && k.Style != th.KeyUnused {
			t.Errorf("T key style = %+v, want unused during reveal", k.Style)
		}
	}
}

func TestLayoutCursorAndBlink(t *testing.T) {
	g, _ := game.New("CRANE", game.Options{})
	g.TypeChar('Q')
	v := view{snap: g.Snapshot(), keys: g.Keyboard().Tags(), revealRow: -1, blink: 'Q'}
	th := DefaultTheme()
	ds := layout(v, th, boardWidth)
	if st := ds[2].(Tile).Style; st != th.TileCursor {
		t.Errorf("cursor tile style = %+v, want cursor", st)
	}
	found := false
	for _, d := range ds {
		if k, ok := d.(Tile); ok && k.Ch == 'Q' && k.H == keyH {
			found = true
			if k.Style != th.KeyBlink {
				t.Errorf("Q key style = %+v, want blink", k.Style)
			}
		}
	}
	if !found {
		t.Error("Q key not laid out")
	}
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   termbox.Event
		want Input
	}{
		{termbox.Event{Type: termbox.EventKey, Ch: 'a'}, Letter('a')},
		{termbox.Event{Type: termbox.EventKey, Ch: 'Z'}, Letter('Z')},
		{termbox.Event{Type: termbox.EventKey, Ch: '7'}, Input{}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, Input{Key: KeyEnter}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, Input{Key: KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace}, Input{Key: KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, Input{Key: KeyEscape}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyCtrlC}, Input{Key: KeyEscape}},
		{termbox.Event{Type: termbox.EventResize}, Input{Key: KeyResize}},
		{termbox.Event{Type: termbox.EventMouse}, Input{}},
	}
	for _, c := range cases {
		if got := translate(c.ev); got != c.want {
			t.Errorf("translate(%+v) = %+v, want %+v", c.ev, got, c.want)
		}
	}
}
