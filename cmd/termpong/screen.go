package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
)

// grid maps field coordinates onto terminal cells. Row 0 holds the score.
type grid struct {
	cols, rows int
	sx, sy     float64
}

func newGrid(cols, rows int, r match.Rules) grid {
	fieldRows := max(rows-1, 1)
	return grid{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / r.FieldWidth,
		sy:   float64(fieldRows) / r.FieldHeight,
	}
}

func (g grid) cell(x, y float64) (int, int) {
	cx := int(math.Floor(x * g.sx))
	cy := int(math.Floor(y*g.sy)) + 1
	return min(max(cx, 0), g.cols-1), min(max(cy, 1), g.rows-1)
}

// span returns the cell rectangle covering [x, x+w) x [y, y+h), at least one
// cell in each direction.
func (g grid) span(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = g.cell(x, y)
	x1, y1 = g.cell(x+w-0.001, y+h-0.001)
	return x0, y0, max(x1, x0), max(y1, y0)
}

type termStyles struct {
	field    tcell.Style
	line     tcell.Style
	player   tcell.Style
	opponent tcell.Style
	ball     tcell.Style
	text     tcell.Style
}

func stylesFromSpec(spec *prefabs.MatchSpec) termStyles {
	bg := tcellColor(spec.Palette.Background.Or(color.NRGBA{R: 0x0c, G: 0x2e, B: 0x4e, A: 0xff}))
	base := tcell.StyleDefault.Background(bg)
	return termStyles{
		field:    base,
		line:     base.Foreground(tcellColor(spec.Palette.Goals.Or(color.NRGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}))),
		player:   base.Foreground(tcellColor(spec.Player.Color.Or(color.NRGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}))),
		opponent: base.Foreground(tcellColor(spec.Opponent.Color.Or(color.NRGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}))),
		ball:     base.Foreground(tcellColor(spec.Ball.Color.Or(color.White))).Bold(true),
		text:     base.Foreground(tcellColor(spec.Palette.Text.Or(color.White))).Bold(true),
	}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// termView renders match states into a tcell screen.
type termView struct {
	screen tcell.Screen
	styles termStyles
}

func (v *termView) Render(s match.State) {
	v.screen.Clear()
	cols, rows := v.screen.Size()
	if cols < 10 || rows < 5 {
		v.screen.Show()
		return
	}
	g := newGrid(cols, rows, s.Rules)
	st := v.styles

	v.fill(0, 0, cols-1, rows-1, ' ', st.field)

	mid, _ := g.cell(s.Rules.FieldWidth/2, 0)
	for y := 1; y < rows; y += 2 {
		v.screen.SetContent(mid, y, '┆', nil, st.line)
	}
	for y := 1; y < rows; y++ {
		v.screen.SetContent(0, y, '│', nil, st.line)
		v.screen.SetContent(cols-1, y, '│', nil, st.line)
	}

	v.paddle(g, s.Player, st.player)
	v.paddle(g, s.Opponent, st.opponent)

	bx, by := g.cell(s.Ball.Pos.X+s.Ball.Size/2, s.Ball.Pos.Y+s.Ball.Size/2)
	v.screen.SetContent(bx, by, '●', nil, st.ball)

	v.text(mid-4-len(fmt.Sprint(s.Score.Player)), 0, fmt.Sprint(s.Score.Player), st.player)
	v.text(mid+4, 0, fmt.Sprint(s.Score.Opponent), st.opponent)

	if winner, over := s.Winner(); over {
		msg := "You Win!"
		if winner == match.SideOpponent {
			msg = "Computer Wins!"
		}
		hint := "r to play again, q to quit"
		v.text((cols-len(msg))/2, rows/2-1, msg, st.text)
		v.text((cols-len(hint))/2, rows/2+1, hint, st.text)
	}

	v.screen.Show()
}

func (v *termView) paddle(g grid, p match.Paddle, style tcell.Style) {
	x0, y0, x1, y1 := g.span(p.Pos.X, p.Pos.Y, p.Width, p.Height)
	v.fill(x0, y0, x1, y1, '█', style)
}

func (v *termView) fill(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (v *termView) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
