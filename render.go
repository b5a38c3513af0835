package main

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
)

type palette struct {
	background color.Color
	centerLine color.Color
	goals      color.Color
	player     color.Color
	opponent   color.Color
	ball       color.Color
	glow       color.Color
	face       color.Color
	eyes       color.Color
	smile      color.Color
	text       color.Color
}

func paletteFromSpec(spec *prefabs.MatchSpec) palette {
	return palette{
		background: spec.Palette.Background.Or(color.NRGBA{R: 0x0c, G: 0x2e, B: 0x4e, A: 0xff}),
		centerLine: spec.Palette.CenterLine.Or(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x55}),
		goals:      spec.Palette.Goals.Or(color.NRGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0x77}),
		player:     spec.Player.Color.Or(color.NRGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}),
		opponent:   spec.Opponent.Color.Or(color.NRGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}),
		ball:       spec.Ball.Color.Or(color.White),
		glow:       spec.Ball.Glow.Or(color.NRGBA{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}),
		face:       spec.Palette.Face.Or(color.NRGBA{R: 0xff, G: 0xec, B: 0xb3, A: 0xff}),
		eyes:       spec.Palette.Eyes.Or(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}),
		smile:      spec.Palette.Smile.Or(color.NRGBA{R: 0xcc, G: 0x44, B: 0x77, A: 0xff}),
		text:       spec.Palette.Text.Or(color.White),
	}
}

// fieldView draws a match state. It holds only colors and faces.
type fieldView struct {
	pal       palette
	scoreFace text.Face
}

func newFieldView(spec *prefabs.MatchSpec) *fieldView {
	return &fieldView{
		pal:       paletteFromSpec(spec),
		scoreFace: assets.Face(44),
	}
}

func (v *fieldView) Draw(screen *ebiten.Image, s match.State) {
	v.drawField(screen, s.Rules)
	v.drawPaddle(screen, s.Player, v.pal.player, true)
	v.drawPaddle(screen, s.Opponent, v.pal.opponent, false)
	v.drawBall(screen, s.Ball)
	v.drawScore(screen, s)
}

func (v *fieldView) drawField(screen *ebiten.Image, r match.Rules) {
	screen.Fill(v.pal.background)

	w, h := float32(r.FieldWidth), float32(r.FieldHeight)
	const dash, gap = 16, 18
	for y := float32(0); y < h; y += dash + gap {
		end := min(y+dash, h)
		vector.StrokeLine(screen, w/2, y, w/2, end, 5, v.pal.centerLine, false)
	}
	vector.StrokeCircle(screen, w/2, h/2, 50, 3, v.pal.centerLine, true)

	vector.DrawFilledRect(screen, 0, h/2-60, 8, 120, v.pal.goals, false)
	vector.DrawFilledRect(screen, w-8, h/2-60, 8, 120, v.pal.goals, false)
}

func (v *fieldView) drawPaddle(screen *ebiten.Image, p match.Paddle, clr color.Color, face bool) {
	vector.DrawFilledRect(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Width), float32(p.Height), clr, false)
	if !face {
		return
	}

	cx := float32(p.Pos.X + p.Width/2)
	cy := float32(p.CenterY())
	vector.DrawFilledCircle(screen, cx, cy, 23, v.pal.face, true)
	vector.DrawFilledCircle(screen, cx-7, cy-3, 3, v.pal.eyes, true)
	vector.DrawFilledCircle(screen, cx+7, cy-3, 3, v.pal.eyes, true)

	// smile: lower arc of radius 9 centered 5px below the face center
	const segments = 12
	start, end := 0.1, math.Pi-0.1
	px, py := arcPoint(cx, cy+5, 9, start)
	for i := 1; i <= segments; i++ {
		a := start + (end-start)*float64(i)/segments
		x, y := arcPoint(cx, cy+5, 9, a)
		vector.StrokeLine(screen, px, py, x, y, 2, v.pal.smile, true)
		px, py = x, y
	}
}

func arcPoint(cx, cy, r float32, angle float64) (float32, float32) {
	return cx + r*float32(math.Cos(angle)), cy + r*float32(math.Sin(angle))
}

func (v *fieldView) drawBall(screen *ebiten.Image, b match.Ball) {
	r := float32(b.Size / 2)
	cx := float32(b.Pos.X) + r
	cy := float32(b.Pos.Y) + r

	const rings = 4
	for i := rings; i >= 1; i-- {
		t := float32(i) / rings
		alpha := common.Lerp(0.45, 0.05, t)
		vector.DrawFilledCircle(screen, cx, cy, r+t*14, withAlpha(v.pal.glow, alpha), true)
	}
	vector.DrawFilledCircle(screen, cx, cy, r, v.pal.ball, true)
}

func (v *fieldView) drawScore(screen *ebiten.Image, s match.State) {
	w := s.Rules.FieldWidth
	v.drawCentered(screen, strconv.Itoa(s.Score.Player), w/2-60, 20)
	v.drawCentered(screen, strconv.Itoa(s.Score.Opponent), w/2+60, 20)
}

func (v *fieldView) drawCentered(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(v.pal.text)
	text.Draw(screen, msg, v.scoreFace, op)
}

func withAlpha(c color.Color, a float32) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * a)
	return n
}
