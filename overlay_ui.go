package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/match"
)

// matchOverUI is the end-of-match panel: the result and a Restart button.
type matchOverUI struct {
	ui    *ebitenui.UI
	title *widget.Text
	shown bool
}

func newMatchOverUI(fieldW, fieldH int, textColor color.Color, onRestart func()) *matchOverUI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 170})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x66, B: 0x99, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x88, B: 0xcc, A: 255})

	var titleFace ebtext.Face = assets.Face(54)
	var hintFace ebtext.Face = assets.Face(30)
	var btnFace ebtext.Face = assets.Face(24)

	btnTextColor := &widget.ButtonTextColor{Idle: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("", &titleFace, textColor),
		widget.TextOpts.WidgetOpts(center),
	)

	hint := widget.NewText(
		widget.TextOpts.Text("Press Restart to play again.", &hintFace, textColor),
		widget.TextOpts.WidgetOpts(center),
	)

	restartBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
		widget.ButtonOpts.Text("Restart", &btnFace, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onRestart()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(fieldW*3/4, fieldH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(hint)
	panel.AddChild(restartBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &matchOverUI{
		ui:    &ebitenui.UI{Container: root},
		title: title,
	}
}

func (m *matchOverUI) show(s match.State) {
	if winner, _ := s.Winner(); winner == match.SidePlayer {
		m.title.Label = "You Win!"
	} else {
		m.title.Label = "Computer Wins!"
	}
	m.shown = true
}

func (m *matchOverUI) hide() {
	m.shown = false
}

func (m *matchOverUI) update() {
	if m.shown {
		m.ui.Update()
	}
}

func (m *matchOverUI) draw(screen *ebiten.Image) {
	if m.shown {
		m.ui.Draw(screen)
	}
}
