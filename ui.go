package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func uiFace() *ebtext.Face {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	return &face
}

// uiPanel builds a centered dark panel inside an anchor-layout root.
// Callers add their widgets to panel and wrap root in an ebitenui.UI.
func uiPanel() (root, panel *widget.Container) {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	return root, panel
}

func uiText(s string, face *ebtext.Face) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(s, face, white),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

func uiButton(label string, face *ebtext.Face, onClick func()) *widget.Button {
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// NewMenuUI builds the start menu.
func NewMenuUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := uiPanel()
	panel.AddChild(uiText("PACGO", face))
	panel.AddChild(uiButton("Start", face, func() { g.startRun() }))
	panel.AddChild(uiButton("Quit", face, func() { g.quit = true }))
	return &ebitenui.UI{Container: root}
}

// NewPauseUI builds the centered pause menu.
func NewPauseUI(g *Game) *ebitenui.UI {
	face := uiFace()
	root, panel := uiPanel()
	panel.AddChild(uiText("Paused", face))
	panel.AddChild(uiButton("Resume", face, func() { g.mode = modePlaying }))
	panel.AddChild(uiButton("Menu", face, func() { g.mode = modeMenu }))
	return &ebitenui.UI{Container: root}
}

// NewEndUI builds the end-of-run screen for a win or a game over.
func NewEndUI(g *Game, message string) *ebitenui.UI {
	face := uiFace()
	root, panel := uiPanel()
	panel.AddChild(uiText(message, face))
	panel.AddChild(uiText(fmt.Sprintf("Score: %d", g.score), face))
	panel.AddChild(uiButton("Menu", face, func() { g.mode = modeMenu }))
	return &ebitenui.UI{Container: root}
}
