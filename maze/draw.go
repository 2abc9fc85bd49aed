package maze

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	wallColor = color.NRGBA{R: 0x1a, G: 0x1a, B: 0xb8, A: 0xff}
	pathColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
)

type tileImages struct {
	wall *ebiten.Image
	path *ebiten.Image
}

func (t *tileImages) build() {
	if t.wall != nil {
		return
	}
	t.wall = ebiten.NewImage(GridSize, GridSize)
	t.wall.Fill(wallColor)
	t.path = ebiten.NewImage(GridSize, GridSize)
	t.path.Fill(pathColor)
}

// Draw renders the grid as flat colored tiles.
func (m *Maze) Draw(screen *ebiten.Image) {
	m.tileImgs.build()

	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			img := m.tileImgs.path
			if m.cells[y*Columns+x] == KindWall {
				img = m.tileImgs.wall
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*GridSize), float64(y*GridSize))
			screen.DrawImage(img, op)
		}
	}
}
