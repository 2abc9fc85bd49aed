// Package sprites slices entity frames out of the master spritesheet and
// steps simple looping animations.
package sprites

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameSize is the width and height of every sheet frame in pixels.
const FrameSize = 16

// Sheet wraps the master spritesheet image.
type Sheet struct {
	img *ebiten.Image
}

// NewSheet wraps an already-decoded spritesheet.
func NewSheet(img *ebiten.Image) *Sheet {
	return &Sheet{img: img}
}

// Frame returns the FrameSize square sub-image whose top-left corner sits
// at (x, y) on the sheet.
func (s *Sheet) Frame(x, y int) *ebiten.Image {
	r := image.Rect(x, y, x+FrameSize, y+FrameSize)
	return s.img.SubImage(r).(*ebiten.Image)
}

// Frames slices one sub-image per [x, y] origin pair.
func (s *Sheet) Frames(origins [][]int) ([]*ebiten.Image, error) {
	out := make([]*ebiten.Image, 0, len(origins))
	for i, o := range origins {
		if len(o) != 2 {
			return nil, fmt.Errorf("sprites: frame origin %d has %d coordinates, want 2", i, len(o))
		}
		out = append(out, s.Frame(o[0], o[1]))
	}
	return out, nil
}

// FrameDelayTicks is how many update ticks each animation frame is held.
// The sheet animations were authored for 100ms per frame at 60 TPS.
const FrameDelayTicks = 6

// Animation cycles a frame set at a fixed tick cadence.
type Animation struct {
	frames []*ebiten.Image
	frame  int
	ticks  int
}

// NewAnimation builds a looping animation over frames.
func NewAnimation(frames []*ebiten.Image) *Animation {
	return &Animation{frames: frames}
}

// Advance steps the tick counter, wrapping the frame index.
func (a *Animation) Advance() {
	if len(a.frames) <= 1 {
		return
	}
	a.ticks++
	if a.ticks < FrameDelayTicks {
		return
	}
	a.ticks = 0
	a.frame++
	if a.frame >= len(a.frames) {
		a.frame = 0
	}
}

// Reset rewinds the animation to its first frame.
func (a *Animation) Reset() {
	a.frame = 0
	a.ticks = 0
}

// Current returns the frame under the cursor, or nil for an empty set.
func (a *Animation) Current() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	if a.frame >= len(a.frames) {
		return a.frames[len(a.frames)-1]
	}
	return a.frames[a.frame]
}
