// Package render draws the simulation onto an ebiten image.
package render

import (
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/sim"
)

var (
	Background  = color.RGBA{245, 245, 240, 255}
	PlayerColor = color.RGBA{0, 128, 0, 255}
	EnemyColor  = color.RGBA{255, 0, 0, 255}
)

// Target is a surface the simulation is painted onto.
type Target interface {
	Fill(clr color.Color)
	DrawShape(shape sim.Shape)
}

// Screen is the singleton holding the image being drawn this frame.
type Screen struct {
	*ebiten.Image
}

func (s Screen) DrawShape(shape sim.Shape) {
	Rect(s.Image, shape)
}

// Draw clears dst to Background, then draws shapes in order.
func Draw(dst Target, shapes iter.Seq[sim.Shape]) {
	dst.Fill(Background)
	for shape := range shapes {
		dst.DrawShape(shape)
	}
}

// Color maps a colour tag to its fill colour. Unknown tags draw grey.
func Color(tag sim.ColorTag) color.Color {
	switch tag {
	case sim.TagPlayer:
		return PlayerColor
	case sim.TagEnemy:
		return EnemyColor
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

// DrawSystem clears the screen and draws every entity as a filled rectangle
// in spawn order, so later entities draw on top.
type DrawSystem struct {
	Shapes ecs.Query[struct {
		*sim.Body
		*sim.Sprite
	}]
	Screen ecs.Singleton[Screen]
}

func (s *DrawSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}

	s.Draw(screen)
}

// Draw paints the entities matched by the last query execution onto dst.
func (s *DrawSystem) Draw(dst Target) {
	Draw(dst, func(yield func(sim.Shape) bool) {
		for item := range s.Shapes.Iter() {
			if !yield(sim.ShapeOf(item.Body, item.Sprite)) {
				return
			}
		}
	})
}

// Rect fills one shape onto dst.
func Rect(dst *ebiten.Image, shape sim.Shape) {
	vector.DrawFilledRect(dst,
		float32(shape.X), float32(shape.Y),
		float32(shape.Width), float32(shape.Height),
		Color(shape.Tag), false)
}
