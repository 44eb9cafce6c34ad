// Package term draws the simulation into a tcell terminal screen and turns
// terminal key events into held input actions.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/roamer/ecs"
	"github.com/plus3/roamer/sim"
)

const block = '█'

// Style returns the cell style for a colour tag.
func Style(tag sim.ColorTag) tcell.Style {
	switch tag {
	case sim.TagPlayer:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case sim.TagEnemy:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	}
}

// Grid scales arena coordinates onto a grid of terminal cells.
type Grid struct {
	Arena      sim.Arena
	Cols, Rows int
}

// Cell returns the cell containing the arena point (x, y).
func (g Grid) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x / g.Arena.Width * float64(g.Cols)))
	row = int(math.Floor(y / g.Arena.Height * float64(g.Rows)))
	return col, row
}

// Span returns the half-open cell range [col0, col1) x [row0, row1) a shape
// covers, clipped to the grid. Every shape inside the grid covers at least
// one cell.
func (g Grid) Span(shape sim.Shape) (col0, row0, col1, row1 int) {
	col0, row0 = g.Cell(shape.X, shape.Y)
	col1 = int(math.Ceil((shape.X + shape.Width) / g.Arena.Width * float64(g.Cols)))
	row1 = int(math.Ceil((shape.Y + shape.Height) / g.Arena.Height * float64(g.Rows)))

	col1 = max(col1, col0+1)
	row1 = max(row1, row0+1)

	col0, col1 = max(col0, 0), min(col1, g.Cols)
	row0, row1 = max(row0, 0), min(row1, g.Rows)
	return col0, row0, col1, row1
}

// Surface is the singleton holding the terminal screen. The bottom row is
// kept for a status line; the rest shows the arena.
type Surface struct {
	tcell.Screen
	Status string
}

// Grid returns the arena grid for the screen's current size.
func (s *Surface) Grid(arena sim.Arena) Grid {
	cols, rows := s.Size()
	return Grid{Arena: arena, Cols: cols, Rows: max(rows-1, 0)}
}

// Paint clears the screen and draws shapes in order, then the status line.
func (s *Surface) Paint(arena sim.Arena, shapes []sim.Shape) {
	s.Clear()

	grid := s.Grid(arena)
	for _, shape := range shapes {
		style := Style(shape.Tag)
		col0, row0, col1, row1 := grid.Span(shape)
		for row := row0; row < row1; row++ {
			for col := col0; col < col1; col++ {
				s.SetContent(col, row, block, nil, style)
			}
		}
	}

	for i, r := range []rune(s.Status) {
		if i >= grid.Cols {
			break
		}
		s.SetContent(i, grid.Rows, r, nil, tcell.StyleDefault)
	}
}

// DrawSystem paints every entity onto the Surface singleton in spawn order
// and shows the frame.
type DrawSystem struct {
	Shapes ecs.Query[struct {
		*sim.Body
		*sim.Sprite
	}]
	Surface ecs.Singleton[Surface]
	Config  ecs.Singleton[sim.Config]
}

func (s *DrawSystem) Execute(frame *ecs.UpdateFrame) {
	surface := s.Surface.Get()
	if surface == nil || surface.Screen == nil {
		return
	}

	shapes := make([]sim.Shape, 0, s.Shapes.Len())
	for item := range s.Shapes.Iter() {
		shapes = append(shapes, sim.ShapeOf(item.Body, item.Sprite))
	}

	surface.Paint(s.Config.Get().Arena, shapes)
	surface.Show()
}
