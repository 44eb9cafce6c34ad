package sim

// Arena is the fixed rectangle every entity is confined to.
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type Vec2 struct {
	X, Y float64
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Center returns the top-left position that centres a box of the given size.
func (a Arena) Center(size Size) Vec2 {
	return Vec2{
		X: a.Width/2 - size.Width/2,
		Y: a.Height/2 - size.Height/2,
	}
}

// Contains reports whether a box at pos lies entirely inside the arena.
func (a Arena) Contains(pos Vec2, size Size) bool {
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X <= a.Width-size.Width && pos.Y <= a.Height-size.Height
}

// ColorTag tells a renderer how to paint an entity.
type ColorTag string

const (
	TagPlayer ColorTag = "player"
	TagEnemy  ColorTag = "enemy"
)

// Shape is what a renderer needs to draw one entity: an axis-aligned
// rectangle and its colour tag.
type Shape struct {
	X, Y          float64
	Width, Height float64
	Tag           ColorTag
}

// ShapeOf builds the render shape for a body and sprite pair.
func ShapeOf(body *Body, sprite *Sprite) Shape {
	return Shape{
		X:      body.Pos.X,
		Y:      body.Pos.Y,
		Width:  body.Size.Width,
		Height: body.Size.Height,
		Tag:    sprite.Tag,
	}
}
