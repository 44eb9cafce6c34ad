package sim

import "time"

// Entity is anything the simulation advances once per tick and a renderer
// draws.
type Entity interface {
	Advance(elapsed time.Duration)
	Shape() Shape
}

var (
	_ Entity = (*PlayerEntity)(nil)
	_ Entity = (*WanderingEntity)(nil)
)
