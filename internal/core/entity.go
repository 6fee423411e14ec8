package core

// Entity is a rectangular simulation object with its own vertical velocity.
// Both the player and the obstacles are entities.
type Entity struct {
	Rect
	VelY int // Pixels per frame, positive = down
}

// Advance moves the entity by its vertical velocity for one frame.
func (e *Entity) Advance() {
	e.Y += e.VelY
}

// Bounds returns the collision rectangle of the entity.
func (e Entity) Bounds() Rect {
	return e.Rect
}
