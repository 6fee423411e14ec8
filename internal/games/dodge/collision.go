package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Evaluation is the outcome of one collision and clean-up pass.
type Evaluation struct {
	Collided  bool       // The player overlaps at least one obstacle
	Survivors []Obstacle // Obstacles still on the field
	Removed   int        // Obstacles whose top edge passed the field bottom
}

// Evaluate tests the player against every obstacle and drops obstacles that
// have fallen out of the field. Removal happens whether or not a collision
// is found. Survivors reuses the backing array of obstacles.
func Evaluate(player core.Rect, obstacles []Obstacle, fieldH int) Evaluation {
	var ev Evaluation

	for _, o := range obstacles {
		if player.Intersects(o.Bounds()) {
			ev.Collided = true
			break
		}
	}

	survivors := obstacles[:0]
	for _, o := range obstacles {
		if o.Y > fieldH {
			ev.Removed++
			continue
		}
		survivors = append(survivors, o)
	}
	ev.Survivors = survivors

	return ev
}
