package dodge

import (
	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Player is the car the user steers along the bottom of the field.
type Player struct {
	core.Entity
	VelX      int // Horizontal velocity of the last update
	moveSpeed int
}

// NewPlayer creates the car centered horizontally, bottom_margin pixels
// above the bottom of the field.
func NewPlayer(cfg config.DodgeConfig) Player {
	w, h := cfg.Player.Width, cfg.Player.Height
	return Player{
		Entity: core.Entity{
			Rect: core.NewRect(
				cfg.Field.Width/2-w/2,
				cfg.Field.Height-cfg.Player.BottomMargin-h,
				w, h,
			),
		},
		moveSpeed: cfg.Player.MoveSpeed,
	}
}

// Update applies one frame of horizontal input and clamps the car to the
// field. Left is evaluated first and right overrides it, so holding both
// moves right.
func (p *Player) Update(in core.InputFrame, fieldW int) {
	p.VelX = 0
	if in.Has(core.ActionLeft) {
		p.VelX = -p.moveSpeed
	}
	if in.Has(core.ActionRight) {
		p.VelX = p.moveSpeed
	}
	p.X = core.Clamp(p.X+p.VelX, 0, fieldW-p.W)
}
