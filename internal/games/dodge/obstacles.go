package dodge

import (
	"time"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
)

// Obstacle is a falling block. Its speed is fixed when it spawns.
type Obstacle struct {
	core.Entity
}

// NewObstacle creates an obstacle at the given position falling at speed.
func NewObstacle(x, y, w, h, speed int) Obstacle {
	return Obstacle{Entity: core.Entity{Rect: core.NewRect(x, y, w, h), VelY: speed}}
}

// Speed returns the obstacle's frozen fall speed.
func (o Obstacle) Speed() int {
	return o.VelY
}

// Source is the randomness the spawner draws from. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Spawner emits obstacles on a wall-clock interval.
type Spawner struct {
	cfg      config.ObstacleConfig
	fieldW   int
	interval time.Duration
	rng      Source
	elapsed  time.Duration // Time accumulated toward the next spawn
}

// NewSpawner creates a spawner for the given configuration.
func NewSpawner(cfg config.DodgeConfig, rng Source) *Spawner {
	return &Spawner{
		cfg:      cfg.Obstacles,
		fieldW:   cfg.Field.Width,
		interval: cfg.Timing.SpawnInterval(),
		rng:      rng,
	}
}

// MaybeSpawn adds elapsed to the spawn clock and returns a new obstacle when
// a full interval has passed. At most one obstacle is produced per call;
// the surplus time carries over, reduced below one interval.
func (s *Spawner) MaybeSpawn(elapsed time.Duration, displayScore int) (Obstacle, bool) {
	if elapsed > 0 {
		s.elapsed += elapsed
	}
	if s.interval <= 0 || s.elapsed < s.interval {
		return Obstacle{}, false
	}
	s.elapsed = (s.elapsed - s.interval) % s.interval
	return s.spawn(displayScore), true
}

// Pending returns the time accumulated toward the next spawn.
func (s *Spawner) Pending() time.Duration {
	return s.elapsed
}

// spawn creates an obstacle just above the visible field.
func (s *Spawner) spawn(displayScore int) Obstacle {
	minW, maxW := s.cfg.MinWidth, s.cfg.MaxWidth

	width := minW
	if maxW > minW {
		width = minW + s.rng.Intn(maxW-minW+1)
	}

	x := 0
	if span := s.fieldW - width; span > 0 {
		x = s.rng.Intn(span + 1)
	}

	return NewObstacle(x, -s.cfg.Height, width, s.cfg.Height, s.cfg.SpeedAt(displayScore))
}
