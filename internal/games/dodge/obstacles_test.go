package dodge

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dodge/internal/config"
)

func TestSpawnerWaitsForInterval(t *testing.T) {
	s := NewSpawner(config.DefaultDodgeConfig(), &scriptedSource{})

	if _, ok := s.MaybeSpawn(799*time.Millisecond, 0); ok {
		t.Fatal("spawned before the interval elapsed")
	}
	if _, ok := s.MaybeSpawn(time.Millisecond, 0); !ok {
		t.Fatal("expected a spawn once 800ms accumulated")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0", s.Pending())
	}
	if _, ok := s.MaybeSpawn(0, 0); ok {
		t.Error("zero elapsed time should not spawn")
	}
	if _, ok := s.MaybeSpawn(-time.Second, 0); ok {
		t.Error("negative elapsed time should not spawn")
	}
}

func TestSpawnerIndependentOfFrameRate(t *testing.T) {
	count := func(step, total time.Duration) int {
		s := NewSpawner(config.DefaultDodgeConfig(), &scriptedSource{})
		n := 0
		for d := time.Duration(0); d < total; d += step {
			if _, ok := s.MaybeSpawn(step, 0); ok {
				n++
			}
		}
		return n
	}

	fast := count(20*time.Millisecond, 8*time.Second)
	slow := count(40*time.Millisecond, 8*time.Second)

	if fast != 10 || slow != 10 {
		t.Errorf("spawns over 8s: %d at 50fps, %d at 25fps, expected 10 each", fast, slow)
	}
}

func TestSpawnerStallProducesOneObstacle(t *testing.T) {
	s := NewSpawner(config.DefaultDodgeConfig(), &scriptedSource{})

	if _, ok := s.MaybeSpawn(5*time.Second, 0); !ok {
		t.Fatal("expected a spawn after a long stall")
	}
	if s.Pending() >= 800*time.Millisecond {
		t.Errorf("Pending() = %v, should stay below one interval", s.Pending())
	}
	if _, ok := s.MaybeSpawn(0, 0); ok {
		t.Error("a stall should not queue a burst of spawns")
	}
}

func TestSpawnedObstacleShape(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	src := &scriptedSource{values: []int{0, 0}}
	s := NewSpawner(cfg, src)

	o, ok := s.MaybeSpawn(800*time.Millisecond, 0)
	if !ok {
		t.Fatal("expected a spawn")
	}

	if o.W != 40 || o.H != 30 || o.X != 0 || o.Y != -30 {
		t.Errorf("obstacle = %+v, expected 40x30 at (0, -30)", o.Bounds())
	}
	if o.Speed() != 3 {
		t.Errorf("Speed() = %d, expected 3", o.Speed())
	}
	// Width draws from 81 values, x from 480-40+1
	if len(src.bounds) != 2 || src.bounds[0] != 81 || src.bounds[1] != 441 {
		t.Errorf("Intn bounds = %v, expected [81 441]", src.bounds)
	}
}

func TestSpawnedObstacleRanges(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	s := NewSpawner(cfg, rand.New(rand.NewSource(7)))

	sawMin, sawMax := false, false
	for i := 0; i < 2000; i++ {
		o, ok := s.MaybeSpawn(cfg.Timing.SpawnInterval(), 0)
		if !ok {
			t.Fatal("expected a spawn every interval")
		}
		if o.W < 40 || o.W > 120 {
			t.Fatalf("width %d outside [40, 120]", o.W)
		}
		if o.X < 0 || o.X > cfg.Field.Width-o.W {
			t.Fatalf("x %d outside [0, %d]", o.X, cfg.Field.Width-o.W)
		}
		if o.Y != -cfg.Obstacles.Height {
			t.Fatalf("y = %d, expected %d", o.Y, -cfg.Obstacles.Height)
		}
		sawMin = sawMin || o.W == 40
		sawMax = sawMax || o.W == 120
	}
	if !sawMin || !sawMax {
		t.Errorf("width range not covered: min=%v max=%v", sawMin, sawMax)
	}
}

func TestSpawnSpeedFollowsScore(t *testing.T) {
	tests := []struct {
		score, speed int
	}{
		{0, 3},
		{9, 3},
		{10, 4},
		{50, 8},
		{1000, 103},
	}

	for _, tc := range tests {
		s := NewSpawner(config.DefaultDodgeConfig(), &scriptedSource{})
		o, _ := s.MaybeSpawn(time.Second, tc.score)
		if o.Speed() != tc.speed {
			t.Errorf("speed at score %d = %d, expected %d", tc.score, o.Speed(), tc.speed)
		}
	}
}

func TestFixedWidthObstacles(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Obstacles.MinWidth, cfg.Obstacles.MaxWidth = 480, 480
	src := &scriptedSource{}
	s := NewSpawner(cfg, src)

	o, _ := s.MaybeSpawn(time.Second, 0)
	if o.W != 480 || o.X != 0 {
		t.Errorf("obstacle = %+v, expected full width at x=0", o.Bounds())
	}
	if len(src.bounds) != 0 {
		t.Errorf("no randomness needed, got Intn calls %v", src.bounds)
	}
}
