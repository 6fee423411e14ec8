package dodge

import "github.com/vovakirdan/dodge/internal/core"

// Snapshot is a copy of everything a renderer or a test needs to inspect
// one frame. It shares no memory with the game.
type Snapshot struct {
	Player       core.Rect
	PlayerVelX   int
	Obstacles    []ObstacleSnapshot
	DisplayScore int
	Frames       int
	Phase        core.Phase
	Paused       bool
	SpawnPending int64 // Milliseconds accumulated toward the next spawn
}

// ObstacleSnapshot is the state of a single obstacle.
type ObstacleSnapshot struct {
	Rect  core.Rect
	Speed int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := make([]ObstacleSnapshot, len(g.obstacles))
	for i, o := range g.obstacles {
		obs[i] = ObstacleSnapshot{Rect: o.Bounds(), Speed: o.Speed()}
	}
	return Snapshot{
		Player:       g.player.Bounds(),
		PlayerVelX:   g.player.VelX,
		Obstacles:    obs,
		DisplayScore: g.DisplayScore(),
		Frames:       g.frames,
		Phase:        g.phase,
		Paused:       g.paused,
		SpawnPending: g.spawner.Pending().Milliseconds(),
	}
}
