package shooter

import "math"

// Snapshot contains the complete simulation state of a run.
// Uses primitive types only for stable comparison and hashing.
type Snapshot struct {
	Tick       uint64
	PlayerX    float64
	PlayerY    float64
	EnemyX     float64
	EnemyY     float64
	EnemySpeed float64
	Score      int
	GameOver   bool
	Reason     int

	// Bullet positions, flattened as X, Y pairs in insertion order
	BulletData []float64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	bulletData := make([]float64, 0, len(s.bullets)*2)
	for _, b := range s.bullets {
		bulletData = append(bulletData, b.X, b.Y)
	}

	return Snapshot{
		Tick:       uint64(s.tick), //#nosec G115 -- tick count is always positive
		PlayerX:    s.player.X,
		PlayerY:    s.player.Y,
		EnemyX:     s.enemy.X,
		EnemyY:     s.enemy.Y,
		EnemySpeed: s.enemySpeed,
		Score:      s.score,
		GameOver:   s.gameOver,
		Reason:     int(s.reason),
		BulletData: bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.EnemyX)
	h = h*31 + math.Float64bits(snap.EnemyY)
	h = h*31 + math.Float64bits(snap.EnemySpeed)
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reason) //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	h = h*31 + uint64(len(snap.BulletData))

	for _, v := range snap.BulletData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
