package shooter

import (
	"math/rand"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/spawner_mock.go -package=mocks . Spawner

// Spawner picks the enemy spawn column. *math/rand.Rand satisfies it.
type Spawner interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewSpawner returns a deterministic Spawner for the given seed.
func NewSpawner(seed int64) Spawner {
	return rand.New(rand.NewSource(seed))
}

// Input is the input snapshot sampled once per tick.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Shoot     bool
}

// Reason records why a run ended.
type Reason int

const (
	ReasonNone        Reason = iota
	ReasonEnemyLanded        // Enemy passed the bottom edge
	ReasonCollision          // Enemy rammed the player
)

// String returns a human-readable description of the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEnemyLanded:
		return "enemy landed"
	case ReasonCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// StepEvents describes what happened during one Advance call.
type StepEvents struct {
	Shot     bool   // A bullet was fired
	Expired  int    // Bullets that left the top of the board
	Hit      bool   // A bullet destroyed the enemy
	GameOver bool   // The run ended on this step
	Reason   Reason // Set when GameOver is true
}

// State owns all mutable simulation data for one run.
type State struct {
	cfg     config.ShooterConfig
	spawner Spawner

	player     core.Rect
	enemy      core.Rect
	enemySpeed float64
	bullets    []core.Rect // Insertion order
	score      int
	gameOver   bool
	reason     Reason
	tick       int
}

// NewState creates a ready-to-play state. cfg must be valid.
func NewState(cfg config.ShooterConfig, spawner Spawner) *State {
	s := &State{
		cfg:     cfg,
		spawner: spawner,
		bullets: make([]core.Rect, 0, 16),
	}
	s.Retry()
	return s
}

// Retry resets every mutable field to its starting value.
func (s *State) Retry() {
	px, py := s.cfg.PlayerSpawn()
	s.player = core.NewRect(px, py, s.cfg.Ship.Width, s.cfg.Ship.Height)
	s.bullets = s.bullets[:0]
	s.score = 0
	s.enemySpeed = s.cfg.Enemy.InitialSpeed
	s.gameOver = false
	s.reason = ReasonNone
	s.tick = 0
	s.respawnEnemy()
}

// Advance performs exactly one simulation step. It is a no-op once the game is over.
func (s *State) Advance(in Input) StepEvents {
	var ev StepEvents
	if s.gameOver {
		return ev
	}
	s.tick++

	s.movePlayer(in)

	s.enemy.Y += s.enemySpeed
	if s.enemy.Y > s.cfg.Board.Height {
		s.end(ReasonEnemyLanded, &ev)
		return ev
	}

	if in.Shoot {
		s.shoot()
		ev.Shot = true
	}

	ev.Expired = s.moveBullets()

	if s.player.Intersects(s.enemy) {
		s.end(ReasonCollision, &ev)
		return ev
	}

	ev.Hit = s.resolveHit()
	return ev
}

// movePlayer applies left then right; right's bounds check sees the moved x.
func (s *State) movePlayer(in Input) {
	step := s.cfg.Ship.Step
	if in.MoveLeft && s.player.X > 0 {
		s.player.X -= step
	}
	if in.MoveRight && s.player.Right() < s.cfg.Board.Width {
		s.player.X += step
	}
	// No-op when the board width is a multiple of the step.
	s.player.X = core.ClampF(s.player.X, 0, s.cfg.Board.Width-s.cfg.Ship.Width)
}

// shoot spawns a bullet centered on the player, just above its top edge.
func (s *State) shoot() {
	bw, bh := s.cfg.Bullet.Width, s.cfg.Bullet.Height
	x := s.player.X + s.cfg.Ship.Width/2 - bw/2
	y := s.player.Y - bh
	s.bullets = append(s.bullets, core.NewRect(x, y, bw, bh))
}

// moveBullets moves every bullet up and drops those past the top edge.
// Returns the number of bullets dropped.
func (s *State) moveBullets() int {
	expired := 0
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Y -= s.cfg.Bullet.Speed
		if b.Y < 0 {
			expired++
			continue
		}
		kept = append(kept, b)
	}
	s.bullets = kept
	return expired
}

// resolveHit consumes the first bullet touching the enemy, if any.
// At most one hit is processed per step.
func (s *State) resolveHit() bool {
	for i, b := range s.bullets {
		if !b.Intersects(s.enemy) {
			continue
		}
		s.bullets = append(s.bullets[:i], s.bullets[i+1:]...)
		s.respawnEnemy()
		s.score++
		s.enemySpeed += s.cfg.Enemy.SpeedIncrement
		return true
	}
	return false
}

// respawnEnemy moves the enemy above the board at a random column.
func (s *State) respawnEnemy() {
	x := float64(s.spawner.Intn(s.cfg.SpawnRange()))
	s.enemy = core.NewRect(x, -s.cfg.Ship.Height, s.cfg.Ship.Width, s.cfg.Ship.Height)
}

func (s *State) end(reason Reason, ev *StepEvents) {
	s.gameOver = true
	s.reason = reason
	ev.GameOver = true
	ev.Reason = reason
}

// Player returns the player's bounding box.
func (s *State) Player() core.Rect { return s.player }

// Enemy returns the enemy's bounding box.
func (s *State) Enemy() core.Rect { return s.enemy }

// Bullets returns a copy of the live bullets in insertion order.
func (s *State) Bullets() []core.Rect {
	out := make([]core.Rect, len(s.bullets))
	copy(out, s.bullets)
	return out
}

// Score returns the number of enemies destroyed this run.
func (s *State) Score() int { return s.score }

// EnemySpeed returns the current descent speed.
func (s *State) EnemySpeed() float64 { return s.enemySpeed }

// GameOver reports whether the run has ended.
func (s *State) GameOver() bool { return s.gameOver }

// Reason returns why the run ended, or ReasonNone while playing.
func (s *State) Reason() Reason { return s.reason }

// Tick returns the number of steps simulated this run.
func (s *State) Tick() int { return s.tick }

// Config returns the configuration the state was built with.
func (s *State) Config() config.ShooterConfig { return s.cfg }
