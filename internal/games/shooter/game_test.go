package shooter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 42, ScreenH: 24})
	if err := g.ConfigError(); err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Space Shooter" {
		t.Errorf("title = %q", g.Title())
	}
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, 777)
	g2 := newTestGame(t, 777)

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		if i%3 == 0 {
			input.Set(core.ActionShoot)
		}
		if i%50 < 20 {
			input.Set(core.ActionLeft)
		}
		if i%70 > 40 {
			input.Set(core.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1, snap2 := g1.Snapshot(), g2.Snapshot()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("hash mismatch: %d vs %d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
}

func TestStepMapsActions(t *testing.T) {
	g := newTestGame(t, 1)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionShoot)
	input.Set(core.ActionConfirm) // ignored by the simulation
	res := g.Step(input)

	if g.state.Player().X != 170 {
		t.Errorf("player x = %v, want 170", g.state.Player().X)
	}
	if !g.LastEvents().Shot {
		t.Error("expected a shot")
	}
	if res.State.GameOver {
		t.Error("game should still be running")
	}
}

func TestGameOverState(t *testing.T) {
	g := newTestGame(t, 1)

	var res core.StepResult
	for i := 0; i < 500 && !res.State.GameOver; i++ {
		res = g.Step(core.NewInputFrame())
	}

	if !res.State.GameOver {
		t.Fatal("game never ended")
	}
	if res.State.Detail == "" {
		t.Error("expected a game over detail")
	}
	found := false
	for _, ev := range res.Events {
		if ev.Name == "game over" {
			found = true
		}
	}
	if !found {
		t.Errorf("events = %+v, want a game over event", res.Events)
	}

	// Retry via Reset
	g.Reset(core.RuntimeConfig{Seed: 2})
	if st := g.State(); st.GameOver || st.Score != 0 || st.Detail != "" {
		t.Errorf("state after reset = %+v", st)
	}
}

func TestConfigFallback(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.ConfigError() == nil {
		t.Error("expected a config error for a missing file")
	}
	if g.state.Config().Board.Width != 400 {
		t.Errorf("board width = %v, want default 400", g.state.Config().Board.Width)
	}
}

func TestCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := "enemy:\n  initial_speed: 8\n  speed_increment: 1\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	if err := g.ConfigError(); err != nil {
		t.Fatalf("ConfigError: %v", err)
	}
	if g.state.EnemySpeed() != 8 {
		t.Errorf("enemy speed = %v, want 8", g.state.EnemySpeed())
	}
}

func TestRenderHUDAndEntities(t *testing.T) {
	g := newTestGame(t, 1)
	g.state.enemy = core.NewRect(0, 0, 50, 80)
	g.state.bullets = append(g.state.bullets, core.NewRect(197.5, 305, 5, 20))

	scr := core.NewScreen(42, 22)
	g.Render(scr)

	hud := scr.Row(0)
	if !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD missing score: %q", hud)
	}
	if !strings.Contains(hud, "Speed: 5.0") {
		t.Errorf("HUD missing speed: %q", hud)
	}
	if scr.Get(0, 1) != '┌' || scr.Get(41, 21) != '┘' {
		t.Error("playfield border not drawn")
	}

	out := scr.String()
	for _, ch := range []rune{PlayerChar, EnemyChar, BulletChar} {
		if !strings.ContainsRune(out, ch) {
			t.Errorf("screen missing %q", ch)
		}
	}

	// Enemy at the board origin lands in the top-left inner cell.
	if c := scr.GetCell(1, 2); c.Rune != EnemyChar || c.Color != core.ColorBrightRed {
		t.Errorf("cell (1,2) = %+v, want enemy", c)
	}
}

func TestRenderHidesOffBoardEnemy(t *testing.T) {
	g := newTestGame(t, 1)

	scr := core.NewScreen(42, 22)
	g.Render(scr)

	if strings.ContainsRune(scr.String(), EnemyChar) {
		t.Error("enemy above the board should not be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 1)

	scr := core.NewScreen(10, 3)
	g.Render(scr)

	if !strings.HasPrefix(scr.Row(0), "Terminal") {
		t.Errorf("row 0 = %q, want size warning", scr.Row(0))
	}
}

func TestViewportProject(t *testing.T) {
	g := newTestGame(t, 1)
	vp := viewport{
		board: g.state.Config().Board,
		inner: core.Area{X: 1, Y: 2, W: 40, H: 20},
	}

	tests := []struct {
		name    string
		r       core.Rect
		want    core.Area
		visible bool
	}{
		{"player", core.NewRect(175, 500, 50, 80), core.Area{X: 18, Y: 18, W: 6, H: 4}, true},
		{"origin", core.NewRect(0, 0, 50, 80), core.Area{X: 1, Y: 2, W: 5, H: 3}, true},
		{"tiny bullet", core.NewRect(197.5, 305, 5, 20), core.Area{X: 20, Y: 12, W: 2, H: 1}, true},
		{"partly above", core.NewRect(0, -40, 50, 80), core.Area{X: 1, Y: 2, W: 5, H: 2}, true},
		{"fully above", core.NewRect(0, -80, 50, 80), core.Area{}, false},
		{"below", core.NewRect(0, 605, 50, 80), core.Area{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := vp.project(tt.r)
			if ok != tt.visible {
				t.Fatalf("visible = %v, want %v", ok, tt.visible)
			}
			if ok && got != tt.want {
				t.Errorf("area = %+v, want %+v", got, tt.want)
			}
		})
	}
}
