package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '▼'
	BulletChar = '┃'
)

// Minimum terminal size that can show the HUD and a bordered playfield.
const (
	minScreenW = 20
	minScreenH = 6
)

// Render draws the HUD and the playfield to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	g.drawHUD(dst)

	field := core.Area{X: 0, Y: 1, W: dst.Width(), H: dst.Height() - 1}
	dst.DrawBox(field)

	vp := viewport{
		board: g.state.Config().Board,
		inner: core.Area{X: field.X + 1, Y: field.Y + 1, W: field.W - 2, H: field.H - 2},
	}

	for _, b := range g.state.Bullets() {
		vp.fill(dst, b, BulletChar, core.ColorYellow)
	}
	vp.fill(dst, g.state.Enemy(), EnemyChar, core.ColorBrightRed)
	vp.fill(dst, g.state.Player(), PlayerChar, core.ColorBrightCyan)
}

// drawHUD writes the score on the left and the enemy speed on the right of row 0.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.state.Score()), core.ColorBrightWhite)

	speed := fmt.Sprintf("Speed: %.1f", g.state.EnemySpeed())
	dst.DrawTextColored(dst.Width()-len(speed)-1, 0, speed, core.ColorGray)
}

// viewport scales board units onto a block of screen cells.
type viewport struct {
	board config.BoardConfig
	inner core.Area
}

// project maps a board rectangle to screen cells, clipped to the viewport.
// Every visible entity covers at least one cell.
func (v viewport) project(r core.Rect) (core.Area, bool) {
	if r.Right() <= 0 || r.X >= v.board.Width || r.Bottom() <= 0 || r.Y >= v.board.Height {
		return core.Area{}, false
	}

	sx := float64(v.inner.W) / v.board.Width
	sy := float64(v.inner.H) / v.board.Height

	x0 := core.Clamp(int(math.Floor(r.X*sx)), 0, v.inner.W-1)
	x1 := core.Clamp(int(math.Ceil(r.Right()*sx)), x0+1, v.inner.W)
	y0 := core.Clamp(int(math.Floor(r.Y*sy)), 0, v.inner.H-1)
	y1 := core.Clamp(int(math.Ceil(r.Bottom()*sy)), y0+1, v.inner.H)

	return core.Area{X: v.inner.X + x0, Y: v.inner.Y + y0, W: x1 - x0, H: y1 - y0}, true
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	if a, ok := v.project(r); ok {
		dst.DrawRect(a, ch, c)
	}
}
