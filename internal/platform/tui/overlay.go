package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

const (
	overlayW = 30
	overlayH = 8
)

// drawOverlay draws the game-over dialog centered on the screen.
// The focused button is drawn bright, the other one gray.
func drawOverlay(dst *core.Screen, st core.GameState, cursor overlayButton) {
	w := min(overlayW, dst.Width())
	h := min(overlayH, dst.Height())
	box := core.Area{
		X: (dst.Width() - w) / 2,
		Y: (dst.Height() - h) / 2,
		W: w,
		H: h,
	}

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	center := func(y int, text string, c core.Color) {
		x := box.X + (box.W-len([]rune(text)))/2
		dst.DrawTextColored(x, y, text, c)
	}

	center(box.Y+1, "Game Over!", core.ColorBrightRed)
	if st.Detail != "" {
		center(box.Y+2, st.Detail, core.ColorGray)
	}
	center(box.Y+4, fmt.Sprintf("Score: %d", st.Score), core.ColorBrightWhite)

	retry, exit := "[ Retry ]", "[ Exit ]"
	retryColor, exitColor := core.ColorGray, core.ColorGray
	switch cursor {
	case buttonRetry:
		retryColor = core.ColorBrightCyan
	case buttonExit:
		exitColor = core.ColorBrightCyan
	}

	y := box.Y + 6
	x := box.X + (box.W-len(retry)-len(exit)-2)/2
	dst.DrawTextColored(x, y, retry, retryColor)
	dst.DrawTextColored(x+len(retry)+2, y, exit, exitColor)
}
