package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Layout constants
const (
	hudHeight = 2 // HUD line + separator
	cellWidth = 2 // Terminal columns per grid cell, keeps cells roughly square
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.renderOverlay(dst, "Cannot start game", errorLine(g.err))
		return
	}

	snap := g.world.Snapshot()
	g.renderHUD(dst, snap)

	boxW := snap.Grid.Width*cellWidth + 2
	boxH := snap.Grid.Height + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", boxW, boxH+hudHeight))
		return
	}

	box := core.NewRect((dst.Width()-boxW)/2, hudHeight, boxW, boxH)
	dst.DrawBox(box, core.ColorGray)

	cellAt := func(c core.Cell) (int, int) {
		return box.X + 1 + c.X*cellWidth, box.Y + 1 + c.Y
	}

	for _, f := range snap.Foods {
		x, y := cellAt(f.Pos)
		dst.SetColored(x, y, '●', core.ColorMagenta)
	}

	for _, s := range snap.Snakes {
		bodyColor := core.ColorGreen
		if s.Index > 0 {
			bodyColor = core.ColorCyan
		}
		// Draw tail first so the head wins when cells overlap.
		for i := len(s.Segments) - 1; i >= 0; i-- {
			x, y := cellAt(s.Segments[i].Pos)
			if i == 0 {
				dst.DrawTextColored(x, y, "██", core.ColorBrightWhite)
			} else {
				dst.DrawTextColored(x, y, "▓▓", bodyColor)
			}
		}
	}

	switch snap.Phase {
	case PhaseLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Food: %d  -  Press R to restart", snap.Score(0)))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	length := 0
	if len(snap.Snakes) > 0 {
		length = snap.Snakes[0].Len()
	}
	hud := fmt.Sprintf(" %s — Food: %d  Length: %d  Foods on board: %d", g.variant.Title, snap.Score(0), length, len(snap.Foods))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightGreen)

	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func errorLine(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
