package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/engine"
)

// Board glyphs.
const (
	glyphMazeWall = '█'
	glyphObstacle = '▒'
	glyphPortal   = 'O'
	glyphHead     = '@'
	glyphBody     = 'o'
)

func foodGlyph(tier engine.FoodTier) (rune, core.Color) {
	switch tier {
	case engine.FoodBonus:
		return '$', core.ColorBrightYellow
	case engine.FoodRare:
		return '♦', core.ColorBrightMagenta
	default:
		return '•', core.ColorBrightRed
	}
}

// drawGame renders the full game view: HUD, board frame, terrain, pickups
// and the snake, plus pause/game-over overlays.
func drawGame(s *core.Screen, eng *engine.Engine, difficulty string, paused bool) {
	s.Clear()

	snap := eng.Snapshot()
	rules := eng.Rules()
	grid := eng.Grid()

	// Center the board, leaving two rows for the HUD.
	ox := (s.Width() - grid.Width) / 2
	oy := (s.Height()-grid.Height)/2 + 1
	if ox < 1 {
		ox = 1
	}
	if oy < 3 {
		oy = 3
	}

	drawHUD(s, snap, rules, difficulty)
	drawFrame(s, grid, rules, ox, oy)
	drawTerrain(s, rules, ox, oy)
	drawPickups(s, snap, ox, oy)
	drawSnake(s, snap, ox, oy)

	if snap.Terminal {
		drawGameOver(s, snap)
	} else if paused {
		s.DrawTextCentered(s.Height()/2, "── PAUSED ──")
	}
}

func drawHUD(s *core.Screen, snap engine.Snapshot, rules *engine.ModeRules, difficulty string) {
	title := rules.Title
	status := fmt.Sprintf("Score: %d  │  %s / %s  │  Length: %d", snap.Score, title, difficulty, len(snap.Body))
	s.DrawTextColored(1, 0, status, core.ColorBrightWhite)

	var parts []string
	if snap.TimeRemaining > 0 {
		parts = append(parts, fmt.Sprintf("Time %.0fs", snap.TimeRemaining))
	}
	for _, eff := range snap.Effects {
		parts = append(parts, fmt.Sprintf("%c %s %.1fs", eff.Type.Glyph(), eff.Type, eff.Remaining))
	}
	if snap.SpeedFactor != 1.0 {
		parts = append(parts, fmt.Sprintf("speed ×%.2f", snap.SpeedFactor))
	}
	if len(parts) > 0 {
		s.DrawTextColored(1, 1, strings.Join(parts, "  "), core.ColorBrightCyan)
	}
}

// drawFrame draws the board boundary. A deadly boundary is rendered solid;
// a wrapping one is dotted so the player knows passage is safe.
func drawFrame(s *core.Screen, grid engine.Grid, rules *engine.ModeRules, ox, oy int) {
	deadly := rules.WallCollision && !rules.NoDeath
	glyph, color := '·', core.ColorGray
	if deadly {
		glyph, color = '#', core.ColorWhite
	}

	for x := -1; x <= grid.Width; x++ {
		s.SetCell(ox+x, oy-1, glyph, color)
		s.SetCell(ox+x, oy+grid.Height, glyph, color)
	}
	for y := -1; y <= grid.Height; y++ {
		s.SetCell(ox-1, oy+y, glyph, color)
		s.SetCell(ox+grid.Width, oy+y, glyph, color)
	}
}

func drawTerrain(s *core.Screen, rules *engine.ModeRules, ox, oy int) {
	for p := range rules.MazeWalls {
		s.SetCell(ox+p.X, oy+p.Y, glyphMazeWall, core.ColorGray)
	}
	for p := range rules.Obstacles {
		s.SetCell(ox+p.X, oy+p.Y, glyphObstacle, core.ColorOrange)
	}
	for _, pair := range rules.Portals {
		s.SetCell(ox+pair.A.X, oy+pair.A.Y, glyphPortal, core.ColorBrightMagenta)
		s.SetCell(ox+pair.B.X, oy+pair.B.Y, glyphPortal, core.ColorBrightMagenta)
	}
}

func drawPickups(s *core.Screen, snap engine.Snapshot, ox, oy int) {
	if snap.Food.Active {
		glyph, color := foodGlyph(snap.Food.Tier)
		s.SetCell(ox+snap.Food.Pos.X, oy+snap.Food.Pos.Y, glyph, color)
	}
	if snap.PowerUp != nil {
		s.SetCell(ox+snap.PowerUp.Pos.X, oy+snap.PowerUp.Pos.Y, snap.PowerUp.Type.Glyph(), core.ColorBrightCyan)
	}
}

func drawSnake(s *core.Screen, snap engine.Snapshot, ox, oy int) {
	headColor, bodyColor := core.ColorBrightGreen, core.ColorGreen
	for _, eff := range snap.Effects {
		if eff.Type == engine.EffectGhost {
			headColor, bodyColor = core.ColorBrightCyan, core.ColorCyan
			break
		}
	}

	for i := len(snap.Body) - 1; i >= 1; i-- {
		p := snap.Body[i]
		s.SetCell(ox+p.X, oy+p.Y, glyphBody, bodyColor)
	}
	if len(snap.Body) > 0 {
		head := snap.Body[0]
		s.SetCell(ox+head.X, oy+head.Y, glyphHead, headColor)
	}
}

func reasonText(reason engine.TerminalReason) string {
	switch reason {
	case engine.ReasonWall:
		return "You hit the wall"
	case engine.ReasonObstacle:
		return "You hit an obstacle"
	case engine.ReasonSelf:
		return "You bit yourself"
	case engine.ReasonTimeUp:
		return "Time is up"
	default:
		return "Game over"
	}
}

func drawGameOver(s *core.Screen, snap engine.Snapshot) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "═══ GAME OVER ═══")
	s.DrawTextCentered(mid, reasonText(snap.Reason))
	s.DrawTextCentered(mid+1, fmt.Sprintf("Final score: %d", snap.Score))
	s.DrawTextCentered(mid+3, "R: Restart  │  Esc: Menu  │  Q: Quit")
}
