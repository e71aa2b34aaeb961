package runaway

import (
	"math"

	"github.com/vovakirdan/runaway/internal/core"
)

// Visual characters for rendering
const (
	PickupChar   = '●'
	ObstacleChar = '▲'
)

// Smallest screen that still fits the HUD and a usable field.
const (
	minScreenW = 20
	minScreenH = 8
)

// playerArrows are indexed by heading in 45° steps, counter-clockwise from +X.
var playerArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

func headingArrow(deg float64) rune {
	idx := int(math.Round(normalizeDegrees(deg)/45)) % len(playerArrows)
	return playerArrows[idx]
}

// Render draws the HUD, the arena border and every actor. The arena is
// stretched to fill the screen below the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	st := g.State()
	hud := Status{Score: st.Score, Elapsed: st.Elapsed}
	dst.DrawText(1, 0, g.title+"  "+hud.String())

	field := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(field, core.ColorGray)

	vp := core.Viewport{
		Screen:     core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2),
		HalfWidth:  g.arena.HalfWidth,
		HalfHeight: g.arena.HalfHeight,
	}

	for _, o := range g.obstacles {
		g.drawActor(dst, vp, o.actor, ObstacleChar, core.ColorGray)
	}
	g.drawActor(dst, vp, g.pickup.actor, PickupChar, core.ColorBrightGreen)
	g.drawActor(dst, vp, g.player.actor, headingArrow(g.player.actor.Heading()), core.ColorBrightBlue)

	if g.phase == PhaseWon {
		g.renderOverlay(dst, g.last.WinMessage(), "R: play again  Q: quit")
	}
}

func (g *Game) drawActor(dst *core.Screen, vp core.Viewport, a *Actor, r rune, c core.Color) {
	p := a.Position()
	x, y := vp.ToScreen(p.X, p.Y)
	dst.SetColored(x, y, r, c)
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextColored(box.X+(boxW-len([]rune(line1)))/2, box.Y+1, line1, core.ColorYellow)
	dst.DrawText(box.X+(boxW-len([]rune(line2)))/2, box.Y+3, line2)
}
