package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/breach-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '◉'
	FirewallChar = '▓'
	KeyChar      = '◈'
	BackdoorChar = '◎'
	CardChar     = '▣'
	LineChar     = '█'
)

// Render draws the current attempt state to the screen. One world unit
// maps to one character cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	s := &g.state

	// Firewall blocks, shimmering with their visual phase.
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		color := core.ColorBlue
		if math.Mod(o.Phase, 1.0) > 0.5 {
			color = core.ColorBrightBlue
		}
		dst.FillRect(
			int(math.Round(o.Rect.X)),
			int(math.Round(o.Rect.Y)),
			int(math.Round(o.Rect.W)),
			int(math.Ceil(o.Rect.H)),
			FirewallChar, color,
		)
	}

	// Boosters.
	for i := range s.Boosters {
		b := &s.Boosters[i]
		if !b.Active {
			continue
		}
		x := int(math.Round(b.Pos.X))
		y := int(math.Round(b.Pos.Y))
		switch b.Kind {
		case BoosterSafetyKey:
			dst.SetColored(x, y, KeyChar, core.ColorBrightCyan)
		case BoosterBackdoor:
			dst.SetColored(x, y, BackdoorChar, core.ColorBrightMagenta)
		}
	}

	// Sentinel rings and memory card.
	if b := s.Boss; b != nil && b.Active {
		for i := range b.Lines {
			l := &b.Lines[i]
			if l.Destroyed {
				continue
			}
			color := core.ColorRed
			if l.Vulnerable {
				color = core.ColorBrightGreen
			}
			dst.DrawSegment(b.WorldSegment(*l), LineChar, color)
		}
		if b.Card.Active && b.CardExposed() {
			dst.SetColored(
				int(math.Round(b.Card.Pos.X)),
				int(math.Round(b.Card.Pos.Y)),
				CardChar, core.ColorBrightYellow,
			)
		}
	}

	// Player, dimmed while the invulnerability window is open.
	playerColor := core.ColorBrightWhite
	if s.Player.Invulnerable {
		playerColor = core.ColorGray
	}
	dst.SetColored(
		int(math.Round(s.Player.Pos.X)),
		int(math.Round(s.Player.Pos.Y)),
		PlayerChar, playerColor,
	)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		if s.Won {
			g.drawCenteredMessage(dst, "SYSTEM BREACHED",
				fmt.Sprintf("Score: %d  |  Press R to run again", int(s.Score)))
		} else {
			g.drawCenteredMessage(dst, "TRACED",
				fmt.Sprintf("Score: %d  |  Press R to run again", int(s.Score)))
		}
	}
}

// drawHUD writes the status line across the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := &g.state
	hud := fmt.Sprintf(" Score: %d (%d%%)  Keys: %d  Backdoors: %d ",
		int(s.Score), g.Completion(), s.Keys, s.Backdoors)
	dst.DrawText(2, 0, hud)

	if s.Player.Shields > 0 {
		dst.DrawTextColored(2+len(hud), 0,
			fmt.Sprintf(" Shield x%d ", s.Player.Shields), core.ColorBrightCyan)
	}

	if b := s.Boss; b != nil && b.Active {
		status := fmt.Sprintf(" SENTINEL L%d ", b.Level)
		dst.DrawTextColored(dst.Width()-len(status)-2, 0, status, core.ColorBrightRed)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
