package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdChar = '█'
	PipeChar = '▓'
)

// GameOverText is the banner shown once the latch trips.
const GameOverText = "Game Over"

// Render draws the current state scaled from the logical canvas to dst.
// It does not mutate the game.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	vp := core.Viewport{
		CanvasW: g.cfg.Canvas.Width,
		CanvasH: g.cfg.Canvas.Height,
		Cols:    dst.Width(),
		Rows:    dst.Height(),
	}

	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())
	fill := func(r core.Rect, ch rune, c core.Color) {
		if cells := vp.Project(r); bounds.Intersects(cells) {
			dst.FillRect(cells, ch, c)
		}
	}

	fill(g.bird.Rect(), BirdChar, core.ColorBrightWhite)

	width, gap := g.cfg.Pipes.Width, g.cfg.Pipes.Gap
	for _, p := range g.pipes.Pipes() {
		top := vp.Project(p.TopRect(width))
		bottom := vp.Project(p.BottomRect(width, gap, g.cfg.Canvas.Height))
		fill(p.TopRect(width), PipeChar, core.ColorGreen)
		fill(p.BottomRect(width, gap, g.cfg.Canvas.Height), PipeChar, core.ColorGreen)

		// Lips: the rows facing the gap.
		if !top.Empty() {
			dst.FillRect(core.NewRect(top.X, top.Bottom()-1, top.W, 1), PipeChar, core.ColorBrightGreen)
		}
		if !bottom.Empty() {
			dst.FillRect(core.NewRect(bottom.X, bottom.Y, bottom.W, 1), PipeChar, core.ColorBrightGreen)
		}
	}

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.state.Score()), core.ColorBrightWhite)

	if g.state.Over() {
		dst.DrawTextCentered(dst.Height()/2, GameOverText, core.ColorRed)
	}
}
