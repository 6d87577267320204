package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player. X never changes after creation; Velocity changes only
// through gravity in Update or the override in Jump.
type Bird struct {
	X        int
	Y        int
	Velocity int

	width     int
	height    int
	gravity   int
	jumpPower int
}

// NewBird places a bird at rest at (x, y).
func NewBird(x, y int, cfg config.FlappyConfig) *Bird {
	return &Bird{
		X:         x,
		Y:         y,
		width:     cfg.Bird.Width,
		height:    cfg.Bird.Height,
		gravity:   cfg.Physics.Gravity,
		jumpPower: cfg.Physics.JumpPower,
	}
}

// Update applies one tick of gravity. Position is not clamped; the game
// checks the floor after the move.
func (b *Bird) Update(st *State) {
	if st.Over() {
		return
	}
	b.Velocity += b.gravity
	b.Y += b.Velocity
}

// Jump overrides the velocity with the upward impulse, whatever it was.
// It does not consult the game-over latch; once the run is over Update no
// longer moves the bird, so the write has no visible effect.
func (b *Bird) Jump() {
	b.Velocity = -b.jumpPower
}

// Width returns the hitbox width.
func (b *Bird) Width() int { return b.width }

// Height returns the hitbox height.
func (b *Bird) Height() int { return b.height }

// Bottom returns the y-coordinate just past the hitbox.
func (b *Bird) Bottom() int {
	return b.Y + b.height
}

// Rect returns the hitbox.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.width, b.height)
}
