package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Pipe is a vertical obstacle: a top segment of TopHeight units and a bottom
// segment that starts gap units below it and runs to the floor.
type Pipe struct {
	X         int
	TopHeight int
}

// Update moves the pipe one step left unless the run is over.
func (p *Pipe) Update(st *State, velocity int) {
	if st.Over() {
		return
	}
	p.X -= velocity
}

// Right returns the x-coordinate just past the pipe.
func (p Pipe) Right(width int) int {
	return p.X + width
}

// GapEnd returns the y-coordinate where the bottom segment starts.
func (p Pipe) GapEnd(gap int) int {
	return p.TopHeight + gap
}

// TopRect returns the top segment, spanning [0, TopHeight).
func (p Pipe) TopRect(width int) core.Rect {
	return core.NewRect(p.X, 0, width, p.TopHeight)
}

// BottomRect returns the bottom segment, spanning [TopHeight+gap, canvasH).
func (p Pipe) BottomRect(width, gap, canvasH int) core.Rect {
	top := p.GapEnd(gap)
	return core.NewRect(p.X, top, width, canvasH-top)
}
