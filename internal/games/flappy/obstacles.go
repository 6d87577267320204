package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// PipeManager owns the live pipes in spawn order, which is also their
// left-to-right order on screen. New pipes are appended at the tail.
type PipeManager struct {
	pipes []Pipe
	rng   *rand.Rand
	cfg   config.FlappyConfig
}

// NewPipeManager creates an empty manager whose top heights come from seed.
func NewPipeManager(seed int64, cfg config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(seed)
	return pm
}

// Reset drops all pipes and reseeds the generator.
func (pm *PipeManager) Reset(seed int64) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rand.New(rand.NewSource(seed))
}

// Update advances every pipe, prunes the ones fully past the left edge and
// spawns a new pipe at the right edge when the cadence has elapsed.
// It is a no-op once the run is over.
func (pm *PipeManager) Update(st *State) {
	if st.Over() {
		return
	}

	width := pm.cfg.Pipes.Width
	kept := pm.pipes[:0]
	for i := range pm.pipes {
		p := pm.pipes[i]
		p.Update(st, pm.cfg.Pipes.Velocity)
		if p.Right(width) < 0 {
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept

	if pm.shouldSpawn() {
		pm.spawn()
	}
}

func (pm *PipeManager) shouldSpawn() bool {
	if len(pm.pipes) == 0 {
		return true
	}
	last := pm.pipes[len(pm.pipes)-1]
	return pm.cfg.Canvas.Width-last.X >= pm.cfg.Pipes.SpawnDistance
}

// spawn appends a pipe at the right edge with a uniform top height in
// [0, canvasH - gap - margin).
func (pm *PipeManager) spawn() {
	pm.pipes = append(pm.pipes, Pipe{
		X:         pm.cfg.Canvas.Width,
		TopHeight: pm.rng.Intn(pm.cfg.TopHeightRange()),
	})
}

// Pipes returns the live pipes, leftmost first. Callers must not modify it.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Add appends a pipe at the tail, as if it had just been spawned.
func (pm *PipeManager) Add(p Pipe) {
	pm.pipes = append(pm.pipes, p)
}

// CheckCollision reports whether the bird overlaps any pipe horizontally
// while sticking out above or below that pipe's gap.
func (pm *PipeManager) CheckCollision(b *Bird) bool {
	width := pm.cfg.Pipes.Width
	gap := pm.cfg.Pipes.Gap
	hitbox := b.Rect()
	for _, p := range pm.pipes {
		if !hitbox.OverlapsX(p.TopRect(width)) {
			continue
		}
		if b.Y < p.TopHeight || b.Bottom() > p.GapEnd(gap) {
			return true
		}
	}
	return false
}

// IsPipePassed reports whether some pipe's right edge sits exactly on x.
// Pipe positions and the bird column are integers and pipes move by a
// fixed step, so each pipe matches at most once.
func (pm *PipeManager) IsPipePassed(x int) bool {
	width := pm.cfg.Pipes.Width
	for _, p := range pm.pipes {
		if p.Right(width) == x {
			return true
		}
	}
	return false
}
