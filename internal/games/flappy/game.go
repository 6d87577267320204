// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

const (
	// ID is the key used for score storage.
	ID = "flappy"
	// Title is the display name.
	Title = "Flappy Bird"
)

// Game owns the bird, the pipes and the state latch of one run, and advances
// them once per fixed tick.
type Game struct {
	cfg   config.FlappyConfig
	bird  *Bird
	pipes *PipeManager
	state *State
	ticks int
}

// New creates a game in the Playing phase. The config must be valid.
func New(cfg config.FlappyConfig, seed int64) *Game {
	g := &Game{cfg: cfg}
	g.Reset(seed)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new run: bird at rest mid-screen, no pipes, score zero.
func (g *Game) Reset(seed int64) {
	g.bird = NewBird(g.cfg.Bird.X, g.cfg.StartY(), g.cfg)
	if g.pipes == nil {
		g.pipes = NewPipeManager(seed, g.cfg)
	} else {
		g.pipes.Reset(seed)
	}
	g.state = NewState()
	g.ticks = 0
}

// Update advances the simulation by one tick. Floor and pipe collisions trip
// the latch; pipes are checked before they move this tick. When the latch
// trips the pipes stay put, so a pipe that was passed on the previous tick
// is counted a second time.
func (g *Game) Update() {
	if g.state.Over() {
		return
	}
	g.ticks++

	g.bird.Update(g.state)

	if g.bird.Bottom() >= g.cfg.Canvas.Height || g.pipes.CheckCollision(g.bird) {
		g.state.End()
	}

	g.pipes.Update(g.state)

	if g.pipes.IsPipePassed(g.bird.X) {
		g.state.AddPoint()
	}
}

// Jump applies the upward impulse to the bird.
func (g *Game) Jump() {
	g.bird.Jump()
}

// State returns the current score and game-over flag.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.Over(),
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.state.Phase()
}

// Ticks returns the number of simulated ticks in this run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Config returns the tuning this game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
