package flappy

// Phase is the position of a run in its two-state lifecycle.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is the shared handle for one run: the game-over latch and the score.
// Components receive it explicitly in Update instead of reaching into the
// game that owns them.
type State struct {
	phase Phase
	score int
}

// NewState returns a fresh state in the Playing phase with zero score.
func NewState() *State {
	return &State{phase: PhasePlaying}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Over reports whether the latch has tripped.
func (s *State) Over() bool {
	return s.phase == PhaseGameOver
}

// End trips the latch. There is no way back to Playing within a run.
func (s *State) End() {
	s.phase = PhaseGameOver
}

// Score returns the number of pipes passed.
func (s *State) Score() int {
	return s.score
}

// AddPoint increments the score by one.
func (s *State) AddPoint() {
	s.score++
}
