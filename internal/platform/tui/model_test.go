package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame ends the run after overAt updates with the given score.
type fakeGame struct {
	jumps   int
	updates int
	resets  int
	seeds   []int64
	overAt  int
	score   int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Jump()         { g.jumps++ }

func (g *fakeGame) Reset(seed int64) {
	g.resets++
	g.updates = 0
	g.seeds = append(g.seeds, seed)
}

func (g *fakeGame) Update() {
	if g.over() {
		return
	}
	g.updates++
}

func (g *fakeGame) over() bool {
	return g.overAt > 0 && g.updates >= g.overAt
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake", core.ColorWhite)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over()}
}

type fakeStore struct {
	saved []int
	high  int
	err   error
}

func (s *fakeStore) SaveScore(gameID string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, score)
	return int64(len(s.saved)), nil
}

func (s *fakeStore) HighScore(gameID string) (int, error) {
	return s.high, s.err
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultRuntimeConfig()
	cfg.Seed = 42
	return cfg
}

func newTestModel(game *fakeGame, store ScoreStore) Model {
	return NewModel(game, testConfig(), Options{Store: store})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m, _ = send(t, m, TickMsg(time.Now()))
	}
	return m
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyPause = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}
	keyRetry = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQuit  = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func TestNewModelResetsWithSeed(t *testing.T) {
	game := &fakeGame{}
	newTestModel(game, nil)

	if game.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", game.resets)
	}
	if game.seeds[0] != 42 {
		t.Errorf("Reset seed = %d, expected 42", game.seeds[0])
	}
}

func TestNewModelPicksSeedWhenZero(t *testing.T) {
	game := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0
	NewModel(game, cfg, Options{})

	if game.seeds[0] == 0 {
		t.Error("zero seed should be replaced by a clock seed")
	}
}

func TestNewModelLoadsBest(t *testing.T) {
	m := newTestModel(&fakeGame{}, &fakeStore{high: 17})
	if m.Best() != 17 {
		t.Errorf("Best() = %d, expected 17", m.Best())
	}

	m = newTestModel(&fakeGame{}, &fakeStore{err: errors.New("boom")})
	if m.Best() != 0 {
		t.Errorf("Best() with failing store = %d, expected 0", m.Best())
	}
}

func TestInitStartsTicking(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
}

func TestSpaceJumps(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, cmd := send(t, m, keySpace)
	if game.jumps != 1 {
		t.Errorf("jumps = %d, expected 1", game.jumps)
	}
	if cmd != nil {
		t.Error("a jump should not schedule a command")
	}

	// Input is applied immediately, not buffered until the next tick.
	send(t, m, keySpace)
	if game.jumps != 2 {
		t.Errorf("jumps = %d, expected 2", game.jumps)
	}
}

func TestTickUpdatesAndReschedules(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	_, cmd := send(t, m, TickMsg(time.Now()))
	if game.updates != 1 {
		t.Errorf("updates = %d, expected 1", game.updates)
	}
	if cmd == nil {
		t.Error("each tick should schedule the next one")
	}
}

func TestPauseStopsUpdatesAndJumps(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = send(t, m, keyPause)
	if !m.Paused() {
		t.Fatal("p should pause")
	}

	m = tick(t, m, 5)
	m, _ = send(t, m, keySpace)
	if game.updates != 0 || game.jumps != 0 {
		t.Errorf("paused game changed: updates=%d jumps=%d", game.updates, game.jumps)
	}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("View should show the pause overlay")
	}

	m, _ = send(t, m, keyPause)
	tick(t, m, 1)
	if game.updates != 1 {
		t.Errorf("updates after resume = %d, expected 1", game.updates)
	}
}

func TestPauseIgnoredAfterGameOver(t *testing.T) {
	game := &fakeGame{overAt: 1}
	m := tick(t, newTestModel(game, nil), 1)

	m, _ = send(t, m, keyPause)
	if m.Paused() {
		t.Error("a finished run should not be pausable")
	}
}

func TestScoreSavedOnceOnGameOver(t *testing.T) {
	game := &fakeGame{overAt: 3, score: 5}
	store := &fakeStore{}
	m := newTestModel(game, store)

	m = tick(t, m, 10)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	if len(store.saved) != 1 || store.saved[0] != 5 {
		t.Errorf("saved = %v, expected [5]", store.saved)
	}
	if m.Best() != 5 {
		t.Errorf("Best() = %d, expected 5", m.Best())
	}
	if !strings.Contains(m.View(), "Best: 5") {
		t.Error("View should show the best score after game over")
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	game := &fakeGame{overAt: 1}
	store := &fakeStore{}
	tick(t, newTestModel(game, store), 3)

	if len(store.saved) != 0 {
		t.Errorf("zero score should not be saved, got %v", store.saved)
	}
}

func TestSaveFailureKeepsRunning(t *testing.T) {
	game := &fakeGame{overAt: 1, score: 3}
	store := &fakeStore{}
	m := newTestModel(game, store)
	store.err = errors.New("disk full")

	m = tick(t, m, 2)
	if m.Best() != 3 {
		t.Errorf("Best() = %d, expected 3 even when saving fails", m.Best())
	}
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	game := &fakeGame{overAt: 2, score: 1}
	store := &fakeStore{}
	m := newTestModel(game, store)

	m, _ = send(t, m, keyRetry)
	if game.resets != 1 {
		t.Fatalf("restart during play should be ignored, resets = %d", game.resets)
	}

	m = tick(t, m, 2)
	m, _ = send(t, m, keyRetry)
	if game.resets != 2 {
		t.Fatalf("resets = %d, expected 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("state should be playing after restart")
	}
	if game.seeds[1] != 42 {
		t.Errorf("fixed seed should be reused, got %d", game.seeds[1])
	}

	// The new run records its own score.
	tick(t, m, 2)
	if len(store.saved) != 2 {
		t.Errorf("saved = %v, expected two runs", store.saved)
	}
}

func TestJumpForwardedAfterGameOver(t *testing.T) {
	game := &fakeGame{overAt: 1}
	m := tick(t, newTestModel(game, nil), 1)

	send(t, m, keySpace)
	if game.jumps != 1 {
		t.Errorf("jumps = %d, expected jump to reach the game after game over", game.jumps)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	m, cmd := send(t, m, keyQuit)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestResize(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if game.resets != 1 {
		t.Error("resize should not restart the run")
	}

	lines := strings.Split(m.View(), "\n")
	// 11 playfield rows plus the help line
	if len(lines) != 12 {
		t.Errorf("View has %d lines, expected 12", len(lines))
	}
}

func TestViewShowsGameFrame(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if !strings.Contains(m.View(), "fake") {
		t.Error("View should contain the game's frame")
	}
}
