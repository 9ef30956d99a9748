package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/games/kickball"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// quickMatch is a one-goal match with a kick strong enough to reach the goal.
func quickMatch() config.KickballConfig {
	cfg := config.DefaultKickballConfig()
	cfg.Gameplay.WinScore = 1
	cfg.Ball.KickForce = 3000
	return cfg
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel, n int) GameModel {
	t.Helper()
	for range n {
		m, _ = update(t, m, TickMsg{})
	}
	return m
}

// clickBall presses just left of the ball center, kicking it to the right.
func clickBall(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = update(t, m, tea.MouseMsg{X: 39, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	return m
}

func TestGameModelRecordsMatchOnce(t *testing.T) {
	store := openStore(t)
	game := kickball.New(kickball.WithConfig(quickMatch()))
	m := NewGameModel(game, store, testRuntime, nil)
	m.Init()

	m = clickBall(t, m)
	m = tick(t, m, 120)
	if !m.gameState.GameOver {
		t.Fatalf("expected game over, state = %+v", m.gameState)
	}
	m = tick(t, m, 10)

	matches, err := store.RecentMatches("kickball", 10)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match recorded, got %d", len(matches))
	}
	rec := matches[0]
	if rec.GoalsFor != 1 || rec.GoalsAgainst != 0 || rec.Policy != "spring" || rec.DurationTicks == 0 {
		t.Errorf("match = %+v", rec)
	}
	if high, _ := store.HighScore("kickball"); high != 1 {
		t.Errorf("high score = %d, expected 1", high)
	}
}

func TestGameModelRestartAfterGameOver(t *testing.T) {
	game := kickball.New(kickball.WithConfig(quickMatch()))
	m := NewGameModel(game, openStore(t), testRuntime, nil)
	m.Init()

	m = clickBall(t, m)
	m = tick(t, m, 120)
	if !m.recorded {
		t.Fatal("match should be recorded at game over")
	}

	m, _ = update(t, m, runeKey('r'))
	m = tick(t, m, 1)
	if m.gameState.GameOver || m.recorded {
		t.Errorf("restart should start a fresh match, state = %+v recorded = %v", m.gameState, m.recorded)
	}
	if game.Ticks() != 0 {
		t.Errorf("ticks = %d after restart", game.Ticks())
	}
}

func TestGameModelEndlessRecordsOnQuit(t *testing.T) {
	store := openStore(t)
	game := kickball.NewEndless(kickball.WithConfig(config.DefaultKickballConfig()))
	m := NewGameModel(game, store, testRuntime, nil)
	m.Init()
	m = tick(t, m, 5)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}

	matches, _ := store.RecentMatches("kickball_endless", 10)
	if len(matches) != 1 || matches[0].DurationTicks != 5 {
		t.Errorf("endless run should be recorded on quit, got %+v", matches)
	}
}

func TestGameModelUnfinishedMatchNotRecorded(t *testing.T) {
	store := openStore(t)
	m := NewGameModel(kickball.New(kickball.WithConfig(config.DefaultKickballConfig())), store, testRuntime, nil)
	m.Init()
	m = tick(t, m, 5)
	update(t, m, runeKey('q'))

	if matches, _ := store.RecentMatches("", 10); len(matches) != 0 {
		t.Errorf("quitting a match early should not record it, got %d", len(matches))
	}
}

func TestGameModelResizeKeepsPlaying(t *testing.T) {
	game := kickball.New(kickball.WithConfig(config.DefaultKickballConfig()))
	m := NewGameModel(game, nil, testRuntime, nil)
	m.Init()
	m = tick(t, m, 3)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	m = tick(t, m, 1)

	if game.Ticks() != 4 {
		t.Errorf("resize should not restart the match, ticks = %d", game.Ticks())
	}
	if field := game.View().Field; field.Max.X != 5 {
		t.Errorf("field should follow the new width, got %+v", field)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	m := NewGameModel(kickball.New(kickball.WithConfig(config.DefaultKickballConfig())), nil, testRuntime, nil)
	m.inMenu = true
	m.Init()

	// Esc while playing pauses
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m, 1)
	if !m.gameState.Paused {
		t.Fatal("esc should pause a running match")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should go back to the menu")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColor(1, 0, 'O', core.ColorBrightWhite)
	s.Set(2, 1, '@')

	out := RenderScreen(s)
	if out == "" {
		t.Fatal("empty render")
	}
	// Styles may be stripped without a color profile, the text must survive
	if got := stripANSI(out); got != " O  \n  @ " {
		t.Errorf("RenderScreen text = %q", got)
	}
}

func stripANSI(s string) string {
	var out []rune
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
