package kickball

import (
	"testing"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

func TestResizeShrinksField(t *testing.T) {
	g := newTestGame(t, func(c *config.KickballConfig) { c.Ball.Boundary.Mode = "clamp" })
	g.ball.SetPosition(core.V(9, 4))

	g.Resize(40, 24)
	if field, _ := g.tracker.Current(); field.Max.X != 10 {
		t.Fatalf("field should only change on the next tick, got %+v", field)
	}

	res := g.Step(idle())
	field, _ := g.tracker.Current()
	expected := bounds.Rect{Min: core.V(-5, -5.75), Max: core.V(5, 5.75)}
	if field != expected {
		t.Errorf("field = %+v, expected %+v", field, expected)
	}
	if g.ball.Pos != core.V(4.5, 4) {
		t.Errorf("ball = %v, expected clamped to (4.5, 4)", g.ball.Pos)
	}
	if g.player.Pos.X != -4.5 {
		t.Errorf("player X = %f, expected -4.5", g.player.Pos.X)
	}
	if g.opponentGoal.Area.Min.X != 4.25 {
		t.Errorf("opponent goal should follow the edge, got %+v", g.opponentGoal.Area)
	}
	if hasEvent(res, core.EventGoalFor) {
		t.Error("resize should not score")
	}
	if g.Ticks() != 1 {
		t.Errorf("resize should keep the match running, ticks = %d", g.Ticks())
	}
}

func TestResizeTooSmall(t *testing.T) {
	g := newTestGame(t, nil)
	g.Resize(20, 8)
	g.Step(idle())
	if g.Ticks() != 0 {
		t.Error("too small screen should not simulate")
	}

	g.Resize(80, 24)
	g.Step(idle())
	if g.Ticks() != 1 {
		t.Errorf("ticks = %d after growing back", g.Ticks())
	}
}

func TestView(t *testing.T) {
	if v := New().View(); v.State != "" {
		t.Errorf("view before Reset = %+v", v)
	}

	g := newTestGame(t, nil)
	v := g.View()
	if v.Field != (bounds.Rect{Min: core.V(-10, -5.75), Max: core.V(10, 5.75)}) {
		t.Errorf("Field = %+v", v.Field)
	}
	if v.Ball != core.V(0, 0) || v.BallRadius != 0.5 {
		t.Errorf("ball = %v r=%f", v.Ball, v.BallRadius)
	}
	if v.PlayerText != "Goals: 0" || v.OpponentText != "Goals: 0" {
		t.Errorf("texts = %q %q", v.PlayerText, v.OpponentText)
	}
	if v.State != StatePlaying || v.WinScore != 5 || v.Target != nil {
		t.Errorf("view = %+v", v)
	}

	g.player.WalkTo(core.V(1, 1))
	v = g.View()
	if v.Target == nil || *v.Target != core.V(1, 1) {
		t.Fatalf("Target = %v", v.Target)
	}
	*v.Target = core.V(3, 3)
	if *g.player.target != core.V(1, 1) {
		t.Error("View should copy the target")
	}
}

func TestWorldToScreenIncludesHUD(t *testing.T) {
	g := newTestGame(t, nil)
	// Field center is the center of the 80x23 area below the HUD row
	if s := g.WorldToScreen(core.V(0, 0)); s != core.V(40, 12.5) {
		t.Errorf("WorldToScreen(0,0) = %v, expected (40, 12.5)", s)
	}
}

func TestDifficultyOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New(WithDifficulty(config.DifficultyEasy))
	g.Reset(testRuntime)
	if g.cfg.Gameplay.WinScore != 3 {
		t.Errorf("easy win score = %d, expected 3", g.cfg.Gameplay.WinScore)
	}

	g.SetDifficulty(config.DifficultyHard)
	g.Reset(testRuntime)
	if g.cfg.Gameplay.WinScore != 7 || g.Difficulty() != config.DifficultyHard {
		t.Errorf("hard win score = %d, preset %q", g.cfg.Gameplay.WinScore, g.Difficulty())
	}
}
