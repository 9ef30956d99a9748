package kickball

import (
	"math"
	"reflect"
	"testing"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

func TestBallDamping(t *testing.T) {
	b := NewBall(core.Vec2{}, config.DefaultKickballConfig().Ball)

	b.SetVelocity(core.V(10, 0))
	b.ApplyDamping()
	if expected := 10 * 0.98 * 0.995; math.Abs(b.Vel.X-expected) > 1e-12 {
		t.Errorf("vel = %f, expected %f", b.Vel.X, expected)
	}

	b.SetVelocity(core.V(0.05, 0.05))
	b.ApplyDamping()
	if b.Moving() {
		t.Errorf("ball below stop speed should stop, vel = %v", b.Vel)
	}
}

func TestBallStopsEventually(t *testing.T) {
	b := NewBall(core.Vec2{}, config.DefaultKickballConfig().Ball)
	b.SetVelocity(core.V(20, -5))

	for i := 0; i < 1000 && b.Moving(); i++ {
		b.ApplyDamping()
		b.Integrate(1.0 / 60)
	}
	if b.Moving() {
		t.Errorf("ball should come to rest, vel = %v", b.Vel)
	}
}

func TestBallKicked(t *testing.T) {
	b := NewBall(core.Vec2{}, config.DefaultKickballConfig().Ball)
	b.Kicked(core.V(60, 0))
	b.Integrate(1.0 / 60)
	if math.Abs(b.Vel.X-1) > 1e-12 {
		t.Errorf("vel = %v, expected (1, 0)", b.Vel)
	}
}

func TestGoalCheckEdgeTriggered(t *testing.T) {
	field := bounds.Rect{Min: core.V(-10, -5), Max: core.V(10, 5)}
	g := NewGoal(SideRight)
	g.Layout(field, 1, 4)

	var got []uint
	g.OnScored(func(n uint) { got = append(got, n) })
	g.OnScored(func(n uint) { got = append(got, n*10) })

	half := core.V(0.5, 0.5)
	steps := []struct {
		pos    core.Vec2
		scored bool
		count  uint
	}{
		{core.V(0, 0), false, 0},
		{core.V(9, 0), true, 1},
		{core.V(9.5, 1), false, 1},
		{core.V(5, 0), false, 1},
		{core.V(8.6, -2.2), true, 2},
		{core.V(9, 3), false, 2},
	}

	for i, s := range steps {
		scored, count := g.Check(s.pos, half)
		if scored != s.scored || count != s.count {
			t.Errorf("step %d at %v: Check() = (%v, %d), expected (%v, %d)", i, s.pos, scored, count, s.scored, s.count)
		}
	}

	if expected := []uint{1, 10, 2, 20}; !reflect.DeepEqual(got, expected) {
		t.Errorf("listener calls = %v, expected %v", got, expected)
	}

	g.Reset()
	if g.Count() != 0 {
		t.Errorf("Count() after Reset = %d", g.Count())
	}
}

func TestGoalLayoutCapsToField(t *testing.T) {
	field := bounds.Rect{Min: core.V(0, 0), Max: core.V(4, 2)}
	g := NewGoal(SideLeft)
	g.Layout(field, 5, 10)

	expected := bounds.Rect{Min: core.V(0, 0), Max: core.V(2, 2)}
	if g.Area != expected {
		t.Errorf("Area = %+v, expected %+v", g.Area, expected)
	}
}

func TestGoalDisplay(t *testing.T) {
	d := NewGoalDisplay("You", AnchorLeft, core.ColorCyan)
	if d.Text() != "Goals: 0" {
		t.Errorf("new display = %q", d.Text())
	}
	d.SetGoal(3)
	if d.Text() != "Goals: 3" {
		t.Errorf("Text() = %q, expected Goals: 3", d.Text())
	}
	d.ClearGoal()
	if d.Text() != "Goals: 0" {
		t.Errorf("after ClearGoal = %q", d.Text())
	}

	screen := core.NewScreen(30, 1)
	right := NewGoalDisplay("", AnchorRight, core.ColorRed)
	right.SetGoal(12)
	right.Draw(screen, 0)
	if row := screen.Row(0); row[len(row)-10:] != "Goals: 12 " {
		t.Errorf("right anchored row = %q", row)
	}
}

func TestPlayerMoveToPosition(t *testing.T) {
	tr := bounds.NewTracker(bounds.WithViewport(bounds.NewOrthoCamera(80, 40, 4, 4)), bounds.WithPadding(0))
	tr.OnFrame() // [-10,-5]..[10,5]

	cfg := config.DefaultKickballConfig().Player
	p := NewPlayer(core.Vec2{}, cfg, tr)

	p.MoveToPosition(core.V(3, 4), 0.5) // speed 5 * 0.5 = 2.5 units max
	if math.Abs(p.Pos.Len()-2.5) > 1e-9 {
		t.Errorf("step length = %f, expected 2.5", p.Pos.Len())
	}

	p.MoveToPosition(core.V(3, 4), 10)
	if p.Pos != core.V(3, 4) {
		t.Errorf("Pos = %v, expected to arrive at (3, 4)", p.Pos)
	}

	// Targets outside the bounds are clamped first
	p.MoveToPosition(core.V(50, 0), 100)
	if p.Pos != core.V(10, 0) {
		t.Errorf("Pos = %v, expected clamped target (10, 0)", p.Pos)
	}
}

func TestPlayerUnconstrained(t *testing.T) {
	tr := bounds.NewTracker(bounds.WithViewport(bounds.NewOrthoCamera(80, 40, 4, 4)))
	tr.OnFrame()

	cfg := config.DefaultKickballConfig().Player
	cfg.UseBoundaryConstraint = false
	p := NewPlayer(core.V(9.9, 0), cfg, tr)

	p.Move(core.V(1, 0), 1)
	if p.Pos.X != 14.9 {
		t.Errorf("unconstrained player X = %f, expected 14.9", p.Pos.X)
	}
}

func TestPlayerDiagonalNormalized(t *testing.T) {
	tr := bounds.NewTracker()
	p := NewPlayer(core.Vec2{}, config.DefaultKickballConfig().Player, tr)

	p.Move(core.V(1, 1), 1)
	if math.Abs(p.Pos.Len()-5) > 1e-9 {
		t.Errorf("diagonal step = %f, expected 5", p.Pos.Len())
	}
}
