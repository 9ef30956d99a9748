package kickball

import (
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// View is a read-only picture of the world for hosts that draw their own
// graphics instead of using Render.
type View struct {
	Field        bounds.Rect
	Ball         core.Vec2
	BallRadius   float64
	Player       core.Vec2
	PlayerRadius float64
	Target       *core.Vec2 // Where the player is walking, if anywhere
	PlayerGoal   bounds.Rect
	OpponentGoal bounds.Rect
	PlayerText   string
	OpponentText string
	State        string
	Mode         GameMode
	WinScore     int
}

// View returns the current world state. It is empty before the first Reset.
func (g *Game) View() View {
	if g.tracker == nil {
		return View{}
	}
	field, _ := g.tracker.Current()
	v := View{
		Field:        field,
		Ball:         g.ball.Pos,
		BallRadius:   g.ball.HalfExtent.X,
		Player:       g.player.Pos,
		PlayerRadius: g.player.HalfExtent.X,
		PlayerGoal:   g.playerGoal.Area,
		OpponentGoal: g.opponentGoal.Area,
		PlayerText:   g.playerDisplay.Text(),
		OpponentText: g.opponentDisplay.Text(),
		State:        g.state,
		Mode:         g.mode,
		WinScore:     g.cfg.Gameplay.WinScore,
	}
	if t := g.player.target; t != nil {
		target := *t
		v.Target = &target
	}
	return v
}

// WorldToScreen maps a world point to screen coordinates, HUD rows included.
func (g *Game) WorldToScreen(p core.Vec2) core.Vec2 {
	s := g.camera.WorldToScreen(p)
	s.Y += float64(g.hudRows)
	return s
}

// Resize points the camera at a new screen size without restarting the match.
// The field rectangle follows on the next tick.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.screenTooSmall = g.hudRows > 0 && (w < minScreenW || h < minScreenH)
	if g.camera != nil {
		g.camera.Resize(float64(w), float64(h-g.hudRows))
	}
}
