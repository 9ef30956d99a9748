package kickball

import "math"

// Snapshot contains the complete game state for replay and determinism tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Match, 1=Endless
	State      string
	ServeDelay int

	BallX, BallY   float64
	BallVX, BallVY float64
	PlayerX        float64
	PlayerY        float64

	GoalsFor     uint
	GoalsAgainst uint
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Mode:       int(g.mode),
		State:      g.state,
		ServeDelay: g.serveDelay,

		BallX:   g.ball.Pos.X,
		BallY:   g.ball.Pos.Y,
		BallVX:  g.ball.Vel.X,
		BallVY:  g.ball.Vel.Y,
		PlayerX: g.player.Pos.X,
		PlayerY: g.player.Pos.Y,

		GoalsFor:     g.opponentGoal.Count(),
		GoalsAgainst: g.playerGoal.Count(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay) //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, f := range []float64{snap.BallX, snap.BallY, snap.BallVX, snap.BallVY, snap.PlayerX, snap.PlayerY} {
		h = h*31 + math.Float64bits(f)
	}

	h = h*31 + uint64(snap.GoalsFor)
	h = h*31 + uint64(snap.GoalsAgainst)
	return h
}
