// Package kickball implements a top-down kick-the-ball game.
// The player walks around a field that is exactly the visible screen and
// kicks a ball into the goal on the right while defending the one on the left.
package kickball

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/frame"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/registry"
)

// Visual characters for rendering
const (
	BallChar    = 'O'
	PlayerChar  = '@'
	GoalChar    = '▒'
	HalfwayChar = '┊'
	TargetChar  = '+'
)

// Game states
const (
	StatePlaying  = "playing"  // Ball in play
	StateServe    = "serve"    // Goal scored, waiting to re-serve
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // Win score reached
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeMatch   GameMode = iota // First to win_score
	ModeEndless                 // Play until quit
)

// Minimum terminal size for a playable field
const (
	minScreenW = 30
	minScreenH = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger is used by games created through the registry
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger for games created by the registry. Nil discards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Option configures a Game at construction.
type Option func(*Game)

// WithScale overrides the configured screen units per world unit.
func WithScale(unitsX, unitsY float64) Option {
	return func(g *Game) {
		g.unitsX, g.unitsY = unitsX, unitsY
	}
}

// WithHUDRows reserves rows at the top of the screen for the score line.
// Pixel hosts draw their own HUD and pass 0.
func WithHUDRows(rows int) Option {
	return func(g *Game) {
		g.hudRows = max(rows, 0)
	}
}

// WithConfig uses cfg instead of loading from disk.
func WithConfig(cfg config.KickballConfig) Option {
	return func(g *Game) {
		g.fixedCfg = &cfg
	}
}

// WithDifficulty overrides the package-level difficulty preset for this game.
func WithDifficulty(preset config.DifficultyPreset) Option {
	return func(g *Game) {
		g.preset = preset
	}
}

// WithLogger sets the game's logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// Game implements the kickball game logic.
type Game struct {
	mode GameMode

	// Construction options
	unitsX, unitsY float64
	hudRows        int
	fixedCfg       *config.KickballConfig
	preset         config.DifficultyPreset
	log            *log.Logger

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.KickballConfig
	difficulty *config.DifficultyManager

	// Field and frame driver
	camera  *bounds.OrthoCamera
	tracker *bounds.Tracker
	loop    *frame.Loop

	// Game objects
	ball            *Ball
	player          *Player
	playerGoal      *Goal // Defended by the player, on the left
	opponentGoal    *Goal // Attacked by the player, on the right
	playerDisplay   *GoalDisplay
	opponentDisplay *GoalDisplay
	ballPolicy      bounds.Policy
	playerPolicy    bounds.Policy

	// Game state
	state          string
	pausedFrom     string
	serveDelay     int
	tickCount      int
	events         []core.Event
	screenTooSmall bool
}

// New creates a new kickball game instance (match mode).
func New(opts ...Option) *Game {
	return newGame(ModeMatch, opts)
}

// NewEndless creates a new kickball game instance in endless mode.
func NewEndless(opts ...Option) *Game {
	return newGame(ModeEndless, opts)
}

func newGame(mode GameMode, opts []Option) *Game {
	g := &Game{mode: mode, hudRows: 1}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "kickball_endless"
	}
	return "kickball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Kickball (Endless)"
	}
	return "Kickball"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Score as many goals as you can"
	}
	return "First to the win score takes the match"
}

// loadConfig resolves the configuration for this run.
func (g *Game) loadConfig() config.KickballConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadKickball(configPath)
	if err != nil {
		g.log.Warn("kickball: using default config", "err", err)
		cfg = config.DefaultKickballConfig()
	}

	// Apply difficulty preset if set
	if preset := g.Difficulty(); preset != "" {
		config.ApplyKickballPreset(&cfg, preset)
	}
	return cfg
}

// SetDifficulty changes the preset used by the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// Difficulty returns the preset this game loads with.
func (g *Game) Difficulty() config.DifficultyPreset {
	if g.preset != "" {
		return g.preset
	}
	return difficultyPreset
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.log == nil {
		g.log = logger
	}
	g.runtime = runtime
	g.cfg = g.loadConfig()
	if g.unitsX > 0 && g.unitsY > 0 {
		g.cfg.Field.UnitsX, g.cfg.Field.UnitsY = g.unitsX, g.unitsY
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.screenTooSmall = g.hudRows > 0 && (runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH)

	// The field is the part of the screen below the HUD
	g.camera = bounds.NewOrthoCamera(
		float64(runtime.ScreenW),
		float64(runtime.ScreenH-g.hudRows),
		g.cfg.Field.UnitsX,
		g.cfg.Field.UnitsY,
	)
	g.tracker = bounds.NewTracker(
		bounds.WithViewport(g.camera),
		bounds.WithPadding(g.cfg.Bounds.Padding),
		bounds.WithAllowInset(g.cfg.Bounds.AllowInset),
		bounds.WithLogger(g.log),
	)
	g.tracker.SetEnabled(g.cfg.Bounds.Enabled)
	g.tracker.OnFrame()
	field, _ := g.tracker.Current()

	g.ball = NewBall(field.Center(), g.cfg.Ball)
	g.player = NewPlayer(g.kickoffSpot(field), g.cfg.Player, g.tracker)

	g.playerGoal = NewGoal(SideLeft)
	g.opponentGoal = NewGoal(SideRight)
	g.playerDisplay = NewGoalDisplay("You", AnchorLeft, core.ColorBrightCyan)
	g.opponentDisplay = NewGoalDisplay("Them", AnchorRight, core.ColorOpponentGoal)

	// A ball in the player's goal counts for the other side
	g.playerGoal.OnScored(g.opponentDisplay.SetGoal)
	g.opponentGoal.OnScored(g.playerDisplay.SetGoal)
	g.playerGoal.OnScored(func(n uint) { g.goalScored(core.EventGoalAgainst, n) })
	g.opponentGoal.OnScored(func(n uint) { g.goalScored(core.EventGoalFor, n) })
	g.playerDisplay.ClearGoal()
	g.opponentDisplay.ClearGoal()
	g.layoutGoals()

	g.ballPolicy = g.buildPolicy("ball", g.cfg.Ball.Boundary, bounds.Deps{
		Positioner: g.ball,
		RigidBody:  g.ball,
		Footprint:  g.ball,
	})
	g.playerPolicy = nil
	if g.cfg.Player.UseBoundaryConstraint {
		boundary := g.cfg.Player.Boundary
		if pc, err := boundary.PolicyConfig(); err == nil && g.cfg.Player.NeedsPhysicsFallback(pc.Mode) {
			g.log.Error("kickball: spring player boundary needs physics movement, using clamp")
			boundary.Mode = string(bounds.ModeClamp)
		}
		g.playerPolicy = g.buildPolicy("player", boundary, bounds.Deps{
			Positioner: g.player,
			RigidBody:  g.player,
			Footprint:  g.player,
		})
	}

	// Physics: boundary forces, then damping and integration.
	// Frame: bounds first so every consumer reads this frame's rectangle.
	g.loop = frame.NewLoop(g.cfg.Field.PhysicsSubsteps)
	g.loop.AddPhysics(g.ballPolicy)
	g.loop.AddFrame(g.tracker, frame.FrameFunc(g.layoutGoals))
	if g.playerPolicy != nil {
		g.loop.AddPhysics(g.playerPolicy)
		g.loop.AddFrame(g.playerPolicy)
	}
	g.loop.AddPhysics(frame.PhysicsFunc(g.physicsStep))
	g.loop.AddFrame(g.ballPolicy, frame.FrameFunc(g.checkGoals))

	g.state = StatePlaying
	g.pausedFrom = ""
	g.serveDelay = 0
	g.tickCount = 0
	g.events = nil
}

// buildPolicy creates a boundary policy, falling back to a footprint clamp
// when the configured one cannot be built.
func (g *Game) buildPolicy(name string, bp config.BoundaryPolicy, deps bounds.Deps) bounds.Policy {
	pc, err := bp.PolicyConfig()
	if err == nil {
		var p bounds.Policy
		if p, err = bounds.NewPolicy(pc, g.tracker, deps); err == nil {
			return p
		}
	}
	g.log.Error("kickball: bad boundary policy, using clamp", "entity", name, "err", err)
	p, _ := bounds.NewPolicy(bounds.DefaultPolicyConfig(), g.tracker, deps)
	return p
}

// kickoffSpot is where the player starts: halfway into the own half.
func (g *Game) kickoffSpot(field bounds.Rect) core.Vec2 {
	c := field.Center()
	return core.V(c.X-field.Size().X/4, c.Y)
}

// playerScore is the number of goals the player has scored.
func (g *Game) playerScore() int {
	return int(g.opponentGoal.Count())
}

// opponentScore is the number of goals conceded.
func (g *Game) opponentScore() int {
	return int(g.playerGoal.Count())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.state == StateGameOver {
		g.Reset(g.runtime)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = g.pausedFrom
		} else if g.state != StateGameOver {
			g.pausedFrom = g.state
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver {
		return g.result()
	}

	g.tickCount++
	dt := g.runtime.Dt()

	switch g.state {
	case StatePlaying:
		if in.Press != nil {
			g.handlePress(*in.Press)
		}
		if in.Has(core.ActionKick) {
			g.keyboardKick()
		}
	case StateServe:
		g.ball.Stop()
		g.serveDelay--
		if g.serveDelay <= 0 {
			g.serve()
		}
	}

	g.player.Move(in.Direction(), dt)
	g.player.FollowTarget(dt)

	g.loop.Tick(dt)

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// screenToWorld converts a host screen point into world space.
func (g *Game) screenToWorld(p core.Pointer) core.Vec2 {
	s := core.V(p.X, p.Y-float64(g.hudRows))
	return g.camera.ScreenToWorld(s, g.camera.NearClip())
}

// handlePress kicks the ball if the press hits it and otherwise sends the
// player walking to the pressed point.
func (g *Game) handlePress(p core.Pointer) {
	world := g.screenToWorld(p)
	if !g.ball.Contains(world) {
		g.player.WalkTo(world)
		return
	}

	dir := g.ball.Pos.Sub(world).Normalize()
	g.log.Debug("kickball: ball clicked", "screen", p, "world", world, "hit", true)
	if dir.IsZero() {
		return
	}
	g.kick(dir)
}

// keyboardKick kicks the ball away from the player when it is within reach.
func (g *Game) keyboardKick() {
	if !g.player.InReach(g.ball.Pos, g.cfg.Player.KickReach) {
		return
	}
	dir := g.ball.Pos.Sub(g.player.Pos).Normalize()
	if dir.IsZero() {
		dir = core.V(1, 0) // Toward the opponent goal
	}
	g.kick(dir)
}

func (g *Game) kick(dir core.Vec2) {
	strength := g.difficulty.KickForce(g.cfg.Ball.KickForce, g.playerScore(), g.tickCount)
	g.ball.Kicked(dir.Scale(strength))
	g.events = append(g.events, core.Event{Kind: core.EventKick})
	g.log.Debug("kickball: kick", "dir", dir, "force", strength)
}

// physicsStep integrates the bodies after boundary forces were added.
func (g *Game) physicsStep(dt float64) {
	g.ball.ApplyDamping()
	g.ball.Integrate(dt)
	if g.cfg.Player.UsePhysicsMovement {
		g.player.Integrate(dt)
	}
}

// layoutGoals fits both goals to the current bounds. The mouth shrinks as
// the player's score raises the difficulty.
func (g *Game) layoutGoals() {
	field, ok := g.tracker.Current()
	if !ok {
		return
	}
	h := g.difficulty.GoalHeight(g.cfg.Goals.Height, g.playerScore(), g.tickCount)
	g.playerGoal.Layout(field, g.cfg.Goals.Depth, h)
	g.opponentGoal.Layout(field, g.cfg.Goals.Depth, h)
}

// checkGoals runs the goal triggers against the ball.
func (g *Game) checkGoals() {
	if g.state != StatePlaying {
		return
	}
	half := g.ball.HalfExtents()
	g.playerGoal.Check(g.ball.Pos, half)
	if g.state == StatePlaying {
		g.opponentGoal.Check(g.ball.Pos, half)
	}
}

// goalScored is the game's own goal listener.
func (g *Game) goalScored(kind core.EventKind, count uint) {
	g.events = append(g.events, core.Event{Kind: kind, Value: int(count)})
	g.log.Info("kickball: goal", "kind", kind, "for", g.playerScore(), "against", g.opponentScore())

	g.ball.Stop()
	g.player.target = nil

	win := g.cfg.Gameplay.WinScore
	if g.mode == ModeMatch && win > 0 && (g.playerScore() >= win || g.opponentScore() >= win) {
		g.state = StateGameOver
		g.events = append(g.events, core.Event{Kind: core.EventMatchOver, Value: g.playerScore()})
		g.log.Info("kickball: match over", "for", g.playerScore(), "against", g.opponentScore(), "ticks", g.tickCount)
		return
	}

	g.state = StateServe
	g.serveDelay = g.cfg.Gameplay.ServeDelayTicks
	if g.serveDelay <= 0 {
		g.serve()
	}
}

// serve puts the ball back on the center spot.
func (g *Game) serve() {
	field, _ := g.tracker.Current()
	g.ball.SetPosition(field.Center())
	g.ball.Stop()
	g.serveDelay = 0
	g.state = StatePlaying
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderField(dst)
	g.renderGoal(dst, g.playerGoal, core.ColorPlayerGoal)
	g.renderGoal(dst, g.opponentGoal, core.ColorOpponentGoal)

	if t := g.player.target; t != nil {
		g.setWorld(dst, *t, TargetChar, core.ColorTarget)
	}
	g.setWorld(dst, g.player.Pos, PlayerChar, core.ColorPlayer)
	g.setWorld(dst, g.ball.Pos, BallChar, core.ColorBall)

	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// setWorld draws a rune at the cell under a world point.
func (g *Game) setWorld(dst *core.Screen, p core.Vec2, r rune, c core.Color) {
	x, y := g.camera.WorldToCell(p)
	if y < 0 {
		return // Never draw over the HUD
	}
	dst.SetColor(x, y+g.hudRows, r, c)
}

// renderField draws the halfway line.
func (g *Game) renderField(dst *core.Screen) {
	field, ok := g.tracker.Current()
	if !ok {
		return
	}
	x, _ := g.camera.WorldToCell(field.Center())
	dst.DrawVLine(x, g.hudRows, dst.Height()-g.hudRows, HalfwayChar, core.ColorPitchLine)
}

// renderGoal shades every cell whose center lies in the goal trigger.
func (g *Game) renderGoal(dst *core.Screen, goal *Goal, c core.Color) {
	x0, y0 := g.camera.WorldToCell(core.V(goal.Area.Min.X, goal.Area.Max.Y))
	x1, y1 := g.camera.WorldToCell(core.V(goal.Area.Max.X, goal.Area.Min.Y))
	for y := max(y0, 0); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			center := g.camera.ScreenToWorld(core.V(float64(x)+0.5, float64(y)+0.5), 0)
			if goal.Area.Contains(center) {
				dst.SetColor(x, y+g.hudRows, GoalChar, c)
			}
		}
	}
}

// renderHUD draws both goal counters and the mode line.
func (g *Game) renderHUD(dst *core.Screen) {
	if g.hudRows == 0 {
		return
	}
	for x := range dst.Width() {
		dst.Set(x, 0, ' ')
	}
	g.playerDisplay.Draw(dst, 0)
	g.opponentDisplay.Draw(dst, 0)

	var mid string
	if g.mode == ModeEndless {
		mid = "Endless"
	} else {
		mid = fmt.Sprintf("First to %d", g.cfg.Gameplay.WinScore)
	}
	dst.DrawTextCentered(0, mid)
}

// renderOverlay draws pause, serve and game over messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	cy := g.hudRows + (dst.Height()-g.hudRows)/2
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, cy, "PAUSED", "Press P to resume")
	case StateServe:
		dst.DrawTextCentered(cy, " GOAL! ")
	case StateGameOver:
		title := "YOU WIN"
		if g.playerScore() < g.opponentScore() {
			title = "YOU LOSE"
		}
		g.drawCenteredBox(dst, cy, title, fmt.Sprintf("%d - %d  R to restart", g.playerScore(), g.opponentScore()))
	}
}

// drawCenteredBox draws a boxed two-line message centered on row cy.
func (g *Game) drawCenteredBox(dst *core.Screen, cy int, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 4
	x := (dst.Width() - w) / 2
	box := core.NewRect(x, cy-2, w, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(cy-1, title)
	dst.DrawTextCentered(cy+1, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.playerGoal == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:         g.playerScore(),
		OpponentScore: g.opponentScore(),
		GameOver:      g.state == StateGameOver,
		Paused:        g.state == StatePaused,
	}
}

// Mode returns the game mode.
func (g *Game) Mode() GameMode {
	return g.mode
}

// Ticks returns the number of simulated ticks since the last reset.
func (g *Game) Ticks() int {
	return g.tickCount
}

// BallPolicy returns the boundary mode the ball is using.
func (g *Game) BallPolicy() bounds.Mode {
	if g.ballPolicy == nil {
		return ""
	}
	return g.ballPolicy.Mode()
}

func init() {
	registry.Register("kickball", func() registry.Game {
		return New()
	})
	registry.Register("kickball_endless", func() registry.Game {
		return NewEndless()
	})
}
