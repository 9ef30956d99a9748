// Package gui runs kickball in a desktop window with Ebitengine.
// The field is the window: resizing it moves the walls, clicking the ball
// kicks it away from the cursor.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/config"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/games/kickball"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/storage"
)

// Options configures the window host.
type Options struct {
	Width, Height int     // Initial window size in pixels
	PixelsPerUnit float64 // World scale, 40 when zero
	TickRate      int
	Endless       bool
	Difficulty    config.DifficultyPreset
	Store         *storage.Store // Optional, results are not saved when nil
	Logger        *log.Logger
}

// DefaultOptions returns a 960x600 window at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Width:         960,
		Height:        600,
		PixelsPerUnit: 40,
		TickRate:      60,
	}
}

var (
	pitchColor        = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	lineColor         = color.RGBA{0xe8, 0xf5, 0xe9, 0x90}
	playerGoalColor   = color.RGBA{0x42, 0xa5, 0xf5, 0xc0}
	opponentGoalColor = color.RGBA{0xff, 0x70, 0x43, 0xc0}
	ballColor         = color.White
	playerColor       = color.RGBA{0xff, 0xeb, 0x3b, 0xff}
	targetMarker      = color.RGBA{0xff, 0xff, 0xff, 0x80}
	overlayShadow     = color.RGBA{0, 0, 0, 0x90}
)

// Host adapts a kickball game to ebiten.Game.
type Host struct {
	game     *kickball.Game
	opts     Options
	log      *log.Logger
	width    int
	height   int
	state    core.GameState
	recorded bool
}

// New creates a host and starts a match sized to the initial window.
func New(opts Options) *Host {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.PixelsPerUnit <= 0 {
		opts.PixelsPerUnit = def.PixelsPerUnit
	}
	if opts.TickRate <= 0 {
		opts.TickRate = def.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	gameOpts := []kickball.Option{
		kickball.WithHUDRows(0), // The host draws its own HUD
		kickball.WithScale(opts.PixelsPerUnit, opts.PixelsPerUnit),
		kickball.WithLogger(opts.Logger),
	}
	if opts.Difficulty != "" {
		gameOpts = append(gameOpts, kickball.WithDifficulty(opts.Difficulty))
	}

	var game *kickball.Game
	if opts.Endless {
		game = kickball.NewEndless(gameOpts...)
	} else {
		game = kickball.New(gameOpts...)
	}

	h := &Host{
		game:   game,
		opts:   opts,
		log:    opts.Logger,
		width:  opts.Width,
		height: opts.Height,
	}
	h.reset()
	return h
}

func (h *Host) reset() {
	h.game.Reset(core.RuntimeConfig{
		ScreenW:  h.width,
		ScreenH:  h.height,
		TickRate: h.opts.TickRate,
	})
	h.state = h.game.State()
	h.recorded = false
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if h.opts.Endless && h.game.Ticks() > 0 {
			h.record()
		}
		return ebiten.Termination
	}

	in := h.readInput()
	if in.Has(core.ActionRestart) && h.state.GameOver {
		h.reset()
		return nil
	}

	result := h.game.Step(in)
	h.state = result.State
	if h.state.GameOver {
		h.record()
	}
	return nil
}

// readInput samples the keyboard and mouse for one tick. Unlike a terminal,
// ebiten reports real key state, so movement keys need no hold emulation.
func (h *Host) readInput() core.InputFrame {
	in := core.NewInputFrame()

	held := map[core.Action][]ebiten.Key{
		core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
		core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
		core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
		core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	}
	for action, keys := range held {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(action)
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.Set(core.ActionKick)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.PressAt(float64(x), float64(y))
	}
	return in
}

// record saves the result once per match.
func (h *Host) record() {
	if h.recorded {
		return
	}
	h.recorded = true
	if h.opts.Store == nil {
		return
	}

	if h.state.Score > 0 {
		if _, err := h.opts.Store.SaveScore(h.game.ID(), h.state.Score); err != nil {
			h.log.Warn("could not save score", "err", err)
		}
	}
	_, err := h.opts.Store.SaveMatch(storage.MatchRecord{
		GameID:        h.game.ID(),
		GoalsFor:      h.state.Score,
		GoalsAgainst:  h.state.OpponentScore,
		Policy:        string(h.game.BallPolicy()),
		DurationTicks: h.game.Ticks(),
	})
	if err != nil {
		h.log.Warn("could not save match", "err", err)
	}
}

// Layout implements ebiten.Game. The logical screen is the window, and a
// size change moves the camera so the field follows it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(outsideWidth, outsideHeight)
		h.log.Debug("window resized", "w", outsideWidth, "h", outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(pitchColor)
	v := h.game.View()

	h.drawField(screen, v.Field)
	h.fillRect(screen, v.PlayerGoal, playerGoalColor)
	h.fillRect(screen, v.OpponentGoal, opponentGoalColor)

	if v.Target != nil {
		t := h.game.WorldToScreen(*v.Target)
		vector.StrokeCircle(screen, float32(t.X), float32(t.Y), 6, 2, targetMarker, true)
	}
	h.fillCircle(screen, v.Player, v.PlayerRadius, playerColor)
	h.fillCircle(screen, v.Ball, v.BallRadius, ballColor)

	h.drawHUD(screen, v)
}

// drawField outlines the field and draws the halfway line.
func (h *Host) drawField(screen *ebiten.Image, field bounds.Rect) {
	x, y, w, ht := h.screenRect(field)
	vector.StrokeRect(screen, x+1, y+1, w-2, ht-2, 2, lineColor, false)
	c := h.game.WorldToScreen(field.Center())
	vector.StrokeLine(screen, float32(c.X), y, float32(c.X), y+ht, 2, lineColor, false)
	unit := float32(h.opts.PixelsPerUnit)
	vector.StrokeCircle(screen, float32(c.X), float32(c.Y), 1.5*unit, 2, lineColor, true)
}

func (h *Host) fillRect(screen *ebiten.Image, r bounds.Rect, clr color.Color) {
	x, y, w, ht := h.screenRect(r)
	vector.DrawFilledRect(screen, x, y, w, ht, clr, false)
}

func (h *Host) fillCircle(screen *ebiten.Image, center core.Vec2, radius float64, clr color.Color) {
	c := h.game.WorldToScreen(center)
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(radius*h.opts.PixelsPerUnit), clr, true)
}

// screenRect converts a world rectangle to pixel x, y, width, height.
// World Y points up, so the top-left corner comes from Min.X and Max.Y.
func (h *Host) screenRect(r bounds.Rect) (x, y, w, ht float32) {
	tl := h.game.WorldToScreen(core.V(r.Min.X, r.Max.Y))
	br := h.game.WorldToScreen(core.V(r.Max.X, r.Min.Y))
	return float32(tl.X), float32(tl.Y), float32(br.X - tl.X), float32(br.Y - tl.Y)
}

// drawHUD prints both counters and any state message.
func (h *Host) drawHUD(screen *ebiten.Image, v kickball.View) {
	ebitenutil.DebugPrintAt(screen, "You "+v.PlayerText, 8, 4)
	right := "Them " + v.OpponentText
	ebitenutil.DebugPrintAt(screen, right, h.width-len(right)*6-8, 4)

	mid := "Endless"
	if v.Mode == kickball.ModeMatch {
		mid = fmt.Sprintf("First to %d", v.WinScore)
	}
	ebitenutil.DebugPrintAt(screen, mid, (h.width-len(mid)*6)/2, 4)

	var msg string
	switch v.State {
	case kickball.StatePaused:
		msg = "PAUSED - P to resume"
	case kickball.StateServe:
		msg = "GOAL!"
	case kickball.StateGameOver:
		title := "YOU WIN"
		if h.state.Score < h.state.OpponentScore {
			title = "YOU LOSE"
		}
		msg = fmt.Sprintf("%s  %d - %d  R to restart", title, h.state.Score, h.state.OpponentScore)
	}
	if msg == "" {
		return
	}
	w := float32(len(msg)*6 + 24)
	x := (float32(h.width) - w) / 2
	y := float32(h.height)/2 - 14
	vector.DrawFilledRect(screen, x, y, w, 28, overlayShadow, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+12, int(y)+7)
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(opts Options) error {
	h := New(opts)

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(h.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.opts.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
