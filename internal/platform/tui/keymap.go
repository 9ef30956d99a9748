package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// DefaultHoldTicks is how long a movement key counts as held after a press.
// Terminals report key repeats but never releases, so a held arrow key is
// a stream of presses that each keep the action alive for a few ticks.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionKick, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// isHeld reports whether an action is a movement that stays on between presses.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// opposite returns the movement that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	}
	return core.ActionNone
}

// Input collects key presses and mouse clicks between ticks and turns them
// into one InputFrame per tick.
type Input struct {
	holdTicks int
	held      map[core.Action]int
	pending   core.InputFrame
}

// NewInput creates an input collector. holdTicks <= 0 uses DefaultHoldTicks.
func NewInput(holdTicks int) *Input {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &Input{
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
		pending:   core.NewInputFrame(),
	}
}

// Press records an action. Movements are held, everything else fires once.
func (in *Input) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if isHeld(a) {
		in.held[a] = in.holdTicks
		delete(in.held, opposite(a))
		return
	}
	in.pending.Set(a)
}

// Click records a pointer press at a terminal cell.
// The point is the cell center so it projects to the middle of the cell.
func (in *Input) Click(col, row int) {
	in.pending.PressAt(float64(col)+0.5, float64(row)+0.5)
}

// Frame returns the input for the next tick and ages held movements.
func (in *Input) Frame() core.InputFrame {
	f := in.pending.Clone()
	for a, n := range in.held {
		f.Set(a)
		if n <= 1 {
			delete(in.held, a)
		} else {
			in.held[a] = n - 1
		}
	}
	in.pending.Clear()
	return f
}

// Reset drops all pending and held input.
func (in *Input) Reset() {
	clear(in.held)
	in.pending.Clear()
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
