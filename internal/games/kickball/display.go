package kickball

import (
	"fmt"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// Anchor is where a display is drawn on the HUD row.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorRight
)

// GoalDisplay holds the text shown for one side's goal counter.
type GoalDisplay struct {
	Label  string
	Anchor Anchor
	Color  core.Color
	text   string
}

// NewGoalDisplay creates a cleared display.
func NewGoalDisplay(label string, anchor Anchor, color core.Color) *GoalDisplay {
	d := &GoalDisplay{Label: label, Anchor: anchor, Color: color}
	d.ClearGoal()
	return d
}

// SetGoal updates the shown count.
func (d *GoalDisplay) SetGoal(count uint) {
	d.text = fmt.Sprintf("Goals: %d", count)
}

// ClearGoal resets the shown count to zero.
func (d *GoalDisplay) ClearGoal() {
	d.SetGoal(0)
}

// Text returns the current counter text.
func (d *GoalDisplay) Text() string {
	return d.text
}

// Draw writes the label and counter on row y.
func (d *GoalDisplay) Draw(dst *core.Screen, y int) {
	s := d.text
	if d.Label != "" {
		s = d.Label + " " + s
	}
	x := 1
	if d.Anchor == AnchorRight {
		x = dst.Width() - len(s) - 1
	}
	dst.DrawTextColor(x, y, s, d.Color)
}
