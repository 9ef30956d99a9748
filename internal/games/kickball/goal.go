package kickball

import (
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/bounds"
	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// Side is the field edge a goal sits on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// Goal is a trigger area on one field edge that counts balls entering it.
type Goal struct {
	Side  Side
	Area  bounds.Rect
	count uint

	inside    bool
	listeners []func(uint)
}

// NewGoal creates an empty goal on the given side. Call Layout before Check.
func NewGoal(side Side) *Goal {
	return &Goal{Side: side}
}

// OnScored registers a listener called with the new count after each goal.
func (g *Goal) OnScored(fn func(count uint)) {
	g.listeners = append(g.listeners, fn)
}

// Count returns the number of goals scored into this goal.
func (g *Goal) Count() uint {
	return g.count
}

// Reset clears the counter. Listeners are kept.
func (g *Goal) Reset() {
	g.count = 0
	g.inside = false
}

// Layout places the trigger against its edge of field, vertically centered.
// The mouth is capped to the field height.
func (g *Goal) Layout(field bounds.Rect, depth, height float64) {
	size := field.Size()
	height = min(height, size.Y)
	depth = min(depth, size.X/2)
	cy := field.Center().Y

	var minX, maxX float64
	if g.Side == SideLeft {
		minX, maxX = field.Min.X, field.Min.X+depth
	} else {
		minX, maxX = field.Max.X-depth, field.Max.X
	}
	g.Area = bounds.Rect{
		Min: core.V(minX, cy-height/2),
		Max: core.V(maxX, cy+height/2),
	}
}

// Overlaps reports whether a box at pos with half extents half touches the trigger.
func (g *Goal) Overlaps(pos, half core.Vec2) bool {
	return pos.X+half.X >= g.Area.Min.X && pos.X-half.X <= g.Area.Max.X &&
		pos.Y+half.Y >= g.Area.Min.Y && pos.Y-half.Y <= g.Area.Max.Y
}

// Check tests the ball against the trigger. A goal is scored only on the
// frame the ball enters; staying inside does not score again.
func (g *Goal) Check(pos, half core.Vec2) (bool, uint) {
	overlapping := g.Overlaps(pos, half)
	entered := overlapping && !g.inside
	g.inside = overlapping
	if !entered {
		return false, g.count
	}

	g.count++
	for _, fn := range g.listeners {
		fn(g.count)
	}
	return true, g.count
}
