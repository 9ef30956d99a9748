package bounds

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// DefaultPadding is the margin added around the visible area when none is set.
const DefaultPadding = 0.5

// Recompute projects the screen corners of v at its near clip depth and
// expands the result by padding on every side. A degenerate viewport yields
// a zero-size rectangle at the projected screen origin.
func Recompute(v Viewport, padding float64) Rect {
	if v == nil {
		return Rect{}
	}
	w, h := v.ScreenSize()
	depth := v.NearClip()
	origin := v.ScreenToWorld(core.Vec2{}, depth)
	if !(w > 0) || !(h > 0) {
		return Rect{Min: origin, Max: origin}
	}

	corner := v.ScreenToWorld(core.Vec2{X: w, Y: h}, depth)
	r := Rect{
		Min: core.Vec2{X: math.Min(origin.X, corner.X), Y: math.Min(origin.Y, corner.Y)},
		Max: core.Vec2{X: math.Max(origin.X, corner.X), Y: math.Max(origin.Y, corner.Y)},
	}
	return r.Expand(padding)
}

// Tracker owns the current bounds rectangle. Call OnFrame once per frame
// before any consumer reads the rectangle.
type Tracker struct {
	viewport   Viewport
	padding    float64
	allowInset bool
	enabled    bool

	rect  Rect
	valid bool

	warnedNoViewport bool
	log              *log.Logger
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithViewport sets the viewport to track.
func WithViewport(v Viewport) TrackerOption {
	return func(t *Tracker) { t.viewport = v }
}

// WithPadding sets the margin around the visible area.
func WithPadding(p float64) TrackerOption {
	return func(t *Tracker) { t.padding = p }
}

// WithAllowInset permits negative padding.
func WithAllowInset(allow bool) TrackerOption {
	return func(t *Tracker) { t.allowInset = allow }
}

// WithLogger sets the diagnostics logger. Nil discards.
func WithLogger(l *log.Logger) TrackerOption {
	return func(t *Tracker) { t.log = l }
}

// NewTracker creates an enabled tracker. No rectangle is valid until the
// first OnFrame with a viewport.
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		padding: DefaultPadding,
		enabled: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = log.New(io.Discard)
	}
	t.padding = t.sanitizePadding(t.padding)
	return t
}

// SetViewport replaces the tracked viewport. Nil detaches it.
func (t *Tracker) SetViewport(v Viewport) {
	t.viewport = v
	if v != nil {
		t.warnedNoViewport = false
	}
}

// SetPadding changes the margin used from the next OnFrame on.
func (t *Tracker) SetPadding(p float64) {
	t.padding = t.sanitizePadding(p)
}

// Padding returns the effective padding.
func (t *Tracker) Padding() float64 {
	return t.padding
}

// SetEnabled turns clamping on or off. The rectangle keeps updating.
func (t *Tracker) SetEnabled(enabled bool) {
	t.enabled = enabled
}

// Enabled reports whether bounds are enforced.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// Logger returns the tracker's logger.
func (t *Tracker) Logger() *log.Logger {
	return t.log
}

// OnFrame recomputes the rectangle from the current viewport. Without a
// viewport the last valid rectangle is kept.
func (t *Tracker) OnFrame() {
	if t.viewport == nil {
		if !t.warnedNoViewport {
			t.log.Warn("bounds: no viewport attached, keeping last rectangle", "valid", t.valid)
			t.warnedNoViewport = true
		}
		return
	}
	t.rect = Recompute(t.viewport, t.padding)
	t.valid = true
}

// Current returns the latest rectangle and whether one has been computed.
func (t *Tracker) Current() (Rect, bool) {
	return t.rect, t.valid
}

// Active reports whether consumers should constrain against the rectangle.
func (t *Tracker) Active() bool {
	return t.enabled && t.valid
}

// ClampToBounds returns p clamped into the rectangle. When disabled or
// before the first rectangle, p is returned unchanged.
func (t *Tracker) ClampToBounds(p core.Vec2) core.Vec2 {
	if !t.Active() {
		return p
	}
	return t.rect.ClampPoint(p)
}

// IsWithinBounds reports whether p is inside the rectangle. Before the first
// rectangle every point is considered inside.
func (t *Tracker) IsWithinBounds(p core.Vec2) bool {
	if !t.valid {
		return true
	}
	return t.rect.Contains(p)
}

func (t *Tracker) sanitizePadding(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		t.log.Warn("bounds: padding is not finite, using 0", "padding", p)
		return 0
	}
	if p < 0 && !t.allowInset {
		t.log.Warn("bounds: negative padding needs allow_inset, using 0", "padding", p)
		return 0
	}
	return p
}
