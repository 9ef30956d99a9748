// Package bounds derives the world-space rectangle visible through a viewport
// and keeps entities inside it, either by clamping their position or by
// pushing them back with a spring force.
package bounds

import (
	"math"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

// Viewport maps host screen coordinates to world coordinates.
// It is owned by the presentation layer; the tracker only reads it.
type Viewport interface {
	// ScreenSize returns the drawable size in host units (cells or pixels).
	ScreenSize() (w, h float64)

	// NearClip returns the depth at which screen points are projected.
	NearClip() float64

	// ScreenToWorld projects a screen point at the given depth into world space.
	ScreenToWorld(screen core.Vec2, depth float64) core.Vec2
}

// OrthoCamera is an orthographic Viewport. Screen origin is the top-left
// corner with Y growing down; world Y grows up.
type OrthoCamera struct {
	Center  core.Vec2 // World point under the screen center
	ScreenW float64   // Screen width in host units
	ScreenH float64   // Screen height in host units
	UnitsX  float64   // Host units per world unit, horizontally
	UnitsY  float64   // Host units per world unit, vertically
	Near    float64   // Near clip depth
}

// NewOrthoCamera creates a camera centered on the world origin.
func NewOrthoCamera(screenW, screenH, unitsX, unitsY float64) *OrthoCamera {
	return &OrthoCamera{
		ScreenW: screenW,
		ScreenH: screenH,
		UnitsX:  unitsX,
		UnitsY:  unitsY,
		Near:    0.3,
	}
}

// Resize updates the screen size, keeping scale and center.
func (c *OrthoCamera) Resize(screenW, screenH float64) {
	c.ScreenW = screenW
	c.ScreenH = screenH
}

// ScreenSize implements Viewport.
func (c *OrthoCamera) ScreenSize() (float64, float64) {
	return c.ScreenW, c.ScreenH
}

// NearClip implements Viewport.
func (c *OrthoCamera) NearClip() float64 {
	return c.Near
}

// ScreenToWorld implements Viewport. Depth does not affect an
// orthographic projection.
func (c *OrthoCamera) ScreenToWorld(screen core.Vec2, _ float64) core.Vec2 {
	ux, uy := c.units()
	return core.Vec2{
		X: c.Center.X + (screen.X-c.ScreenW/2)/ux,
		Y: c.Center.Y - (screen.Y-c.ScreenH/2)/uy,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (c *OrthoCamera) WorldToScreen(world core.Vec2) core.Vec2 {
	ux, uy := c.units()
	return core.Vec2{
		X: (world.X-c.Center.X)*ux + c.ScreenW/2,
		Y: c.ScreenH/2 - (world.Y-c.Center.Y)*uy,
	}
}

// WorldToCell converts a world point to the integer cell that contains it.
func (c *OrthoCamera) WorldToCell(world core.Vec2) (int, int) {
	s := c.WorldToScreen(world)
	return int(math.Floor(s.X)), int(math.Floor(s.Y))
}

func (c *OrthoCamera) units() (float64, float64) {
	ux, uy := c.UnitsX, c.UnitsY
	if ux <= 0 {
		ux = 1
	}
	if uy <= 0 {
		uy = 1
	}
	return ux, uy
}
