package bounds

import (
	"testing"

	"github.com/Joyvent/com.joyvent.kinect-soccer/internal/core"
)

var sampleRects = []Rect{
	{Min: core.V(-5, -3), Max: core.V(5, 3)},
	{Min: core.V(0, 0), Max: core.V(1, 1)},
	{Min: core.V(2, 2), Max: core.V(2, 2)},
	{Min: core.V(-100, 7), Max: core.V(-99.5, 8)},
}

var samplePoints = []core.Vec2{
	core.V(0, 0), core.V(6, 0), core.V(-6, 4), core.V(0.5, 0.5),
	core.V(1e9, -1e9), core.V(-99.75, 7.5), core.V(2, 3),
}

func TestClampPointIsContained(t *testing.T) {
	for _, r := range sampleRects {
		for _, p := range samplePoints {
			c := r.ClampPoint(p)
			if !r.Contains(c) {
				t.Errorf("ClampPoint(%+v, %v) = %v is not contained", r, p, c)
			}
		}
	}
}

func TestClampPointIdempotent(t *testing.T) {
	for _, r := range sampleRects {
		for _, p := range samplePoints {
			once := r.ClampPoint(p)
			if twice := r.ClampPoint(once); twice != once {
				t.Errorf("ClampPoint not idempotent for %+v, %v: %v then %v", r, p, once, twice)
			}
		}
	}
}

func TestClampWithFootprint(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		p, half  core.Vec2
		expected core.Vec2
	}{
		{
			name:     "outside right",
			r:        Rect{Min: core.V(-5.5, -3.5), Max: core.V(5.5, 3.5)},
			p:        core.V(6, 0),
			half:     core.V(0.2, 0.2),
			expected: core.V(5.3, 0),
		},
		{
			name:     "inside untouched",
			r:        Rect{Min: core.V(-5, -3), Max: core.V(5, 3)},
			p:        core.V(1, -1),
			half:     core.V(0.5, 0.5),
			expected: core.V(1, -1),
		},
		{
			name:     "footprint wider than rect",
			r:        Rect{Min: core.V(0, 0), Max: core.V(1, 1)},
			p:        core.V(7, -3),
			half:     core.V(2, 2),
			expected: core.V(0.5, 0.5),
		},
		{
			name:     "only one axis too wide",
			r:        Rect{Min: core.V(0, 0), Max: core.V(10, 1)},
			p:        core.V(12, 5),
			half:     core.V(1, 1),
			expected: core.V(9, 0.5),
		},
		{
			name:     "zero footprint equals ClampPoint",
			r:        Rect{Min: core.V(-1, -1), Max: core.V(1, 1)},
			p:        core.V(-3, 0.25),
			half:     core.V(0, 0),
			expected: core.V(-1, 0.25),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.ClampWithFootprint(tc.p, tc.half)
			if !nearVec(got, tc.expected) {
				t.Errorf("ClampWithFootprint() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsClosed(t *testing.T) {
	r := Rect{Min: core.V(0, 0), Max: core.V(1, 1)}
	for _, p := range []core.Vec2{core.V(0, 0), core.V(1, 1), core.V(0, 1), core.V(0.5, 0)} {
		if !r.Contains(p) {
			t.Errorf("Contains(%v) should be true on the edge", p)
		}
	}
	if r.Contains(core.V(1.0000001, 0.5)) {
		t.Error("point just outside should not be contained")
	}
}

func TestRectMetrics(t *testing.T) {
	r := Rect{Min: core.V(-5, -3), Max: core.V(5, 3)}
	if c := r.Center(); !c.IsZero() {
		t.Errorf("Center() = %v, expected origin", c)
	}
	if s := r.Size(); s != core.V(10, 6) {
		t.Errorf("Size() = %v, expected (10, 6)", s)
	}
	if r.Area() != 60 {
		t.Errorf("Area() = %f, expected 60", r.Area())
	}
	if r.Empty() {
		t.Error("rect should not be empty")
	}
}
