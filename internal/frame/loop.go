// Package frame drives per-frame and per-physics-step hooks in a fixed order.
package frame

// FrameHook runs once per rendered frame.
type FrameHook interface {
	OnFrame()
}

// PhysicsHook runs once per physics step with the step duration in seconds.
type PhysicsHook interface {
	OnPhysicsStep(dt float64)
}

// FrameFunc adapts a function to FrameHook.
type FrameFunc func()

// OnFrame implements FrameHook.
func (f FrameFunc) OnFrame() { f() }

// PhysicsFunc adapts a function to PhysicsHook.
type PhysicsFunc func(dt float64)

// OnPhysicsStep implements PhysicsHook.
func (f PhysicsFunc) OnPhysicsStep(dt float64) { f(dt) }

// Loop calls its hooks in registration order. It is not safe for
// concurrent use; the host owns the only goroutine that ticks it.
type Loop struct {
	substeps int
	frames   []FrameHook
	physics  []PhysicsHook
	ticks    int
}

// NewLoop creates a loop that splits each tick into substeps physics steps.
// Values below 1 mean one step.
func NewLoop(substeps int) *Loop {
	if substeps < 1 {
		substeps = 1
	}
	return &Loop{substeps: substeps}
}

// AddFrame appends frame hooks.
func (l *Loop) AddFrame(hooks ...FrameHook) {
	l.frames = append(l.frames, hooks...)
}

// AddPhysics appends physics hooks.
func (l *Loop) AddPhysics(hooks ...PhysicsHook) {
	l.physics = append(l.physics, hooks...)
}

// Substeps returns the number of physics steps per tick.
func (l *Loop) Substeps() int {
	return l.substeps
}

// Ticks returns how many times Tick has run.
func (l *Loop) Ticks() int {
	return l.ticks
}

// Tick advances one frame of dt seconds: all physics steps first, then the
// frame hooks once.
func (l *Loop) Tick(dt float64) {
	step := dt / float64(l.substeps)
	for i := 0; i < l.substeps; i++ {
		for _, h := range l.physics {
			h.OnPhysicsStep(step)
		}
	}
	for _, h := range l.frames {
		h.OnFrame()
	}
	l.ticks++
}
