// Package control turns viewer input into camera changes.
package control

import "github.com/Faultbox/cuboidviz/pkg/figure"

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventWheel
	EventKeyDown
	EventResize
)

// Key is a keyboard key the viewer reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyS
	KeyR
	KeyP
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPlus
	KeyMinus
)

// Event is a backend-independent input event.
type Event struct {
	Type   EventType
	Key    Key
	DX, DY float64 // mouse motion in pixels
	Wheel  float64 // wheel steps, positive away from the user
	Left   bool    // left button for mouse down/up
	Width  int
	Height int
}

// Action is what the viewer loop should do after an event.
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionSnapshot
	ActionResize
	ActionQuit
)

// Controller orbits and zooms a figure camera.
type Controller struct {
	// Degrees of rotation per pixel dragged.
	DragSensitivity float64
	// Zoom factor per wheel step.
	ZoomStep float64
	// Degrees per arrow key press.
	KeyStep float64

	initial  figure.Camera
	dragging bool
}

// New creates a controller that resets to cam.
func New(cam figure.Camera) *Controller {
	return &Controller{
		DragSensitivity: 0.4,
		ZoomStep:        1.1,
		KeyStep:         5,
		initial:         cam,
	}
}

// Dragging reports whether the left button is held.
func (c *Controller) Dragging() bool {
	return c.dragging
}

// Handle applies ev to cam and returns the follow-up action.
func (c *Controller) Handle(cam *figure.Camera, ev Event) Action {
	switch ev.Type {
	case EventQuit:
		return ActionQuit

	case EventResize:
		return ActionResize

	case EventMouseDown:
		if ev.Left {
			c.dragging = true
		}
	case EventMouseUp:
		if ev.Left {
			c.dragging = false
		}

	case EventMouseMove:
		if !c.dragging || (ev.DX == 0 && ev.DY == 0) {
			return ActionNone
		}
		// Dragging right turns the scene right; dragging down tilts the
		// view from above.
		cam.Orbit(-ev.DX*c.DragSensitivity, ev.DY*c.DragSensitivity)
		return ActionRedraw

	case EventWheel:
		if ev.Wheel == 0 {
			return ActionNone
		}
		c.zoom(cam, ev.Wheel)
		return ActionRedraw

	case EventKeyDown:
		return c.key(cam, ev.Key)
	}
	return ActionNone
}

func (c *Controller) key(cam *figure.Camera, k Key) Action {
	switch k {
	case KeyEscape, KeyQ:
		return ActionQuit
	case KeyS:
		return ActionSnapshot
	case KeyR:
		*cam = c.initial
	case KeyP:
		if cam.Projection == figure.Orthographic {
			cam.Projection = figure.Perspective
		} else {
			cam.Projection = figure.Orthographic
		}
	case KeyLeft:
		cam.Orbit(-c.KeyStep, 0)
	case KeyRight:
		cam.Orbit(c.KeyStep, 0)
	case KeyUp:
		cam.Orbit(0, c.KeyStep)
	case KeyDown:
		cam.Orbit(0, -c.KeyStep)
	case KeyPlus:
		c.zoom(cam, 1)
	case KeyMinus:
		c.zoom(cam, -1)
	default:
		return ActionNone
	}
	return ActionRedraw
}

func (c *Controller) zoom(cam *figure.Camera, steps float64) {
	f := c.ZoomStep
	if steps < 0 {
		f = 1 / f
		steps = -steps
	}
	for ; steps >= 1; steps-- {
		cam.ZoomBy(f)
	}
}
