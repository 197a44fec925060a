package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cuboidviz/internal/viewer/control"
)

// pollEvents drains the SDL queue into control events.
func pollEvents(out []control.Event) []control.Event {
	out = out[:0]
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			out = append(out, control.Event{Type: control.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				out = append(out, control.Event{
					Type:   control.EventResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				out = append(out, control.Event{Type: control.EventKeyDown, Key: mapKey(e.Keysym.Sym)})
			}

		case *sdl.MouseButtonEvent:
			ev := control.Event{Type: control.EventMouseUp, Left: e.Button == sdl.BUTTON_LEFT}
			if e.State == sdl.PRESSED {
				ev.Type = control.EventMouseDown
			}
			out = append(out, ev)

		case *sdl.MouseMotionEvent:
			out = append(out, control.Event{
				Type: control.EventMouseMove,
				DX:   float64(e.XRel),
				DY:   float64(e.YRel),
			})

		case *sdl.MouseWheelEvent:
			out = append(out, control.Event{Type: control.EventWheel, Wheel: float64(e.Y)})
		}
	}
	return out
}

func mapKey(k sdl.Keycode) control.Key {
	switch k {
	case sdl.K_ESCAPE:
		return control.KeyEscape
	case sdl.K_q:
		return control.KeyQ
	case sdl.K_s:
		return control.KeyS
	case sdl.K_r:
		return control.KeyR
	case sdl.K_p:
		return control.KeyP
	case sdl.K_LEFT:
		return control.KeyLeft
	case sdl.K_RIGHT:
		return control.KeyRight
	case sdl.K_UP:
		return control.KeyUp
	case sdl.K_DOWN:
		return control.KeyDown
	case sdl.K_PLUS, sdl.K_EQUALS, sdl.K_KP_PLUS:
		return control.KeyPlus
	case sdl.K_MINUS, sdl.K_KP_MINUS:
		return control.KeyMinus
	default:
		return control.KeyUnknown
	}
}
