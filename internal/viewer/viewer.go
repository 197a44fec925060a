// Package viewer shows a figure in an SDL2 window. Dragging with the left
// button orbits the camera, the wheel zooms, S saves a snapshot, R resets
// the view, P toggles the projection and Esc or Q closes the window.
package viewer

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cuboidviz/internal/export"
	"github.com/Faultbox/cuboidviz/internal/logger"
	"github.com/Faultbox/cuboidviz/internal/viewer/control"
	"github.com/Faultbox/cuboidviz/pkg/figure"
	"github.com/Faultbox/cuboidviz/pkg/figure/raster"
)

// Options configures the viewer window.
type Options struct {
	Title          string
	SnapshotDir    string
	SnapshotFormat string // png or bmp
}

// frameDelay is the idle wait between event polls, in milliseconds.
const frameDelay = 16

// Show opens a window displaying fig and blocks until it is closed. The
// figure's camera and size follow the user's interaction. Must be called
// from the main goroutine.
func Show(fig *figure.Figure, opts Options) error {
	title := opts.Title
	if title == "" {
		title = fig.Axes().Title()
	}

	win, err := newWindow(title, fig.Width, fig.Height)
	if err != nil {
		return err
	}
	defer win.close()

	ctrl := control.New(fig.Camera)
	snaps := export.NewSnapshotter(opts.SnapshotDir, "cuboid", opts.SnapshotFormat)

	frame, err := raster.Render(fig)
	if err != nil {
		return err
	}
	if err := win.present(frame); err != nil {
		return err
	}

	var events []control.Event
	for {
		events = pollEvents(events)
		dirty := false
		for _, ev := range events {
			switch ctrl.Handle(&fig.Camera, ev) {
			case control.ActionQuit:
				return nil
			case control.ActionRedraw:
				dirty = true
			case control.ActionResize:
				if ev.Width <= 0 || ev.Height <= 0 {
					continue
				}
				fig.Width, fig.Height = ev.Width, ev.Height
				if err := win.resize(ev.Width, ev.Height); err != nil {
					return err
				}
				dirty = true
			case control.ActionSnapshot:
				path, err := snaps.Capture(frame)
				if err != nil {
					logger.Error("snapshot failed", zap.Error(err))
					continue
				}
				logger.Info("snapshot saved", zap.String("path", path))
				win.setTitle(fmt.Sprintf("%s (saved %s)", title, path))
			}
		}

		if dirty {
			frame, err = raster.Render(fig)
			if err != nil {
				return err
			}
			if err := win.present(frame); err != nil {
				return err
			}
			logger.Debug("redrawn",
				zap.Float64("elevation", fig.Camera.Elevation),
				zap.Float64("azimuth", fig.Camera.Azimuth),
				zap.Float64("zoom", fig.Camera.Zoom))
		}
		sdl.Delay(frameDelay)
	}
}
