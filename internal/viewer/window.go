package viewer

import (
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cuboidviz/internal/logger"
)

func init() {
	// SDL video calls must be made from the main thread.
	runtime.LockOSThread()
}

// window is an SDL window that shows RGBA frames through a streaming
// texture.
type window struct {
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	width     int
	height    int
}

func newWindow(title string, width, height int) (*window, error) {
	logger.Debug("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	w := &window{}
	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(width),
		int32(height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE),
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		w.close()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.resize(width, height); err != nil {
		w.close()
		return nil, err
	}

	logger.Info("window created",
		zap.String("title", title),
		zap.Int("width", width),
		zap.Int("height", height))
	return w, nil
}

// resize recreates the frame texture for a new size.
func (w *window) resize(width, height int) error {
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}
	tex, err := w.renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}
	w.texture = tex
	w.width, w.height = width, height
	return nil
}

// present uploads img and shows it. img must match the texture size.
func (w *window) present(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != w.width || b.Dy() != w.height {
		return fmt.Errorf("frame %dx%d does not match window %dx%d", b.Dx(), b.Dy(), w.width, w.height)
	}

	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("SDL_LockTexture failed: %w", err)
	}
	rowSize := w.width * 4
	for y := 0; y < w.height; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+rowSize]
		copy(pixels[y*pitch:y*pitch+rowSize], src)
	}
	w.texture.Unlock()

	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("SDL_RenderClear failed: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *window) setTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

func (w *window) close() {
	logger.Debug("closing window")
	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}
	sdl.Quit()
}
