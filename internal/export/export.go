// Package export writes rendered figures and meshes to disk.
package export

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/Faultbox/cuboidviz/internal/logger"
	"github.com/Faultbox/cuboidviz/pkg/figure"
	"github.com/Faultbox/cuboidviz/pkg/figure/raster"
	"github.com/Faultbox/cuboidviz/pkg/figure/svg"
	"github.com/Faultbox/cuboidviz/pkg/geometry"
	"github.com/Faultbox/cuboidviz/pkg/kernel"
)

// FormatFromPath returns the image format implied by the file extension,
// or fallback when path has no extension. Any other extension is an error.
func FormatFromPath(path, fallback string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "png", "svg", "bmp":
		return ext, nil
	case "":
		return fallback, nil
	default:
		return "", fmt.Errorf("unsupported output extension %q in %s (want png, svg or bmp)", ext, path)
	}
}

// Encode renders fig in the given format to w.
func Encode(w io.Writer, fig *figure.Figure, format string) error {
	switch format {
	case "svg":
		return svg.Render(w, fig)
	case "png", "bmp":
		img, err := raster.Render(fig)
		if err != nil {
			return err
		}
		return EncodeImage(w, img, format)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// EncodeImage encodes a raster image as png or bmp.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case "bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("encoding BMP: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	return nil
}

// WriteFigure renders fig to path. The file is only left behind when
// rendering succeeds.
func WriteFigure(path string, fig *figure.Figure, format string) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	w := bufio.NewWriter(file)
	if err := Encode(w, fig, format); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Info("figure written",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("width", fig.Width),
		zap.Int("height", fig.Height))
	return nil
}

// WriteEllipsoidSTL tessellates the ellipsoid circumscribing c and writes it
// as binary STL.
func WriteEllipsoidSTL(path string, c geometry.Cuboid, cells int) error {
	solid, err := kernel.NewEllipsoid(geometry.Circumscribe(c))
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	if err := solid.SaveSTL(path, cells); err != nil {
		return err
	}
	logger.Info("mesh written", zap.String("path", path), zap.Int("cells", cells))
	return nil
}
