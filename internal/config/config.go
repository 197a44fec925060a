// Package config handles cuboidviz configuration loading and management.
package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/Faultbox/cuboidviz/internal/logger"
	"github.com/Faultbox/cuboidviz/pkg/figure"
	"github.com/Faultbox/cuboidviz/pkg/geometry"
	"github.com/Faultbox/cuboidviz/pkg/kernel"
	"github.com/Faultbox/cuboidviz/pkg/plot"
)

// Config holds all settings.
type Config struct {
	Cuboid  CuboidConfig  `yaml:"cuboid"`
	Figure  FigureConfig  `yaml:"figure"`
	Camera  CameraConfig  `yaml:"camera"`
	Style   StyleConfig   `yaml:"style"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CuboidConfig holds the side lengths to draw.
type CuboidConfig struct {
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`
	C        float64 `yaml:"c"`
	Annotate bool    `yaml:"annotate"`
}

// FigureConfig holds the output image geometry.
type FigureConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPI    float64 `yaml:"dpi"`
}

// CameraConfig holds the initial viewpoint.
type CameraConfig struct {
	Elevation  float64 `yaml:"elevation"`
	Azimuth    float64 `yaml:"azimuth"`
	Projection string  `yaml:"projection"` // ortho or persp
	Zoom       float64 `yaml:"zoom"`
}

// StyleConfig holds colors (hex) and sizes (points).
type StyleConfig struct {
	Background   string  `yaml:"background"`
	EdgeColor    string  `yaml:"edge_color"`
	EdgeWidth    float64 `yaml:"edge_width"`
	MarkerColor  string  `yaml:"marker_color"`
	MarkerSize   float64 `yaml:"marker_size"`
	LabelColor   string  `yaml:"label_color"`
	LabelSize    float64 `yaml:"label_size"`
	SurfaceColor string  `yaml:"surface_color"`
	SurfaceAlpha float64 `yaml:"surface_alpha"`
}

// MeshConfig holds surface sampling and tessellation settings.
type MeshConfig struct {
	Samples int `yaml:"samples"`
	Stride  int `yaml:"stride"`
	Cells   int `yaml:"cells"` // marching cubes resolution for STL export
}

// OutputConfig holds where results go.
type OutputConfig struct {
	Path        string `yaml:"path"`   // empty derives cuboid_AxBxC.<format>
	Format      string `yaml:"format"` // png, svg or bmp
	Show        bool   `yaml:"show"`
	STL         string `yaml:"stl"`
	SnapshotDir string `yaml:"snapshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the default 3x4x5 example.
func Default() *Config {
	return &Config{
		Cuboid: CuboidConfig{A: 3, B: 4, C: 5},
		Figure: FigureConfig{
			Width:  figure.DefaultWidth,
			Height: figure.DefaultHeight,
			DPI:    figure.DefaultDPI,
		},
		Camera: CameraConfig{
			Elevation:  30,
			Azimuth:    -60,
			Projection: "ortho",
			Zoom:       1,
		},
		Style: StyleConfig{
			Background:   "#ffffff",
			EdgeColor:    "#000000",
			EdgeWidth:    1.5,
			MarkerColor:  "#ff0000",
			MarkerSize:   20,
			LabelColor:   "#0000ff",
			LabelSize:    10,
			SurfaceColor: "#1f77b4",
			SurfaceAlpha: 0.3,
		},
		Mesh: MeshConfig{
			Samples: geometry.DefaultSamples,
			Stride:  4,
			Cells:   kernel.DefaultMeshCells,
		},
		Output: OutputConfig{
			Format:      "png",
			SnapshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Formats lists the supported image formats.
var Formats = []string{"png", "svg", "bmp"}

// Validate reports the first unusable setting. Side lengths are left to
// plot.Render so that they surface as geometry.ErrInvalidDimension.
func (c *Config) Validate() error {
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return fmt.Errorf("figure size %dx%d must be positive", c.Figure.Width, c.Figure.Height)
	}
	if c.Figure.DPI <= 0 {
		return fmt.Errorf("figure dpi %v must be positive", c.Figure.DPI)
	}
	if _, err := figure.ParseProjection(c.Camera.Projection); err != nil {
		return err
	}
	if c.Camera.Zoom < figure.MinZoom || c.Camera.Zoom > figure.MaxZoom {
		return fmt.Errorf("camera zoom %v outside [%v, %v]", c.Camera.Zoom, figure.MinZoom, figure.MaxZoom)
	}
	if _, err := c.PlotOptions(); err != nil {
		return err
	}
	if !(c.Style.SurfaceAlpha > 0 && c.Style.SurfaceAlpha <= 1) {
		return fmt.Errorf("surface alpha %v outside (0, 1]", c.Style.SurfaceAlpha)
	}
	if c.Mesh.Samples < 2 {
		return fmt.Errorf("mesh samples %d: need at least 2", c.Mesh.Samples)
	}
	if c.Mesh.Stride < 1 {
		return fmt.Errorf("mesh stride %d: need at least 1", c.Mesh.Stride)
	}
	if c.Mesh.Cells < 2 {
		return fmt.Errorf("mesh cells %d: need at least 2", c.Mesh.Cells)
	}
	if !validFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// OutputPath returns the configured output path, or cuboid_AxBxC.<format>.
func (c *Config) OutputPath() string {
	if c.Output.Path != "" {
		return c.Output.Path
	}
	return fmt.Sprintf("cuboid_%sx%sx%s.%s", fmtSide(c.Cuboid.A), fmtSide(c.Cuboid.B), fmtSide(c.Cuboid.C), c.Output.Format)
}

func fmtSide(v float64) string {
	return strings.ReplaceAll(fmt.Sprintf("%g", v), "+", "")
}

// PlotOptions converts the style and mesh sections.
func (c *Config) PlotOptions() (plot.Options, error) {
	opts := plot.Options{
		EdgeWidth:    c.Style.EdgeWidth,
		MarkerSize:   c.Style.MarkerSize,
		LabelSize:    c.Style.LabelSize,
		SurfaceAlpha: c.Style.SurfaceAlpha,
		Samples:      c.Mesh.Samples,
		Stride:       c.Mesh.Stride,
	}
	colors := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"edge_color", c.Style.EdgeColor, &opts.EdgeColor},
		{"marker_color", c.Style.MarkerColor, &opts.MarkerColor},
		{"label_color", c.Style.LabelColor, &opts.LabelColor},
		{"surface_color", c.Style.SurfaceColor, &opts.SurfaceColor},
	}
	for _, col := range colors {
		if col.hex == "" {
			continue
		}
		v, err := figure.ParseHexColor(col.hex)
		if err != nil {
			return plot.Options{}, fmt.Errorf("style.%s: %w", col.name, err)
		}
		*col.dst = v
	}
	return opts, nil
}

// NewFigure creates an empty figure with the configured size, background
// and camera.
func (c *Config) NewFigure() (*figure.Figure, error) {
	proj, err := figure.ParseProjection(c.Camera.Projection)
	if err != nil {
		return nil, err
	}
	fig := figure.New(c.Figure.Width, c.Figure.Height)
	if c.Figure.DPI > 0 {
		fig.DPI = c.Figure.DPI
	}
	if c.Style.Background != "" {
		bg, err := figure.ParseHexColor(c.Style.Background)
		if err != nil {
			return nil, fmt.Errorf("style.background: %w", err)
		}
		fig.Background = bg
	}
	fig.Camera.Elevation = c.Camera.Elevation
	fig.Camera.Azimuth = c.Camera.Azimuth
	fig.Camera.Projection = proj
	if c.Camera.Zoom > 0 {
		fig.Camera.Zoom = c.Camera.Zoom
	}
	return fig, nil
}
