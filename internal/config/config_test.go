package config

import (
	"flag"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/cuboidviz/pkg/figure"
)

func newFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return f
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Cuboid.A != 3 || cfg.Cuboid.B != 4 || cfg.Cuboid.C != 5 {
		t.Errorf("expected 3x4x5 cuboid, got %+v", cfg.Cuboid)
	}
	if cfg.Cuboid.Annotate {
		t.Error("expected annotate to be false by default")
	}
	if cfg.Figure.Width != 800 || cfg.Figure.Height != 800 {
		t.Errorf("expected 800x800 figure, got %dx%d", cfg.Figure.Width, cfg.Figure.Height)
	}
	if cfg.Camera.Elevation != 30 || cfg.Camera.Azimuth != -60 {
		t.Errorf("unexpected camera defaults: %+v", cfg.Camera)
	}
	if cfg.Mesh.Samples != 80 || cfg.Mesh.Stride != 4 {
		t.Errorf("unexpected mesh defaults: %+v", cfg.Mesh)
	}
	if cfg.Style.SurfaceAlpha != 0.3 {
		t.Errorf("expected surface alpha 0.3, got %v", cfg.Style.SurfaceAlpha)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if got := cfg.OutputPath(); got != "cuboid_3x4x5.png" {
		t.Errorf("expected output cuboid_3x4x5.png, got %s", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cuboidviz.yaml")

	yamlContent := `
cuboid:
  a: 10
  b: 50
  c: 1.5
  annotate: true

figure:
  width: 1024
  height: 768

camera:
  elevation: 20
  projection: persp

style:
  surface_color: "#ff8800"

output:
  format: svg

logging:
  level: "debug"
  log_file: "cuboidviz.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Cuboid.A != 10 || cfg.Cuboid.B != 50 || cfg.Cuboid.C != 1.5 || !cfg.Cuboid.Annotate {
		t.Errorf("unexpected cuboid: %+v", cfg.Cuboid)
	}
	if cfg.Figure.Width != 1024 || cfg.Figure.Height != 768 {
		t.Errorf("unexpected figure: %+v", cfg.Figure)
	}
	if cfg.Camera.Elevation != 20 || cfg.Camera.Azimuth != -60 {
		t.Errorf("expected elevation from file and default azimuth, got %+v", cfg.Camera)
	}
	if cfg.Style.EdgeColor != "#000000" {
		t.Errorf("unset style key lost its default: %q", cfg.Style.EdgeColor)
	}
	if got := cfg.OutputPath(); got != "cuboid_10x50x1.5.svg" {
		t.Errorf("expected cuboid_10x50x1.5.svg, got %s", got)
	}
	if cfg.Logging.LogFile != "cuboidviz.log" {
		t.Errorf("expected log file 'cuboidviz.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	for name, content := range map[string]string{
		"syntax.yaml":  "figure:\n  width: not a number\n  invalid syntax here\n",
		"unknown.yaml": "figure:\n  widht: 100\n",
	} {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		if err := loadFromFile(Default(), path); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Errorf("empty file: %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/cuboidviz.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, FileName), []byte("figure:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find cuboidviz.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
		},
		{
			name: "dimensions",
			args: []string{"-a", "2", "-b", "2", "-c", "2", "-annotate"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Cuboid != (CuboidConfig{A: 2, B: 2, C: 2, Annotate: true}) {
					t.Errorf("unexpected cuboid %+v", cfg.Cuboid)
				}
			},
		},
		{
			name: "output",
			args: []string{"-out", "x.svg", "-format", "svg", "-stl", "e.stl", "-show"},
			verify: func(t *testing.T, cfg *Config) {
				o := cfg.Output
				if o.Path != "x.svg" || o.Format != "svg" || o.STL != "e.stl" || !o.Show {
					t.Errorf("unexpected output %+v", o)
				}
			},
		},
		{
			name: "camera and size",
			args: []string{"-elev", "10", "-azim", "45", "-projection", "persp", "-width", "640", "-height", "480"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Camera.Elevation != 10 || cfg.Camera.Azimuth != 45 || cfg.Camera.Projection != "persp" {
					t.Errorf("unexpected camera %+v", cfg.Camera)
				}
				if cfg.Figure.Width != 640 || cfg.Figure.Height != 480 {
					t.Errorf("unexpected figure %+v", cfg.Figure)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			newFlags(t, tt.args...).apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	cfg := Default()
	cfg.Cuboid.A = 7
	newFlags(t, "-b", "9").apply(cfg)
	if cfg.Cuboid.A != 7 || cfg.Cuboid.B != 9 {
		t.Errorf("unexpected cuboid %+v", cfg.Cuboid)
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "cuboidviz.yaml")
	yamlContent := `
figure:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(newFlags(t, "-config", configPath, "-width", "1920"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Figure.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Figure.Width)
	}
	if cfg.Figure.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Figure.Height)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	if _, err := Load(newFlags(t, "-config", "/nonexistent/cuboidviz.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(path, []byte("output:\n  format: gif\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(newFlags(t, "-config", path)); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Figure.Width = 0 }},
		{"bad projection", func(c *Config) { c.Camera.Projection = "fisheye" }},
		{"zoom", func(c *Config) { c.Camera.Zoom = 10 }},
		{"bad color", func(c *Config) { c.Style.EdgeColor = "#12" }},
		{"alpha", func(c *Config) { c.Style.SurfaceAlpha = 1.5 }},
		{"zero alpha", func(c *Config) { c.Style.SurfaceAlpha = 0 }},
		{"samples", func(c *Config) { c.Mesh.Samples = 1 }},
		{"stride", func(c *Config) { c.Mesh.Stride = 0 }},
		{"cells", func(c *Config) { c.Mesh.Cells = 1 }},
		{"format", func(c *Config) { c.Output.Format = "jpeg" }},
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPlotOptions(t *testing.T) {
	cfg := Default()
	cfg.Style.LabelColor = "#00ff00"
	cfg.Mesh.Samples = 40
	opts, err := cfg.PlotOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.LabelColor != (color.NRGBA{G: 0xff, A: 0xff}) {
		t.Errorf("label color = %v", opts.LabelColor)
	}
	if opts.SurfaceColor != figure.SurfaceBlue {
		t.Errorf("surface color = %v", opts.SurfaceColor)
	}
	if opts.Samples != 40 || opts.Stride != 4 || opts.EdgeWidth != 1.5 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestNewFigure(t *testing.T) {
	cfg := Default()
	cfg.Camera.Projection = "persp"
	cfg.Camera.Elevation = 15
	cfg.Figure.Width = 320
	fig, err := cfg.NewFigure()
	if err != nil {
		t.Fatal(err)
	}
	if fig.Width != 320 || fig.Height != 800 {
		t.Errorf("unexpected size %dx%d", fig.Width, fig.Height)
	}
	if fig.Camera.Projection != figure.Perspective || fig.Camera.Elevation != 15 {
		t.Errorf("unexpected camera %+v", fig.Camera)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg := Default()
	cfg.Cuboid.A = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Cuboid.A != 12 {
		t.Errorf("expected a=12 after reload, got %v", loaded.Cuboid.A)
	}
}
