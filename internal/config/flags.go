package config

import "flag"

// Flags holds the command-line overrides registered on a FlagSet. Only
// flags that were given explicitly override the file and defaults.
type Flags struct {
	fs *flag.FlagSet

	Config     *string
	A, B, C    *float64
	Annotate   *bool
	Out        *string
	Format     *string
	Show       *bool
	STL        *string
	Elevation  *float64
	Azimuth    *float64
	Projection *string
	Width      *int
	Height     *int
	Debug      *bool
	SaveConfig *bool
}

// RegisterFlags defines the cuboidviz flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	return &Flags{
		fs:         fs,
		Config:     fs.String("config", "", "Path to config file"),
		A:          fs.Float64("a", d.Cuboid.A, "Cuboid side along X"),
		B:          fs.Float64("b", d.Cuboid.B, "Cuboid side along Y"),
		C:          fs.Float64("c", d.Cuboid.C, "Cuboid side along Z"),
		Annotate:   fs.Bool("annotate", false, "Mark and number the vertices"),
		Out:        fs.String("out", "", "Output image path (default cuboid_AxBxC.<format>)"),
		Format:     fs.String("format", d.Output.Format, "Output format: png, svg or bmp"),
		Show:       fs.Bool("show", false, "Open an interactive viewer window"),
		STL:        fs.String("stl", "", "Also write the ellipsoid mesh as STL to this path"),
		Elevation:  fs.Float64("elev", d.Camera.Elevation, "Camera elevation in degrees"),
		Azimuth:    fs.Float64("azim", d.Camera.Azimuth, "Camera azimuth in degrees"),
		Projection: fs.String("projection", d.Camera.Projection, "Projection: ortho or persp"),
		Width:      fs.Int("width", d.Figure.Width, "Image width in pixels"),
		Height:     fs.Int("height", d.Figure.Height, "Image height in pixels"),
		Debug:      fs.Bool("debug", false, "Enable debug logging"),
		SaveConfig: fs.Bool("save-config", false, "Save the effective config to the user config dir"),
	}
}

// ConfigPath returns the explicit config path given with -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.Config
}

// ShouldSave reports whether -save-config was given.
func (f *Flags) ShouldSave() bool {
	return f != nil && *f.SaveConfig
}

// apply copies explicitly set flags into cfg.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "a":
			cfg.Cuboid.A = *f.A
		case "b":
			cfg.Cuboid.B = *f.B
		case "c":
			cfg.Cuboid.C = *f.C
		case "annotate":
			cfg.Cuboid.Annotate = *f.Annotate
		case "out":
			cfg.Output.Path = *f.Out
		case "format":
			cfg.Output.Format = *f.Format
		case "show":
			cfg.Output.Show = *f.Show
		case "stl":
			cfg.Output.STL = *f.STL
		case "elev":
			cfg.Camera.Elevation = *f.Elevation
		case "azim":
			cfg.Camera.Azimuth = *f.Azimuth
		case "projection":
			cfg.Camera.Projection = *f.Projection
		case "width":
			cfg.Figure.Width = *f.Width
		case "height":
			cfg.Figure.Height = *f.Height
		case "debug":
			if *f.Debug {
				cfg.Logging.Level = "debug"
			}
		}
	})
}
