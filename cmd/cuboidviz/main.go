// Command cuboidviz draws an axis-aligned cuboid together with its
// minimal-volume circumscribing ellipsoid.
//
//	cuboidviz -a 10 -b 50 -c 1.5 -annotate -out flat.svg
//	cuboidviz -show
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cuboidviz/internal/config"
	"github.com/Faultbox/cuboidviz/internal/export"
	"github.com/Faultbox/cuboidviz/internal/logger"
	"github.com/Faultbox/cuboidviz/internal/viewer"
	"github.com/Faultbox/cuboidviz/pkg/geometry"
	"github.com/Faultbox/cuboidviz/pkg/plot"
)

// Exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitDimension = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("cuboidviz", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Config error: %v\n", err)
		return exitFailure
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(stderr, "Logger error: %v\n", err)
		return exitFailure
	}
	defer logger.Sync()
	logger.Sugar.Debugf("config: %+v", cfg)

	if flags.ShouldSave() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(stderr, "Config error: %v\n", err)
			return exitFailure
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
	}

	if err := render(cfg); err != nil {
		fmt.Fprintf(stderr, "cuboidviz: %v\n", err)
		if errors.Is(err, geometry.ErrInvalidDimension) {
			return exitDimension
		}
		logger.Error("render failed", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

func render(cfg *config.Config) error {
	opts, err := cfg.PlotOptions()
	if err != nil {
		return err
	}
	fig, err := cfg.NewFigure()
	if err != nil {
		return err
	}

	c := cfg.Cuboid
	if err := plot.Render(fig, c.A, c.B, c.C, c.Annotate, opts); err != nil {
		return err
	}
	logger.Info("cuboid rendered",
		zap.Float64("a", c.A), zap.Float64("b", c.B), zap.Float64("c", c.C),
		zap.Float64("rx", geometry.K*c.A), zap.Float64("ry", geometry.K*c.B), zap.Float64("rz", geometry.K*c.C))

	path := cfg.OutputPath()
	format, err := export.FormatFromPath(path, cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := export.WriteFigure(path, fig, format); err != nil {
		return err
	}

	if cfg.Output.STL != "" {
		if err := export.WriteEllipsoidSTL(cfg.Output.STL, geometry.Cuboid{A: c.A, B: c.B, C: c.C}, cfg.Mesh.Cells); err != nil {
			return err
		}
	}

	if cfg.Output.Show {
		return viewer.Show(fig, viewer.Options{
			SnapshotDir:    cfg.Output.SnapshotDir,
			SnapshotFormat: format,
		})
	}
	return nil
}
