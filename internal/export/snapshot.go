package export

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"
)

// Snapshotter saves viewer frames under timestamped file names.
type Snapshotter struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewSnapshotter creates a snapshot writer for dir. Files are named
// <prefix>_<timestamp>.<format>; format is png or bmp.
func NewSnapshotter(outputDir, prefix, format string) *Snapshotter {
	if format != "bmp" {
		format = "png"
	}
	return &Snapshotter{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// GenerateFilename returns the name the next snapshot would get.
func (s *Snapshotter) GenerateFilename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, s.format)
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}
	return filename
}

// Capture writes img and returns its path. A failed capture leaves no file.
func (s *Snapshotter) Capture(img image.Image) (path string, err error) {
	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := s.GenerateFilename()
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", filename, cerr)
		}
		if err != nil {
			os.Remove(filename)
			path = ""
		}
	}()

	w := bufio.NewWriter(file)
	if err := EncodeImage(w, img, s.format); err != nil {
		return "", err
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return filename, nil
}
