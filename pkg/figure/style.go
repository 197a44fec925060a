package figure

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Common colors.
var (
	Black = color.NRGBA{A: 0xff}
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red   = color.NRGBA{R: 0xff, A: 0xff}
	Blue  = color.NRGBA{B: 0xff, A: 0xff}
	// SurfaceBlue is the default surface face color (#1f77b4).
	SurfaceBlue = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
)

// LineStyle describes a stroked polyline.
type LineStyle struct {
	Color color.Color
	Width float64 // points
}

// MarkerStyle describes a filled circular marker. Size is the marker area in
// points², the same convention as a scatter plot's s argument.
type MarkerStyle struct {
	Color color.Color
	Size  float64
}

// TextStyle describes a text label.
type TextStyle struct {
	Color color.Color
	Size  float64 // points
}

// SurfaceStyle describes how a parametric surface is tessellated and filled.
type SurfaceStyle struct {
	Color     color.Color
	Alpha     float64 // face opacity in [0, 1]
	RStride   int     // rows skipped between patch boundaries
	CStride   int     // columns skipped between patch boundaries
	EdgeWidth float64 // 0 draws no patch edges
	EdgeColor color.Color
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// withAlpha returns c with its opacity multiplied by alpha.
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*clamp01(alpha) + 0.5)
	return n
}

// shade scales the color channels by k, keeping alpha.
func shade(c color.NRGBA, k float64) color.NRGBA {
	k = clamp01(k)
	return color.NRGBA{
		R: uint8(float64(c.R)*k + 0.5),
		G: uint8(float64(c.G)*k + 0.5),
		B: uint8(float64(c.B)*k + 0.5),
		A: c.A,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
