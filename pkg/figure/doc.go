// Package figure is a small 3D plotting scene: a Figure owns one Axes3D that
// records lines, markers, labels and parametric surfaces in data
// coordinates, and Draw projects the scene onto any Canvas implementation.
//
// There is no implicit current figure. Callers create a Figure, pass it to
// whatever populates it, and hand it to a backend (see the raster and svg
// subpackages) to produce output.
package figure
