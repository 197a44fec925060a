// Package geometry computes an axis-aligned cuboid, its eight vertices and
// twelve edges, and the minimal-volume axis-aligned ellipsoid that passes
// through all eight vertices.
//
// For a cuboid with side lengths a, b, c centered at the origin, the
// circumscribing ellipsoid of least volume has semi-axes K·a, K·b, K·c
// with K = √3/2: maximising the product of the semi-axes subject to the
// vertex (a/2, b/2, c/2) lying on the surface gives each term of the
// ellipsoid equation an equal share of 1/3.
package geometry
