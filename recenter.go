package displace

import "github.com/tphakala/go-displace/internal/mathutil"

// Fold returns the position of t inside its sub-tile, measured from the
// sub-tile's lower half-way mark: (tileSize·t − ½) mod 1.
func Fold(t, tileSize float64) float64 {
	return mathutil.Mod1(tileSize*t - half)
}

// Recentered snaps t to the nearest lattice point k/tileSize. Vertices that
// share a sub-tile get the same stencil centre, so neighbouring triangles
// sample identical neighbours and the displaced surface has no cracks.
//
// Recentered is idempotent. tileSize must be non-zero, otherwise the result
// is NaN or ±Inf.
func Recentered(t, tileSize float64) float64 {
	return t + (half-Fold(t, tileSize))/tileSize
}
