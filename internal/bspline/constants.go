package bspline

// Order is the number of control points per axis of a quadratic span.
const Order = 3

// Quadratic B-spline basis matrix entries, already scaled by ½.
const (
	blendHalf    = 0.5
	blendOne     = 1.0
	blendNegOne  = -1.0
	blendZero    = 0.0
	derivSquared = 2.0 // d/dt of t²
)
