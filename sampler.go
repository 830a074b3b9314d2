package displace

import (
	"math"

	"github.com/tphakala/go-displace/internal/mathutil"
)

// Sampler is a scalar field over the unit torus. Implementations must be
// periodic with period 1 in both u and v and must be pure.
type Sampler interface {
	Sample(u, v float64) float64
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func(u, v float64) float64

// Sample calls f(u, v).
func (f SamplerFunc) Sample(u, v float64) float64 {
	return f(u, v)
}

// TentSampler is a pyramid with its apex at the centre of every unit cell:
//
//	A·(½ − |u − ½|)·(½ − |v − ½|)
//
// It vanishes on cell edges and peaks at A/4. Use NewPeakTent for a tent
// whose apex is a given height.
type TentSampler struct {
	Amplitude float64
}

// NewPeakTent returns a TentSampler whose maximum, reached at (½, ½), is peak.
func NewPeakTent(peak float64) TentSampler {
	return TentSampler{Amplitude: tentPeakScale * peak}
}

// Sample implements Sampler.
func (s TentSampler) Sample(u, v float64) float64 {
	u = mathutil.Mod1(u)
	v = mathutil.Mod1(v)
	return s.Amplitude * (half - math.Abs(u-half)) * (half - math.Abs(v-half))
}

// RidgeSampler produces a field with the 8-fold symmetry of the unit square:
// a trough of depth -A along every cell edge that ramps up to zero, and a
// raised plateau of height 2A around the cell centre.
type RidgeSampler struct {
	Amplitude float64
}

// Sample implements Sampler.
func (s RidgeSampler) Sample(u, v float64) float64 {
	_, v = foldWedge(mathutil.Mod1(u), mathutil.Mod1(v))
	if v >= ridgeSpine {
		return ridgePlateauFactor * s.Amplitude
	}
	return math.Min(1, v*ridgeRampSlope)*s.Amplitude - s.Amplitude
}

// foldWedge maps a point of the unit square onto the wedge 0 ≤ v ≤ u ≤ ½.
// The diagonals split the square into four triangles. Every triangle other
// than the bottom one is carried onto it by a rotation or reflection, and
// the first matching case wins on a shared edge. A final reflection about
// u = ½ halves the bottom triangle.
func foldWedge(u, v float64) (float64, float64) {
	switch {
	case v > u && u+v > 1: // top
		u, v = 1-u, 1-v
	case v > u: // left
		u, v = v, u
	case u+v > 1: // right
		u, v = v, 1-u
	}
	return mathutil.Reflect(u), v
}

// ConstantSampler returns Value everywhere.
type ConstantSampler struct {
	Value float64
}

// Sample implements Sampler.
func (s ConstantSampler) Sample(_, _ float64) float64 {
	return s.Value
}
