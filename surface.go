package displace

import (
	"github.com/tphakala/go-displace/internal/bspline"
	"github.com/tphakala/go-displace/internal/mathutil"
)

// Grid is a 3x3 stencil of samples stored row-major. Row i holds v-offset
// (i−1)·step and column j holds u-offset (j−1)·step.
type Grid = bspline.Grid

// Result is the displacement at a parametric point. DU and DV are the
// partial derivatives of Value with respect to u and v. They are only
// populated by EvaluateGradient.
type Result struct {
	Value float64
	DU    float64
	DV    float64
}

// stencil is the local neighbourhood used for one evaluation.
type stencil struct {
	grid Grid
	s, t float64 // local span parameters in [0, 1]
}

// newStencil reduces (u, v) onto the unit torus, snaps it to the lattice of
// spacing step and samples the 3x3 neighbourhood around the snapped point.
func newStencil(u, v float64, sampler Sampler, step float64) stencil {
	u = mathutil.Mod1(u)
	v = mathutil.Mod1(v)

	tiles := 1 / step
	cu := Recentered(u, tiles)
	cv := Recentered(v, tiles)

	return stencil{
		grid: SampleStencil(sampler, cu, cv, step),
		s:    (u-cu)/step + half,
		t:    (v-cv)/step + half,
	}
}

// SampleStencil fills a grid with sampler values around (u, v):
//
//	C[i][j] = sampler(u + (j−1)·step, v + (i−1)·step)
//
// Rows ascend in v and columns ascend in u.
func SampleStencil(sampler Sampler, u, v, step float64) Grid {
	var g Grid
	for i := range bspline.Order {
		dv := float64(i-stencilCenter) * step
		for j := range bspline.Order {
			du := float64(j-stencilCenter) * step
			g.Set(i, j, sampler.Sample(u+du, v+dv))
		}
	}
	return g
}

// Evaluate returns the biquadratic B-spline surface through sampler's values
// on the lattice of spacing step, at the point (u, v). The surface is
// periodic, so any real u and v are accepted.
//
// Evaluate does not validate step. A zero step produces NaN or ±Inf.
func Evaluate(u, v float64, sampler Sampler, step float64) Result {
	st := newStencil(u, v, sampler, step)
	return Result{Value: EvaluateLocal(&st.grid, st.s, st.t)}
}

// EvaluateGradient is like Evaluate but also returns the surface gradient.
func EvaluateGradient(u, v float64, sampler Sampler, step float64) Result {
	st := newStencil(u, v, sampler, step)
	return gradient(&st, step)
}

func gradient(st *stencil, step float64) Result {
	wu, wv := bspline.Weights(st.s), bspline.Weights(st.t)
	dwu, dwv := bspline.DerivWeights(st.s), bspline.DerivWeights(st.t)

	// s and t advance by 1/step per unit of u and v.
	return Result{
		Value: bspline.Contract(&st.grid, wu, wv),
		DU:    bspline.Contract(&st.grid, dwu, wv) / step,
		DV:    bspline.Contract(&st.grid, wu, dwv) / step,
	}
}

// EvaluateLocal evaluates (Mᵀ·Bv)ᵀ · C · (Mᵀ·Bu) for a grid the caller has
// already sampled, with Bu = (s², s, 1) and Bv = (t², t, 1). s and t are
// span parameters: ½ is the centre sample, 0 and 1 the span edges.
func EvaluateLocal(grid *Grid, s, t float64) float64 {
	return bspline.Contract(grid, bspline.Weights(s), bspline.Weights(t))
}
