package displace

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-displace/internal/bspline"
	"github.com/tphakala/go-displace/internal/testutil"
)

// Golden scenario: unit tent, three samples per unit, evaluated on the
// lattice point u = v = 2/3.
const (
	goldenAmplitude = 1.0
	goldenTessLevel = 3.0
	goldenU         = 2.0 / 3
	goldenV         = 2.0 / 3
)

func TestGoldenStencil(t *testing.T) {
	g := SampleStencil(TentSampler{Amplitude: goldenAmplitude}, goldenU, goldenV, 1/goldenTessLevel)

	// Rows ascend in v: v-r, v, v+r. Columns ascend in u: u-r, u, u+r.
	want := [3][3]float64{
		{1.0 / 9, 1.0 / 9, 0},
		{1.0 / 9, 1.0 / 9, 0},
		{0, 0, 0},
	}
	for i := range 3 {
		for j := range 3 {
			assert.InDelta(t, want[i][j], g.At(i, j), testutil.GoldenTolerance, "C[%d][%d]", i, j)
		}
	}
}

func TestGoldenValue(t *testing.T) {
	res := EvaluateGradient(goldenU, goldenV, TentSampler{Amplitude: goldenAmplitude}, 1/goldenTessLevel)

	// Each axis contributes (0.125 + 0.75)/3 = 7/24.
	assert.InDelta(t, 49.0/576, res.Value, testutil.GoldenTolerance)
	assert.InDelta(t, -7.0/48, res.DU, testutil.GoldenTolerance)
	assert.InDelta(t, -7.0/48, res.DV, testutil.GoldenTolerance)

	assert.InDelta(t, res.Value,
		Evaluate(goldenU, goldenV, TentSampler{Amplitude: goldenAmplitude}, 1/goldenTessLevel).Value,
		testutil.GoldenTolerance)
}

// TestGoldenUntransposedBlend reproduces the contraction with M applied
// untransposed and rows ordered +r to -r. Its weights only sum to 0.75,
// which is why the evaluator does not use that convention.
func TestGoldenUntransposedBlend(t *testing.T) {
	g := SampleStencil(TentSampler{Amplitude: goldenAmplitude}, goldenU, goldenV, 1/goldenTessLevel)

	desc := mat.NewDense(3, 3, nil)
	for i := range 3 {
		for j := range 3 {
			desc.Set(2-i, j, g.At(i, j))
		}
	}

	b := bspline.Basis(half)
	var a mat.VecDense
	a.MulVec(bspline.Matrix(), mat.NewVecDense(3, b[:]))

	var ca mat.VecDense
	ca.MulVec(desc, &a)
	assert.InDelta(t, 5.0/192, mat.Dot(&a, &ca), testutil.GoldenTolerance)
}

func TestEvaluateConstantGrid(t *testing.T) {
	s := ConstantSampler{Value: 1.0}

	// On lattice points every weight is dyadic and the result is exact.
	for _, p := range [][2]float64{{0.5, 0.25}, {0, 0}, {0.75, 1}} {
		assert.Equal(t, 1.0, Evaluate(p[0], p[1], s, 0.25).Value, "at %v", p)
	}

	rng := rand.New(rand.NewPCG(9, 10))
	for range 500 {
		u, v := rng.Float64()*4-2, rng.Float64()*4-2
		step := 1 / float64(1+rng.IntN(12))
		res := EvaluateGradient(u, v, s, step)
		assert.InDelta(t, 1.0, res.Value, testutil.DefaultTolerance)
		assert.InDelta(t, 0.0, res.DU, testutil.DefaultTolerance)
		assert.InDelta(t, 0.0, res.DV, testutil.DefaultTolerance)
	}
}

func TestEvaluatePeriodic(t *testing.T) {
	samplers := []Sampler{NewPeakTent(1), RidgeSampler{Amplitude: 0.5}}
	rng := rand.New(rand.NewPCG(11, 12))
	for _, s := range samplers {
		for range 200 {
			u, v := rng.Float64(), rng.Float64()
			want := Evaluate(u, v, s, 0.25).Value
			assert.InDelta(t, want, Evaluate(u+1, v-2, s, 0.25).Value, 1e-9)
		}
	}
}

// TestEvaluateWithinSampleHull relies on the B-spline weights being a convex
// combination: the surface never leaves the range of the sampled field.
func TestEvaluateWithinSampleHull(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	tent := make([]float64, 0, 500)
	ridge := make([]float64, 0, 500)
	for range 500 {
		u, v := rng.Float64()*2, rng.Float64()*2
		tent = append(tent, Evaluate(u, v, NewPeakTent(1), 1.0/6).Value)
		ridge = append(ridge, Evaluate(u, v, RidgeSampler{Amplitude: 1}, 1.0/6).Value)
	}
	testutil.AssertAllInRange(t, tent, 0, 1+testutil.DefaultTolerance)
	testutil.AssertAllInRange(t, ridge, -1-testutil.DefaultTolerance, 2+testutil.DefaultTolerance)
}

func TestEvaluateGradientMatchesFiniteDifference(t *testing.T) {
	const (
		step = 0.25
		h    = 1e-7
	)
	samplers := map[string]Sampler{
		"tent":  NewPeakTent(1),
		"ridge": RidgeSampler{Amplitude: 1},
	}
	// All points sit well inside a span, so ±h keeps the same stencil.
	points := [][2]float64{{0.3, 0.55}, {0.1, 0.8}, {0.7, 0.45}, {-0.3, 1.2}}

	for name, s := range samplers {
		t.Run(name, func(t *testing.T) {
			for _, p := range points {
				u, v := p[0], p[1]
				res := EvaluateGradient(u, v, s, step)
				fdu := (Evaluate(u+h, v, s, step).Value - Evaluate(u-h, v, s, step).Value) / (2 * h)
				fdv := (Evaluate(u, v+h, s, step).Value - Evaluate(u, v-h, s, step).Value) / (2 * h)

				assert.InDelta(t, fdu, res.DU, testutil.DerivativeTolerance, "du at %v", p)
				assert.InDelta(t, fdv, res.DV, testutil.DerivativeTolerance, "dv at %v", p)
			}
		})
	}
}

// TestEvaluateContinuousAcrossSpans checks the crack-free property: crossing a
// half-lattice boundary switches stencils without a jump in value or slope.
func TestEvaluateContinuousAcrossSpans(t *testing.T) {
	const (
		step = 0.25
		eps  = 1e-9
	)
	samplers := []Sampler{NewPeakTent(1), RidgeSampler{Amplitude: 1}}
	for _, s := range samplers {
		for _, boundary := range []float64{0.125, 0.375, 0.625, 0.875} {
			for _, v := range []float64{0.2, 0.5, 0.9} {
				lo := EvaluateGradient(boundary-eps, v, s, step)
				hi := EvaluateGradient(boundary+eps, v, s, step)
				assert.InDelta(t, lo.Value, hi.Value, 1e-6)
				assert.InDelta(t, lo.DU, hi.DU, 1e-6)
				assert.InDelta(t, lo.DV, hi.DV, 1e-6)

				lo = EvaluateGradient(v, boundary-eps, s, step)
				hi = EvaluateGradient(v, boundary+eps, s, step)
				assert.InDelta(t, lo.Value, hi.Value, 1e-6)
			}
		}
	}
}

func TestEvaluateLocalMatchesBilinearForm(t *testing.T) {
	g := SampleStencil(RidgeSampler{Amplitude: 1}, 0.3, 0.6, 0.1)
	for _, st := range [][2]float64{{0, 0}, {0.5, 0.5}, {0.25, 0.8}, {1, 1}} {
		s, tt := st[0], st[1]

		bu, bv := bspline.Basis(s), bspline.Basis(tt)
		var mu, mv mat.VecDense
		mu.MulVec(bspline.Matrix().T(), mat.NewVecDense(3, bu[:]))
		mv.MulVec(bspline.Matrix().T(), mat.NewVecDense(3, bv[:]))
		want := mat.Inner(&mv, g.Dense(), &mu)

		assert.InDelta(t, want, EvaluateLocal(&g, s, tt), testutil.GoldenTolerance)
	}
}

func TestEvaluateDegenerateInputs(t *testing.T) {
	tent := NewPeakTent(1)

	res := EvaluateGradient(0.3, 0.3, tent, 0)
	assert.True(t, math.IsNaN(res.Value), "zero step must not be silently accepted")

	res = EvaluateGradient(math.NaN(), 0.3, tent, 0.25)
	assert.True(t, math.IsNaN(res.Value))

	res = EvaluateGradient(0.3, math.Inf(1), tent, 0.25)
	assert.True(t, math.IsNaN(res.Value))
}

func TestSampleStencilOrientation(t *testing.T) {
	probe := SamplerFunc(func(u, v float64) float64 { return 10*u + v })
	g := SampleStencil(probe, 0.5, 0.5, 0.1)

	require.Len(t, g, 9)
	assert.InDelta(t, 10*0.4+0.4, g.At(0, 0), testutil.GoldenTolerance)
	assert.InDelta(t, 10*0.6+0.4, g.At(0, 2), testutil.GoldenTolerance)
	assert.InDelta(t, 10*0.4+0.6, g.At(2, 0), testutil.GoldenTolerance)
	assert.InDelta(t, 10*0.5+0.5, g.At(1, 1), testutil.GoldenTolerance)
}
