// Package displace evaluates a periodic biquadratic B-spline displacement
// surface for tessellated geometry in pure Go.
//
// A scalar field (a [Sampler]) is sampled on a square lattice of spacing
// step. The surface height at any parametric point is the uniform quadratic
// B-spline through the 3x3 lattice neighbourhood of that point. Because the
// neighbourhood is chosen by snapping to the lattice (see [Recentered]),
// neighbouring vertices of a tessellated patch see the same samples and the
// displaced mesh is crack-free. Its first derivatives are continuous too.
//
// # Quick Start
//
// For a one-off evaluation:
//
//	res := displace.EvaluateGradient(u, v, displace.NewPeakTent(1), 1.0/3)
//	fmt.Println(res.Value, res.DU, res.DV)
//
// For displacing the vertices of a patch:
//
//	cfg := displace.DefaultConfig()
//	cfg.Mode = displace.ModeRidge
//	e, err := displace.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := e.Displace(displace.Vertex{
//	    Position: p, Normal: n, TangentU: du, TangentV: dv, U: 0.3, V: 0.7,
//	})
//
// # Samplers
//
//   - [TentSampler]: a pyramid per cell, zero on cell edges.
//   - [RidgeSampler]: edge troughs and a centre plateau with the 8-fold
//     symmetry of the square.
//   - [ConstantSampler]: a flat field.
//
// Any func(u, v float64) float64 can be used through [SamplerFunc], as long
// as it is periodic with period 1 in both axes.
//
// # Grid Orientation
//
// A [Grid] is row-major with rows ascending in v and columns ascending in u,
// and the blending weights are Mᵀ·(t², t, 1) for the quadratic B-spline
// matrix M. Mixing this with a grid whose rows descend, or with M applied
// untransposed, silently produces wrong heights.
//
// # Configuration
//
// [Config] can be decoded from YAML with [ParseConfig]:
//
//	amplitude: 0.2
//	tess_level: 4
//	tile_size: 4
//	mode: ridge
//
// Set [Config.Logger] to a zap logger at debug level to trace every sampled
// stencil and result.
package displace
