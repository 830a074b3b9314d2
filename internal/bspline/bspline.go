// Package bspline implements the uniform quadratic B-spline blending used to
// interpolate a 3x3 stencil of samples.
//
// A single span is evaluated as
//
//	p(t) = [t² t 1] · M · [P0 P1 P2]ᵀ
//
// so the per-sample weights for parameter t are Mᵀ·(t², t, 1). With this
// orientation the weights always sum to one and the derivative weights sum
// to zero.
package bspline

import (
	"gonum.org/v1/gonum/mat"

	"github.com/tphakala/go-displace/internal/simdops"
)

// blending is the quadratic B-spline basis matrix M.
var blending = mat.NewDense(Order, Order, []float64{
	blendHalf, blendNegOne, blendHalf,
	blendNegOne, blendOne, blendZero,
	blendHalf, blendHalf, blendZero,
})

var ops = simdops.Float64Ops()

// Matrix returns a copy of the blending matrix M.
func Matrix() *mat.Dense {
	return mat.DenseCopyOf(blending)
}

// Basis returns the monomial basis (t², t, 1).
func Basis(t float64) [Order]float64 {
	return [Order]float64{t * t, t, 1}
}

// DerivBasis returns the derivative of the monomial basis, (2t, 1, 0).
func DerivBasis(t float64) [Order]float64 {
	return [Order]float64{derivSquared * t, 1, 0}
}

// Weights returns the blended sample weights Mᵀ·Basis(t).
func Weights(t float64) [Order]float64 {
	return blend(Basis(t))
}

// DerivWeights returns the weights of the first derivative, Mᵀ·DerivBasis(t).
func DerivWeights(t float64) [Order]float64 {
	return blend(DerivBasis(t))
}

func blend(b [Order]float64) [Order]float64 {
	var w mat.VecDense
	w.MulVec(blending.T(), mat.NewVecDense(Order, b[:]))

	var out [Order]float64
	for i := range out {
		out[i] = w.AtVec(i)
	}
	return out
}

// Contract evaluates wvᵀ·G·wu. The outer product of the two weight vectors
// is flattened in the grid's row-major order and reduced with a single
// SIMD dot product.
func Contract(g *Grid, wu, wv [Order]float64) float64 {
	var outer [Order * Order]float64
	for i, a := range wv {
		for j, b := range wu {
			outer[i*Order+j] = a * b
		}
	}
	return ops.DotProductUnsafe(outer[:], g[:])
}

// ContractMat computes the same value as Contract using gonum's mat.Inner.
func ContractMat(g *Grid, wu, wv [Order]float64) float64 {
	return mat.Inner(mat.NewVecDense(Order, wv[:]), g.Dense(), mat.NewVecDense(Order, wu[:]))
}
