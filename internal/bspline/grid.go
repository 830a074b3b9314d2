package bspline

import "gonum.org/v1/gonum/mat"

// Grid is a 3x3 stencil of samples stored row-major. Row i holds samples at
// v-offset (i-1)·step and column j holds u-offset (j-1)·step, so both axes
// ascend from -step to +step.
type Grid [Order * Order]float64

// At returns the sample in row i, column j.
func (g *Grid) At(i, j int) float64 {
	return g[i*Order+j]
}

// Set stores a sample in row i, column j.
func (g *Grid) Set(i, j int, v float64) {
	g[i*Order+j] = v
}

// Dense returns a copy of the grid as a gonum matrix.
func (g *Grid) Dense() *mat.Dense {
	data := make([]float64, len(g))
	copy(data, g[:])
	return mat.NewDense(Order, Order, data)
}

// Fill returns a grid with every sample set to k.
func Fill(k float64) Grid {
	var g Grid
	for i := range g {
		g[i] = k
	}
	return g
}
