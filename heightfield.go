package displace

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-displace/internal/simdops"
)

// Heightfield holds displacement heights sampled on a square vertex lattice.
// Heights are row-major: row i is v = i/Level, column j is u = j/Level.
type Heightfield struct {
	Level   int
	Heights []float64
}

// Size returns the number of vertices along one edge.
func (h *Heightfield) Size() int {
	return h.Level + 1
}

// At returns the height of the vertex in row i, column j.
func (h *Heightfield) At(i, j int) float64 {
	return h.Heights[i*h.Size()+j]
}

// Row returns row i. The slice aliases the heightfield.
func (h *Heightfield) Row(i int) []float64 {
	n := h.Size()
	return h.Heights[i*n : (i+1)*n]
}

// Min returns the lowest height.
func (h *Heightfield) Min() float64 {
	return floats.Min(h.Heights)
}

// Max returns the highest height.
func (h *Heightfield) Max() float64 {
	return floats.Max(h.Heights)
}

// Mean returns the average height.
func (h *Heightfield) Mean() float64 {
	return simdops.Float64Ops().Sum(h.Heights) / float64(len(h.Heights))
}
