// Package synapsemask builds the static distance-weight kernel (C5) used
// once, at network construction, to paint every pre-synaptic neuron's
// distance-weights row into the D matrices.
package synapsemask

import (
	"math"

	"github.com/SynapticNetworks/ripplenet/types"
)

const (
	minBeta   = 0.001
	maxRadius = 100
)

// Beta evaluates β(d) = 1 / (1 + α·d^(1/h)) for a non-negative distance d.
func Beta(params types.SynapseParams, d float64) float64 {
	return 1.0 / (1.0 + params.Alpha*math.Pow(d, 1.0/params.H))
}

// Radius returns ρ, the smallest k in [1, 100] with β(k) < 0.001, or 100
// if no such k exists within that range.
func Radius(params types.SynapseParams) int {
	for k := 1; k <= maxRadius; k++ {
		if Beta(params, float64(k)) < minBeta {
			return k
		}
	}
	return maxRadius
}

// Mask is the (2ρ+1)×(2ρ+1) distance-weight kernel, stored row-major with
// the center (β(0) = 1) at [ρ][ρ].
type Mask struct {
	Radius int
	Size   int
	Values []float32
}

// At returns the kernel value at row i, column j (both in [0, Size)).
func (m Mask) At(i, j int) float32 {
	return m.Values[i*m.Size+j]
}

// Build computes the full kernel for params.
func Build(params types.SynapseParams) Mask {
	radius := Radius(params)
	size := 1 + 2*radius

	values := make([]float32, size*size)
	for i := 0; i < size; i++ {
		iDiff := float64(i - radius)
		for j := 0; j < size; j++ {
			jDiff := float64(j - radius)
			distance := math.Sqrt(iDiff*iDiff + jDiff*jDiff)
			values[i*size+j] = float32(Beta(params, distance))
		}
	}

	return Mask{Radius: radius, Size: size, Values: values}
}
