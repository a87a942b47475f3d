package synapsemask

import (
	"testing"

	"github.com/SynapticNetworks/ripplenet/types"
)

func TestBetaAtZeroIsOne(t *testing.T) {
	params := types.SynapseParams{Alpha: 0.5, H: 2}
	if got := Beta(params, 0); got != 1.0 {
		t.Errorf("Beta(0) = %v, want 1.0", got)
	}
}

func TestRadiusCapsAt100(t *testing.T) {
	// Alpha so small the kernel never drops below minBeta within range.
	params := types.SynapseParams{Alpha: 0.0000001, H: 1}
	if got := Radius(params); got != maxRadius {
		t.Errorf("Radius() = %d, want %d (no k<=100 crosses minBeta)", got, maxRadius)
	}
}

func TestBuildMaskShapeAndCenter(t *testing.T) {
	params := types.SynapseParams{Alpha: 1.0, H: 1}
	mask := Build(params)

	if mask.Size != 1+2*mask.Radius {
		t.Errorf("Size = %d, want %d", mask.Size, 1+2*mask.Radius)
	}

	center := mask.At(mask.Radius, mask.Radius)
	if center != 1.0 {
		t.Errorf("center value = %v, want 1.0 (beta(0))", center)
	}

	// The kernel is radially symmetric: corners equidistant from the
	// center must carry equal weight.
	if mask.At(0, 0) != mask.At(mask.Size-1, mask.Size-1) {
		t.Error("mask is not symmetric across its diagonal")
	}
}

func TestBuildMaskMonotonicDecay(t *testing.T) {
	params := types.SynapseParams{Alpha: 1.0, H: 1}
	mask := Build(params)

	center := mask.Radius
	if mask.Size < 3 {
		t.Skip("radius too small to compare adjacent rings")
	}

	closer := mask.At(center, center+1)
	farther := mask.At(center, 0)
	if closer < farther {
		t.Errorf("expected beta to decay with distance: beta(1)=%v < beta(radius)=%v", closer, farther)
	}
}
