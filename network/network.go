// Package network implements the two-layer recurrent simulator (C7): the
// dense synapse matrices, the tick/propagate/learn/refract_update cycle,
// push_data/predict, and the JSON/gzip snapshot format.
package network

import (
	"github.com/SynapticNetworks/ripplenet/internal/kernel"
	"github.com/SynapticNetworks/ripplenet/spiral"
	"github.com/SynapticNetworks/ripplenet/synapsemask"
	"github.com/SynapticNetworks/ripplenet/types"
)

// LearnEvent is the (layer_index, inc_count, dec_count) observation
// emitted after every learn pass, when a logger is attached.
type LearnEvent struct {
	// LayerIndex is 1 for the 1→2 pass, 2 for the 2→1 pass, matching the
	// source kernel's own numbering.
	LayerIndex int
	IncCount   int
	DecCount   int
}

// Logger receives one LearnEvent per completed learn pass. Network calls
// it synchronously from the tick path, so a slow LogLearn slows the tick.
type Logger interface {
	LogLearn(event LearnEvent)
}

// computed holds values derived once from LayerParams, reused on every
// tick instead of recomputed.
type computed struct {
	fieldSize   int // Fw*Fh
	fieldCount  int // 2*Lw*Lh, both layers
	rowWidth    int // Fw*Lw, neurons per row of the absolute grid
	columnHeight int // Fh*Lh, neurons per column of the absolute grid
	layerSize   int // N = Fw*Fh*Lw*Lh
}

// Network is the live, mutable simulator state: four N×N synapse
// matrices, two neuron-activation vectors, two refractory-timer vectors,
// and the parameters and worker pool they were built from. It carries no
// lock of its own; callers sharing one Network across goroutines must
// serialize access externally (see package datalayer).
type Network struct {
	layerParams   types.LayerParams
	synapseParams types.SynapseParams
	computed      computed

	mask synapsemask.Mask

	distance12    []float32 // D[1->2], row-major N*N, indexed [post*N+pre]
	distance21    []float32 // D[2->1]
	accumulated12 []float32 // W[1->2]
	accumulated21 []float32 // W[2->1]

	neurons1 []float32
	neurons2 []float32

	refract1 []uint8
	refract2 []uint8

	lastFieldIndexes []int

	pool   *kernel.Pool
	logger Logger
}

// New builds a Network from its parameters: computes the distance mask,
// allocates the four zeroed matrices, then stamps the spiral-paired
// diagonal strong weights and distance-mask rows into both directions.
// A nil logger disables learn-event emission.
func New(layerParams types.LayerParams, synapseParams types.SynapseParams, logger Logger) *Network {
	c := computed{
		fieldSize:    layerParams.FieldSize(),
		fieldCount:   2 * layerParams.LayerWidth * layerParams.LayerHeight,
		rowWidth:     layerParams.FieldWidth * layerParams.LayerWidth,
		columnHeight: layerParams.FieldHeight * layerParams.LayerHeight,
		layerSize:    layerParams.NeuronCount(),
	}

	mask := synapsemask.Build(synapseParams)

	n := &Network{
		layerParams:   layerParams,
		synapseParams: synapseParams,
		computed:      c,
		mask:          mask,
		distance12:    make([]float32, c.layerSize*c.layerSize),
		distance21:    make([]float32, c.layerSize*c.layerSize),
		accumulated12: make([]float32, c.layerSize*c.layerSize),
		accumulated21: make([]float32, c.layerSize*c.layerSize),
		neurons1:      make([]float32, c.layerSize),
		neurons2:      make([]float32, c.layerSize),
		refract1:      make([]uint8, c.layerSize),
		refract2:      make([]uint8, c.layerSize),
		pool:          kernel.New(0),
		logger:        logger,
	}

	n.lastFieldIndexes = computeLastFieldIndexes(layerParams)
	n.setInitialConnections()

	return n
}

// neuronIndex implements idx = ly*(Fw*Fh*Lw) + lx*(Fw*Fh) + fy*Fw + fx.
func neuronIndex(p types.LayerParams, lx, ly, fx, fy int) int {
	return types.NeuronCoord{
		Field:      types.FieldCoord{X: lx, Y: ly},
		IntraField: types.IntraFieldCoord{X: fx, Y: fy},
	}.Index(p)
}

// absoluteCoords converts a field+intra-field address into its position
// in the full Fw*Lw by Fh*Lh neuron grid.
func absoluteCoords(p types.LayerParams, lx, ly, fx, fy int) (x, y int) {
	return p.FieldWidth*lx + fx, p.FieldHeight*ly + fy
}

// fieldFromAbsolute is the inverse of absoluteCoords: given a position in
// the full grid, recover which field it falls in and its position inside
// that field.
func fieldFromAbsolute(p types.LayerParams, x, y int) (lx, ly, fx, fy int) {
	return x / p.FieldWidth, y / p.FieldHeight, x % p.FieldWidth, y % p.FieldHeight
}

func computeLastFieldIndexes(p types.LayerParams) []int {
	lastX, lastY := spiral.LastField(p)

	indexes := make([]int, 0, p.FieldSize())
	for fy := 0; fy < p.FieldHeight; fy++ {
		for fx := 0; fx < p.FieldWidth; fx++ {
			indexes = append(indexes, neuronIndex(p, lastX, lastY, fx, fy))
		}
	}
	return indexes
}

// setInitialConnections stamps every non-tail field's spiral-paired
// diagonal strong weight and distance-mask row into both directions'
// matrices.
func (n *Network) setInitialConnections() {
	p := n.layerParams
	lastX, lastY := spiral.LastField(p)

	for ly := 0; ly < p.LayerHeight; ly++ {
		for lx := 0; lx < p.LayerWidth; lx++ {
			if lx == lastX && ly == lastY {
				continue
			}

			nx, ny := spiral.NextField(p, lx, ly)

			for fy := 0; fy < p.FieldHeight; fy++ {
				for fx := 0; fx < p.FieldWidth; fx++ {
					i := neuronIndex(p, lx, ly, fx, fy)
					iNext := neuronIndex(p, nx, ny, fx, fy)

					n.accumulated12[i*n.computed.layerSize+i] = float32(n.synapseParams.InitialStrongG)
					n.accumulated21[iNext*n.computed.layerSize+i] = float32(n.synapseParams.InitialStrongG)

					x, y := absoluteCoords(p, lx, ly, fx, fy)
					n.stampMask(n.distance12, i, x, y)

					xNext, yNext := absoluteCoords(p, nx, ny, fx, fy)
					n.stampMask(n.distance21, i, xNext, yNext)
				}
			}
		}
	}
}

// stampMask paints mask centered at absolute grid position (x, y) into
// column baseIndex of dst, clipping any offset that falls outside the
// absolute grid.
func (n *Network) stampMask(dst []float32, baseIndex, x, y int) {
	p := n.layerParams
	c := n.computed
	m := n.mask

	for ix := 0; ix < m.Size; ix++ {
		offsetX := ix - m.Radius
		neuronX := x + offsetX
		if neuronX < 0 || neuronX >= c.rowWidth {
			continue
		}

		for iy := 0; iy < m.Size; iy++ {
			offsetY := iy - m.Radius
			neuronY := y + offsetY
			if neuronY < 0 || neuronY >= c.columnHeight {
				continue
			}

			lx, ly, fx, fy := fieldFromAbsolute(p, neuronX, neuronY)
			target := neuronIndex(p, lx, ly, fx, fy)

			dst[target*c.layerSize+baseIndex] = m.At(ix, iy)
		}
	}
}

// LayerParams returns the shape parameters the network was built from.
func (n *Network) LayerParams() types.LayerParams {
	return n.layerParams
}

// SynapseParams returns the synapse parameters the network was built from.
func (n *Network) SynapseParams() types.SynapseParams {
	return n.synapseParams
}
