package network

import "github.com/SynapticNetworks/ripplenet/types"

// The methods in this file are read-only observers over live network
// state. They exist for the TUI inspector (C12), which polls a shared
// Network under a caller-held read lock and never calls them
// concurrently with Tick/PushData/Predict on the same instance.

// GetLayerDimensions returns the shape parameters the network was built
// from, for sizing the inspector's neuron grid.
func (n *Network) GetLayerDimensions() types.LayerParams {
	return n.layerParams
}

// GetNeuronRefractTimeout returns the remaining refractory countdown for
// neuron idx in the given layer (1 or 2).
func (n *Network) GetNeuronRefractTimeout(layer, idx int) uint8 {
	if layer == 1 {
		return n.refract1[idx]
	}
	return n.refract2[idx]
}

// GetNeuronAccumulatedWeights returns neuron idx's row of the plastic
// weight matrix in the forward direction for the given layer: W[1->2][idx,
// :] when layer is 1, W[2->1][idx,:] when layer is 2.
func (n *Network) GetNeuronAccumulatedWeights(layer, idx int) []float32 {
	size := n.computed.layerSize
	if layer == 1 {
		return n.accumulated12[idx*size : idx*size+size]
	}
	return n.accumulated21[idx*size : idx*size+size]
}

// GetNeuronDistanceWeights returns neuron idx's row of the static distance
// kernel matrix, mirroring GetNeuronAccumulatedWeights.
func (n *Network) GetNeuronDistanceWeights(layer, idx int) []float32 {
	size := n.computed.layerSize
	if layer == 1 {
		return n.distance12[idx*size : idx*size+size]
	}
	return n.distance21[idx*size : idx*size+size]
}

// GetNeuronFullCoordinates recovers neuron idx's field and intra-field
// address, for labeling the inspector's cursor. Both layers share one
// shape, so the address is the same in either layer.
func (n *Network) GetNeuronFullCoordinates(idx int) types.NeuronCoord {
	return types.NeuronCoordFromIndex(n.layerParams, idx)
}
