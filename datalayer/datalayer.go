// Package datalayer holds the shared, interior-mutable reference to the
// live network (C8): a value<->bits codec pair plus the reader-writer
// lock that serializes push_data/predict/replace_network against each
// other and against the TUI's observer reads.
package datalayer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SynapticNetworks/ripplenet/network"
	"github.com/SynapticNetworks/ripplenet/timeline"
	"github.com/SynapticNetworks/ripplenet/types"
)

// ErrCodecRejected wraps a channel codec panic (wrong Kind, short bit
// vector) into an ordinary error at the data layer boundary, so HTTP
// handlers can turn it into a 400 instead of letting it escape as a panic.
var ErrCodecRejected = errors.New("datalayer: value rejected by channel codec")

// Layer wraps a *network.Network behind one sync.RWMutex: push_data,
// predict, and replace_network take the write lock (so their effects are
// mutually exclusive and never interleave their tick sequences), while
// the TUI's observer methods take the read lock, held only as long as a
// single frame's read.
type Layer struct {
	mu       sync.RWMutex
	net      *network.Network
	timeline *timeline.ComplexTimeline
}

// New wraps net behind a Layer, encoding/decoding values with the given
// channel timeline.
func New(net *network.Network, tl *timeline.ComplexTimeline) *Layer {
	return &Layer{net: net, timeline: tl}
}

func (l *Layer) current() *network.Network {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.net
}

// ReplaceNetwork atomically swaps the underlying network, used by the
// prediction service when a snapshot upload succeeds. The next
// PushData/Predict call observes the new instance; a call already in
// progress finishes against the instance it held the write lock for.
func (l *Layer) ReplaceNetwork(n *network.Network) {
	l.mu.Lock()
	l.net = n
	l.mu.Unlock()
}

// encode converts values to bits, recovering a channel codec panic into
// ErrCodecRejected.
func (l *Layer) encode(values []timeline.Value) (bits []bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			bits, err = nil, fmt.Errorf("%w: %v", ErrCodecRejected, r)
		}
	}()
	return l.timeline.GetBits(values), nil
}

// decode converts bits back to values, recovering a channel codec panic
// into ErrCodecRejected.
func (l *Layer) decode(bits []bool) (values []timeline.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			values, err = nil, fmt.Errorf("%w: %v", ErrCodecRejected, r)
		}
	}()
	return l.timeline.Reverse(bits), nil
}

// PushData encodes values and pushes them into the current network,
// one field-sized tick per chunk, under the write lock.
func (l *Layer) PushData(values []timeline.Value) error {
	bits, err := l.encode(values)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.net.PushData(bits)
	return nil
}

// Predict encodes values, runs the network's predict cycle under the
// write lock, and decodes the result back into channel values. The
// codec's rejection (wrong Kind, malformed length) propagates as an
// error rather than a panic.
func (l *Layer) Predict(values []timeline.Value) ([]timeline.Value, error) {
	bits, err := l.encode(values)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	out := l.net.Predict(bits)
	l.mu.Unlock()

	return l.decode(out)
}

// PushRawBits pushes bits directly into the network under the write
// lock, bypassing the channel codec entirely. The TUI inspector (C12)
// uses this to push the raw +/- sample a user types at the prompt,
// which has no channel shape to decode against.
func (l *Layer) PushRawBits(bits []bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.net.PushData(bits)
}

// The methods below are read-locked passthroughs to the current
// network's observer methods (C7), the only surface the TUI inspector
// (C12) touches.

// LayerDimensions returns the network's shape parameters.
func (l *Layer) LayerDimensions() types.LayerParams {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.net.GetLayerDimensions()
}

// NeuronRefractTimeout returns neuron idx's remaining refractory
// countdown in the given layer (1 or 2).
func (l *Layer) NeuronRefractTimeout(layerIndex, idx int) uint8 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.net.GetNeuronRefractTimeout(layerIndex, idx)
}

// NeuronAccumulatedWeights returns a copy of neuron idx's plastic weight
// row. A copy, not a slice into live state, since the caller releases the
// read lock as soon as this returns.
func (l *Layer) NeuronAccumulatedWeights(layerIndex, idx int) []float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	row := l.net.GetNeuronAccumulatedWeights(layerIndex, idx)
	return append([]float32(nil), row...)
}

// NeuronDistanceWeights returns a copy of neuron idx's static distance
// kernel row, mirroring NeuronAccumulatedWeights.
func (l *Layer) NeuronDistanceWeights(layerIndex, idx int) []float32 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	row := l.net.GetNeuronDistanceWeights(layerIndex, idx)
	return append([]float32(nil), row...)
}

// NeuronFullCoordinates recovers neuron idx's field/intra-field address.
func (l *Layer) NeuronFullCoordinates(idx int) types.NeuronCoord {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.net.GetNeuronFullCoordinates(idx)
}

// GzipDump takes a read-locked snapshot of the current network, for the
// training service's /update_receivers broadcast (C10). Read-locked
// rather than called directly against the bare network, so a broadcast
// never reads state mid-tick.
func (l *Layer) GzipDump() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.net.GzipDump()
}
