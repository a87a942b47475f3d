package network

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/SynapticNetworks/ripplenet/types"
)

// ErrGzip wraps a failure to inflate a gzip-wrapped snapshot.
var ErrGzip = errors.New("network: gzip decode failed")

// ErrJSON wraps a failure to unmarshal a snapshot's JSON body.
var ErrJSON = errors.New("network: json decode failed")

// dump is the exact wire shape of a snapshot: the four synapse matrices,
// both neuron and refractory vectors, and the parameters needed to
// reconstruct the worker pool and mask on restore.
type dump struct {
	Accumulated12 []float32          `json:"accumulated_weights_1_to_2"`
	Accumulated21 []float32          `json:"accumulated_weights_2_to_1"`
	Distance12    []float32          `json:"distance_weights_1_to_2"`
	Distance21    []float32          `json:"distance_weights_2_to_1"`
	Neurons1      []float32          `json:"neurons_1"`
	Neurons2      []float32          `json:"neurons_2"`
	Refract1      []uint8            `json:"refract_intervals_1"`
	Refract2      []uint8            `json:"refract_intervals_2"`
	LayerParams   types.LayerParams  `json:"layer_params"`
	SynapseParams types.SynapseParams `json:"synapse_params"`
}

func (n *Network) toDump() dump {
	return dump{
		Accumulated12: n.accumulated12,
		Accumulated21: n.accumulated21,
		Distance12:    n.distance12,
		Distance21:    n.distance21,
		Neurons1:      n.neurons1,
		Neurons2:      n.neurons2,
		Refract1:      n.refract1,
		Refract2:      n.refract2,
		LayerParams:   n.layerParams,
		SynapseParams: n.synapseParams,
	}
}

// JSONDump serializes the full network state: both layers' neuron and
// refractory vectors, both directions' accumulated and distance
// matrices, and the layer/synapse parameters needed to rebuild it.
func (n *Network) JSONDump() ([]byte, error) {
	return json.Marshal(n.toDump())
}

// GzipDump wraps JSONDump's output in gzip for network transport.
func (n *Network) GzipDump() ([]byte, error) {
	raw, err := n.JSONDump()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FromJSONDump reconstructs a Network from JSONDump's output, rebuilding
// the mask, computed parameters, and worker pool rather than storing them
// on the wire.
func FromJSONDump(raw []byte, logger Logger) (*Network, error) {
	var d dump
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSON, err)
	}

	n := New(d.LayerParams, d.SynapseParams, logger)
	n.accumulated12 = d.Accumulated12
	n.accumulated21 = d.Accumulated21
	n.distance12 = d.Distance12
	n.distance21 = d.Distance21
	n.neurons1 = d.Neurons1
	n.neurons2 = d.Neurons2
	n.refract1 = d.Refract1
	n.refract2 = d.Refract2

	return n, nil
}

// FromGzipDump inverts GzipDump, distinguishing a gzip failure (ErrGzip)
// from a JSON failure (ErrJSON) so callers can tell a corrupt transport
// envelope apart from a corrupt payload.
func FromGzipDump(raw []byte, logger Logger) (*Network, error) {
	r, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGzip, err)
	}
	defer r.Close()

	decoded, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGzip, err)
	}

	return FromJSONDump(decoded, logger)
}
