// Package wiring assembles the network, data layer, and complex
// timeline from a loaded config.File — the construction sequence
// shared by every cmd/ binary.
package wiring

import (
	"github.com/SynapticNetworks/ripplenet/config"
	"github.com/SynapticNetworks/ripplenet/datalayer"
	"github.com/SynapticNetworks/ripplenet/network"
	"github.com/SynapticNetworks/ripplenet/obslog"
	"github.com/SynapticNetworks/ripplenet/timeline"
)

// Instance bundles the pieces every binary needs after loading config.
type Instance struct {
	Network  *network.Network
	Layer    *datalayer.Layer
	Timeline *timeline.ComplexTimeline
	Logger   *obslog.Logger
}

// Build constructs a fresh Network and its data layer from cfg.
func Build(cfg *config.File, logger *obslog.Logger) (*Instance, error) {
	tl, err := timeline.BuildComplexTimeline(cfg.Timelines)
	if err != nil {
		return nil, err
	}

	var netLogger network.Logger
	if logger != nil {
		netLogger = logger
	}
	net := network.New(cfg.LayerParams, cfg.SynapseParams, netLogger)
	layer := datalayer.New(net, tl)

	return &Instance{Network: net, Layer: layer, Timeline: tl, Logger: logger}, nil
}
