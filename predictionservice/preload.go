package predictionservice

import (
	"fmt"
	"os"

	"github.com/SynapticNetworks/ripplenet/network"
)

// LoadDump reads a JSON network dump from path, for an optional
// startup preload of a previously saved network. It is the JSON form
// (not gzip) since a file on disk carries no transport-compression
// reason to pay gzip's framing overhead.
func LoadDump(path string) (*network.Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("predictionservice: read dump: %w", err)
	}
	return network.FromJSONDump(raw, nil)
}
