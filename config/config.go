// Package config loads the TOML configuration file and the process
// environment variables every binary needs.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/SynapticNetworks/ripplenet/stream"
	"github.com/SynapticNetworks/ripplenet/timeline"
	"github.com/SynapticNetworks/ripplenet/types"
)

// File is the top-level shape of the TOML config: network shape and
// synapse parameters, the training sources, and the channel list that
// together form the complex timeline codec.
type File struct {
	LayerParams     types.LayerParams   `toml:"layer_params"`
	SynapseParams   types.SynapseParams `toml:"synapse_params"`
	TrainingStreams []stream.Config     `toml:"training_streams"`
	Timelines       []timeline.Config   `toml:"timelines"`
}

// Load reads and parses the TOML file at path. A missing file or
// malformed TOML is a fatal config error: callers should treat it as
// unrecoverable startup failure rather than retry.
func Load(path string) (*File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	return &f, nil
}

// ErrMissingEnv is returned by RequireEnv when a required environment
// variable is unset or empty.
type ErrMissingEnv struct {
	Name string
}

func (e *ErrMissingEnv) Error() string {
	return fmt.Sprintf("config: required environment variable %s is not set", e.Name)
}

// RequireEnv reads name from the environment, returning ErrMissingEnv if
// it is unset or empty.
func RequireEnv(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", &ErrMissingEnv{Name: name}
	}
	return v, nil
}

// EnvOr reads name from the environment, falling back to def if it is
// unset or empty.
func EnvOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// EnvPortOr reads name as an integer port, falling back to def if unset,
// empty, or unparseable.
func EnvPortOr(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return port
}
