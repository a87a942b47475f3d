// types/params.go
package types

// =================================================================================
// NETWORK SHAPE PARAMETERS
// =================================================================================

// LayerParams describes the rectangular grid shape shared by both layers of
// the network: a Field is FieldWidth x FieldHeight neurons, a Layer is
// LayerWidth x LayerHeight fields, and the full neuron count per layer is
// the product of all four dimensions.
type LayerParams struct {
	FieldWidth  int `json:"field_width" toml:"field_width"`
	FieldHeight int `json:"field_height" toml:"field_height"`
	LayerWidth  int `json:"layer_width" toml:"layer_width"`
	LayerHeight int `json:"layer_height" toml:"layer_height"`
}

// FieldSize returns Fw*Fh, the number of neurons in one field and the
// maximum size of a single tick's input chunk.
func (p LayerParams) FieldSize() int {
	return p.FieldWidth * p.FieldHeight
}

// FieldCount returns Lw*Lh, the number of fields in one layer.
func (p LayerParams) FieldCount() int {
	return p.LayerWidth * p.LayerHeight
}

// NeuronCount returns N, the total number of neurons in one layer.
func (p LayerParams) NeuronCount() int {
	return p.FieldSize() * p.FieldCount()
}

// SynapseParams parameterizes the static distance kernel and the plastic
// weight-update rule applied every tick.
type SynapseParams struct {
	// Alpha and H shape the distance kernel beta(d) = 1/(1+alpha*d^(1/h)).
	Alpha float64 `json:"alpha" toml:"alpha"`
	H     float64 `json:"h" toml:"h"`

	// Gamma scales the asymmetric inhibition term g0 applies on the reverse pass.
	Gamma float64 `json:"gamma" toml:"gamma"`

	// GDec and GInc are the Hebbian decrement/increment applied to W each tick.
	GDec float64 `json:"g_dec" toml:"g_dec"`
	GInc float64 `json:"g_inc" toml:"g_inc"`

	// G0 is the reverse-pass inhibition conductance.
	G0 float64 `json:"g_0" toml:"g_0"`

	// MaxG clamps every entry of W from above; W is always clamped to [0, MaxG].
	MaxG float64 `json:"max_g" toml:"max_g"`

	// InitialStrongG seeds the spiral-paired diagonal entries of W at construction.
	InitialStrongG float64 `json:"initial_strong_g" toml:"initial_strong_g"`

	// Threshold is the firing threshold applied to the propagated sum.
	Threshold float64 `json:"threshold" toml:"threshold"`

	// RefractInterval is R0, the refractory timer value assigned to a neuron that just fired.
	RefractInterval int `json:"refract_interval" toml:"refract_interval"`

	// SignalShiftInterval is the number of empty ticks appended after every real input tick.
	SignalShiftInterval int `json:"signal_shift_interval" toml:"signal_shift_interval"`
}

// FieldCoord addresses one field within a layer grid.
type FieldCoord struct {
	X int
	Y int
}

// IntraFieldCoord addresses one neuron within a field.
type IntraFieldCoord struct {
	X int
	Y int
}

// NeuronCoord is the full four-component address of a neuron within a
// layer: which field it belongs to, and its position inside that field.
type NeuronCoord struct {
	Field      FieldCoord
	IntraField IntraFieldCoord
}

// Index computes idx = ly*(Fw*Fh*Lw) + lx*(Fw*Fh) + fy*Fw + fx, the flat
// row/column index used by the N×N synapse matrices.
func (c NeuronCoord) Index(p LayerParams) int {
	return c.Field.Y*(p.FieldWidth*p.FieldHeight*p.LayerWidth) +
		c.Field.X*(p.FieldWidth*p.FieldHeight) +
		c.IntraField.Y*p.FieldWidth +
		c.IntraField.X
}

// NeuronCoordFromIndex inverts Index: given a flat neuron index, recover
// its field and intra-field address. Used by the TUI inspector's
// "get_neuron_full_coordinates" observer operation.
func NeuronCoordFromIndex(p LayerParams, idx int) NeuronCoord {
	fieldSize := p.FieldWidth * p.FieldHeight
	layerOffset := idx / fieldSize
	fieldOffset := idx % fieldSize

	ly := layerOffset / p.LayerWidth
	lx := layerOffset % p.LayerWidth

	fy := fieldOffset / p.FieldWidth
	fx := fieldOffset % p.FieldWidth

	return NeuronCoord{
		Field:      FieldCoord{X: lx, Y: ly},
		IntraField: IntraFieldCoord{X: fx, Y: fy},
	}
}
