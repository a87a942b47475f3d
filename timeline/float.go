package timeline

import "github.com/SynapticNetworks/ripplenet/bitcodec"

// FloatChannel quantizes a bounded real value into Capacity bits, with an
// optional nonlinear Remap applied to the normalized [0,1] coordinate
// before quantization (and its inverse on Reverse).
type FloatChannel struct {
	Min, Max  float64
	capacity  int
	maxNormal int
	rangeSpan float64
	remap     *Remap
}

// NewFloatChannel builds a linear float channel.
func NewFloatChannel(min, max float64, capacity int) *FloatChannel {
	return NewFloatChannelRemapped(min, max, capacity, nil)
}

// NewFloatChannelRemapped builds a float channel with a custom remap of
// the normalized coordinate.
func NewFloatChannelRemapped(min, max float64, capacity int, remap *Remap) *FloatChannel {
	return &FloatChannel{
		Min:       min,
		Max:       max,
		capacity:  capacity,
		maxNormal: (1 << uint(capacity)) - 1,
		rangeSpan: max - min,
		remap:     remap,
	}
}

func (c *FloatChannel) Capacity() int { return c.capacity }

func (c *FloatChannel) normalize(v float64) int {
	multiplier := c.remap.forward((v - c.Min) / c.rangeSpan)
	return int(float64(c.maxNormal)*multiplier + 0.5)
}

func (c *FloatChannel) GetBits(v Value) []bool {
	if v.Kind != KindFloat {
		panic(ErrCodecMismatch)
	}

	if v.Float > c.Max {
		return allOnes(c.capacity)
	}
	if v.Float < c.Min {
		return allZeros(c.capacity)
	}

	return bitcodec.NumberToBits(c.normalize(v.Float), c.capacity, c.maxNormal)
}

func (c *FloatChannel) Reverse(bits []bool) Value {
	normalized := bitcodec.BitsToNumber(bits)
	multiplier := float64(normalized) / float64(c.maxNormal)
	multiplier = c.remap.reverse(multiplier)
	return Float64(c.Min + c.rangeSpan*multiplier)
}

func allOnes(n int) []bool {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = true
	}
	return bits
}

func allZeros(n int) []bool {
	return make([]bool, n)
}
