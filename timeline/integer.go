package timeline

import "github.com/SynapticNetworks/ripplenet/bitcodec"

// IntegerChannel quantizes a bounded integer into Capacity bits, mirroring
// FloatChannel but keeping the reversed value as a whole number.
type IntegerChannel struct {
	Min, Max  int
	capacity  int
	maxNormal int
	rangeSpan int
	remap     *Remap
}

func NewIntegerChannel(min, max, capacity int) *IntegerChannel {
	return NewIntegerChannelRemapped(min, max, capacity, nil)
}

func NewIntegerChannelRemapped(min, max, capacity int, remap *Remap) *IntegerChannel {
	return &IntegerChannel{
		Min:       min,
		Max:       max,
		capacity:  capacity,
		maxNormal: (1 << uint(capacity)) - 1,
		rangeSpan: max - min,
		remap:     remap,
	}
}

func (c *IntegerChannel) Capacity() int { return c.capacity }

func (c *IntegerChannel) normalize(v int) int {
	multiplier := c.remap.forward(float64(v-c.Min) / float64(c.rangeSpan))
	return int(float64(c.maxNormal)*multiplier + 0.5)
}

func (c *IntegerChannel) GetBits(v Value) []bool {
	if v.Kind != KindInteger {
		panic(ErrCodecMismatch)
	}

	if v.Integer > c.Max {
		return allOnes(c.capacity)
	}
	if v.Integer < c.Min {
		return allZeros(c.capacity)
	}

	return bitcodec.NumberToBits(c.normalize(v.Integer), c.capacity, c.maxNormal)
}

func (c *IntegerChannel) Reverse(bits []bool) Value {
	normalized := bitcodec.BitsToNumber(bits)
	multiplier := float64(normalized) / float64(c.maxNormal)
	multiplier = c.remap.reverse(multiplier)

	result := c.Min + int(float64(c.rangeSpan)*multiplier+0.5)
	return Int(result)
}
