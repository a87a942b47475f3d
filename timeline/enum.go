package timeline

import "github.com/SynapticNetworks/ripplenet/bitcodec"

// EnumChannel encodes one of a fixed, ordered set of string options.
// Unknown strings on GetBits and out-of-range indices on Reverse both
// fall back to option index 0.
type EnumChannel struct {
	Options   []string
	capacity  int
	maxNormal int
	index     map[string]int
}

func NewEnumChannel(options []string, capacity int) *EnumChannel {
	index := make(map[string]int, len(options))
	for i, o := range options {
		index[o] = i
	}
	return &EnumChannel{
		Options:   options,
		capacity:  capacity,
		maxNormal: (1 << uint(capacity)) - 1,
		index:     index,
	}
}

func (c *EnumChannel) Capacity() int { return c.capacity }

func (c *EnumChannel) GetBits(v Value) []bool {
	if v.Kind != KindEnum {
		panic(ErrCodecMismatch)
	}

	n, ok := c.index[v.Enum]
	if !ok {
		n = 0
	}
	return bitcodec.NumberToBits(n, c.capacity, c.maxNormal)
}

func (c *EnumChannel) Reverse(bits []bool) Value {
	n := bitcodec.BitsToNumber(bits)
	if n < 0 || n >= len(c.Options) {
		n = 0
	}
	if len(c.Options) == 0 {
		return EnumOf("")
	}
	return EnumOf(c.Options[n])
}
