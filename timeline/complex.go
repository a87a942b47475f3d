package timeline

// ComplexTimeline concatenates a fixed, ordered set of channels into a
// single bit vector: GetBits requires one Value per channel, in order;
// Reverse slices an incoming bit vector back into one Value per channel.
type ComplexTimeline struct {
	Channels []Channel
}

func NewComplexTimeline(channels ...Channel) *ComplexTimeline {
	return &ComplexTimeline{Channels: channels}
}

// Capacity is the sum of every channel's bit width.
func (t *ComplexTimeline) Capacity() int {
	total := 0
	for _, c := range t.Channels {
		total += c.Capacity()
	}
	return total
}

// GetBits encodes one value per channel, in channel order. A Kind
// mismatch between a value and its channel panics with ErrCodecMismatch,
// same as the underlying channel would.
func (t *ComplexTimeline) GetBits(values []Value) []bool {
	if len(values) != len(t.Channels) {
		panic(ErrLengthMismatch)
	}

	bits := make([]bool, 0, t.Capacity())
	for i, c := range t.Channels {
		bits = append(bits, c.GetBits(values[i])...)
	}
	return bits
}

// Reverse splits bits across the channels in order and decodes each
// slice independently. bits shorter than Capacity() panics with
// ErrLengthMismatch.
func (t *ComplexTimeline) Reverse(bits []bool) []Value {
	if len(bits) < t.Capacity() {
		panic(ErrLengthMismatch)
	}

	values := make([]Value, len(t.Channels))
	offset := 0
	for i, c := range t.Channels {
		width := c.Capacity()
		values[i] = c.Reverse(bits[offset : offset+width])
		offset += width
	}
	return values
}
