package timeline

import "errors"

// ErrCodecMismatch is the sentinel a channel panics with (wrapped in a
// recoverable form at the HTTP boundary) when GetBits receives a Value of
// the wrong Kind for that channel. This is a programmer error: callers
// own matching their values to their channel list, and services surface
// it as a 400 rather than letting the panic escape to the process.
var ErrCodecMismatch = errors.New("timeline: value kind does not match channel")

// ErrLengthMismatch is the value ComplexTimeline panics with when Reverse
// is given a bit slice shorter than the sum of the channel capacities, or
// GetBits a value count different from the channel count.
var ErrLengthMismatch = errors.New("timeline: bit slice shorter than channel capacities")
