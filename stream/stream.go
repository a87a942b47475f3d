// Package stream implements the training data streams of C4: per-source
// current/peeked-next value cursors over CSV files, and the merged stream
// that advances a whole set of them in causal lockstep.
package stream

import (
	"errors"
	"time"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

// dateFormat is the only datetime layout the CSV sources speak, per §6 of
// the external interface ("%Y-%m-%d %H:%M:%S").
const dateFormat = "2006-01-02 15:04:05"

// ErrSourceIO wraps a training stream's construction-time failure to
// open or parse its backing file. This is a fatal construction-time
// error for the training coordinator, not a recoverable per-row
// condition.
var ErrSourceIO = errors.New("stream: training source I/O or parse error")

// Stream is a single training source's cursor contract: one current
// sample, one peeked-next sample, and a way to fast-forward past samples
// that have already been consumed by other streams in a merge.
type Stream interface {
	// Value returns the current sample's value.
	Value() timeline.Value

	// Date returns the current sample's timestamp, and false if no
	// sample has ever been loaded (an empty source).
	Date() (time.Time, bool)

	// NextDate returns the peeked-next sample's timestamp, and false
	// once the stream has no sample beyond the current one.
	NextDate() (time.Time, bool)

	// SetDate advances the cursor until NextDate strictly exceeds t,
	// then stops. A finished stream ignores this call.
	SetDate(t time.Time)

	// IsFinish reports whether NextDate is absent.
	IsFinish() bool
}
