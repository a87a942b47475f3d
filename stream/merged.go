package stream

import (
	"time"

	"github.com/SynapticNetworks/ripplenet/timeline"
)

// MergedStream holds N child streams and advances them together so that,
// after each Step, every child reports the same causal timestamp slot
// (no child lags more than one slot behind the others).
type MergedStream struct {
	streams []Stream
}

func NewMergedStream(streams ...Stream) *MergedStream {
	return &MergedStream{streams: streams}
}

// Value snapshots every child stream's current value, in stream order.
func (m *MergedStream) Value() []timeline.Value {
	values := make([]timeline.Value, len(m.streams))
	for i, s := range m.streams {
		values[i] = s.Value()
	}
	return values
}

// IsFinish reports whether every child stream is finished.
func (m *MergedStream) IsFinish() bool {
	for _, s := range m.streams {
		if !s.IsFinish() {
			return false
		}
	}
	return true
}

func (m *MergedStream) minNextDate() (time.Time, bool) {
	var min time.Time
	found := false

	for _, s := range m.streams {
		next, ok := s.NextDate()
		if !ok {
			continue
		}
		if !found || next.Before(min) {
			min = next
			found = true
		}
	}

	return min, found
}

// Step computes the minimum NextDate across all non-finished children and
// advances every child to that timestamp via SetDate.
func (m *MergedStream) Step() {
	next, ok := m.minNextDate()
	if !ok {
		return
	}
	for _, s := range m.streams {
		s.SetDate(next)
	}
}
