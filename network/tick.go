package network

// shift runs one collision-free double-sided update: forward pass 1→2
// (g0=0), commit, reverse pass 2→1 (g0=synapseParams.G0), commit. bitVec
// loads neurons1's prefix; the remainder of the field is zeroed. Oversized
// input is a programmer error, not a recoverable one, so it panics rather
// than returning an error.
func (n *Network) shift(bitVec []bool) {
	if len(bitVec) > n.computed.fieldSize {
		panic("network: input chunk longer than one field")
	}

	for pos := 0; pos < n.computed.fieldSize; pos++ {
		if pos < len(bitVec) && bitVec[pos] {
			n.neurons1[pos] = 1
		} else {
			n.neurons1[pos] = 0
		}
	}

	nextNeurons2 := n.propagate(n.accumulated12, n.distance12, n.neurons1, n.refract2, 0)
	n.learn(n.accumulated12, n.neurons1, nextNeurons2, n.refract2, 1)
	nextRefract1 := refractUpdate(n.neurons1, n.refract1, n.synapseParams.RefractInterval)

	n.neurons2 = nextNeurons2
	n.refract1 = nextRefract1

	nextNeurons1 := n.propagate(n.accumulated21, n.distance21, n.neurons2, n.refract1, n.synapseParams.G0)
	n.learn(n.accumulated21, n.neurons2, nextNeurons1, n.refract1, 2)
	nextRefract2 := refractUpdate(n.neurons2, n.refract2, n.synapseParams.RefractInterval)

	n.neurons1 = nextNeurons1
	n.refract2 = nextRefract2
}

// refractUpdate implements r'[i] = R0 if neurons[i] fires else
// max(r[i]-1, 0).
func refractUpdate(neurons []float32, refract []uint8, r0 int) []uint8 {
	next := make([]uint8, len(neurons))
	for i, v := range neurons {
		if v > 0.5 {
			next[i] = uint8(r0)
			continue
		}
		if refract[i] > 0 {
			next[i] = refract[i] - 1
		}
	}
	return next
}

// splitSignal divides bitVec against the current L1 refractory state:
// bits whose neuron is still refractory are deferred into a residual
// vector instead of being applied this tick.
func (n *Network) splitSignal(bitVec []bool) (apply []bool, residual []bool, hasResidual bool) {
	apply = make([]bool, n.computed.fieldSize)
	residual = make([]bool, n.computed.fieldSize)

	for pos, v := range bitVec {
		if !v {
			continue
		}
		if n.refract1[pos] > 0 {
			residual[pos] = true
			hasResidual = true
		} else {
			apply[pos] = true
		}
	}

	return apply, residual, hasResidual
}

// tickNotIntersected runs shift once on a collision-free bit vector, then
// signal_shift_interval quiescent shifts with no new input.
func (n *Network) tickNotIntersected(bitVec []bool) {
	n.shift(bitVec)
	for i := 0; i < n.synapseParams.SignalShiftInterval; i++ {
		n.shift(nil)
	}
}

// Tick runs one collision-resistant double-sided update for bitVec,
// deferring any input bit that collides with a still-refractory L1
// neuron into a residual tick, repeated until no residual remains.
func (n *Network) Tick(bitVec []bool) {
	apply, residual, hasResidual := n.splitSignal(bitVec)
	n.tickNotIntersected(apply)

	for hasResidual {
		apply, residual, hasResidual = n.splitSignal(residual)
		n.tickNotIntersected(apply)
	}
}

func ticksFor(dataLen, fieldSize int) int {
	if dataLen%fieldSize == 0 {
		return dataLen / fieldSize
	}
	return dataLen/fieldSize + 1
}

// PushData chunks bits into field-sized slices and ticks once per chunk.
func (n *Network) PushData(bits []bool) {
	fieldSize := n.computed.fieldSize
	tickCount := ticksFor(len(bits), fieldSize)

	for i := 0; i < tickCount; i++ {
		start := i * fieldSize
		end := start + fieldSize
		if end > len(bits) {
			end = len(bits)
		}
		n.Tick(bits[start:end])
	}
}

// Predict consumes bits as PushData would, then runs field_count-1 empty
// ticks to let activity traverse the spiral end-to-end, then ticks once
// more per input chunk, reading the tail field of L2 after each such
// tick. The tail field's state immediately before the empty-shift loop is
// not included in the output (see DESIGN.md Open Question 2).
func (n *Network) Predict(bits []bool) []bool {
	fieldSize := n.computed.fieldSize
	tickCount := ticksFor(len(bits), fieldSize)

	for i := 0; i < tickCount; i++ {
		start := i * fieldSize
		end := start + fieldSize
		if end > len(bits) {
			end = len(bits)
		}
		n.Tick(bits[start:end])
	}

	for i := 0; i < n.computed.fieldCount-1; i++ {
		n.Tick(nil)
	}

	result := make([]bool, 0, tickCount*fieldSize)
	for i := 0; i < tickCount; i++ {
		n.Tick(nil)
		result = append(result, n.lastFieldState()...)
	}

	return result
}

// lastFieldState reads the thresholded activation of L2's tail field,
// the neurons excluded from spiral pairing and reserved as the
// prediction output tap.
func (n *Network) lastFieldState() []bool {
	result := make([]bool, len(n.lastFieldIndexes))
	for i, idx := range n.lastFieldIndexes {
		result[i] = n.neurons2[idx] > 0.5
	}
	return result
}
