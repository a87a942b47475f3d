package network

import "sync/atomic"

// learn applies the Hebbian-style update to weights in place and returns
// per-layer increment/decrement counts for the logger hook: a synapse
// [j,i] increments when both pre and post fire (and post was not
// refractory before this update), decrements when pre fires but post
// does not, and is otherwise unchanged. Gating uses refractBefore, the
// same post-layer refractory vector this pass's propagate was gated on:
// for the 1→2 pass that is refract2 before shift updates it, for the 2→1
// pass it is refract1 as already updated earlier in the same shift.
func (n *Network) learn(weights []float32, from, to []float32, refractBefore []uint8, layerIndex int) {
	size := n.computed.layerSize
	gInc := float32(n.synapseParams.GInc)
	gDec := float32(n.synapseParams.GDec)
	maxG := float32(n.synapseParams.MaxG)

	var incCount, decCount int64

	n.pool.Run(size, func(start, end int) {
		var localInc, localDec int64

		for j := start; j < end; j++ {
			postFires := to[j] > 0.5 && refractBefore[j] == 0
			base := j * size

			for i := 0; i < size; i++ {
				preFires := from[i] > 0.5
				if !preFires {
					continue
				}

				if postFires {
					w := weights[base+i] + gInc
					if w > maxG {
						w = maxG
					}
					weights[base+i] = w
					localInc++
				} else {
					w := weights[base+i] - gDec
					if w < 0 {
						w = 0
					}
					weights[base+i] = w
					localDec++
				}
			}
		}

		atomic.AddInt64(&incCount, localInc)
		atomic.AddInt64(&decCount, localDec)
	})

	if n.logger != nil {
		n.logger.LogLearn(LearnEvent{LayerIndex: layerIndex, IncCount: int(incCount), DecCount: int(decCount)})
	}
}
