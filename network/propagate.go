package network

// propagate computes the next activation vector for the "to" layer given
// the "from" layer's current activations: for each post-synaptic neuron
// j, s = Σ_i W[j,i]*D[j,i]*from[i]; a refractory j clamps to 0; otherwise
// a threshold crossing fires (with asymmetric inhibition g0 subtracted)
// and sub-threshold leak is kept as a real value. Runs across the worker
// pool, partitioned by j.
func (n *Network) propagate(weights, distance []float32, from []float32, refractTo []uint8, g0 float64) []float32 {
	size := n.computed.layerSize
	next := make([]float32, size)
	threshold := n.synapseParams.Threshold
	gamma := n.synapseParams.Gamma

	n.pool.Run(size, func(start, end int) {
		for j := start; j < end; j++ {
			if refractTo[j] > 0 {
				next[j] = 0
				continue
			}

			var sum float64
			base := j * size
			for i := 0; i < size; i++ {
				w := weights[base+i]
				if w == 0 {
					continue
				}
				d := distance[base+i]
				if d == 0 {
					continue
				}
				sum += float64(w) * float64(d) * float64(from[i])
			}

			if sum > threshold {
				next[j] = float32(1 - gamma*g0)
			} else {
				next[j] = float32(sum)
			}
		}
	})

	return next
}
