// Package spiral implements the boustrophedon (serpentine) pairing
// between a layer's fields (C6): which L1 field partners with which L2
// field at a given tick, and which single field is excluded from pairing
// and used instead as the prediction output tap.
package spiral

import "github.com/SynapticNetworks/ripplenet/types"

// NextField returns the field that (x, y) partners with, following the
// boustrophedon scan: even rows run left to right, odd rows run right to
// left, each row handing off to the start of the next. Calling NextField
// on LastField's coordinates returns (0, 0); callers must special-case
// the tail field themselves (see LastField) rather than relying on this
// wraparound as a sentinel.
func NextField(p types.LayerParams, x, y int) (int, int) {
	lastRow := y == p.LayerHeight-1

	if y%2 == 0 {
		if x == p.LayerWidth-1 {
			if lastRow {
				return 0, 0
			}
			return x, y + 1
		}
		return x + 1, y
	}

	if x == 0 {
		if lastRow {
			return 0, 0
		}
		return 0, y + 1
	}
	return x - 1, y
}

// LastField returns the tail field, excluded from spiral pairing and
// used as the prediction output tap: (0, Lh-1) when Lh is even, otherwise
// (Lw-1, Lh-1).
func LastField(p types.LayerParams) (int, int) {
	if p.LayerHeight%2 == 0 {
		return 0, p.LayerHeight - 1
	}
	return p.LayerWidth - 1, p.LayerHeight - 1
}
