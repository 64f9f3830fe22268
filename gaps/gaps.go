// Package gaps converts a strictly increasing sequence of values into a
// sequence of d-gaps and back.
//
// Every byte- or word-level codec in this module operates on raw values;
// gaps is the thin, codec-independent transform a caller applies first when
// the values being encoded are, e.g., a sorted posting list and smaller
// numbers compress better than the originals.
package gaps

import (
	"fmt"

	"github.com/gustingonzalez/ircodecs-go/errs"
)

// ToGaps converts a strictly increasing sequence into its d-gap form:
//
//	G[0] = L[0]
//	G[i] = L[i] - L[i-1] - 1   for i >= 1
//
// ToGaps returns errs.ErrNonMonotonic if any L[i] <= L[i-1], since that would
// produce a negative gap.
func ToGaps(values []uint64) ([]uint64, error) {
	if len(values) == 0 {
		return nil, nil
	}

	gaps := make([]uint64, len(values))
	gaps[0] = values[0]

	for i := 1; i < len(values); i++ {
		// d-gaps require strictly increasing input: values[i] <= values[i-1]
		// would produce a negative gap.
		if values[i] <= values[i-1] {
			return nil, fmt.Errorf("gaps: value at index %d (%d) does not strictly exceed previous value (%d): %w",
				i, values[i], values[i-1], errs.ErrNonMonotonic)
		}
		gaps[i] = values[i] - values[i-1] - 1
	}

	return gaps, nil
}

// FromGaps is the inverse of ToGaps: it reconstructs the original monotone
// sequence from its d-gap form.
func FromGaps(gapList []uint64) []uint64 {
	if len(gapList) == 0 {
		return nil
	}

	values := make([]uint64, len(gapList))
	values[0] = gapList[0]

	for i := 1; i < len(gapList); i++ {
		values[i] = values[i-1] + gapList[i] + 1
	}

	return values
}
