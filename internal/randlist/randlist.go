// Package randlist generates reproducible lists of values for round-trip
// tests across this module's codecs: a fixed seed always produces the same
// list, rather than relying on Go's testing/quick.
package randlist

import "math/rand"

// Monotone returns n non-decreasing values starting from 0, with gaps drawn
// uniformly from [1, maxGap]. The same seed always produces the same list.
func Monotone(n int, maxGap int, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))

	values := make([]uint64, n)
	var cur uint64
	for i := range values {
		if i > 0 {
			cur += uint64(rng.Intn(maxGap)) + 1
		}
		values[i] = cur
	}

	return values
}

// Uniform returns n values drawn uniformly from [0, max).
func Uniform(n int, max uint64, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))

	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(rng.Int63n(int64(max)))
	}

	return values
}

// WithOutliers returns n values drawn uniformly from [0, smallMax), except
// for outlierCount of them (evenly spaced through the list) drawn from
// [smallMax, largeMax) instead. Useful for exercising PFor's exception path.
func WithOutliers(n int, smallMax, largeMax uint64, outlierCount int, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))

	values := make([]uint64, n)
	for i := range values {
		values[i] = uint64(rng.Int63n(int64(smallMax)))
	}

	if outlierCount > 0 && outlierCount <= n {
		stride := n / outlierCount
		for i := 0; i < outlierCount; i++ {
			idx := i * stride
			values[idx] = uint64(smallMax) + uint64(rng.Int63n(int64(largeMax-smallMax)))
		}
	}

	return values
}
