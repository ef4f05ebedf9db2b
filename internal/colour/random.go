// Package colour provides deterministic pseudo-random draws for palette
// generation.
package colour

import "math"

// Rand is a deterministic pseudo-random stream. Two streams constructed with
// the same seed produce identical sequences of draws when called in the same
// order; this is the reproducibility contract the whole generator depends on.
// It is NOT cryptographically random and must never be used for anything
// security-sensitive. A Rand is local to one generation call and is not safe
// for concurrent use.
type Rand struct {
	seed float64
}

// NewRand creates a stream from a numeric seed.
func NewRand(seed float64) *Rand {
	return &Rand{seed: seed}
}

// NewRandFromString creates a stream from a string seed using a polynomial
// rolling hash (hash = char + (hash<<5) - hash over int32, absolute value).
func NewRandFromString(seed string) *Rand {
	return NewRand(float64(hashString(seed)))
}

// hashString reduces a string to a 32-bit-ish non-negative integer.
func hashString(s string) int64 {
	var hash int32
	for _, ch := range s {
		hash = ch + (hash << 5) - hash
	}
	v := int64(hash)
	if v < 0 {
		v = -v
	}
	return v
}

// Next returns the next draw in [0, 1).
func (r *Rand) Next() float64 {
	v := math.Sin(r.seed) * 10000
	r.seed++
	return v - math.Floor(v)
}

// NextFloat returns the next draw scaled into [min, max).
func (r *Rand) NextFloat(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// NextInt returns the next draw as an integer in [min, max], inclusive on
// both ends.
func (r *Rand) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(r.Next()*float64(max-min+1))
}

// Pick returns a uniformly chosen element of items. Empty input returns the
// zero value.
func Pick[T any](r *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.NextInt(0, len(items)-1)]
}
