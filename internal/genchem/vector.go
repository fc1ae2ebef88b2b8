package genchem

import (
	"fmt"
	"strconv"
	"strings"
)

// Number is the set of attribute types a species vector may hold.
type Number interface {
	~int | ~int64 | ~float64
}

// StoichiometricVector holds the multiplicity of each species on one side of
// a reaction, indexed by species position.
type StoichiometricVector []int

// Order returns the sum of the coefficients.
func (v StoichiometricVector) Order() int {
	sum := 0
	for _, c := range v {
		sum += c
	}
	return sum
}

// Equal reports whether v and o are entrywise equal.
func (v StoichiometricVector) Equal(o StoichiometricVector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of v.
func (v StoichiometricVector) Clone() StoichiometricVector {
	out := make(StoichiometricVector, len(v))
	copy(out, v)
	return out
}

// String renders v as "[1 0 2]".
func (v StoichiometricVector) String() string {
	parts := make([]string, len(v))
	for i, c := range v {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dot returns the weighted sum of v using the given per-species weights.
// It fails with ErrDimensionMismatch when the lengths differ.
func Dot[T Number](weights []T, v StoichiometricVector) (T, error) {
	if len(weights) != len(v) {
		return 0, fmt.Errorf("%w: %d weights for a vector of length %d", ErrDimensionMismatch, len(weights), len(v))
	}
	return dot(weights, v), nil
}

// dot is Dot without the length check, for callers that validated up front.
func dot[T Number](weights []T, v StoichiometricVector) T {
	var sum T
	for i, c := range v {
		sum += weights[i] * T(c)
	}
	return sum
}
