package genchem

import (
	"fmt"
	"math"
	"math/bits"
)

// DefaultMaxOrder limits reactions to at most bimolecular combinations.
const DefaultMaxOrder = 2

// maxCapacityHint bounds the up-front allocation made by Enumerate.
const maxCapacityHint = 1 << 20

// Enumerate returns every stoichiometric vector of length n whose entries are
// non-negative and whose sum lies in (0, maxOrder].
//
// Vectors come out in increasing counter order over {0..maxOrder}^n with the
// last coordinate varying fastest, the same order as a nested loop over each
// coordinate. Each coordinate is bounded by maxOrder only, so the walk visits
// (maxOrder+1)^n tuples; n is expected to stay around 10 or below.
func Enumerate(n, maxOrder int) ([]StoichiometricVector, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: species count must be >= 1, got %d", ErrInvalidArgument, n)
	}
	if maxOrder < 1 {
		return nil, fmt.Errorf("%w: max order must be >= 1, got %d", ErrInvalidArgument, maxOrder)
	}

	out := make([]StoichiometricVector, 0, capacityHint(n, maxOrder))
	counter := make([]int, n)
	sum := 0
	for {
		if sum > 0 && sum <= maxOrder {
			out = append(out, StoichiometricVector(counter).Clone())
		}

		// Advance the odometer; the last digit turns over first.
		i := n - 1
		for ; i >= 0; i-- {
			if counter[i] < maxOrder {
				counter[i]++
				sum++
				break
			}
			sum -= counter[i]
			counter[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}

// EnumerationCount returns how many vectors Enumerate(n, maxOrder) yields:
// the number of ways to place s indistinguishable units into n slots, summed
// over s = 1..maxOrder. Invalid arguments give 0. A count that does not fit
// in an int saturates at math.MaxInt.
func EnumerationCount(n, maxOrder int) int {
	if n < 1 || maxOrder < 1 {
		return 0
	}
	total := 0
	for s := 1; s <= maxOrder; s++ {
		b, ok := binomial(s+n-1, n-1)
		if !ok || b > math.MaxInt-total {
			return math.MaxInt
		}
		total += b
	}
	return total
}

// capacityHint is EnumerationCount clamped to a safe allocation size.
func capacityHint(n, maxOrder int) int {
	count := EnumerationCount(n, maxOrder)
	if count <= 0 || count > maxCapacityHint {
		return 0
	}
	return count
}

// binomial returns C(n, k), or false when it does not fit in an int.
func binomial(n, k int) (int, bool) {
	if k < 0 || k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}
	// After step i, result is C(n-k+i, i); the product is split across two
	// words so the intermediate value cannot wrap.
	var result uint64 = 1
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, false
		}
		q, _ := bits.Div64(hi, lo, uint64(i))
		if q > math.MaxInt {
			return 0, false
		}
		result = q
	}
	return int(result), true
}
