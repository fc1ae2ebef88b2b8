package genchem

import (
	"fmt"
	"math"
)

const (
	// GasConstant is the molar gas constant in J/(mol·K).
	GasConstant = 8.314462618
	// DefaultTemperature is 25 °C in kelvin.
	DefaultTemperature = 298.15
)

// Probability returns the relative likelihood of a reaction with free-energy
// change deltaG: exp(-max(0, deltaG) / (R·T)). Downhill and neutral
// reactions are barrier-free and return 1.
func Probability(deltaG, gasConstant, temperature float64) (float64, error) {
	rt := gasConstant * temperature
	if !(rt > 0) || math.IsInf(rt, 0) {
		return 0, fmt.Errorf("%w: R·T must be positive and finite, got %v", ErrInvalidArgument, rt)
	}
	barrier := math.Max(0, deltaG)
	return math.Exp(-barrier / rt), nil
}

// Estimator turns free-energy changes into reaction probabilities.
type Estimator struct {
	GasConstant float64
	Temperature float64
}

// DefaultEstimator uses GasConstant at DefaultTemperature.
func DefaultEstimator() Estimator {
	return Estimator{GasConstant: GasConstant, Temperature: DefaultTemperature}
}

// Estimate returns one probability per reaction, in set order.
func (e Estimator) Estimate(set ReactionSet) ([]float64, error) {
	out := make([]float64, len(set))
	for i, r := range set {
		p, err := Probability(r.DeltaG, e.GasConstant, e.Temperature)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
