package genchem

import "fmt"

// Reaction converts the Reactants multiset into the Products multiset.
// DeltaG is the free-energy change, products minus reactants.
type Reaction struct {
	Reactants StoichiometricVector `json:"reactants" yaml:"reactants"`
	Products  StoichiometricVector `json:"products" yaml:"products"`
	DeltaG    float64              `json:"delta_g" yaml:"delta_g"`
}

// Orders returns the reaction order of each side.
func (r Reaction) Orders() (reactants, products int) {
	return r.Reactants.Order(), r.Products.Order()
}

// ReactionSet is the ordered list of reactions built for one species system.
type ReactionSet []Reaction

// Index returns the position of the reaction reactants -> products, or -1.
func (rs ReactionSet) Index(reactants, products StoichiometricVector) int {
	for i, r := range rs {
		if r.Reactants.Equal(reactants) && r.Products.Equal(products) {
			return i
		}
	}
	return -1
}

// Contains reports whether the set holds reactants -> products.
func (rs ReactionSet) Contains(reactants, products StoichiometricVector) bool {
	return rs.Index(reactants, products) >= 0
}

// Reverse returns the reverse of rs[i], which Build always includes as well.
func (rs ReactionSet) Reverse(i int) (Reaction, bool) {
	if i < 0 || i >= len(rs) {
		return Reaction{}, false
	}
	j := rs.Index(rs[i].Products, rs[i].Reactants)
	if j < 0 {
		return Reaction{}, false
	}
	return rs[j], true
}

type buildOptions struct {
	charge []int
}

// BuildOption customises Build.
type BuildOption func(*buildOptions)

// WithCharge enables charge conservation using the given per-species charges.
func WithCharge(charge []int) BuildOption {
	return func(o *buildOptions) {
		if charge == nil {
			charge = []int{}
		}
		o.charge = charge
	}
}

// candidate caches the conserved quantities of one enumerated vector so the
// pair loop compares numbers instead of recomputing dot products.
type candidate struct {
	vec    StoichiometricVector
	mass   float64
	charge int
	energy float64
}

// Build enumerates every ordered pair of distinct coefficient vectors that
// conserves mass (and charge, when WithCharge is given) and returns them as
// reactions annotated with their free-energy change.
//
// The result is ordered reactant-major, product-minor, both following
// Enumerate's order, so identical inputs always produce identical sets.
// Every reaction's reverse is also present. A single species system has no
// valid reactions.
//
// Masses are compared with exact float equality, so non-integral masses only
// balance when their sums are exact; use integral or dyadic masses.
// With masses 0.1, 0.2 and 0.3, A + B -> C is not produced.
func Build(mass, freeEnergy []float64, maxOrder int, opts ...BuildOption) (ReactionSet, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	n := len(mass)
	if len(freeEnergy) != n {
		return nil, fmt.Errorf("%w: %d masses but %d free energies", ErrDimensionMismatch, n, len(freeEnergy))
	}
	tracking := o.charge != nil
	if tracking && len(o.charge) != n {
		return nil, fmt.Errorf("%w: %d masses but %d charges", ErrDimensionMismatch, n, len(o.charge))
	}

	vectors, err := Enumerate(n, maxOrder)
	if err != nil {
		return nil, err
	}

	candidates := make([]candidate, len(vectors))
	for i, v := range vectors {
		candidates[i] = candidate{
			vec:    v,
			mass:   dot(mass, v),
			energy: dot(freeEnergy, v),
		}
		if tracking {
			candidates[i].charge = dot(o.charge, v)
		}
	}

	var out ReactionSet
	for i, r := range candidates {
		for j, p := range candidates {
			// Enumerate never repeats a vector, so equal indices are the only
			// equal pairs.
			if i == j {
				continue
			}
			if r.mass != p.mass {
				continue
			}
			if tracking && r.charge != p.charge {
				continue
			}
			out = append(out, Reaction{
				Reactants: r.vec.Clone(),
				Products:  p.vec.Clone(),
				DeltaG:    p.energy - r.energy,
			})
		}
	}
	return out, nil
}
