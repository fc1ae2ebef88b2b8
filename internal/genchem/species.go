package genchem

import "fmt"

// SpeciesName is the name/identifier of a species.
type SpeciesName string

// Species is one chemical entity of a generated chemistry.
// Mass, Charge and FreeEnergy take part in reaction construction. Inert marks
// a carrier (the "Solvent") that presenters leave out; the builder treats it
// like any other species.
type Species struct {
	Name        SpeciesName `json:"name" yaml:"name"`
	Mass        float64     `json:"mass" yaml:"mass"`
	Charge      int         `json:"charge,omitempty" yaml:"charge,omitempty"`
	FreeEnergy  float64     `json:"free_energy" yaml:"free_energy"`
	Inert       bool        `json:"inert,omitempty" yaml:"inert,omitempty"`
	Color       string      `json:"color,omitempty" yaml:"color,omitempty"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
}

// System is an immutable, ordered table of species. The position of a
// species is its index into every stoichiometric vector built for the system.
type System struct {
	Name    string
	species []Species
	index   map[SpeciesName]int
}

// NewSystem creates a system from the given species, in order.
// Names must be non-empty and unique and masses positive.
func NewSystem(name string, species ...Species) (*System, error) {
	if len(species) == 0 {
		return nil, fmt.Errorf("%w: a system needs at least one species", ErrInvalidArgument)
	}

	s := &System{
		Name:    name,
		species: make([]Species, len(species)),
		index:   make(map[SpeciesName]int, len(species)),
	}
	for i, sp := range species {
		if sp.Name == "" {
			return nil, fmt.Errorf("%w: species at index %d has no name", ErrInvalidArgument, i)
		}
		if _, dup := s.index[sp.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate species name %q", ErrInvalidArgument, sp.Name)
		}
		if sp.Mass <= 0 {
			return nil, fmt.Errorf("%w: species %q has non-positive mass %v", ErrInvalidArgument, sp.Name, sp.Mass)
		}
		s.species[i] = sp
		s.index[sp.Name] = i
	}
	return s, nil
}

// Len returns the number of species.
func (s *System) Len() int { return len(s.species) }

// Species returns the species at position i.
func (s *System) Species(i int) Species { return s.species[i] }

// All returns a copy of the species table.
func (s *System) All() []Species {
	out := make([]Species, len(s.species))
	copy(out, s.species)
	return out
}

// Lookup returns the position of the named species.
func (s *System) Lookup(name SpeciesName) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Names returns the species names in positional order.
func (s *System) Names() []SpeciesName {
	out := make([]SpeciesName, len(s.species))
	for i, sp := range s.species {
		out[i] = sp.Name
	}
	return out
}

// Masses returns the mass vector.
func (s *System) Masses() []float64 {
	out := make([]float64, len(s.species))
	for i, sp := range s.species {
		out[i] = sp.Mass
	}
	return out
}

// Charges returns the charge vector.
func (s *System) Charges() []int {
	out := make([]int, len(s.species))
	for i, sp := range s.species {
		out[i] = sp.Charge
	}
	return out
}

// FreeEnergies returns the free-energy vector.
func (s *System) FreeEnergies() []float64 {
	out := make([]float64, len(s.species))
	for i, sp := range s.species {
		out[i] = sp.FreeEnergy
	}
	return out
}

// HasCharge reports whether any species carries a non-zero charge.
func (s *System) HasCharge() bool {
	for _, sp := range s.species {
		if sp.Charge != 0 {
			return true
		}
	}
	return false
}
