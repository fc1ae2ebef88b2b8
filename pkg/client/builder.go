package client

import "github.com/daniacca/genchem/internal/genchem"

// SystemBuilder provides a fluent API for building species systems.
// The resulting SystemConfig can be sent to a server with Client.Load or
// written to a system file.
type SystemBuilder struct {
	name        string
	maxOrder    int
	trackCharge bool
	species     []*SpeciesBuilder
}

// NewSystem creates a new system builder with the given name.
func NewSystem(name string) *SystemBuilder {
	return &SystemBuilder{
		name:    name,
		species: make([]*SpeciesBuilder, 0),
	}
}

// Species appends species to the system. Species keep the order in which
// they are added; that order indexes every stoichiometric vector.
func (sb *SystemBuilder) Species(species ...*SpeciesBuilder) *SystemBuilder {
	sb.species = append(sb.species, species...)
	return sb
}

// Solvent appends an inert carrier of the given mass. Presenters hide it.
func (sb *SystemBuilder) Solvent(mass float64) *SystemBuilder {
	return sb.Species(NewSpecies(string(genchem.SolventName), mass).Inert().Color("white"))
}

// MaxOrder sets the largest coefficient sum on either side of a reaction.
// Zero leaves the server default.
func (sb *SystemBuilder) MaxOrder(k int) *SystemBuilder {
	sb.maxOrder = k
	return sb
}

// TrackCharge requires reactions to conserve charge as well as mass.
func (sb *SystemBuilder) TrackCharge(enabled bool) *SystemBuilder {
	sb.trackCharge = enabled
	return sb
}

// Build converts the builder to a SystemConfig.
func (sb *SystemBuilder) Build() genchem.SystemConfig {
	species := make([]genchem.SpeciesConfig, 0, len(sb.species))
	for _, s := range sb.species {
		species = append(species, s.Build())
	}
	return genchem.SystemConfig{
		Name:        sb.name,
		MaxOrder:    sb.maxOrder,
		TrackCharge: sb.trackCharge,
		Species:     species,
	}
}

// SpeciesBuilder provides a fluent API for a single species.
type SpeciesBuilder struct {
	cfg genchem.SpeciesConfig
}

// NewSpecies creates a species with the given name and mass.
func NewSpecies(name string, mass float64) *SpeciesBuilder {
	return &SpeciesBuilder{cfg: genchem.SpeciesConfig{Name: name, Mass: mass}}
}

// Charge sets the species charge.
func (b *SpeciesBuilder) Charge(q int) *SpeciesBuilder {
	b.cfg.Charge = q
	return b
}

// FreeEnergy sets the species free energy.
func (b *SpeciesBuilder) FreeEnergy(g float64) *SpeciesBuilder {
	b.cfg.FreeEnergy = g
	return b
}

// Inert marks the species as a carrier that is left out of printed equations.
func (b *SpeciesBuilder) Inert() *SpeciesBuilder {
	b.cfg.Inert = true
	return b
}

// Color sets the display colour (a palette name such as "teal" or "#RRGGBB").
func (b *SpeciesBuilder) Color(c string) *SpeciesBuilder {
	b.cfg.Color = c
	return b
}

// Description sets a free-form description.
func (b *SpeciesBuilder) Description(d string) *SpeciesBuilder {
	b.cfg.Description = d
	return b
}

// Build converts the builder to a SpeciesConfig.
func (b *SpeciesBuilder) Build() genchem.SpeciesConfig {
	return b.cfg
}
