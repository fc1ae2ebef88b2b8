package genchem

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// NamingScheme selects how generated species are named.
type NamingScheme string

const (
	// NamingLetters names species A, B, ..., Z, AA, AB, ...
	NamingLetters NamingScheme = "letters"
	// NamingIndexed names species S1, S2, ...
	NamingIndexed NamingScheme = "indexed"
)

// SolventName is the name given to the generated inert carrier species.
const SolventName SpeciesName = "Solvent"

// Palette is the colour rotation used for generated species.
var Palette = []string{
	"teal", "hotpink", "darkorange", "yellow", "limegreen", "royalblue",
	"orchid", "tomato", "gold", "skyblue", "salmon", "plum", "khaki",
}

// GeneratorConfig bounds the random species attributes. All ranges are
// inclusive. When Species is zero the count is drawn from
// [MinSpecies, MaxSpecies].
type GeneratorConfig struct {
	Species       int          `json:"species,omitempty" yaml:"species,omitempty" validate:"gte=0"`
	MinSpecies    int          `json:"min_species" yaml:"min_species" validate:"gte=1"`
	MaxSpecies    int          `json:"max_species" yaml:"max_species" validate:"gte=1"`
	MassMin       int          `json:"mass_min" yaml:"mass_min" validate:"gte=1"`
	MassMax       int          `json:"mass_max" yaml:"mass_max" validate:"gtefield=MassMin"`
	FreeEnergyMin int          `json:"free_energy_min" yaml:"free_energy_min"`
	FreeEnergyMax int          `json:"free_energy_max" yaml:"free_energy_max" validate:"gtefield=FreeEnergyMin"`
	TrackCharge   bool         `json:"track_charge,omitempty" yaml:"track_charge,omitempty"`
	ChargeMin     int          `json:"charge_min" yaml:"charge_min"`
	ChargeMax     int          `json:"charge_max" yaml:"charge_max" validate:"gtefield=ChargeMin"`
	Solvent       bool         `json:"solvent,omitempty" yaml:"solvent,omitempty"`
	SolventMass   float64      `json:"solvent_mass,omitempty" yaml:"solvent_mass,omitempty" validate:"gte=0"`
	Naming        NamingScheme `json:"naming" yaml:"naming" validate:"oneof=letters indexed"`
}

// DefaultGeneratorConfig returns the classic ranges:
// 3 to 7 species, masses 1..30, free energies 1..100.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		MinSpecies:    3,
		MaxSpecies:    7,
		MassMin:       1,
		MassMax:       30,
		FreeEnergyMin: 1,
		FreeEnergyMax: 100,
		ChargeMin:     -1,
		ChargeMax:     1,
		SolventMass:   1,
		Naming:        NamingLetters,
	}
}

// Generator produces random species systems from an explicit seed.
// It is not safe for concurrent use; create one generator per goroutine.
type Generator struct {
	cfg  GeneratorConfig
	seed uint64
	rng  *rand.Rand
}

// NewGenerator validates cfg and seeds a generator. Equal seeds and configs
// produce equal sequences of systems.
func NewGenerator(seed uint64, cfg GeneratorConfig) (*Generator, error) {
	if err := ValidateGeneratorConfig(cfg); err != nil {
		return nil, err
	}
	return &Generator{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() uint64 { return g.seed }

// Config returns the generator configuration.
func (g *Generator) Config() GeneratorConfig { return g.cfg }

// Generate draws the next system. Attributes are drawn species by species:
// mass, then free energy, then charge when charge tracking is on.
func (g *Generator) Generate(name string) (*System, error) {
	n := g.cfg.Species
	if n == 0 {
		n = g.intRange(g.cfg.MinSpecies, g.cfg.MaxSpecies)
	}

	species := make([]Species, 0, n+1)
	for i := 0; i < n; i++ {
		sp := Species{
			Name:       speciesName(g.cfg.Naming, i),
			Mass:       float64(g.intRange(g.cfg.MassMin, g.cfg.MassMax)),
			FreeEnergy: float64(g.intRange(g.cfg.FreeEnergyMin, g.cfg.FreeEnergyMax)),
			Color:      Palette[i%len(Palette)],
		}
		if g.cfg.TrackCharge {
			sp.Charge = g.intRange(g.cfg.ChargeMin, g.cfg.ChargeMax)
		}
		species = append(species, sp)
	}

	if g.cfg.Solvent {
		mass := g.cfg.SolventMass
		if mass <= 0 {
			mass = 1
		}
		species = append(species, Species{
			Name:        SolventName,
			Mass:        mass,
			Inert:       true,
			Color:       "white",
			Description: "inert carrier",
		})
	}

	sys, err := NewSystem(name, species...)
	if err != nil {
		return nil, fmt.Errorf("generating system: %w", err)
	}
	return sys, nil
}

// intRange returns a uniform integer in [lo, hi].
func (g *Generator) intRange(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

// GenerateSystem is a one-shot helper around NewGenerator and Generate.
func GenerateSystem(name string, seed uint64, cfg GeneratorConfig) (*System, error) {
	g, err := NewGenerator(seed, cfg)
	if err != nil {
		return nil, err
	}
	return g.Generate(name)
}

func speciesName(scheme NamingScheme, i int) SpeciesName {
	if scheme == NamingIndexed {
		return SpeciesName("S" + strconv.Itoa(i+1))
	}
	// Spreadsheet column style: A..Z, AA..AZ, BA, ...
	var buf []byte
	for i >= 0 {
		buf = append([]byte{byte('A' + i%26)}, buf...)
		i = i/26 - 1
	}
	return SpeciesName(buf)
}
