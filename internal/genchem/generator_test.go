package genchem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Deterministic(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TrackCharge = true

	a, err := GenerateSystem("a", 1234, cfg)
	require.NoError(t, err)
	b, err := GenerateSystem("b", 1234, cfg)
	require.NoError(t, err)

	assert.Equal(t, a.All(), b.All())
}

func TestGenerator_SeedsDiffer(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	first, err := GenerateSystem("s", 1, cfg)
	require.NoError(t, err)

	differs := false
	for seed := uint64(2); seed < 10; seed++ {
		sys, err := GenerateSystem("s", seed, cfg)
		require.NoError(t, err)
		if !assert.ObjectsAreEqual(first.All(), sys.All()) {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different seeds should not all produce the same system")
}

func TestGenerator_Ranges(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TrackCharge = true

	g, err := NewGenerator(7, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g.Seed())
	assert.Equal(t, cfg, g.Config())

	for range 50 {
		sys, err := g.Generate("r")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sys.Len(), cfg.MinSpecies)
		assert.LessOrEqual(t, sys.Len(), cfg.MaxSpecies)

		for i, sp := range sys.All() {
			assert.Equal(t, speciesName(NamingLetters, i), sp.Name)
			assert.Equal(t, Palette[i%len(Palette)], sp.Color)
			assert.GreaterOrEqual(t, sp.Mass, float64(cfg.MassMin))
			assert.LessOrEqual(t, sp.Mass, float64(cfg.MassMax))
			assert.GreaterOrEqual(t, sp.FreeEnergy, float64(cfg.FreeEnergyMin))
			assert.LessOrEqual(t, sp.FreeEnergy, float64(cfg.FreeEnergyMax))
			assert.GreaterOrEqual(t, sp.Charge, cfg.ChargeMin)
			assert.LessOrEqual(t, sp.Charge, cfg.ChargeMax)
			assert.False(t, sp.Inert)
		}
	}
}

func TestGenerator_FixedCountAndSolvent(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.Species = 4
	cfg.Solvent = true
	cfg.Naming = NamingIndexed

	sys, err := GenerateSystem("solv", 99, cfg)
	require.NoError(t, err)
	require.Equal(t, 5, sys.Len())

	assert.Equal(t, []SpeciesName{"S1", "S2", "S3", "S4", SolventName}, sys.Names())
	solvent := sys.Species(4)
	assert.True(t, solvent.Inert)
	assert.Equal(t, 1.0, solvent.Mass)
	assert.Zero(t, solvent.Charge)
	assert.Zero(t, solvent.FreeEnergy)
}

func TestGenerator_ChargeOffLeavesNeutral(t *testing.T) {
	sys, err := GenerateSystem("n", 5, DefaultGeneratorConfig())
	require.NoError(t, err)
	assert.False(t, sys.HasCharge())
}

func TestNewGenerator_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratorConfig)
	}{
		{"mass range inverted", func(c *GeneratorConfig) { c.MassMin, c.MassMax = 10, 5 }},
		{"zero mass", func(c *GeneratorConfig) { c.MassMin = 0 }},
		{"free energy inverted", func(c *GeneratorConfig) { c.FreeEnergyMin, c.FreeEnergyMax = 3, 1 }},
		{"species range inverted", func(c *GeneratorConfig) { c.MinSpecies, c.MaxSpecies = 6, 4 }},
		{"charge range inverted", func(c *GeneratorConfig) { c.TrackCharge = true; c.ChargeMin, c.ChargeMax = 2, -2 }},
		{"charge range inverted untracked", func(c *GeneratorConfig) { c.ChargeMin, c.ChargeMax = 2, -2 }},
		{"unknown naming", func(c *GeneratorConfig) { c.Naming = "greek" }},
		{"negative species", func(c *GeneratorConfig) { c.Species = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGeneratorConfig()
			tt.mutate(&cfg)
			_, err := NewGenerator(1, cfg)
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSpeciesName(t *testing.T) {
	tests := []struct {
		i    int
		want SpeciesName
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, speciesName(NamingLetters, tt.i), "index %d", tt.i)
	}
	assert.Equal(t, SpeciesName("S10"), speciesName(NamingIndexed, 9))
}

func TestValidateGeneratorConfig_ChargeRangeIssue(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	cfg.TrackCharge = true
	cfg.ChargeMin, cfg.ChargeMax = 1, -1

	var verr *ValidationError
	require.ErrorAs(t, ValidateGeneratorConfig(cfg), &verr)
	assert.Equal(t, []string{"charge_max must be >= ChargeMin, got -1"}, verr.Issues)
}

