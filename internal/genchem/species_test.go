package genchem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	sys, err := NewSystem("ions",
		Species{Name: "Na", Mass: 23, Charge: 1, FreeEnergy: 2},
		Species{Name: "Cl", Mass: 35, Charge: -1, FreeEnergy: 3},
		Species{Name: "Solvent", Mass: 1, Inert: true},
	)
	require.NoError(t, err)

	assert.Equal(t, "ions", sys.Name)
	assert.Equal(t, 3, sys.Len())
	assert.Equal(t, []SpeciesName{"Na", "Cl", "Solvent"}, sys.Names())
	assert.Equal(t, []float64{23, 35, 1}, sys.Masses())
	assert.Equal(t, []int{1, -1, 0}, sys.Charges())
	assert.Equal(t, []float64{2, 3, 0}, sys.FreeEnergies())
	assert.True(t, sys.HasCharge())

	i, ok := sys.Lookup("Cl")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, SpeciesName("Cl"), sys.Species(i).Name)

	_, ok = sys.Lookup("K")
	assert.False(t, ok)

	all := sys.All()
	all[0].Mass = 99
	assert.Equal(t, 23.0, sys.Species(0).Mass)
}

func TestNewSystem_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		species []Species
	}{
		{"empty", nil},
		{"unnamed", []Species{{Mass: 1}}},
		{"duplicate", []Species{{Name: "A", Mass: 1}, {Name: "A", Mass: 2}}},
		{"zero mass", []Species{{Name: "A"}}},
		{"negative mass", []Species{{Name: "A", Mass: -3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSystem("bad", tt.species...)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestSystem_HasCharge(t *testing.T) {
	sys, err := NewSystem("neutral", Species{Name: "A", Mass: 1}, Species{Name: "B", Mass: 2})
	require.NoError(t, err)
	assert.False(t, sys.HasCharge())
}
