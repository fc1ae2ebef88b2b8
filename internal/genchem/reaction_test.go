package genchem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MassScenario(t *testing.T) {
	mass := []float64{1, 2, 3}
	freeEnergy := []float64{0, 10, -5}

	set, err := Build(mass, freeEnergy, 2)
	require.NoError(t, err)
	require.Len(t, set, 6)

	i := set.Index(StoichiometricVector{1, 1, 0}, StoichiometricVector{0, 0, 1})
	require.GreaterOrEqual(t, i, 0, "A + B -> C must be accepted")
	assert.Equal(t, -15.0, set[i].DeltaG)

	assert.False(t, set.Contains(StoichiometricVector{1, 0, 0}, StoichiometricVector{0, 1, 0}),
		"mass 1 -> mass 2 must be rejected")
}

func TestBuild_Order(t *testing.T) {
	set, err := Build([]float64{1, 2, 3}, []float64{10, 5, 0}, 2)
	require.NoError(t, err)

	want := []Reaction{
		{Reactants: StoichiometricVector{0, 0, 1}, Products: StoichiometricVector{1, 1, 0}, DeltaG: 15},
		{Reactants: StoichiometricVector{0, 1, 0}, Products: StoichiometricVector{2, 0, 0}, DeltaG: 15},
		{Reactants: StoichiometricVector{0, 2, 0}, Products: StoichiometricVector{1, 0, 1}, DeltaG: 0},
		{Reactants: StoichiometricVector{1, 0, 1}, Products: StoichiometricVector{0, 2, 0}, DeltaG: 0},
		{Reactants: StoichiometricVector{1, 1, 0}, Products: StoichiometricVector{0, 0, 1}, DeltaG: -15},
		{Reactants: StoichiometricVector{2, 0, 0}, Products: StoichiometricVector{0, 1, 0}, DeltaG: -15},
	}
	assert.Equal(t, ReactionSet(want), set)
}

func TestBuild_Conservation(t *testing.T) {
	mass := []float64{2, 3, 5, 7, 1}
	charge := []int{1, -1, 0, 1, 0}
	freeEnergy := []float64{4, 9, 1, 16, 0}

	for _, withCharge := range []bool{false, true} {
		var opts []BuildOption
		if withCharge {
			opts = append(opts, WithCharge(charge))
		}
		set, err := Build(mass, freeEnergy, 3, opts...)
		require.NoError(t, err)
		require.NotEmpty(t, set)

		for _, r := range set {
			assert.False(t, r.Reactants.Equal(r.Products))

			mr, _ := Dot(mass, r.Reactants)
			mp, _ := Dot(mass, r.Products)
			assert.Equal(t, mr, mp)

			if withCharge {
				cr, _ := Dot(charge, r.Reactants)
				cp, _ := Dot(charge, r.Products)
				assert.Equal(t, cr, cp)
			}

			gr, _ := Dot(freeEnergy, r.Reactants)
			gp, _ := Dot(freeEnergy, r.Products)
			assert.Equal(t, gp-gr, r.DeltaG)
		}
	}
}

func TestBuild_ChargeFilterNarrowsSet(t *testing.T) {
	mass := []float64{1, 2, 3}
	freeEnergy := []float64{0, 0, 0}

	massOnly, err := Build(mass, freeEnergy, 2)
	require.NoError(t, err)

	// C carries a charge A + B cannot balance.
	charged, err := Build(mass, freeEnergy, 2, WithCharge([]int{0, 0, 1}))
	require.NoError(t, err)

	assert.Less(t, len(charged), len(massOnly))
	assert.False(t, charged.Contains(StoichiometricVector{1, 1, 0}, StoichiometricVector{0, 0, 1}))
	assert.True(t, charged.Contains(StoichiometricVector{2, 0, 0}, StoichiometricVector{0, 1, 0}))
}

func TestBuild_Symmetry(t *testing.T) {
	set, err := Build([]float64{1, 2, 3, 4}, []float64{1, 2, 3, 4}, 3)
	require.NoError(t, err)

	for i, r := range set {
		rev, ok := set.Reverse(i)
		require.True(t, ok, "missing reverse of %s -> %s", r.Reactants, r.Products)
		assert.Equal(t, -r.DeltaG, rev.DeltaG)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	mass := []float64{3, 1, 4, 1, 5}
	freeEnergy := []float64{9, 2, 6, 5, 3}
	charge := []int{1, 0, -1, 0, 1}

	a, err := Build(mass, freeEnergy, 2, WithCharge(charge))
	require.NoError(t, err)
	b, err := Build(mass, freeEnergy, 2, WithCharge(charge))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_SingleSpecies(t *testing.T) {
	for maxOrder := 1; maxOrder <= 4; maxOrder++ {
		set, err := Build([]float64{5}, []float64{1}, maxOrder)
		require.NoError(t, err)
		assert.Empty(t, set)
	}
}

func TestBuild_FractionalMassesCompareExactly(t *testing.T) {
	set, err := Build([]float64{0.1, 0.2, 0.3}, []float64{0, 0, 0}, 2)
	require.NoError(t, err)
	assert.False(t, set.Contains(StoichiometricVector{1, 1, 0}, StoichiometricVector{0, 0, 1}))
	assert.True(t, set.Contains(StoichiometricVector{2, 0, 0}, StoichiometricVector{0, 1, 0}))

	dyadic, err := Build([]float64{0.25, 0.5, 0.75}, []float64{0, 0, 0}, 2)
	require.NoError(t, err)
	assert.True(t, dyadic.Contains(StoichiometricVector{1, 1, 0}, StoichiometricVector{0, 0, 1}))
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build([]float64{1, 2}, []float64{1}, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Build([]float64{1, 2}, []float64{1, 2}, 2, WithCharge([]int{1}))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Build([]float64{1, 2}, []float64{1, 2}, 2, WithCharge(nil))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Build([]float64{1, 2}, []float64{1, 2}, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Build(nil, nil, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReactionSet_Lookup(t *testing.T) {
	set, err := Build([]float64{1, 2}, []float64{0, 3}, 2)
	require.NoError(t, err)

	assert.Equal(t, -1, set.Index(StoichiometricVector{1, 0}, StoichiometricVector{0, 1}))
	i := set.Index(StoichiometricVector{2, 0}, StoichiometricVector{0, 1})
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 3.0, set[i].DeltaG)

	r, p := set[i].Orders()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, p)

	_, ok := set.Reverse(len(set))
	assert.False(t, ok)
}
