package notifiers

import (
	"testing"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/stretchr/testify/require"
)

func testEvent(t *testing.T) genchem.ChemistryEvent {
	t.Helper()
	sys, err := genchem.NewSystem("abc",
		genchem.Species{Name: "A", Mass: 1},
		genchem.Species{Name: "B", Mass: 2},
	)
	require.NoError(t, err)
	chem, err := genchem.NewChemistry(sys, genchem.ChemistryOptions{})
	require.NoError(t, err)
	return genchem.NewChemistryEvent(genchem.EventCreated, "chem-1", chem)
}
