package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/daniacca/genchem/internal/genchem"
)

// WriteText writes the seed banner, the element table and the reaction table.
func WriteText(w io.Writer, chem *genchem.Chemistry, opts Options) error {
	var style *Palette
	if opts.Color {
		style = NewPalette(w)
	}

	bw := bufio.NewWriter(w)
	if opts.ShowSeed && chem.Seed != nil {
		fmt.Fprintf(bw, "%s\n\n", style.Title(fmt.Sprintf(":: SEED = %d ::", *chem.Seed)))
	}

	fmt.Fprintf(bw, "%s\n", style.Title(":: ELEMENT TABLE ::"))
	writeElements(bw, chem, style)

	fmt.Fprintf(bw, "\n%s\n", style.Title(":: REACTION TABLE ::"))
	for _, r := range chem.Reactions {
		fmt.Fprintf(bw, "%s\t  ΔG = %s\n", Equation(chem.System, r, style), number(r.DeltaG))
	}
	return bw.Flush()
}

func writeElements(w io.Writer, chem *genchem.Chemistry, style *Palette) {
	for _, sp := range chem.System.All() {
		if sp.Inert {
			continue
		}
		name := style.Name(sp)
		if chem.TrackCharge {
			fmt.Fprintf(w, "%s\tMass: %s \tCharge: %d \tFree Energy: %s\n",
				name, number(sp.Mass), sp.Charge, number(sp.FreeEnergy))
		} else {
			fmt.Fprintf(w, "%s\tMass: %s \tFree Energy: %s\n",
				name, number(sp.Mass), number(sp.FreeEnergy))
		}
	}
}
