package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/daniacca/genchem/internal/genchem"
)

// WriteChemSim writes the ChemSim input format: a comment header, one
// "ele <name> <color>" line per reactive species and one
// "rxn <probability> <equation>" line per reaction.
func WriteChemSim(w io.Writer, chem *genchem.Chemistry, est genchem.Estimator) error {
	if chem == nil {
		return fmt.Errorf("%w: nil chemistry", genchem.ErrInvalidArgument)
	}
	est = estimatorOrDefault(est)
	probs, err := est.Estimate(chem.Reactions)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", chem.Name)
	if chem.Seed != nil {
		fmt.Fprintf(bw, "# seed %d\n", *chem.Seed)
	}
	fmt.Fprintf(bw, "# T = %s K\n\n", number(est.Temperature))

	for _, sp := range chem.System.All() {
		if sp.Inert {
			continue
		}
		color := sp.Color
		if color == "" {
			color = "white"
		}
		fmt.Fprintf(bw, "ele %s %s\n", sp.Name, color)
	}
	bw.WriteString("\n")

	for i, r := range chem.Reactions {
		fmt.Fprintf(bw, "rxn %s %s\n", strconv.FormatFloat(probs[i], 'g', 6, 64), Equation(chem.System, r, nil))
	}
	return bw.Flush()
}
