package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daniacca/genchem/internal/genchem"
)

// Format selects an output encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatChemSim Format = "chemsim"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatChemSim}

// ParseFormat maps a case-insensitive name to a Format. "rxn" is accepted as
// an alias of chemsim.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "chemsim", "rxn":
		return FormatChemSim, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", genchem.ErrInvalidArgument, s)
	}
}

// ContentType returns the HTTP media type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Options controls rendering.
type Options struct {
	Format    Format
	Color     bool // style species names; text format only
	ShowSeed  bool // print the ":: SEED ::" banner when the seed is known
	Estimator genchem.Estimator
}

// DefaultOptions renders plain text with the default estimator.
func DefaultOptions() Options {
	return Options{
		Format:    FormatText,
		ShowSeed:  true,
		Estimator: genchem.DefaultEstimator(),
	}
}

// Write renders chem to w in the requested format.
func Write(w io.Writer, chem *genchem.Chemistry, opts Options) error {
	if chem == nil {
		return fmt.Errorf("%w: nil chemistry", genchem.ErrInvalidArgument)
	}
	switch opts.Format {
	case FormatText, "":
		return WriteText(w, chem, opts)
	case FormatJSON:
		return WriteJSON(w, chem, opts.Estimator)
	case FormatYAML:
		return WriteYAML(w, chem, opts.Estimator)
	case FormatChemSim:
		return WriteChemSim(w, chem, opts.Estimator)
	default:
		return fmt.Errorf("%w: unknown format %q", genchem.ErrInvalidArgument, opts.Format)
	}
}

// Side renders one side of a reaction, e.g. "2 A + B". Species with a zero
// coefficient or marked inert are skipped; an empty result is "*".
func Side(sys *genchem.System, v genchem.StoichiometricVector, style *Palette) string {
	var terms []string
	for i, c := range v {
		if c == 0 {
			continue
		}
		sp := sys.Species(i)
		if sp.Inert {
			continue
		}
		name := style.Name(sp)
		if c == 1 {
			terms = append(terms, name)
		} else {
			terms = append(terms, strconv.Itoa(c)+" "+name)
		}
	}
	if len(terms) == 0 {
		return "*"
	}
	return strings.Join(terms, " + ")
}

// Equation renders a reaction in arrow notation, e.g. "2 A + B -> C".
func Equation(sys *genchem.System, r genchem.Reaction, style *Palette) string {
	return Side(sys, r.Reactants, style) + " -> " + Side(sys, r.Products, style)
}

// number prints integral values without a fraction and others in shortest form.
func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
