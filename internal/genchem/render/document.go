package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/daniacca/genchem/internal/genchem"
	"gopkg.in/yaml.v3"
)

// Document is the machine-readable form of a chemistry.
type Document struct {
	Name        string            `json:"name" yaml:"name"`
	Seed        *uint64           `json:"seed,omitempty" yaml:"seed,omitempty"`
	MaxOrder    int               `json:"max_order" yaml:"max_order"`
	TrackCharge bool              `json:"track_charge" yaml:"track_charge"`
	Temperature float64           `json:"temperature" yaml:"temperature"`
	Species     []genchem.Species `json:"species" yaml:"species"`
	Reactions   []ReactionEntry   `json:"reactions" yaml:"reactions"`
}

// ReactionEntry is one reaction with its rendered equation and probability.
type ReactionEntry struct {
	Reactants   genchem.StoichiometricVector `json:"reactants" yaml:"reactants,flow"`
	Products    genchem.StoichiometricVector `json:"products" yaml:"products,flow"`
	Equation    string                       `json:"equation" yaml:"equation"`
	DeltaG      float64                      `json:"delta_g" yaml:"delta_g"`
	Probability float64                      `json:"probability" yaml:"probability"`
}

// NewDocument flattens chem, estimating probabilities with est. A zero
// Estimator falls back to genchem.DefaultEstimator.
func NewDocument(chem *genchem.Chemistry, est genchem.Estimator) (Document, error) {
	if chem == nil {
		return Document{}, fmt.Errorf("%w: nil chemistry", genchem.ErrInvalidArgument)
	}
	est = estimatorOrDefault(est)
	probs, err := est.Estimate(chem.Reactions)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Name:        chem.Name,
		Seed:        chem.Seed,
		MaxOrder:    chem.MaxOrder,
		TrackCharge: chem.TrackCharge,
		Temperature: est.Temperature,
		Species:     chem.System.All(),
		Reactions:   make([]ReactionEntry, len(chem.Reactions)),
	}
	for i, r := range chem.Reactions {
		doc.Reactions[i] = ReactionEntry{
			Reactants:   r.Reactants,
			Products:    r.Products,
			Equation:    Equation(chem.System, r, nil),
			DeltaG:      r.DeltaG,
			Probability: probs[i],
		}
	}
	return doc, nil
}

// WriteJSON writes the indented JSON document of chem.
func WriteJSON(w io.Writer, chem *genchem.Chemistry, est genchem.Estimator) error {
	doc, err := NewDocument(chem, est)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteYAML writes the YAML document of chem.
func WriteYAML(w io.Writer, chem *genchem.Chemistry, est genchem.Estimator) error {
	doc, err := NewDocument(chem, est)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func estimatorOrDefault(est genchem.Estimator) genchem.Estimator {
	if est == (genchem.Estimator{}) {
		return genchem.DefaultEstimator()
	}
	return est
}
