package genchem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpeciesConfig describes one species in a system file.
type SpeciesConfig struct {
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Mass        float64 `json:"mass" yaml:"mass" validate:"gt=0"`
	Charge      int     `json:"charge,omitempty" yaml:"charge,omitempty"`
	FreeEnergy  float64 `json:"free_energy" yaml:"free_energy"`
	Inert       bool    `json:"inert,omitempty" yaml:"inert,omitempty"`
	Color       string  `json:"color,omitempty" yaml:"color,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// SystemConfig is the file form of a species system and its build settings.
// A zero MaxOrder means DefaultMaxOrder.
type SystemConfig struct {
	Name        string          `json:"name" yaml:"name" validate:"required"`
	MaxOrder    int             `json:"max_order,omitempty" yaml:"max_order,omitempty" validate:"gte=0"`
	TrackCharge bool            `json:"track_charge,omitempty" yaml:"track_charge,omitempty"`
	Species     []SpeciesConfig `json:"species" yaml:"species" validate:"required,min=1,dive"`
}

// LoadSystemConfig reads a SystemConfig from path. Files ending in .yaml or
// .yml are decoded as YAML, anything else as JSON. The result is validated.
func LoadSystemConfig(path string) (SystemConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SystemConfig{}, fmt.Errorf("reading system file: %w", err)
	}

	var cfg SystemConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SystemConfig{}, fmt.Errorf("parsing system YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return SystemConfig{}, fmt.Errorf("parsing system JSON: %w", err)
		}
	}

	if err := ValidateSystemConfig(cfg); err != nil {
		return SystemConfig{}, fmt.Errorf("validating system: %w", err)
	}
	return cfg, nil
}

// BuildSystemFromConfig converts a validated config into a System.
func BuildSystemFromConfig(cfg SystemConfig) (*System, error) {
	species := make([]Species, len(cfg.Species))
	for i, sc := range cfg.Species {
		species[i] = Species{
			Name:        SpeciesName(sc.Name),
			Mass:        sc.Mass,
			Charge:      sc.Charge,
			FreeEnergy:  sc.FreeEnergy,
			Inert:       sc.Inert,
			Color:       sc.Color,
			Description: sc.Description,
		}
	}
	return NewSystem(cfg.Name, species...)
}

// BuildChemistryFromConfig validates cfg and builds its complete chemistry.
func BuildChemistryFromConfig(cfg SystemConfig, logger Logger) (*Chemistry, error) {
	if err := ValidateSystemConfig(cfg); err != nil {
		return nil, err
	}
	sys, err := BuildSystemFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("building system: %w", err)
	}
	return NewChemistryWithLogger(sys, ChemistryOptions{
		Name:        cfg.Name,
		MaxOrder:    cfg.MaxOrder,
		TrackCharge: cfg.TrackCharge,
	}, logger)
}

// ConfigFromChemistry returns the file form of a chemistry's system.
func ConfigFromChemistry(chem *Chemistry) SystemConfig {
	cfg := SystemConfig{
		Name:        chem.Name,
		MaxOrder:    chem.MaxOrder,
		TrackCharge: chem.TrackCharge,
		Species:     make([]SpeciesConfig, 0, chem.System.Len()),
	}
	for _, sp := range chem.System.All() {
		cfg.Species = append(cfg.Species, SpeciesConfig{
			Name:        string(sp.Name),
			Mass:        sp.Mass,
			Charge:      sp.Charge,
			FreeEnergy:  sp.FreeEnergy,
			Inert:       sp.Inert,
			Color:       sp.Color,
			Description: sp.Description,
		})
	}
	return cfg
}
