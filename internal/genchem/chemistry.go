package genchem

import (
	"fmt"
	"time"
)

// ChemistryOptions controls how a system's reactions are built.
type ChemistryOptions struct {
	Name        string
	MaxOrder    int // zero means DefaultMaxOrder
	TrackCharge bool
	Seed        *uint64 // recorded for generated systems
}

// Chemistry is a species system together with its complete reaction set.
type Chemistry struct {
	Name        string
	System      *System
	MaxOrder    int
	TrackCharge bool
	Seed        *uint64
	Reactions   ReactionSet
}

// NewChemistry builds the reaction set of sys.
func NewChemistry(sys *System, opts ChemistryOptions) (*Chemistry, error) {
	return NewChemistryWithLogger(sys, opts, nil)
}

// NewChemistryWithLogger is NewChemistry with build timing reported to logger.
func NewChemistryWithLogger(sys *System, opts ChemistryOptions, logger Logger) (*Chemistry, error) {
	logger = orNoOp(logger)
	if sys == nil {
		return nil, fmt.Errorf("%w: nil system", ErrInvalidArgument)
	}

	maxOrder := opts.MaxOrder
	if maxOrder == 0 {
		maxOrder = DefaultMaxOrder
	}
	name := opts.Name
	if name == "" {
		name = sys.Name
	}

	var buildOpts []BuildOption
	if opts.TrackCharge {
		buildOpts = append(buildOpts, WithCharge(sys.Charges()))
	}

	start := time.Now()
	reactions, err := Build(sys.Masses(), sys.FreeEnergies(), maxOrder, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("building reactions: %w", err)
	}
	logger.Debugf("Reactions built: name=%s species=%d max_order=%d charge=%t candidates=%d reactions=%d elapsed=%s",
		name, sys.Len(), maxOrder, opts.TrackCharge, EnumerationCount(sys.Len(), maxOrder), len(reactions), time.Since(start))

	return &Chemistry{
		Name:        name,
		System:      sys,
		MaxOrder:    maxOrder,
		TrackCharge: opts.TrackCharge,
		Seed:        opts.Seed,
		Reactions:   reactions,
	}, nil
}

// GenerateChemistry draws a system from a seeded generator and builds it.
func GenerateChemistry(name string, seed uint64, cfg GeneratorConfig, maxOrder int, logger Logger) (*Chemistry, error) {
	sys, err := GenerateSystem(name, seed, cfg)
	if err != nil {
		return nil, err
	}
	return NewChemistryWithLogger(sys, ChemistryOptions{
		Name:        name,
		MaxOrder:    maxOrder,
		TrackCharge: cfg.TrackCharge,
		Seed:        &seed,
	}, logger)
}
