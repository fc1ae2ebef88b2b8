package genchem

import "errors"

var (
	// ErrInvalidArgument reports a non-positive species count or reaction order,
	// or any other argument outside its allowed range.
	ErrInvalidArgument = errors.New("genchem: invalid argument")

	// ErrDimensionMismatch reports attribute vectors of unequal length.
	ErrDimensionMismatch = errors.New("genchem: dimension mismatch")

	// ErrChemistryNotFound is returned by the manager for unknown ids.
	ErrChemistryNotFound = errors.New("genchem: chemistry not found")
)
