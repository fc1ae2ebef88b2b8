// Package render turns a genchem.Chemistry into text for people and
// machines: the element and reaction tables of the generator script, JSON and
// YAML documents, and the ele/rxn line format read by the ChemSim lattice
// simulator.
//
// Zero coefficients and inert carrier species never appear in an equation.
// A side left empty by that rule prints as "*".
package render
