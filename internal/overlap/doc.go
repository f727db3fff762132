// Package overlap derives the GEM chambers that geometrically overlap a
// CSC chamber.
//
// A Resolver is built once from a geometry.Layout and is immutable
// afterwards; Correspond is a pure function of its arguments and safe for
// concurrent use.
//
// Results are Targets: zero, one or two GEM identifiers in ascending
// chamber order. Zero means the CSC ring has no GEM coverage, which is an
// expected outcome and not an error. Two means the CSC chamber straddles a
// GEM chamber boundary.
package overlap
