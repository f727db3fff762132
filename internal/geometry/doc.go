// Package geometry holds the chamber-count layout consumed by the
// correspondence resolver.
//
// A Layout is static configuration: per-ring chamber counts for the CSC
// and GEM subsystems and the rules naming which CSC ring overlaps which
// GEM ring. It is injected into the resolver rather than read from
// package state, so alternative layouts (future instrumentation, test
// geometries) can be exercised side by side.
//
// Layouts come from Default or from YAML files checked in three stages:
// strict YAML decoding, the CUE schema in schema.go, then Check.
package geometry
