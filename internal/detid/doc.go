// Package detid encodes and decodes packed muon detector identifiers.
//
// This package is the foundation layer: chamber, geometry and overlap all
// import detid; detid imports nothing internal.
//
// Raw layout (low bits to high):
//
//	 0-24: subsystem fields (see the per-subsystem structs)
//	25-27: subsystem (DT=1, CSC=2, RPC=3, GEM=4, ME0=5)
//	28-31: detector, always 2 (muon)
//
// A zero station, ring, chamber, layer, roll or sector is the wildcard
// "whole parent" value. Signed quantities (region, wheel, RPC ring) are
// stored with a fixed positive offset. Decoding rejects an identifier with
// any bit set outside its subsystem's fields as MALFORMED_ID.
package detid
