// Package chamber classifies decoded muon identifiers into named chamber
// types.
//
// Each subsystem has its own closed enumeration (CSCType, GEMType, RPCType,
// DTType, ME0Type); values of different subsystems never compare equal.
// All of them satisfy the sealed Type interface. Labels are a pure function
// of the enum value, so a label and its type can never disagree.
//
// Every function in this package is pure and safe for concurrent use.
package chamber
