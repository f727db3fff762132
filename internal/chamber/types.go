package chamber

import (
	"fmt"

	"github.com/roach88/muonid/internal/detid"
)

// Type is a chamber classification of one subsystem.
type Type interface {
	fmt.Stringer

	// Subsystem is the subsystem the type belongs to.
	Subsystem() detid.Subsystem

	// Label renders the type as a short name such as "ME1/1".
	Label() string

	// Parent is the next coarser grouping, ending at the subsystem's ALL.
	Parent() Type

	// IsAll reports whether this is the subsystem wildcard.
	IsAll() bool

	sealed()
}

// CSCType enumerates cathode strip chamber types.
type CSCType uint8

const (
	CSCAll CSCType = iota
	CSCME11
	CSCME1a
	CSCME1b
	CSCME12
	CSCME13
	CSCME21
	CSCME22
	CSCME31
	CSCME32
	CSCME41
	CSCME42
	CSCME1
	CSCME2
	CSCME3
	CSCME4
	cscTypeCount
)

var cscLabels = [cscTypeCount]string{
	CSCAll:  "ALL",
	CSCME11: "ME1/1",
	CSCME1a: "ME1/a",
	CSCME1b: "ME1/b",
	CSCME12: "ME1/2",
	CSCME13: "ME1/3",
	CSCME21: "ME2/1",
	CSCME22: "ME2/2",
	CSCME31: "ME3/1",
	CSCME32: "ME3/2",
	CSCME41: "ME4/1",
	CSCME42: "ME4/2",
	CSCME1:  "ME1",
	CSCME2:  "ME2",
	CSCME3:  "ME3",
	CSCME4:  "ME4",
}

// cscStationTypes is indexed by station.
var cscStationTypes = [...]CSCType{CSCAll, CSCME1, CSCME2, CSCME3, CSCME4}

func (t CSCType) Subsystem() detid.Subsystem { return detid.SubsystemCSC }
func (t CSCType) IsAll() bool                { return t == CSCAll }
func (t CSCType) String() string             { return t.Label() }
func (CSCType) sealed()                      {}

func (t CSCType) Label() string {
	if t >= cscTypeCount {
		return fmt.Sprintf("CSCType(%d)", uint8(t))
	}
	return cscLabels[t]
}

// Station returns the station of t, 0 for CSCAll.
func (t CSCType) Station() int {
	switch t {
	case CSCME11, CSCME1a, CSCME1b, CSCME12, CSCME13, CSCME1:
		return 1
	case CSCME21, CSCME22, CSCME2:
		return 2
	case CSCME31, CSCME32, CSCME3:
		return 3
	case CSCME41, CSCME42, CSCME4:
		return 4
	default:
		return 0
	}
}

// Parent groups ME1/a and ME1/b under ME1/1, rings under their station
// and stations under ALL.
func (t CSCType) Parent() Type {
	switch t {
	case CSCME1a, CSCME1b:
		return CSCME11
	case CSCME1, CSCME2, CSCME3, CSCME4, CSCAll:
		return CSCAll
	default:
		return cscStationTypes[t.Station()]
	}
}

// GEMType enumerates GEM chamber types.
type GEMType uint8

const (
	GEMAll GEMType = iota
	GEMGE11
	GEMGE21
	gemTypeCount
)

var gemLabels = [gemTypeCount]string{
	GEMAll:  "ALL",
	GEMGE11: "GE1/1",
	GEMGE21: "GE2/1",
}

func (t GEMType) Subsystem() detid.Subsystem { return detid.SubsystemGEM }
func (t GEMType) IsAll() bool                { return t == GEMAll }
func (t GEMType) String() string             { return t.Label() }
func (t GEMType) Parent() Type               { return GEMAll }
func (GEMType) sealed()                      {}

func (t GEMType) Label() string {
	if t >= gemTypeCount {
		return fmt.Sprintf("GEMType(%d)", uint8(t))
	}
	return gemLabels[t]
}

// ME0Type enumerates ME0 chamber types. ME0 has a single station.
type ME0Type uint8

const (
	ME0All ME0Type = iota
	ME0ME0
)

func (t ME0Type) Subsystem() detid.Subsystem { return detid.SubsystemME0 }
func (t ME0Type) IsAll() bool                { return t == ME0All }
func (t ME0Type) String() string             { return t.Label() }
func (t ME0Type) Parent() Type               { return ME0All }
func (ME0Type) sealed()                      {}

func (t ME0Type) Label() string {
	switch t {
	case ME0All:
		return "ALL"
	case ME0ME0:
		return "ME0"
	default:
		return fmt.Sprintf("ME0Type(%d)", uint8(t))
	}
}

// CSCTypes returns every CSCType in enum order.
func CSCTypes() []CSCType {
	out := make([]CSCType, 0, cscTypeCount)
	for t := CSCAll; t < cscTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// GEMTypes returns every GEMType in enum order.
func GEMTypes() []GEMType {
	return []GEMType{GEMAll, GEMGE11, GEMGE21}
}
