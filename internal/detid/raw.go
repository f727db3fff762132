package detid

import (
	"fmt"
	"strconv"
	"strings"
)

// Raw is a packed detector identifier.
type Raw uint32

// Subsystem is the muon detection technology an identifier belongs to.
type Subsystem uint8

const (
	SubsystemUnknown Subsystem = 0
	SubsystemDT      Subsystem = 1
	SubsystemCSC     Subsystem = 2
	SubsystemRPC     Subsystem = 3
	SubsystemGEM     Subsystem = 4
	SubsystemME0     Subsystem = 5
)

// DetectorMuon is the only detector code this package accepts.
const DetectorMuon = 2

var (
	detectorField  = field{shift: 28, width: 4}
	subsystemField = field{shift: 25, width: 3}
)

func (s Subsystem) String() string {
	switch s {
	case SubsystemDT:
		return "DT"
	case SubsystemCSC:
		return "CSC"
	case SubsystemRPC:
		return "RPC"
	case SubsystemGEM:
		return "GEM"
	case SubsystemME0:
		return "ME0"
	default:
		return fmt.Sprintf("Subsystem(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the five muon subsystems.
func (s Subsystem) Valid() bool {
	return s >= SubsystemDT && s <= SubsystemME0
}

// ParseSubsystem maps a case-insensitive name ("csc", "GEM") to a Subsystem.
func ParseSubsystem(name string) (Subsystem, error) {
	for s := SubsystemDT; s <= SubsystemME0; s++ {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return SubsystemUnknown, fmt.Errorf("unknown subsystem %q", name)
}

// Subsystem returns the subsystem kind, or SubsystemUnknown when r is not
// a muon identifier.
func (r Raw) Subsystem() Subsystem {
	if detectorField.get(r) != DetectorMuon {
		return SubsystemUnknown
	}
	s := Subsystem(subsystemField.get(r))
	if !s.Valid() {
		return SubsystemUnknown
	}
	return s
}

// Is reports whether r belongs to subsystem s.
func (r Raw) Is(s Subsystem) bool {
	return r.Subsystem() == s
}

func (r Raw) String() string {
	return fmt.Sprintf("0x%08x", uint32(r))
}

// Parse reads a decimal or 0x-prefixed hexadecimal identifier.
func Parse(s string) (Raw, error) {
	digits, base := strings.TrimSpace(s), 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits, base = digits[2:], 16
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil {
		return 0, fmt.Errorf("parse detector id %q: %w", s, err)
	}
	return Raw(v), nil
}

// header builds the detector and subsystem bits for a new identifier.
func header(s Subsystem) Raw {
	return detectorField.put(0, DetectorMuon) | subsystemField.put(0, uint32(s))
}

// expect returns a SUBSYSTEM_MISMATCH error unless r decodes to s, and a
// MALFORMED_ID error when r has bits set outside the header and layout.
func expect(r Raw, s Subsystem, layout ...field) error {
	if detectorField.get(r) != DetectorMuon {
		return &GeometryError{
			Code:    ErrCodeMalformed,
			Message: fmt.Sprintf("%s is not a muon detector id", r),
		}
	}
	if got := r.Subsystem(); got != s {
		return &GeometryError{
			Code:      ErrCodeSubsystemMismatch,
			Subsystem: s,
			Message:   fmt.Sprintf("%s is a %s id", r, got),
		}
	}
	used := detectorField.bits() | subsystemField.bits()
	for _, f := range layout {
		used |= f.bits()
	}
	if stray := uint32(r) &^ used; stray != 0 {
		return &GeometryError{
			Code:      ErrCodeMalformed,
			Subsystem: s,
			Message:   fmt.Sprintf("%s has bits 0x%08x outside the %s layout", r, stray, s),
		}
	}
	return nil
}

// Chamber returns the azimuthal index of r: the chamber number for CSC,
// GEM and ME0, the sector for DT and RPC.
func Chamber(r Raw) (int, error) {
	switch r.Subsystem() {
	case SubsystemCSC:
		id, err := DecodeCSC(r)
		return id.Chamber, err
	case SubsystemGEM:
		id, err := DecodeGEM(r)
		return id.Chamber, err
	case SubsystemME0:
		id, err := DecodeME0(r)
		return id.Chamber, err
	case SubsystemDT:
		id, err := DecodeDT(r)
		return id.Sector, err
	case SubsystemRPC:
		id, err := DecodeRPC(r)
		return id.Sector, err
	default:
		return 0, &GeometryError{
			Code:    ErrCodeMalformed,
			Message: fmt.Sprintf("%s is not a muon detector id", r),
		}
	}
}
