package detid

import (
	"errors"
	"fmt"
)

// GeometryError reports an identifier or field combination outside the
// valid domain of its subsystem.
type GeometryError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Subsystem is the subsystem the caller claimed, if known.
	Subsystem Subsystem

	// Field names the offending field ("station", "ring", "layer", ...).
	Field string

	// Value is the offending field value.
	Value int

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes geometry errors.
type ErrorCode string

const (
	// ErrCodeInvalidGeometry indicates a field value or combination outside
	// the subsystem's domain.
	ErrCodeInvalidGeometry ErrorCode = "INVALID_GEOMETRY"

	// ErrCodeSubsystemMismatch indicates an id of the wrong subsystem.
	ErrCodeSubsystemMismatch ErrorCode = "SUBSYSTEM_MISMATCH"

	// ErrCodeMalformed indicates the detector or subsystem bits are not muon.
	ErrCodeMalformed ErrorCode = "MALFORMED_ID"
)

// Error implements the error interface.
func (e *GeometryError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %s=%d: %s", e.Code, e.Subsystem, e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidGeometry returns true if err is an INVALID_GEOMETRY error.
// Uses errors.As to handle wrapped errors.
func IsInvalidGeometry(err error) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeInvalidGeometry
	}
	return false
}

// IsSubsystemMismatch returns true if err is a SUBSYSTEM_MISMATCH error.
func IsSubsystemMismatch(err error) bool {
	var ge *GeometryError
	if errors.As(err, &ge) {
		return ge.Code == ErrCodeSubsystemMismatch
	}
	return false
}

func invalidField(s Subsystem, name string, v, lo, hi int) *GeometryError {
	return &GeometryError{
		Code:      ErrCodeInvalidGeometry,
		Subsystem: s,
		Field:     name,
		Value:     v,
		Message:   fmt.Sprintf("must be in [%d, %d]", lo, hi),
	}
}

// NewInvalidGeometry creates an INVALID_GEOMETRY error for a field that is
// in range on its own but invalid in combination with others.
func NewInvalidGeometry(s Subsystem, name string, v int, message string) *GeometryError {
	return &GeometryError{
		Code:      ErrCodeInvalidGeometry,
		Subsystem: s,
		Field:     name,
		Value:     v,
		Message:   message,
	}
}
