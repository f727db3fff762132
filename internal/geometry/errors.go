package geometry

import (
	"fmt"
	"strings"
)

// Layout validation error codes (E200-E299)
const (
	ErrLayoutNameEmpty = "E201" // name is required
	ErrRingOutOfRange  = "E202" // station, ring or chamber count outside the id domain
	ErrDuplicateRing   = "E203" // ring listed twice
	ErrUnknownRing     = "E204" // overlap references a ring without a count
	ErrSpanTooWide     = "E205" // a source chamber would map to more than two targets
	ErrOverlapMissing  = "E206" // no overlap rules
	ErrSchema          = "E210" // CUE schema violation
	ErrDecode          = "E211" // YAML decode failure
)

// ValidationError is one problem found in a layout.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// ValidationErrors collects every problem found in one layout.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
