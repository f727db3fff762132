package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/roach88/muonid/internal/detid"
	"github.com/roach88/muonid/internal/geometry"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Identifier outside its geometry domain
	ExitCommandError = 2 // Command error (unparseable id, bad layout file, bad flags)
)

// Error code constants, unified across all CLI commands.
const (
	ErrCodeGeneric           = "E001" // Generic/unknown error
	ErrCodeParse             = "E002" // Identifier or argument does not parse
	ErrCodeInvalidGeometry   = "E003" // Field combination outside the subsystem domain
	ErrCodeSubsystemMismatch = "E004" // Identifier of the wrong subsystem
	ErrCodeMalformed         = "E005" // Not a muon identifier
	ErrCodeLayout            = "E006" // Layout file invalid or unreadable
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E002", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result. Text output is the caller's job;
// in text mode data is printed with its default format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Fail reports err in the configured format and returns the ExitError the
// command should return.
func (f *OutputFormatter) Fail(err error) error {
	code, exit, details := classifyError(err)
	_ = f.Error(code, err.Error(), details)
	return WrapExitError(exit, code, err)
}

// classifyError maps an error to its CLI error code and exit code.
func classifyError(err error) (code string, exit int, details any) {
	var ge *detid.GeometryError
	if errors.As(err, &ge) {
		switch ge.Code {
		case detid.ErrCodeSubsystemMismatch:
			return ErrCodeSubsystemMismatch, ExitFailure, nil
		case detid.ErrCodeMalformed:
			return ErrCodeMalformed, ExitFailure, nil
		default:
			if ge.Field != "" {
				return ErrCodeInvalidGeometry, ExitFailure, map[string]any{"field": ge.Field, "value": ge.Value}
			}
			return ErrCodeInvalidGeometry, ExitFailure, nil
		}
	}
	var verrs geometry.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrCodeLayout, ExitCommandError, []geometry.ValidationError(verrs)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return ErrCodeLayout, ExitCommandError, nil
	}
	var pe *parseError
	if errors.As(err, &pe) {
		return ErrCodeParse, ExitCommandError, nil
	}
	return ErrCodeGeneric, ExitCommandError, nil
}

// parseError marks bad command-line input.
type parseError struct {
	err error
}

func (e *parseError) Error() string { return e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// parseIDs parses every argument as a detector id.
func parseIDs(args []string) ([]detid.Raw, error) {
	ids := make([]detid.Raw, 0, len(args))
	for _, a := range args {
		id, err := detid.Parse(a)
		if err != nil {
			return nil, &parseError{err: err}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
