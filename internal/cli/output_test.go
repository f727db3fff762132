package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/muonid/internal/detid"
	"github.com/roach88/muonid/internal/geometry"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	data := map[string]string{"result": "success"}
	err := formatter.Success(data)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("E003", "chamber out of range", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E003", resp.Error.Code)
	assert.Equal(t, "chamber out of range", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	err := formatter.Error("E002", "bad id", map[string]string{"arg": "xyz"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E002]: bad id")
	assert.Contains(t, buf.String(), "Details:")
}

func TestExitError(t *testing.T) {
	inner := errors.New("boom")
	err := WrapExitError(ExitCommandError, "E006", inner)

	assert.Equal(t, "E006: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, "msg", NewExitError(ExitFailure, "msg").Error())
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{
			name: "invalid geometry",
			err:  detid.NewInvalidGeometry(detid.SubsystemCSC, "chamber", 40, "too large"),
			code: ErrCodeInvalidGeometry,
			exit: ExitFailure,
		},
		{
			name: "subsystem mismatch",
			err:  &detid.GeometryError{Code: detid.ErrCodeSubsystemMismatch, Subsystem: detid.SubsystemCSC},
			code: ErrCodeSubsystemMismatch,
			exit: ExitFailure,
		},
		{
			name: "malformed",
			err:  fmt.Errorf("decode: %w", &detid.GeometryError{Code: detid.ErrCodeMalformed}),
			code: ErrCodeMalformed,
			exit: ExitFailure,
		},
		{
			name: "layout validation",
			err:  geometry.ValidationErrors{{Field: "name", Message: "required", Code: geometry.ErrLayoutNameEmpty}},
			code: ErrCodeLayout,
			exit: ExitCommandError,
		},
		{
			name: "missing layout file",
			err:  fmt.Errorf("load layout: %w", os.ErrNotExist),
			code: ErrCodeLayout,
			exit: ExitCommandError,
		},
		{
			name: "parse",
			err:  &parseError{err: errors.New("not a number")},
			code: ErrCodeParse,
			exit: ExitCommandError,
		},
		{
			name: "other",
			err:  errors.New("unexpected"),
			code: ErrCodeGeneric,
			exit: ExitCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit, _ := classifyError(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.exit, exit)
		})
	}
}

func TestFailReportsFieldDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "json", Writer: buf}

	err := formatter.Fail(detid.NewInvalidGeometry(detid.SubsystemCSC, "chamber", 40, "too large"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Error struct {
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, ErrCodeInvalidGeometry, resp.Error.Code)
	assert.Equal(t, "chamber", resp.Error.Details["field"])
	assert.EqualValues(t, 40, resp.Error.Details["value"])
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"604017195", "0x281128a0"})
	require.NoError(t, err)
	assert.Equal(t, []detid.Raw{0x2400922B, 0x281128A0}, ids)

	_, err = parseIDs([]string{"0x2400922b", "nope"})
	var pe *parseError
	assert.ErrorAs(t, err, &pe)
}
