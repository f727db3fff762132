package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand_JSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "decode", "0x2400922b")
	require.NoError(t, err)
	assertGolden(t, "decode_csc", out)
}

func TestDecodeCommand_Text(t *testing.T) {
	out, err := execute(t, "decode", "604017195", "0x281128a0")
	require.NoError(t, err)

	assert.Contains(t, out, "0x2400922b")
	assert.Contains(t, out, "endcap=1 station=1 ring=1 chamber=5 layer=3")
	assert.Contains(t, out, "GEM")
	assert.Contains(t, out, "region=1 station=1 ring=1 layer=1 chamber=5 roll=0")
}

func TestDecodeCommand_EverySubsystem(t *testing.T) {
	// One id per subsystem, in subsystem order DT, CSC, RPC, GEM, ME0.
	args := []string{"--format", "json", "decode",
		"0x22003000", "0x24008000", "0x26008000", "0x28100000", "0x2a008000"}
	out, err := execute(t, args...)
	require.NoError(t, err)

	var resp struct {
		Status string         `json:"status"`
		Data   []DecodeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 5)

	var subsystems []string
	for _, r := range resp.Data {
		subsystems = append(subsystems, r.Subsystem)
	}
	assert.Equal(t, []string{"DT", "CSC", "RPC", "GEM", "ME0"}, subsystems)
}

func TestDecodeCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		code string
		exit int
	}{
		{name: "not a number", arg: "ME1/1", code: ErrCodeParse, exit: ExitCommandError},
		{name: "wider than 32 bits", arg: "0x1ffffffff", code: ErrCodeParse, exit: ExitCommandError},
		{name: "tracker id", arg: "0x12000000", code: ErrCodeMalformed, exit: ExitFailure},
		{name: "binary literal", arg: "0b101", code: ErrCodeParse, exit: ExitCommandError},
		{name: "bit outside the CSC layout", arg: "0x2410922b", code: ErrCodeMalformed, exit: ExitFailure},
		// CSC station 1 ring 7
		{name: "corrupt field", arg: "0x24009e00", code: ErrCodeInvalidGeometry, exit: ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "--format", "json", "decode", tt.arg)
			require.Error(t, err)
			assert.Equal(t, tt.exit, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
