package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrespondCommand_ME11(t *testing.T) {
	out, err := execute(t, "--format", "json", "correspond", "0x2400922b", "--layer", "1")
	require.NoError(t, err)
	assertGolden(t, "correspond_me11", out)
}

func TestCorrespondCommand_ME21BothLayers(t *testing.T) {
	// ME2/1 chamber 5, +z
	out, err := execute(t, "--format", "json", "correspond", "604021288", "--both-layers")
	require.NoError(t, err)
	assertGolden(t, "correspond_me21_both_layers", out)
}

func TestCorrespondCommand_UncoveredRing(t *testing.T) {
	// ME3/1 chamber 1 has no GEM coverage; the result is empty, not an error.
	out, err := execute(t, "--format", "json", "correspond", "0x2400b208")
	require.NoError(t, err)
	assertGolden(t, "correspond_uncovered", out)
}

func TestCorrespondCommand_Text(t *testing.T) {
	out, err := execute(t, "correspond", "0x2400922b")
	require.NoError(t, err)
	assert.Contains(t, out, "0x2400922b (ME1/b) layout ge11-ge21")
	assert.Contains(t, out, "0x281128a0")

	out, err = execute(t, "correspond", "0x2400b208")
	require.NoError(t, err)
	assert.Contains(t, out, "No overlapping GEM chambers")
}

func TestCorrespondCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
		exit int
	}{
		{
			name: "GEM id as source",
			args: []string{"correspond", "0x281128a0"},
			code: ErrCodeSubsystemMismatch,
			exit: ExitFailure,
		},
		{
			name: "layer 3",
			args: []string{"correspond", "0x2400922b", "--layer", "3"},
			code: ErrCodeInvalidGeometry,
			exit: ExitFailure,
		},
		{
			// ME2/1 has 18 chambers
			name: "chamber beyond ring",
			args: []string{"correspond", "0x2400a298"},
			code: ErrCodeInvalidGeometry,
			exit: ExitFailure,
		},
		{
			name: "unparseable id",
			args: []string{"correspond", "me11"},
			code: ErrCodeParse,
			exit: ExitCommandError,
		},
		{
			name: "missing layout file",
			args: []string{"--layout", "does-not-exist.yaml", "correspond", "0x2400922b"},
			code: ErrCodeLayout,
			exit: ExitCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"--format", "json"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, tt.exit, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(out), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestCorrespondCommand_LayerExcludesBothLayers(t *testing.T) {
	_, err := execute(t, "correspond", "0x2400922b", "--layer", "2", "--both-layers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestCorrespondCommand_CustomLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: ge21-fine
csc:
  - {station: 2, ring: 1, chambers: 18}
gem:
  - {station: 2, ring: 1, chambers: 27}
overlaps:
  - csc: {station: 2, ring: 1}
    gem: {station: 2, ring: 1}
`), 0o644))

	// ME2/1 chamber 2 of 18 covers GE2/1 chambers 2 and 3 of 27.
	out, err := execute(t, "--format", "json", "--layout", path, "correspond", "0x2400a210")
	require.NoError(t, err)

	var resp struct {
		Data CorrespondResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ge21-fine", resp.Data.Layout)
	require.Len(t, resp.Data.Layers, 1)

	var chambers []int
	for _, target := range resp.Data.Layers[0].Targets {
		chambers = append(chambers, target.Chamber)
	}
	assert.Equal(t, []int{2, 3}, chambers)

	// ME1/1 is not covered by this layout.
	out, err = execute(t, "--format", "json", "--layout", path, "correspond", "0x2400922b")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Empty(t, resp.Data.Layers[0].Targets)
}
