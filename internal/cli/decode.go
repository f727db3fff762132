package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/muonid/internal/detid"
)

// DecodeResult is one decoded identifier.
type DecodeResult struct {
	ID        detid.Raw `json:"id"`
	Hex       string    `json:"hex"`
	Subsystem string    `json:"subsystem"`
	Fields    any       `json:"fields"`
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <id>...",
		Short: "Decode packed identifiers into their fields",
		Long: `Decode one or more packed muon identifiers (decimal or 0x hex) and
print the subsystem and field values of each.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args, cmd)
		},
	}
}

func runDecode(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ids, err := parseIDs(args)
	if err != nil {
		return formatter.Fail(err)
	}

	results := make([]DecodeResult, 0, len(ids))
	rows := make([][]string, 0, len(ids))
	for _, id := range ids {
		rec, err := decodeRecord(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("decode %s: %w", id, err))
		}
		opts.logger().Debug("decoded", zap.Stringer("id", id), zap.Stringer("subsystem", rec.subsystem))

		results = append(results, DecodeResult{
			ID:        id,
			Hex:       id.String(),
			Subsystem: rec.subsystem.String(),
			Fields:    rec.value,
		})
		rows = append(rows, []string{fmt.Sprint(uint32(id)), id.String(), rec.subsystem.String(), rec.String()})
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}
	fmt.Fprintln(formatter.Writer, renderTable(
		[]string{"ID", "Hex", "Subsystem", "Fields"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	))
	return nil
}
