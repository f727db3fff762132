package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/muonid/internal/chamber"
	"github.com/roach88/muonid/internal/detid"
)

// ClassifyResult is the chamber type of one identifier.
type ClassifyResult struct {
	ID        detid.Raw `json:"id"`
	Hex       string    `json:"hex"`
	Subsystem string    `json:"subsystem"`
	Type      string    `json:"type"`
	Parent    string    `json:"parent"`
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <id>...",
		Short: "Classify identifiers into chamber types",
		Long: `Classify one or more packed muon identifiers into their chamber type
(for example ME1/b, GE2/1, RB-1/2) and the coarser group the type belongs to.

Fails on the first identifier outside its subsystem's geometry domain.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(rootOpts, args, cmd)
		},
	}
}

func runClassify(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ids, err := parseIDs(args)
	if err != nil {
		return formatter.Fail(err)
	}

	results := make([]ClassifyResult, 0, len(ids))
	for _, id := range ids {
		t, err := chamber.ClassifyID(id)
		if err != nil {
			return formatter.Fail(fmt.Errorf("classify %s: %w", id, err))
		}
		opts.logger().Debug("classified", zap.Stringer("id", id), zap.String("type", t.Label()))
		results = append(results, ClassifyResult{
			ID:        id,
			Hex:       id.String(),
			Subsystem: t.Subsystem().String(),
			Type:      t.Label(),
			Parent:    t.Parent().Label(),
		})
	}

	if formatter.Format == "json" {
		return formatter.Success(results)
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{r.Hex, r.Subsystem, r.Type, r.Parent}
	}
	fmt.Fprintln(formatter.Writer, renderTable(
		[]string{"Hex", "Subsystem", "Type", "Parent"},
		rows,
		nil,
	))
	return nil
}
