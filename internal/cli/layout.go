package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/muonid/internal/geometry"
)

// LayoutResult describes the selected layout.
type LayoutResult struct {
	*geometry.Layout
	Fingerprint string `json:"fingerprint"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Validate and show the chamber layout",
		Long: `Validate the chamber layout selected by --layout (or the built-in one)
and print its rings, overlap rules and content fingerprint.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(rootOpts, cmd)
		},
	}
}

func runLayout(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	l, err := opts.layout()
	if err != nil {
		return formatter.Fail(err)
	}
	// Load has already validated a layout file.
	if opts.LayoutPath == "" {
		if err := geometry.ValidateSchema(l); err != nil {
			return formatter.Fail(err)
		}
		if err := l.Check(); err != nil {
			return formatter.Fail(err)
		}
	}
	fp, err := l.Fingerprint()
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Format == "json" {
		return formatter.Success(LayoutResult{Layout: l, Fingerprint: fp})
	}

	fmt.Fprintf(formatter.Writer, "✓ Layout %s\n", l.Name)
	fmt.Fprintf(formatter.Writer, "Fingerprint: %s\n\n", fp)

	var rows [][]string
	for _, c := range l.CSC {
		rows = append(rows, []string{"CSC", fmt.Sprintf("ME%d/%d", c.Station, c.Ring), strconv.Itoa(c.Chambers)})
	}
	for _, c := range l.GEM {
		rows = append(rows, []string{"GEM", fmt.Sprintf("GE%d/1 ring %d", c.Station, c.Ring), strconv.Itoa(c.Chambers)})
	}
	fmt.Fprintln(formatter.Writer, renderTable(
		[]string{"Subsystem", "Ring", "Chambers"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))

	fmt.Fprintln(formatter.Writer, "\nOverlaps:")
	for _, o := range l.Overlaps {
		fmt.Fprintf(formatter.Writer, "  ME%d/%d → GE%d/1 ring %d\n", o.CSC.Station, o.CSC.Ring, o.GEM.Station, o.GEM.Ring)
	}
	return nil
}
