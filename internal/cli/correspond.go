package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/muonid/internal/chamber"
	"github.com/roach88/muonid/internal/detid"
	"github.com/roach88/muonid/internal/overlap"
)

// CorrespondOptions holds flags for the correspond command.
type CorrespondOptions struct {
	*RootOptions
	Layer      int
	BothLayers bool
}

// TargetView is one overlapping GEM chamber.
type TargetView struct {
	ID      detid.Raw `json:"id"`
	Hex     string    `json:"hex"`
	Region  int       `json:"region"`
	Station int       `json:"station"`
	Ring    int       `json:"ring"`
	Layer   int       `json:"layer"`
	Chamber int       `json:"chamber"`
}

// LayerTargets holds the targets found for one GEM layer.
type LayerTargets struct {
	Layer   int          `json:"layer"`
	Targets []TargetView `json:"targets"`
}

// CorrespondResult is the output of the correspond command.
type CorrespondResult struct {
	Source     detid.Raw      `json:"source"`
	SourceHex  string         `json:"source_hex"`
	SourceType string         `json:"source_type"`
	Layout     string         `json:"layout"`
	Layers     []LayerTargets `json:"layers"`
}

// NewCorrespondCommand creates the correspond command.
func NewCorrespondCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CorrespondOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "correspond <csc-id>",
		Short: "Find the GEM chambers overlapping a CSC chamber",
		Long: `Resolve the GEM chambers that geometrically overlap a CSC chamber.

A CSC ring without GEM coverage yields an empty target list. A CSC chamber
that straddles a GEM chamber boundary yields two targets in ascending
chamber order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorrespond(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Layer, "layer", "l", 1, "GEM layer (0 for the superchamber)")
	cmd.Flags().BoolVar(&opts.BothLayers, "both-layers", false, "resolve GEM layers 1 and 2")
	cmd.MarkFlagsMutuallyExclusive("layer", "both-layers")

	return cmd
}

func runCorrespond(opts *CorrespondOptions, arg string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ids, err := parseIDs([]string{arg})
	if err != nil {
		return formatter.Fail(err)
	}
	src := ids[0]

	resolver, err := opts.resolver()
	if err != nil {
		return formatter.Fail(err)
	}

	var found []overlap.Targets
	layers := []int{opts.Layer}
	if opts.BothLayers {
		pair, err := resolver.LayerPair(src)
		if err != nil {
			return formatter.Fail(err)
		}
		found = pair[:]
		layers = []int{1, 2}
	} else {
		targets, err := resolver.Correspond(src, opts.Layer)
		if err != nil {
			return formatter.Fail(err)
		}
		found = []overlap.Targets{targets}
	}

	srcType, err := chamber.ClassifyID(src)
	if err != nil {
		return formatter.Fail(err)
	}

	result := CorrespondResult{
		Source:     src,
		SourceHex:  src.String(),
		SourceType: srcType.Label(),
		Layout:     resolver.LayoutName(),
	}
	for i, targets := range found {
		lt := LayerTargets{Layer: layers[i], Targets: []TargetView{}}
		for _, id := range targets.Slice() {
			g, err := detid.DecodeGEM(id)
			if err != nil {
				return formatter.Fail(err)
			}
			lt.Targets = append(lt.Targets, TargetView{
				ID:      id,
				Hex:     id.String(),
				Region:  g.Region,
				Station: g.Station,
				Ring:    g.Ring,
				Layer:   g.Layer,
				Chamber: g.Chamber,
			})
		}
		result.Layers = append(result.Layers, lt)
		opts.logger().Debug("resolved",
			zap.Stringer("source", src),
			zap.Int("layer", lt.Layer),
			zap.Int("targets", len(lt.Targets)),
			zap.String("layout", result.Layout))
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}
	return writeCorrespondText(formatter, result)
}

func writeCorrespondText(formatter *OutputFormatter, result CorrespondResult) error {
	fmt.Fprintf(formatter.Writer, "%s (%s) layout %s\n", result.SourceHex, result.SourceType, result.Layout)

	var rows [][]string
	for _, lt := range result.Layers {
		for _, t := range lt.Targets {
			rows = append(rows, []string{
				strconv.Itoa(lt.Layer), t.Hex,
				strconv.Itoa(t.Region), strconv.Itoa(t.Station), strconv.Itoa(t.Ring), strconv.Itoa(t.Chamber),
			})
		}
	}
	if len(rows) == 0 {
		fmt.Fprintln(formatter.Writer, "No overlapping GEM chambers")
		return nil
	}
	fmt.Fprintln(formatter.Writer, renderTable(
		[]string{"Layer", "GEM", "Region", "Station", "Ring", "Chamber"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))
	return nil
}
