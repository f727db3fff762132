package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/muonid/internal/detid"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Set map[string]int
}

// EncodeResult is a freshly packed identifier.
type EncodeResult struct {
	ID        detid.Raw `json:"id"`
	Hex       string    `json:"hex"`
	Subsystem string    `json:"subsystem"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <subsystem>",
		Short: "Pack field values into an identifier",
		Long: `Pack field values into a muon identifier. Unset fields are zero.

Example:
  muonid encode csc --set endcap=1,station=1,ring=1,chamber=5,layer=3`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringToIntVar(&opts.Set, "set", nil, "field values as name=value pairs")

	return cmd
}

func runEncode(opts *EncodeOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	sub, err := detid.ParseSubsystem(name)
	if err != nil {
		return formatter.Fail(&parseError{err: err})
	}
	rec, err := newRecord(sub)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := rec.assign(opts.Set); err != nil {
		return formatter.Fail(err)
	}
	id, err := rec.pack()
	if err != nil {
		return formatter.Fail(err)
	}
	opts.logger().Debug("encoded", zap.Stringer("id", id), zap.String("fields", rec.String()))

	if formatter.Format == "json" {
		return formatter.Success(EncodeResult{ID: id, Hex: id.String(), Subsystem: sub.String()})
	}
	fmt.Fprintf(formatter.Writer, "%d %s\n", uint32(id), id)
	return nil
}
