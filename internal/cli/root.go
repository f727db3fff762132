package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roach88/muonid/internal/geometry"
	"github.com/roach88/muonid/internal/overlap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	LayoutPath string // optional layout YAML; empty selects the built-in layout

	// Logger receives diagnostics on stderr. Nil means discard.
	Logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the muonid CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "muonid",
		Short: "muonid - muon chamber identifier tool",
		Long: `Decode, encode and classify packed muon detector identifiers, and
resolve the GEM chambers that overlap a CSC chamber.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			logger, err := newLogger(opts.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LayoutPath, "layout", "", "chamber layout YAML (default: built-in)")

	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewCorrespondCommand(opts))
	cmd.AddCommand(NewLayoutCommand(opts))

	return cmd
}

// newLogger builds a production zap logger writing to stderr, at debug
// level when verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func (o *RootOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// layout returns the layout selected by --layout.
func (o *RootOptions) layout() (*geometry.Layout, error) {
	if o.LayoutPath == "" {
		return geometry.Default(), nil
	}
	l, err := geometry.Load(o.LayoutPath)
	if err != nil {
		return nil, err
	}
	o.logger().Debug("layout loaded", zap.String("path", o.LayoutPath), zap.String("name", l.Name))
	return l, nil
}

// resolver builds a resolver over the selected layout.
func (o *RootOptions) resolver() (*overlap.Resolver, error) {
	l, err := o.layout()
	if err != nil {
		return nil, err
	}
	return overlap.NewResolver(l)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
