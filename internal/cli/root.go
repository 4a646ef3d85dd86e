// Package cli implements phasectl, the operator tool for inspecting seed
// fixtures before they are served by the tracker.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats lists the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// RootOptions holds global flags shared by every subcommand.
type RootOptions struct {
	Format string
}

// NewRootCommand creates the phasectl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "phasectl",
		Short:         "Inspect phase tracker seed fixtures",
		Long:          "phasectl checks seed fixtures for consistency and previews the startup, phase and task tree they produce.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTreeCommand(opts))

	return cmd
}
