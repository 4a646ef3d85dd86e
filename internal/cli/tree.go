package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl/fixture"
	"github.com/jsamuelsen11/phase-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phase-tracker/internal/app"
	"github.com/jsamuelsen11/phase-tracker/internal/domain/phase"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		toggles   []string
		writePath string
	)

	cmd := &cobra.Command{
		Use:   "tree <fixture>",
		Short: "Print the startup, phase and task tree of a fixture",
		Long: `Load a seed fixture into an in-memory tracker and print every startup
with its phases in seq_no order, their lock state, progress and tasks.

--toggle applies task toggles first, in order, so the cascade of a change
can be previewed without a running server. --write saves the resulting
state as a new fixture; records not reachable from a startup are dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, rootOpts, args[0], toggles, writePath)
		},
	}

	cmd.Flags().StringSliceVar(&toggles, "toggle", nil, "task ids to toggle before printing")
	cmd.Flags().StringVar(&writePath, "write", "", "write the resulting state as a YAML fixture")

	return cmd
}

func runTree(cmd *cobra.Command, opts *RootOptions, path string, toggles []string, writePath string) error {
	ctx := cmd.Context()

	data, err := loadFixture(ctx, path)
	if err != nil {
		return err
	}

	svc := app.NewTrackerService(app.NewTrackerStores(data), nil, nil)
	for _, id := range toggles {
		res, err := svc.ToggleTaskCompletion(ctx, id)
		if err != nil {
			return WrapExitError(ExitFailure, "toggling task "+id, err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), res.Message)
	}

	trees, err := svc.GetStartupTree(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "building tree", err)
	}

	if writePath != "" {
		if err := writeFixture(writePath, trees); err != nil {
			return WrapExitError(ExitFailure, "writing fixture "+writePath, err)
		}
	}

	out := cmd.OutOrStdout()
	if opts.Format == FormatJSON {
		err = writeJSON(out, dto.ToStartupTreeResponse(trees))
	} else {
		err = writeTreeText(out, trees)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "writing tree", err)
	}
	return nil
}

func writeTreeText(w io.Writer, trees []ports.StartupTree) error {
	if len(trees) == 0 {
		_, err := fmt.Fprintln(w, "no startups")
		return err
	}

	for _, st := range trees {
		if _, err := fmt.Fprintf(w, "%s (startup %s)\n", st.Startup.Name, st.Startup.ID); err != nil {
			return err
		}
		for _, pt := range st.Phases {
			if _, err := fmt.Fprintf(w, "  #%d %s [%s] %d%% (phase %s)\n",
				pt.Phase.SeqNo, pt.Phase.Title, phaseState(pt.Phase), pt.Progress, pt.Phase.ID); err != nil {
				return err
			}
			for _, t := range pt.Tasks {
				mark := " "
				if t.IsComplete {
					mark = "x"
				}
				if _, err := fmt.Fprintf(w, "    [%s] %s (task %s)\n", mark, t.Title, t.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func phaseState(p phase.Phase) string {
	switch {
	case p.Locked && p.IsComplete:
		return "locked, complete"
	case p.Locked:
		return "locked"
	case p.IsComplete:
		return "complete"
	default:
		return "open"
	}
}

// writeFixture saves trees as a seed fixture that loads back into the same
// tracker state.
func writeFixture(path string, trees []ports.StartupTree) (err error) {
	var data ports.InitialData
	for _, st := range trees {
		data.Startups = append(data.Startups, st.Startup)
		for _, pt := range st.Phases {
			data.Phases = append(data.Phases, pt.Phase)
			data.Tasks = append(data.Tasks, pt.Tasks...)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(fixture.FromInitialData(data)); err != nil {
		return err
	}
	return enc.Close()
}
