package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl/fixture"
)

// ValidateReport is the outcome of checking one fixture.
type ValidateReport struct {
	Status   string          `json:"status"`
	Fixture  string          `json:"fixture"`
	Startups int             `json:"startups"`
	Phases   int             `json:"phases"`
	Tasks    int             `json:"tasks"`
	Issues   []fixture.Issue `json:"issues"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <fixture>",
		Short: "Check a seed fixture for consistency",
		Long: `Load a seed fixture and report dangling references, repeated ids,
repeated seq_no values within a startup and lock flags that disagree with
the completion of the preceding phase.

Exits with status 1 when issues are found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootOpts, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, opts *RootOptions, path string) error {
	data, err := loadFixture(cmd.Context(), path)
	if err != nil {
		return err
	}

	issues := fixture.Check(data)
	report := ValidateReport{
		Status:   "ok",
		Fixture:  path,
		Startups: len(data.Startups),
		Phases:   len(data.Phases),
		Tasks:    len(data.Tasks),
		Issues:   make([]fixture.Issue, 0, len(issues)),
	}
	report.Issues = append(report.Issues, issues...)
	if len(issues) > 0 {
		report.Status = "invalid"
	}

	out := cmd.OutOrStdout()
	if opts.Format == FormatJSON {
		err = writeJSON(out, report)
	} else {
		err = writeValidateText(out, report)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "writing report", err)
	}

	if len(issues) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%s has %d consistency issues", path, len(issues)))
	}
	return nil
}

func writeValidateText(w io.Writer, r ValidateReport) error {
	if _, err := fmt.Fprintf(w, "fixture %s: %d startups, %d phases, %d tasks\n",
		r.Fixture, r.Startups, r.Phases, r.Tasks); err != nil {
		return err
	}
	for _, issue := range r.Issues {
		if _, err := fmt.Fprintf(w, "  - %s\n", issue); err != nil {
			return err
		}
	}
	if len(r.Issues) == 0 {
		_, err := fmt.Fprintln(w, "ok: no issues found")
		return err
	}
	_, err := fmt.Fprintf(w, "invalid: %d issues found\n", len(r.Issues))
	return err
}
