package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bastard-Software/depsync/internal/domain"
)

const timePrecision = 10 * time.Millisecond

type reportOutput struct {
	RunID        string             `json:"run_id,omitempty"`
	Mode         string             `json:"mode"`
	Workspace    string             `json:"workspace"`
	Success      bool               `json:"success"`
	Clean        *cleanOutput       `json:"clean,omitempty"`
	Dependencies []dependencyOutput `json:"dependencies,omitempty"`
}

type cleanOutput struct {
	Missing bool              `json:"missing"`
	Removed []string          `json:"removed,omitempty"`
	Failed  map[string]string `json:"failed,omitempty"`
}

type dependencyOutput struct {
	Name       string `json:"name"`
	Outcome    string `json:"outcome"`
	Revision   string `json:"revision,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

func writeReport(cmd *cobra.Command, report domain.Report, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeReportJSON(out, report)
	}
	return writeReportText(out, report)
}

func writeReportJSON(out io.Writer, report domain.Report) error {
	output := reportOutput{
		RunID:     report.RunID,
		Mode:      string(report.Mode),
		Workspace: report.Workspace,
		Success:   report.Succeeded(),
	}
	if report.Clean != nil {
		removed := append([]string(nil), report.Clean.Removed...)
		sort.Strings(removed)
		output.Clean = &cleanOutput{
			Missing: report.Clean.Missing,
			Removed: removed,
			Failed:  report.Clean.Failed,
		}
	}
	for _, outcome := range report.Sorted() {
		dep := dependencyOutput{
			Name:       outcome.Name,
			Outcome:    string(outcome.Kind),
			Revision:   outcome.Revision,
			DurationMS: outcome.Duration.Milliseconds(),
		}
		if outcome.Err != nil {
			dep.Error = outcome.Err.Error()
		}
		output.Dependencies = append(output.Dependencies, dep)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func writeReportText(out io.Writer, report domain.Report) error {
	ui := newRenderer(out, false)

	if err := writeKV(out, ui, "Workspace", report.Workspace); err != nil {
		return err
	}

	if report.Clean != nil {
		if err := writeCleanText(out, ui, *report.Clean); err != nil {
			return err
		}
	}
	if report.Mode == domain.ModeClean {
		return nil
	}

	for _, outcome := range report.Sorted() {
		if err := writeOutcomeText(out, ui, outcome); err != nil {
			return err
		}
	}

	if report.Succeeded() {
		_, err := fmt.Fprintf(out, "%s\n", ui.ok("All dependencies provisioned"))
		return err
	}
	_, err := fmt.Fprintf(out, "%s\n",
		ui.err(fmt.Sprintf("%d of %d dependencies failed", report.FailedCount(), len(report.Outcomes))))
	return err
}

func writeCleanText(out io.Writer, ui renderer, clean domain.CleanReport) error {
	if clean.Missing {
		_, err := fmt.Fprintf(out, "%s\n", ui.dim("Workspace does not exist, nothing to clean"))
		return err
	}
	removed := append([]string(nil), clean.Removed...)
	sort.Strings(removed)
	for _, name := range removed {
		if _, err := fmt.Fprintf(out, "  %s %s\n", ui.ok("removed"), name); err != nil {
			return err
		}
	}
	for path, reason := range clean.Failed {
		if _, err := fmt.Fprintf(out, "  %s %s %s\n", ui.warn("left"), path, ui.dim(reason)); err != nil {
			return err
		}
	}
	return nil
}

func writeOutcomeText(out io.Writer, ui renderer, outcome domain.Outcome) error {
	switch outcome.Kind {
	case domain.OutcomeUnchanged:
		_, err := fmt.Fprintf(out, "  %s %-12s %s %s\n",
			ui.ok("ok"), outcome.Name, "unchanged", ui.dim(shortRev(outcome.Revision)))
		return err
	case domain.OutcomeSynchronized:
		_, err := fmt.Fprintf(out, "  %s %-12s %s %s %s\n",
			ui.ok("ok"), outcome.Name, "synchronized", ui.dim(shortRev(outcome.Revision)),
			ui.dim(outcome.Duration.Round(timePrecision).String()))
		return err
	default:
		_, err := fmt.Fprintf(out, "  %s %-12s %v\n", ui.err("failed"), outcome.Name, outcome.Err)
		return err
	}
}

func shortRev(revision string) string {
	if len(revision) > 8 {
		return revision[:8]
	}
	return revision
}
