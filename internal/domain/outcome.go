package domain

import (
	"sort"
	"time"
)

type OutcomeKind string

const (
	OutcomeUnchanged    OutcomeKind = "unchanged"
	OutcomeSynchronized OutcomeKind = "synchronized"
	OutcomeFailed       OutcomeKind = "failed"
)

// Outcome is the per-dependency result of one run.
type Outcome struct {
	Name     string
	Kind     OutcomeKind
	Revision string
	Err      error
	Duration time.Duration
}

func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeUnchanged || o.Kind == OutcomeSynchronized
}

// Report aggregates the outcomes of a full pass over the registry. Outcomes
// are keyed by dependency name so aggregation stays order-independent when
// dependencies are synchronized in parallel.
type Report struct {
	RunID     string
	Mode      RunMode
	Workspace string
	Outcomes  map[string]Outcome
	Clean     *CleanReport
}

func NewReport(runID string, mode RunMode) Report {
	return Report{RunID: runID, Mode: mode, Outcomes: make(map[string]Outcome)}
}

func (r Report) Succeeded() bool {
	for _, outcome := range r.Outcomes {
		if !outcome.Succeeded() {
			return false
		}
	}
	return true
}

func (r Report) FailedCount() int {
	failed := 0
	for _, outcome := range r.Outcomes {
		if !outcome.Succeeded() {
			failed++
		}
	}
	return failed
}

// Sorted returns outcomes in name order for deterministic rendering.
func (r Report) Sorted() []Outcome {
	outcomes := make([]Outcome, 0, len(r.Outcomes))
	for _, outcome := range r.Outcomes {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Name < outcomes[j].Name })
	return outcomes
}

// CleanReport describes a best-effort workspace cleanup. A missing workspace
// root is reported distinctly from a cleaned one.
type CleanReport struct {
	Missing bool
	Removed []string
	Failed  map[string]string
}

func (r CleanReport) FullyRemoved() bool {
	return len(r.Failed) == 0
}
