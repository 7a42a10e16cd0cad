package domain

import (
	"errors"
	"testing"
)

func TestResolveModePrecedence(t *testing.T) {
	tests := []struct {
		clean bool
		force bool
		want  RunMode
	}{
		{clean: false, force: false, want: ModeSync},
		{clean: false, force: true, want: ModeForce},
		{clean: true, force: false, want: ModeClean},
		{clean: true, force: true, want: ModeClean},
	}
	for _, tt := range tests {
		if got := ResolveMode(tt.clean, tt.force); got != tt.want {
			t.Fatalf("ResolveMode(%t, %t) = %s, want %s", tt.clean, tt.force, got, tt.want)
		}
	}
}

func TestReportSucceeded(t *testing.T) {
	report := NewReport("run", ModeSync)
	report.Outcomes["a"] = Outcome{Name: "a", Kind: OutcomeUnchanged}
	report.Outcomes["b"] = Outcome{Name: "b", Kind: OutcomeSynchronized}
	if !report.Succeeded() {
		t.Fatalf("expected report to succeed")
	}

	report.Outcomes["c"] = Outcome{Name: "c", Kind: OutcomeFailed, Err: errors.New("boom")}
	if report.Succeeded() {
		t.Fatalf("expected report to fail once any outcome failed")
	}
	if report.FailedCount() != 1 {
		t.Fatalf("expected 1 failure, got %d", report.FailedCount())
	}
}

func TestReportSortedIsNameOrdered(t *testing.T) {
	report := NewReport("run", ModeSync)
	report.Outcomes["volk"] = Outcome{Name: "volk"}
	report.Outcomes["glm"] = Outcome{Name: "glm"}
	report.Outcomes["pybind11"] = Outcome{Name: "pybind11"}

	sorted := report.Sorted()
	want := []string{"glm", "pybind11", "volk"}
	for i, name := range want {
		if sorted[i].Name != name {
			t.Fatalf("expected %s at index %d, got %s", name, i, sorted[i].Name)
		}
	}
}
