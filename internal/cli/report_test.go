package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Bastard-Software/depsync/internal/domain"
)

func sampleReport() domain.Report {
	report := domain.NewReport("01ABC", domain.ModeSync)
	report.Workspace = "ThirdParty"
	report.Outcomes["glm"] = domain.Outcome{
		Name:     "glm",
		Kind:     domain.OutcomeSynchronized,
		Revision: "a583c59e1616a628b18195869767ea4d6faca5f4",
		Duration: 1200 * time.Millisecond,
	}
	report.Outcomes["volk"] = domain.Outcome{
		Name:     "volk",
		Kind:     domain.OutcomeUnchanged,
		Revision: "4d2dba50ae419d0ad34ef27edcb845b749aaebf4",
	}
	return report
}

func TestWriteReportTextSuccess(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReportText(&buf, sampleReport()); err != nil {
		t.Fatalf("writeReportText returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ThirdParty", "glm", "synchronized", "volk", "unchanged", "All dependencies provisioned"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteReportTextFailure(t *testing.T) {
	report := sampleReport()
	report.Outcomes["pybind11"] = domain.Outcome{
		Name: "pybind11",
		Kind: domain.OutcomeFailed,
		Err:  errors.New("clone https://example.com: remote unreachable"),
	}

	var buf bytes.Buffer
	if err := writeReportText(&buf, report); err != nil {
		t.Fatalf("writeReportText returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "1 of 3 dependencies failed") {
		t.Fatalf("expected aggregate failure line, got:\n%s", out)
	}
	if !strings.Contains(out, "remote unreachable") {
		t.Fatalf("expected underlying error surfaced, got:\n%s", out)
	}
}

func TestWriteReportTextCleanMissing(t *testing.T) {
	report := domain.NewReport("01ABC", domain.ModeClean)
	report.Workspace = "ThirdParty"
	report.Clean = &domain.CleanReport{Missing: true}

	var buf bytes.Buffer
	if err := writeReportText(&buf, report); err != nil {
		t.Fatalf("writeReportText returned error: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing to clean") {
		t.Fatalf("expected distinct missing-workspace message, got:\n%s", buf.String())
	}
}

func TestWriteReportJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := writeReportJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("writeReportJSON returned error: %v", err)
	}

	var decoded reportOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON report: %v", err)
	}
	if !decoded.Success {
		t.Fatalf("expected success=true")
	}
	if decoded.Mode != "sync" || decoded.Workspace != "ThirdParty" {
		t.Fatalf("unexpected report header: %+v", decoded)
	}
	if len(decoded.Dependencies) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(decoded.Dependencies))
	}
	if decoded.Dependencies[0].Name != "glm" {
		t.Fatalf("expected name-ordered dependencies, got %+v", decoded.Dependencies)
	}
}
