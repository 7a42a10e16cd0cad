package cli

import (
	"errors"
	"testing"

	"github.com/Bastard-Software/depsync/internal/app/provision"
	"github.com/Bastard-Software/depsync/internal/domain"
	"github.com/Bastard-Software/depsync/internal/infra/manifest"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantKind ErrorKind
	}{
		{err: domain.ErrNameRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: domain.ErrInvalidRevision, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: domain.ErrDuplicateName, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: manifest.ErrManifestInvalid, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: provision.ErrEmptyRegistry, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: provision.ErrWorkspaceRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: domain.ErrVerificationMismatch, wantCode: ExitInternal, wantKind: KindInternal},
		{err: errors.New("boom"), wantCode: ExitInternal, wantKind: KindInternal},
	}

	for _, tt := range tests {
		got := NormalizeError(tt.err)
		if got.Code != tt.wantCode {
			t.Fatalf("expected code %d, got %d for %v", tt.wantCode, got.Code, tt.err)
		}
		if got.Kind != tt.wantKind {
			t.Fatalf("expected kind %s, got %s for %v", tt.wantKind, got.Kind, tt.err)
		}
	}
}

func TestNormalizeErrorKeepsExitError(t *testing.T) {
	custom := ExitError{Code: ExitFailure, Kind: KindProvision, Message: "2 of 3 dependencies failed"}
	got := NormalizeError(custom)
	if got.Code != ExitFailure || got.Kind != KindProvision {
		t.Fatalf("expected custom error preserved, got %+v", got)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("expected ExitCode(nil) == 0")
	}
	if ExitCode(errors.New("boom")) != ExitFailure {
		t.Fatalf("expected failure exit code")
	}
}
