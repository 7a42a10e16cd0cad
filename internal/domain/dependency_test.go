package domain

import (
	"errors"
	"strings"
	"testing"
)

func validSpec() DependencySpec {
	return DependencySpec{
		Name:     "glm",
		URL:      "https://example.com/glm.git",
		Revision: strings.Repeat("a", 40),
	}
}

func TestDependencySpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DependencySpec)
		wantErr error
	}{
		{name: "valid", mutate: func(*DependencySpec) {}},
		{name: "empty name", mutate: func(s *DependencySpec) { s.Name = " " }, wantErr: ErrNameRequired},
		{name: "path separator", mutate: func(s *DependencySpec) { s.Name = "a/b" }, wantErr: ErrInvalidName},
		{name: "dotdot", mutate: func(s *DependencySpec) { s.Name = ".." }, wantErr: ErrInvalidName},
		{name: "empty url", mutate: func(s *DependencySpec) { s.URL = "" }, wantErr: ErrURLRequired},
		{name: "short revision", mutate: func(s *DependencySpec) { s.Revision = "abc123" }, wantErr: ErrInvalidRevision},
		{name: "uppercase revision", mutate: func(s *DependencySpec) { s.Revision = strings.Repeat("A", 40) }, wantErr: ErrInvalidRevision},
		{name: "branch name", mutate: func(s *DependencySpec) { s.Revision = "main" }, wantErr: ErrInvalidRevision},
	}

	for _, tt := range tests {
		spec := validSpec()
		tt.mutate(&spec)
		err := spec.Validate()
		if tt.wantErr == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.name, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestIsRevisionAcceptsSHA256Length(t *testing.T) {
	if !IsRevision(strings.Repeat("0", 64)) {
		t.Fatalf("expected 64-char hex to be a valid revision")
	}
}

func TestRegistryRejectsDuplicateNames(t *testing.T) {
	registry := Registry{validSpec(), validSpec()}
	if !errors.Is(registry.Validate(), ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName")
	}
}

func TestDefaultRegistryIsValid(t *testing.T) {
	registry := DefaultRegistry()
	if err := registry.Validate(); err != nil {
		t.Fatalf("default registry invalid: %v", err)
	}
	if len(registry) != 3 {
		t.Fatalf("expected 3 built-in dependencies, got %d", len(registry))
	}
}
