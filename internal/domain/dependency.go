package domain

import (
	"fmt"
	"strings"
)

// DependencySpec pins one external source dependency to an exact revision.
// The revision is a full object id, never a branch or tag that can move.
type DependencySpec struct {
	Name     string
	URL      string
	Revision string
}

func (s DependencySpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameRequired
	}
	if !IsValidDependencyName(s.Name) {
		return fmt.Errorf("invalid dependency name %q: %w", s.Name, ErrInvalidName)
	}
	if strings.TrimSpace(s.URL) == "" {
		return fmt.Errorf("dependency %s: %w", s.Name, ErrURLRequired)
	}
	if !IsRevision(s.Revision) {
		return fmt.Errorf("dependency %s has revision %q: %w", s.Name, s.Revision, ErrInvalidRevision)
	}
	return nil
}

func IsValidDependencyName(name string) bool {
	if strings.ContainsAny(name, "/\\") {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return name == strings.TrimSpace(name)
}

// IsRevision reports whether value looks like a full lowercase hex object id
// (40 chars for sha1 repositories, 64 for sha256 ones).
func IsRevision(value string) bool {
	if len(value) != 40 && len(value) != 64 {
		return false
	}
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

// Registry is the full, ordered set of dependencies managed by one run.
// Names are unique; the set is immutable for the duration of an invocation.
type Registry []DependencySpec

func (r Registry) Validate() error {
	seen := make(map[string]struct{}, len(r))
	for _, spec := range r {
		if err := spec.Validate(); err != nil {
			return err
		}
		if _, ok := seen[spec.Name]; ok {
			return fmt.Errorf("dependency %s listed twice: %w", spec.Name, ErrDuplicateName)
		}
		seen[spec.Name] = struct{}{}
	}
	return nil
}

func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for _, spec := range r {
		names = append(names, spec.Name)
	}
	return names
}
