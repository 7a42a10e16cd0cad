package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Bastard-Software/depsync/internal/app/provision"
	"github.com/Bastard-Software/depsync/internal/domain"
	"github.com/Bastard-Software/depsync/internal/infra/manifest"
)

type ErrorKind string

const (
	KindInternal   ErrorKind = "internal"
	KindValidation ErrorKind = "validation"
	KindProvision  ErrorKind = "provision"
)

const (
	// ExitFailure covers both internal errors and runs where any
	// dependency ended failed; the provisioning contract is exit 0 or 1.
	ExitFailure  = 1
	ExitInternal = 1
	ExitInvalid  = 2
)

type ExitError struct {
	Code    int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e ExitError) Error() string {
	return errorMessage(e)
}

func NormalizeError(err error) ExitError {
	if err == nil {
		return ExitError{Code: 0}
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code == 0 {
			exitErr.Code = ExitInternal
		}
		return exitErr
	}

	switch {
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrURLRequired),
		errors.Is(err, domain.ErrInvalidRevision),
		errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, manifest.ErrManifestInvalid),
		errors.Is(err, provision.ErrWorkspaceRequired),
		errors.Is(err, provision.ErrEmptyRegistry):
		return ExitError{Code: ExitInvalid, Kind: KindValidation, Err: err}
	default:
		return ExitError{Code: ExitInternal, Kind: KindInternal, Err: err}
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return NormalizeError(err).Code
}

func writeCLIError(w io.Writer, exitErr ExitError, asJSON bool) error {
	if exitErr.Code == 0 {
		return nil
	}
	message := errorMessage(exitErr)
	if asJSON {
		payload := struct {
			Code    int    `json:"code"`
			Kind    string `json:"kind"`
			Message string `json:"message"`
		}{
			Code:    exitErr.Code,
			Kind:    string(exitErr.Kind),
			Message: message,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(w, false)
	prefix := "Error"
	if exitErr.Kind != "" {
		prefix = fmt.Sprintf("Error (%s)", exitErr.Kind)
	}
	prefix = ui.err(prefix)
	_, err := fmt.Fprintf(w, "%s: %s\n", prefix, message)
	return err
}

func errorMessage(exitErr ExitError) string {
	if exitErr.Message != "" {
		return exitErr.Message
	}
	if exitErr.Err != nil {
		return exitErr.Err.Error()
	}
	return "unknown error"
}
