package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen11/phase-tracker/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/phase-tracker/internal/ports"
)

// Exit codes for phasectl.
const (
	ExitSuccess      = 0 // command completed and found nothing wrong
	ExitFailure      = 1 // inconsistent fixture, rejected toggle, or failed output
	ExitCommandError = 2 // bad flags or unreadable fixture
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err. Errors that are not an
// ExitError map to ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// writeJSON writes v indented, without HTML escaping, followed by a newline.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// loadFixture reads a seed fixture from disk.
func loadFixture(ctx context.Context, path string) (ports.InitialData, error) {
	logger := slog.New(slog.DiscardHandler)
	data, err := acl.NewFileLoader(path, logger).Load(ctx)
	if err != nil {
		return ports.InitialData{}, WrapExitError(ExitCommandError, "loading fixture "+path, err)
	}
	return data, nil
}
