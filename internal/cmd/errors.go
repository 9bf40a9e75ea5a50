package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hvpaiva/tardis-cli/internal/core"
)

// Errors raised outside the resolve-and-render pipeline.
var (
	// ErrInvalidNow is returned when the --now flag does not hold an
	// RFC 3339 instant.
	ErrInvalidNow = errors.New("invalid 'now' argument")

	// ErrConfig marks a malformed or unloadable configuration document.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks filesystem and stream failures.
	ErrIO = errors.New("io error")
)

// Exit codes follow the BSD sysexits convention so scripts can tell
// usage mistakes, broken configuration, and I/O failures apart.
const (
	ExitOK     = 0
	ExitUsage  = 64
	ExitIO     = 74
	ExitConfig = 78
)

// ExitCode maps err onto the process exit code. Unclassified errors,
// including flag parse failures surfaced by cobra, count as usage
// errors.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, core.ErrMissingArgument),
		errors.Is(err, core.ErrUnknownPreset),
		errors.Is(err, core.ErrUnsupportedTimezone),
		errors.Is(err, core.ErrInvalidDateFormat),
		errors.Is(err, ErrInvalidNow):
		return ExitUsage
	case errors.Is(err, ErrConfig):
		return ExitConfig
	case errors.Is(err, ErrIO):
		return ExitIO
	default:
		return ExitUsage
	}
}

// classifyConfigErr sorts configuration load failures into the exit-code
// sentinels: failures rooted in the filesystem are I/O errors, anything
// else is a malformed document.
func classifyConfigErr(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return fmt.Errorf("%w: %v", ErrConfig, err)
}
