package core

import "errors"

// Classified failures surfaced by the pipeline. Callers match them with
// errors.Is to map user-facing messages and exit codes.
var (
	// ErrMissingArgument signals a required setting that resolved to
	// empty where no built-in default applies.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrUnknownPreset signals a format token that names a preset
	// absent from the configuration.
	ErrUnknownPreset = errors.New("unknown format preset")

	// ErrUnsupportedTimezone signals a timezone token not present in
	// the timezone database.
	ErrUnsupportedTimezone = errors.New("unsupported timezone")

	// ErrInvalidDateFormat signals an expression that could not be
	// interpreted, or a literal format pattern that cannot render.
	ErrInvalidDateFormat = errors.New("invalid date format")
)
