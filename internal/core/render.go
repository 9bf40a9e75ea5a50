package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/itchyny/timefmt-go"
)

// Directive characters accepted in a format pattern, mirroring the
// strftime set the formatting library implements. Directives outside
// this set fail at render time rather than leaking into the output.
const directives = "aAbBcCdDefFgGhHIjklmMnpPrRsStTuUvVwWxXyYzZ%"

// Optional padding flags accepted between % and the directive.
const directiveFlags = "-_0^"

// Render re-expresses the instant in the resolved zone and applies the
// resolved format. Conversion produces a derived view of the instant;
// the instant itself is never mutated. A malformed pattern that reached
// this point through the literal passthrough is reported as
// ErrInvalidDateFormat.
func Render(instant time.Time, settings Settings) (string, error) {
	if err := validatePattern(settings.Format); err != nil {
		return "", err
	}
	return timefmt.Format(instant.In(settings.Location), settings.Format), nil
}

// validatePattern scans the directives of a strftime pattern. The
// formatting library emits unknown directives verbatim instead of
// failing, so the scan is what turns a malformed pattern into an error.
func validatePattern(pattern string) error {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}

		j := i + 1
		for j < len(pattern) && strings.IndexByte(directiveFlags, pattern[j]) >= 0 {
			j++
		}
		for j < len(pattern) && pattern[j] >= '0' && pattern[j] <= '9' {
			j++
		}
		colons := 0
		for j < len(pattern) && pattern[j] == ':' {
			j++
			colons++
		}
		if j >= len(pattern) {
			return fmt.Errorf("%w: unterminated %% directive in %q", ErrInvalidDateFormat, pattern)
		}

		c := pattern[j]
		switch {
		case colons > 0 && (c != 'z' || colons > 3):
			// Colon modifiers only exist for the %:z offset forms.
			return fmt.Errorf("%w: unsupported directive in %q", ErrInvalidDateFormat, pattern)
		case colons == 0 && strings.IndexByte(directives, c) < 0:
			return fmt.Errorf("%w: unsupported directive %%%c in %q", ErrInvalidDateFormat, c, pattern)
		}
		i = j
	}
	return nil
}
