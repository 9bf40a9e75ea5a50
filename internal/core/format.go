package core

import (
	"fmt"
	"strings"
)

// ResolveFormat turns a format token into a concrete strftime pattern.
// A token matching a configured preset name always resolves to that
// preset's pattern, even when the token would also be a valid pattern
// itself. A token containing at least one % directive is passed through
// as a literal pattern; the renderer validates it. A token with no
// directive is syntactically a preset name, and an unconfigured name is
// an error rather than a silent passthrough.
func ResolveFormat(token string, presets map[string]string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%w: no output format specified", ErrMissingArgument)
	}
	if pattern, ok := presets[token]; ok {
		return pattern, nil
	}
	if !strings.Contains(token, "%") {
		return "", fmt.Errorf("%w: %q is not a configured preset", ErrUnknownPreset, token)
	}
	return token, nil
}
