package core

import (
	"fmt"
	"strings"
	"time"
)

// ResolveTimezone turns a timezone token into a concrete location. An
// empty token selects the local system zone; anything else must be an
// identifier known to the timezone database, such as "UTC" or
// "America/Sao_Paulo".
func ResolveTimezone(token string) (*time.Location, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid timezone ID: %s", ErrUnsupportedTimezone, token)
	}
	return loc, nil
}
