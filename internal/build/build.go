package build

import "strings"

// Set via ldflags at release time.
var (
	Version = "dev"
	AppName = "Tardis"
	Slug    = ""
)

func init() {
	if Slug == "" {
		Slug = strings.ToLower(AppName)
	}
}

// EnvPrefix is the uppercase slug used to namespace the environment
// variables recognized by the CLI (TARDIS_FORMAT, TARDIS_TIMEZONE, ...).
func EnvPrefix() string {
	return strings.ToUpper(Slug)
}
