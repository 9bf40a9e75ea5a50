package cmd

import (
	"github.com/spf13/cobra"
)

type commandLineFlag struct {
	name, shorthand, defaultValue, usage string
	isBool                               bool
}

var (
	configFlag = commandLineFlag{
		name:  "config",
		usage: "config file (default is $XDG_CONFIG_HOME/tardis/config.toml)",
	}
	debugFlag = commandLineFlag{
		name:   "debug",
		usage:  "enable debug logging",
		isBool: true,
	}
	formatFlag = commandLineFlag{
		name:      "format",
		shorthand: "f",
		usage: `output format: a strftime pattern (e.g. "%Y-%m-%d") or the name of a ` +
			`preset from the config file; falls back to TARDIS_FORMAT, then to the config file`,
	}
	timezoneFlag = commandLineFlag{
		name:      "timezone",
		shorthand: "t",
		usage: `target time zone as an IANA ID (e.g. "America/Sao_Paulo"); falls back to ` +
			`TARDIS_TIMEZONE, then to the config file, then to the system local zone`,
	}
	nowFlag = commandLineFlag{
		name:  "now",
		usage: "override the reference instant, RFC 3339 (e.g. 2025-06-24T09:00:00Z)",
	}
)

func initFlags(cmd *cobra.Command, addFlags ...commandLineFlag) {
	addFlags = append(addFlags, configFlag, debugFlag)
	for _, flag := range addFlags {
		if flag.isBool {
			cmd.Flags().Bool(flag.name, false, flag.usage)
			continue
		}
		cmd.Flags().StringP(flag.name, flag.shorthand, flag.defaultValue, flag.usage)
	}
}
