package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/hvpaiva/tardis-cli/internal/build"
	"github.com/hvpaiva/tardis-cli/internal/clock"
	"github.com/hvpaiva/tardis-cli/internal/core"
	"github.com/hvpaiva/tardis-cli/internal/logger"
	"github.com/hvpaiva/tardis-cli/internal/phrase"
)

// New builds the td root command with all subcommands attached.
func New() *cobra.Command {
	rootCmd := CmdRoot()
	rootCmd.AddCommand(CmdPresets())
	rootCmd.AddCommand(CmdVersion())
	return rootCmd
}

// CmdRoot creates the top-level command that interprets a time
// expression and prints it in the resolved format and timezone.
func CmdRoot() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "td [expression]",
			Short: "Translate natural-language time expressions into formatted datetimes",
			Long: `Td translates natural-language time expressions like "next friday at 9:30"
or "in 3 days" into formatted datetimes.

The expression is taken from the first positional argument, or from
standard input when the argument is omitted and data is piped in.

Output format and target timezone are resolved by precedence: CLI flags
first, then the TARDIS_FORMAT and TARDIS_TIMEZONE environment
variables, then the config file. An empty value at one tier falls
through to the next.

Example:
  td "next friday at 9:30"
  td tomorrow -f br -t America/Sao_Paulo
  echo "in 2 hours" | td -f "%H:%M"
`,
			Args:          cobra.MaximumNArgs(1),
			SilenceUsage:  true,
			SilenceErrors: true,
		}, rootFlags, runRoot,
	)
}

var rootFlags = []commandLineFlag{formatFlag, timezoneFlag, nowFlag}

func runRoot(ctx *Context, args []string) error {
	expression, err := readExpression(ctx.Command, args)
	if err != nil {
		return err
	}

	input := core.Input{
		Expression: expression,
		CLI: core.Overrides{
			Format:   flagValue(ctx.Command.Flags(), "format"),
			Timezone: flagValue(ctx.Command.Flags(), "timezone"),
			Now:      flagValue(ctx.Command.Flags(), "now"),
		},
		Env: core.Overrides{
			Format:   envOverride("FORMAT"),
			Timezone: envOverride("TIMEZONE"),
		},
	}

	clk, err := referenceClock(input.CLI.Now)
	if err != nil {
		return err
	}

	logger.Debug(ctx, "Interpreting expression",
		"expression", expression,
		"configFile", ctx.Config.ConfigFileUsed,
	)

	out, err := core.New(phrase.New(), clk).Run(input, core.Defaults{
		Format:   ctx.Config.Format,
		Timezone: ctx.Config.Timezone,
		Presets:  ctx.Config.Formats,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Command.OutOrStdout(), out)
	return err
}

// readExpression takes the expression from the positional argument,
// falling back to piped standard input. An interactive terminal is
// never read.
func readExpression(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		if args[0] == "" {
			return "", fmt.Errorf("%w: no input provided; pass an argument or pipe data", core.ErrInvalidDateFormat)
		}
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("%w: no input provided; pass an argument or pipe data", core.ErrInvalidDateFormat)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("%w: read from stdin: %v", ErrIO, err)
	}

	expression := strings.TrimSpace(string(data))
	if expression == "" {
		return "", fmt.Errorf("%w: no input provided in stdin; pass an argument or pipe data", core.ErrInvalidDateFormat)
	}
	return expression, nil
}

// referenceClock builds the invocation's clock: the live system clock,
// or a fixed instant when --now is set.
func referenceClock(now string) (clock.Clock, error) {
	if now == "" {
		return clock.System(), nil
	}
	clk, err := clock.Parse(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v (expect RFC 3339, e.g. 2025-06-24T12:00:00Z)", ErrInvalidNow, err)
	}
	return clk, nil
}

func flagValue(flags *pflag.FlagSet, name string) string {
	v, _ := flags.GetString(name)
	return v
}

func envOverride(name string) string {
	return os.Getenv(build.EnvPrefix() + "_" + name)
}
