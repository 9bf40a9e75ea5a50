package cmd

import (
	"fmt"
	"sort"
	"time"

	timefmt "github.com/itchyny/timefmt-go"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// CmdPresets creates a command that lists the format presets defined in
// the config file, with a sample rendering of each.
func CmdPresets() *cobra.Command {
	return NewCommand(
		&cobra.Command{
			Use:   "presets",
			Short: "List the format presets defined in the config file",
			Args:  cobra.NoArgs,
		}, nil, runPresets,
	)
}

var presetHeader = table.Row{"Name", "Pattern", "Sample"}

func runPresets(ctx *Context, _ []string) error {
	names := lo.Keys(ctx.Config.Formats)
	sort.Strings(names)

	now := time.Now()

	presetTable := table.NewWriter()
	presetTable.AppendHeader(presetHeader)
	for _, name := range names {
		pattern := ctx.Config.Formats[name]
		presetTable.AppendRow(table.Row{name, pattern, timefmt.Format(now, pattern)})
	}

	_, err := fmt.Fprintln(ctx.Command.OutOrStdout(), presetTable.Render())
	return err
}
