package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // fallback zone database for systems without one installed

	"github.com/fatih/color"

	"github.com/hvpaiva/tardis-cli/internal/build"
	"github.com/hvpaiva/tardis-cli/internal/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(cmd.ExitCode(err))
	}
}

func init() {
	build.Version = version
}

var version = "dev"
