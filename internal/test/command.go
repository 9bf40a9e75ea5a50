package test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/hvpaiva/tardis-cli/internal/config"
)

// CmdTest is a helper struct to test commands.
type CmdTest struct {
	Name        string   // Name of the test.
	Args        []string // Arguments to pass to the command.
	Stdin       string   // Piped standard input, empty for an empty pipe.
	ExpectedOut []string // Expected fragments of the combined output.
}

// Command is a helper struct to test commands.
type Command struct {
	Helper
}

func SetupCommand(t *testing.T, opts ...HelperOption) Command {
	t.Helper()
	return Command{Helper: Setup(t, opts...)}
}

// RunCommand executes cmd and requires it to succeed, then checks the
// expected fragments against stdout plus captured logging.
func (th Command) RunCommand(t *testing.T, cmd *cobra.Command, testCase CmdTest) {
	t.Helper()

	output, err := th.execute(cmd, testCase)
	require.NoError(t, err)

	for _, expected := range testCase.ExpectedOut {
		require.Contains(t, output, expected)
	}
}

// RunCommandWithError runs a command and returns the error (if any)
// without failing the test.
func (th Command) RunCommandWithError(t *testing.T, cmd *cobra.Command, testCase CmdTest) error {
	t.Helper()

	output, err := th.execute(cmd, testCase)
	if err == nil {
		for _, expected := range testCase.ExpectedOut {
			if len(expected) > 0 {
				require.Contains(t, output, expected)
			}
		}
	}

	return err
}

func (th Command) execute(cmd *cobra.Command, testCase CmdTest) (string, error) {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetIn(strings.NewReader(testCase.Stdin))

	// A nil argument slice makes cobra fall back to os.Args, which holds
	// the test binary's flags.
	args := withConfigFlag(cmd, testCase.Args, th.Config)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(th.Context)
	return stdout.String() + th.LoggingOutput.String(), err
}

// withConfigFlag appends --config <file> unless already present or the
// command does not take one.
func withConfigFlag(cmd *cobra.Command, args []string, cfg *config.Config) []string {
	if cfg == nil || cfg.ConfigFileUsed == "" || cmd.Flags().Lookup("config") == nil {
		return args
	}
	for _, arg := range args {
		if arg == "--config" || strings.HasPrefix(arg, "--config=") {
			return args
		}
	}
	return append(args, "--config", cfg.ConfigFileUsed)
}
