package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hvpaiva/tardis-cli/internal/config"
	"github.com/hvpaiva/tardis-cli/internal/logger"
)

// Context holds the state shared by command run functions.
type Context struct {
	context.Context

	Command *cobra.Command
	Config  *config.Config
}

// NewContext loads the configuration document and attaches a logger to
// the command context.
func NewContext(cmd *cobra.Command) (*Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var loaderOpts []config.LoaderOption
	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		loaderOpts = append(loaderOpts, config.WithConfigFile(cfgPath))
	}

	cfg, err := config.NewLoader(viper.New(), loaderOpts...).Load()
	if err != nil {
		return nil, classifyConfigErr(err)
	}

	debug, _ := cmd.Flags().GetBool("debug")

	var opts []logger.Option
	if cfg.Debug || debug {
		opts = append(opts, logger.WithDebug())
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(cfg.LogFormat))
	}
	ctx = logger.WithLogger(ctx, logger.NewLogger(opts...))

	if cfg.CreatedDefault {
		logger.Debug(ctx, "Created default config file", "path", cfg.ConfigFileUsed)
	}
	for _, w := range cfg.Warnings {
		logger.Warn(ctx, w)
	}

	return &Context{Context: ctx, Command: cmd, Config: cfg}, nil
}

// NewCommand wires a cobra command to its flags and run function. The
// run function receives a Context with the configuration already
// loaded.
func NewCommand(cmd *cobra.Command, flags []commandLineFlag, runFunc func(ctx *Context, args []string) error) *cobra.Command {
	initFlags(cmd, flags...)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, err := NewContext(cmd)
		if err != nil {
			return err
		}
		return runFunc(ctx, args)
	}

	return cmd
}
