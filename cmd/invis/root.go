package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/DT021/invis"
	"github.com/DT021/invis/pkg/contract"
	"github.com/DT021/invis/pkg/logger"
)

type commandKey struct{}

// app holds the state shared by subcommands. The registry is built on first use
// so that commands not needing it never read the seed file.
type app struct {
	cfg invis.Config
	log *slog.Logger
	reg *contract.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "invis",
		Short:        "Inspect requirements and check values against them",
		Long:         `invis lists the named requirements of a registry (builtins plus the seed file), describes their rule chains and checks values against them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("seed", "", "seed file (default $INVIS_SEED_FILE or invis.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default $INVIS_LOG_LEVEL or info)")
	flags.String("log-format", "", "log format: text or json (default $INVIS_LOG_FORMAT or text)")

	cmd.AddCommand(
		newListCmd(a),
		newDescribeCmd(a),
		newCheckCmd(a),
		newRulesCmd(),
		newSeedCmd(a),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := invis.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.SeedFile, _ = flags.GetString("seed")
		cfg.SeedRequired = true
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithComponent("cli"),
		logger.WithContextValue("command", commandKey{}),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, commandKey{}, cmd.Name()))
	return nil
}

func (a *app) registry(ctx context.Context) (*contract.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}
	reg, err := invis.New(invis.WithConfig(a.cfg), invis.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	a.log.DebugContext(ctx, "Registry ready.", "requirements", len(reg.Names()), logger.SeedFile(a.cfg.SeedFile))
	a.reg = reg
	return reg, nil
}
