package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dcshock/enumreg/config"
	"github.com/dcshock/enumreg/enum"
	"github.com/dcshock/enumreg/enumconf"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "enumctl",
		Short:         "Inspect and rewrite enum config files",
		Long:          `enumctl loads "enum" directives from config files into a registry, then dumps, queries or watches them.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "options file (YAML)")
	root.PersistentFlags().String("app-type", "", "application type for directive handlers")
	root.PersistentFlags().Int("width", 0, "line width for generated enum lines")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")

	_ = a.v.BindPFlag("config", root.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("app_type", root.PersistentFlags().Lookup("app-type"))
	_ = a.v.BindPFlag("width", root.PersistentFlags().Lookup("width"))
	_ = a.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	a.v.SetEnvPrefix("ENUMCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		newDumpCmd(a),
		newLookupCmd(a),
		newFreeCmd(a),
		newWatchCmd(a),
	)
	return root
}

func (a *app) init() error {
	opts, err := a.options()
	if err != nil {
		return err
	}
	a.log = config.NewLoggerOrNop(opts.Log)
	return nil
}

// options loads the options file and applies flag/env overrides on top.
func (a *app) options() (config.Options, error) {
	opts, err := config.LoadOptions(a.v.GetString("config"))
	if err != nil {
		return config.Options{}, err
	}
	if s := a.v.GetString("app_type"); s != "" {
		opts.AppType = s
	}
	if w := a.v.GetInt("width"); w > 0 {
		opts.LineWidth = w
	}
	if a.v.GetBool("debug") {
		opts.Log.Level = "debug"
		opts.Log.Development = true
	}
	return *opts, nil
}

// load builds a fresh loader and reads files into it.
func (a *app) load(ctx context.Context, files ...string) (*config.Loader, error) {
	opts, err := a.options()
	if err != nil {
		return nil, err
	}
	l, err := config.NewLoader(opts, a.log)
	if err != nil {
		return nil, err
	}
	if _, err := l.LoadFiles(ctx, files...); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

// listFor resolves key to the indexed or named list it addresses.
func listFor(reg *enum.Registry, key string) (*enum.List, error) {
	if major, minor, ok := enumconf.ParseKey(key); ok {
		if _, ok := reg.Indexed().Cell(major, minor); !ok {
			return nil, fmt.Errorf("key %s: %w", key, enum.ErrOutOfBounds)
		}
		return reg.Indexed().List(major, minor), nil
	}
	return reg.Named().List(key), nil
}
