package main

import (
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kubev2v/forkpool/internal/config"
	"github.com/kubev2v/forkpool/internal/logger"
)

const envPrefix = "FORKPOOL"

type app struct {
	cfg        *config.Configuration
	configFile string
	teardown   func()
}

func newRootCommand() *cobra.Command {
	a := &app{cfg: config.NewConfigurationWithOptionsAndDefaults()}

	root := &cobra.Command{
		Use:           "forkpool",
		Short:         "Work-stealing fork-join scheduler workbench",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: cobrautil.CommandStack(
			cobrautil.SyncViperPreRunE(envPrefix),
			a.loadConfigFile,
			a.setup,
		),
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.teardown != nil {
				a.teardown()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "optional config file (yaml, json or toml); flags and FORKPOOL_* env vars take precedence")
	flags.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, `log format: "console" or "json"`)
	flags.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level")
	flags.IntVar(&a.cfg.Pool.Workers, "workers", a.cfg.Pool.Workers, "number of workers, 0 means GOMAXPROCS")
	flags.IntVar(&a.cfg.Pool.QueueCapacity, "queue-capacity", a.cfg.Pool.QueueCapacity, "initial capacity of every slot")
	flags.Uint64Var(&a.cfg.Pool.Seed, "seed", a.cfg.Pool.Seed, "victim selection seed, 0 picks one from the clock")
	flags.StringVar(&a.cfg.Store.DataFolder, "data-folder", a.cfg.Store.DataFolder, "folder holding forkpool.duckdb, empty keeps history in memory")

	root.AddCommand(
		newRunCommand(a),
		newHistoryCommand(a),
		newServeCommand(a),
	)
	return root
}

// loadConfigFile fills every flag that was set neither on the command line
// nor through the environment.
func (a *app) loadConfigFile(cmd *cobra.Command, _ []string) error {
	if a.configFile == "" {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(a.configFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", a.configFile, err)
	}

	var setErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if setErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			setErr = fmt.Errorf("config file key %q: %w", f.Name, err)
		}
	})
	return setErr
}

func (a *app) setup(*cobra.Command, []string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	teardown, err := logger.Setup(a.cfg.LogFormat, a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.teardown = teardown

	zap.S().Debugw("configuration loaded", "config", a.cfg.DebugMap())
	return nil
}
