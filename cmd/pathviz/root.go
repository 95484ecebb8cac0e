package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/logs"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	envFile    string
	logLevel   string

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "pathviz",
		Short:         "Visualise breadth-first search on a grid",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading PATHVIZ_* variables (default ./.env)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level")

	root.AddCommand(newRunCmd(a), newServeCmd(a))
	return root
}

// init loads configuration and builds the logger.
func (a *app) init() error {
	var envFiles []string
	if a.envFile != "" {
		envFiles = append(envFiles, a.envFile)
	}
	cfg, err := config.Load(a.configPath, envFiles...)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logs.New("pathviz", cfg.Log)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("config loaded", zap.String("file", a.configPath), zap.Int("rows", cfg.Grid.Rows))
	return nil
}
