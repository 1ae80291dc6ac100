package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"anmitsu/internal/buildinfo"
	"anmitsu/internal/config"
	"anmitsu/internal/domain"
	"anmitsu/internal/logger"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Load the config file and reload it whenever it changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// read config
		cfg, err := config.New(configPath, buildinfo.Version)
		if err != nil {
			return err
		}

		// init new logger
		settings := cfg.Settings()
		log := logger.New(&settings)

		logTasks(log, cfg.Current())

		// init dynamic config
		cfg.DynamicReload(log)

		log.Info().Str("file", settings.ConfigFile).Msg("watching config file for changes")

		// set up a channel to catch signals for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		fmt.Printf("received signal: %s, stopping.\n", <-sigCh)
		return nil
	},
}

func logTasks(log logger.Logger, cfg *domain.Config) {
	log.Info().
		Int("tasks", len(cfg.Automate)).
		Str("db", cfg.DB.Path).
		Stringer("nyaa", cfg.NyaaAuth).
		Stringer("azuki", cfg.AzukiAuth).
		Msg("config loaded")

	for i, task := range cfg.Automate {
		e := log.Debug().
			Int("order", i).
			Str("slug", task.Slug).
			Str("title", task.Title).
			Str("outputFormat", task.OutputFormat).
			Bool("autoUpload", task.AutoUpload)
		if task.StartFrom != nil {
			e = e.Int("startFrom", *task.StartFrom)
		}
		e.Msg("automation task")
	}
}
