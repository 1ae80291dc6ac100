package cmd

import (
	"fmt"
	"io"

	"anmitsu/internal/buildinfo"
	"anmitsu/internal/config"
	"anmitsu/internal/domain"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the config file and print what it configures",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New(configPath, buildinfo.Version)
		if err != nil {
			return err
		}

		printConfig(cmd.OutOrStdout(), cfg.Settings().ConfigFile, cfg.Current())
		return nil
	},
}

func printConfig(w io.Writer, file string, cfg *domain.Config) {
	fmt.Fprintf(w, "Config file: %s\n", file)
	fmt.Fprintf(w, "Database: %s\n", cfg.DB.Path)

	creds := cfg.Credentials()
	for _, s := range []domain.Service{domain.Nyaa, domain.Azuki} {
		fmt.Fprintf(w, "%s (%s): %s\n", s, s.BaseURL, creds[s])
	}

	fmt.Fprintf(w, "Automation tasks: %d\n", len(cfg.Automate))

	for i, task := range cfg.Automate {
		fmt.Fprintf(w, "%3d. %s (%s)\n", i+1, task.Title, task.Slug)
		fmt.Fprintf(w, "     output format: %s\n", task.OutputFormat)
		if task.StartFrom != nil {
			fmt.Fprintf(w, "     start from: %d\n", *task.StartFrom)
		}
		fmt.Fprintf(w, "     include chapter name: %t\n", task.IncludeChapterName)
		fmt.Fprintf(w, "     auto upload: %t\n", task.AutoUpload)
		if task.NyaaDescription != nil {
			fmt.Fprintf(w, "     nyaa description: %q\n", *task.NyaaDescription)
		}
	}
}
