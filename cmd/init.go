package cmd

import (
	"fmt"

	"anmitsu/internal/config"
	"anmitsu/internal/paths"

	"github.com/spf13/cobra"
)

var configPath string

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config file or config directory",
	)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented config file",
	Long: `Write a commented config file to the directory given with --config,
or to the user directory when no directory is given. An existing config file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir := configPath
		if dir == "" {
			dir = paths.UserPath()
		}

		path, err := config.WriteTemplate(dir)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Config file:", path)
		return nil
	},
}
