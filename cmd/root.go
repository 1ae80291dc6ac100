package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "anmitsu",
	Short: "Automate scraping and uploading of manga chapters from Azuki.",
	Long: `Automate scraping and uploading of manga chapters from Azuki.

Provide a configuration file using one of the following methods:
1. Use the --config <path> or -c <path> flag, pointing at a file or a directory.
2. Place a config.yml file in the current working directory.
3. Place a config.yml file in the user directory (~/.anmitsu, or %LOCALAPPDATA%\AnmitsuAzuki on Windows).

Run "anmitsu init" to create a commented config file.`,
	SilenceUsage: true,
}

func init() {
	initRootFlags()

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
