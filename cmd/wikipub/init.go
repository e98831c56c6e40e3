package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Create the wikipub config file with a placeholder private key and a
single default relay. Edit it afterwards to set your key (nsec or hex) and
your relay list (comma-separated).`,
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				fatal("Failed to resolve config path", err)
			}
		}

		if _, err := os.Stat(path); err == nil {
			fatal("Config already exists", fmt.Errorf("refusing to overwrite %s", path))
		}

		if err := config.Default().Save(path); err != nil {
			fatal("Failed to write config", err)
		}

		fmt.Println("Wrote default config to", path)
		fmt.Println("Set privateKey before publishing.")
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
