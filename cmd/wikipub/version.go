package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wikipub",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wikipub version %s\n", wikipub.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
