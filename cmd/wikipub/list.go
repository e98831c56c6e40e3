package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub/pkg/core"
)

var listGlob string

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List publishable notes",
	Long:  `List the markdown notes under a directory (default: current) matched by the glob, with the slug each would publish under.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(dir, listGlob))
		if err != nil {
			fatal("Invalid glob", err)
		}

		for _, path := range matches {
			note, err := core.Load(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Skipping %s: %v\n", path, err)
				continue
			}
			fmt.Printf("%-40s %s\n", core.Slugify(note.Title), path)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listGlob, "glob", "**/*.md", "Glob pattern for publishable notes")
}
