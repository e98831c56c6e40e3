package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub"
	"github.com/wikipub/wikipub/internal/prompt"
	"github.com/wikipub/wikipub/pkg/core"
)

var (
	publishCategory string
	publishNoPrompt bool
	publishDryRun   bool
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish [file]",
	Short: "Publish a note to the configured relays",
	Long: `Publish a markdown note as a replaceable wiki article. The title comes
from the filename (or a frontmatter "title" key); republishing the same
title replaces the prior version and keeps its original publish time.
Unless --category or --no-prompt is given, an optional category is asked
for interactively, prefilled from the previously published version.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := core.Load(args[0])
		if err != nil {
			fatal("Failed to load note", err)
		}

		if publishDryRun {
			article := core.BuildArticle(note.Title, note.Body, nil, publishCategory, note.Fields)
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(article); err != nil {
				fatal("Failed to encode article", err)
			}
			return
		}

		cfg, _, err := loadConfig()
		if err != nil {
			fatal("Failed to load config", err)
		}

		ctx := context.Background()
		session, err := wikipub.Open(ctx, cfg, wikipub.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to connect", err)
		}
		defer session.Close()

		prior, err := session.Service.Lookup(ctx, core.Slugify(note.Title))
		if err != nil {
			fatal("Failed to look up prior version", err)
		}

		category := publishCategory
		if category == "" && !publishNoPrompt {
			prefill := ""
			if prior != nil {
				prefill = prior.Category()
			}
			answer, ok := prompt.Category(os.Stdin, os.Stderr, prefill)
			if !ok {
				fmt.Println("Publish cancelled.")
				return
			}
			category = answer
		}

		fmt.Printf("Publishing %q...\n", note.Title)
		id, err := session.Service.Publish(ctx, note, category, prior)
		if err != nil {
			fatal("Failed to publish", err)
		}
		fmt.Printf("Published %q as %s\n", note.Title, id)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().StringVarP(&publishCategory, "category", "c", "", "Category for the article (skips the prompt)")
	publishCmd.Flags().BoolVar(&publishNoPrompt, "no-prompt", false, "Publish without asking for a category")
	publishCmd.Flags().BoolVar(&publishDryRun, "dry-run", false, "Print the unsigned article as JSON instead of publishing")
}
