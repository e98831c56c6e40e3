package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikipub/wikipub"
	"github.com/wikipub/wikipub/pkg/core"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [file]",
	Short: "Show the latest published version of a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		note, err := core.Load(args[0])
		if err != nil {
			fatal("Failed to load note", err)
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

		slug := core.Slugify(note.Title)
		prior, err := session.Service.Lookup(ctx, slug)
		if err != nil {
			fatal("Failed to query relays", err)
		}

		if prior == nil {
			fmt.Printf("%q (%s) is not published.\n", note.Title, slug)
			return
		}

		fmt.Printf("Slug:         %s\n", slug)
		fmt.Printf("Event id:     %s\n", prior.ID)
		fmt.Printf("Published at: %s\n", formatUnix(prior.PublishedAt()))
		fmt.Printf("Last updated: %s\n", time.Unix(prior.CreatedAt, 0).Format(time.RFC3339))
		if c := prior.Category(); c != "" {
			fmt.Printf("Category:     %s\n", c)
		}
	},
}

// formatUnix renders a published_at tag value for humans; the raw value
// is shown as-is when it is not a unix timestamp.
func formatUnix(v string) string {
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return v
	}
	return time.Unix(sec, 0).Format(time.RFC3339)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
