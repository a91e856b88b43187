// Package harvest implements the harvest command, which runs the news
// pipeline once and exits.
package harvest

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/fashionbook/harvester/internal/config"
	"github.com/fashionbook/harvester/internal/feed"
	"github.com/fashionbook/harvester/internal/fetcher"
	"github.com/fashionbook/harvester/internal/logger"
	"github.com/fashionbook/harvester/internal/pipeline"
	"github.com/fashionbook/harvester/internal/store"
)

// Command returns the harvest command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "harvest",
		Short: "Run the harvest pipeline once",
		Long: "Fetches the search feed for every configured brand, deduplicates " +
			"against the existing dataset, and persists new posts plus run metadata.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("harvest: %w", err)
			}

			log := logger.New(cfg.Logging)

			// One shared client for every outbound request: feed fetches,
			// redirect resolution, and preview extraction.
			client := &http.Client{Timeout: cfg.Timeout}

			p := pipeline.New(
				store.New(cfg.DataDir),
				feed.NewHarvester(client, cfg.UserAgent, log),
				fetcher.NewResolver(client, cfg.UserAgent, log),
				fetcher.NewPreviewExtractor(client, cfg.UserAgent, log),
				log,
				pipeline.Config{
					MaxPerBrand: cfg.MaxPerBrand,
					Locale:      cfg.Feed.Locale,
					Region:      cfg.Feed.Region,
					Channel:     cfg.Feed.Channel,
				},
			)

			meta, runErr := p.Run(cmd.Context())
			if runErr != nil {
				log.Error("harvest aborted", "error", runErr.Error())
				return fmt.Errorf("harvest: %w", runErr)
			}

			log.Info("harvest finished",
				"new_posts", meta.NewPostsAdded,
				"posts_total", meta.PostsCount,
			)

			return nil
		},
	}
}
