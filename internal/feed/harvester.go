// Package feed builds brand search queries and harvests candidate entries
// from the upstream feed-search endpoint.
package feed

import (
	"context"
	"net/http"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/fashionbook/harvester/internal/logger"
)

// Harvester fetches and parses the search feed for one brand at a time.
// A failed or empty fetch yields an empty entry list, never an error: the
// orchestrator simply skips that brand for the run.
type Harvester struct {
	client    *http.Client
	userAgent string
	log       logger.Interface
}

// NewHarvester creates a harvester using the shared HTTP client and the
// configured identifying user agent.
func NewHarvester(client *http.Client, userAgent string, log logger.Interface) *Harvester {
	return &Harvester{
		client:    client,
		userAgent: userAgent,
		log:       log,
	}
}

// Fetch retrieves feedURL and returns its entries in feed order. Titles and
// links are trimmed; timestamps stay nil when the feed omits them.
func (h *Harvester) Fetch(ctx context.Context, feedURL string) []Entry {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		h.log.Warn("feed request build failed", "feed_url", feedURL, "error", err.Error())
		return nil
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, doErr := h.client.Do(req)
	if doErr != nil {
		h.log.Warn("feed fetch failed", "feed_url", feedURL, "error", doErr.Error())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.log.Warn("feed fetch unexpected status", "feed_url", feedURL, "status", resp.StatusCode)
		return nil
	}

	parsed, parseErr := gofeed.NewParser().Parse(resp.Body)
	if parseErr != nil {
		h.log.Warn("feed parse failed", "feed_url", feedURL, "error", parseErr.Error())
		return nil
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, Entry{
			Title:     strings.TrimSpace(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Published: item.PublishedParsed,
			Updated:   item.UpdatedParsed,
		})
	}

	return entries
}
