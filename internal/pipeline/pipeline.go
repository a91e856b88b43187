// Package pipeline orchestrates one harvest run: load the persisted
// collections, harvest the search feed per brand, deduplicate against the
// existing dataset, and persist the merged posts plus run metadata.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fashionbook/harvester/internal/domain"
	"github.com/fashionbook/harvester/internal/feed"
	"github.com/fashionbook/harvester/internal/fetcher"
	"github.com/fashionbook/harvester/internal/identity"
	"github.com/fashionbook/harvester/internal/logger"
)

// Document names in the store.
const (
	postsDoc  = "posts.json"
	showsDoc  = "shows.json"
	brandsDoc = "brands.json"
	metaDoc   = "_meta.json"
)

// EntrySource fetches candidate entries for a feed URL. An empty result is
// not an error; the brand is skipped for this run.
type EntrySource interface {
	Fetch(ctx context.Context, feedURL string) []feed.Entry
}

// URLResolver resolves a feed link to its final post-redirect URL.
type URLResolver interface {
	Resolve(ctx context.Context, rawURL string) fetcher.Resolution
}

// PreviewSource extracts a social preview image URL for a page.
type PreviewSource interface {
	Extract(ctx context.Context, pageURL string) (string, bool)
}

// DocumentStore loads and saves named JSON documents.
type DocumentStore interface {
	Load(name string, v any) (bool, error)
	Save(name string, v any) error
}

// Config holds the orchestration knobs for a run.
type Config struct {
	// MaxPerBrand caps accepted new posts per brand
	MaxPerBrand int
	// Locale, Region and Channel parameterize the feed-search endpoint
	Locale  string
	Region  string
	Channel string
}

// Pipeline ties feed harvesting, URL resolution, preview extraction, and
// persistence together. All state touched during a run (the dedup set, the
// new-posts batch) is local to Run, so a Pipeline is safe to reuse.
type Pipeline struct {
	store    DocumentStore
	entries  EntrySource
	resolver URLResolver
	previews PreviewSource
	log      logger.Interface
	cfg      Config
	now      func() time.Time
	newRunID func() string
}

// New creates a pipeline over the given collaborators.
func New(
	store DocumentStore,
	entries EntrySource,
	resolver URLResolver,
	previews PreviewSource,
	log logger.Interface,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		store:    store,
		entries:  entries,
		resolver: resolver,
		previews: previews,
		log:      log,
		cfg:      cfg,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run executes one harvest. It returns the run metadata that was persisted.
// Per-entry and per-brand failures degrade to skips; only a load error on a
// persisted collection aborts the run, before any document is written.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunMetadata, error) {
	runID := p.newRunID()
	log := p.log.With("run_id", runID)

	posts := []domain.Post{}
	if _, err := p.store.Load(postsDoc, &posts); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	shows := []json.RawMessage{}
	if _, err := p.store.Load(showsDoc, &shows); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	rawBrands := []json.RawMessage{}
	if _, err := p.store.Load(brandsDoc, &rawBrands); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	brands, skipped := decodeBrands(rawBrands)
	if skipped > 0 {
		log.Warn("skipping malformed brand entries", "count", skipped)
	}

	seen := seedSeenURLs(posts)

	var newPosts []domain.Post
	for _, brand := range brands {
		newPosts = append(newPosts, p.harvestBrand(ctx, log, brand, seen)...)
	}

	if len(newPosts) > 0 {
		posts = append(newPosts, posts...)
		if err := p.store.Save(postsDoc, posts); err != nil {
			return nil, fmt.Errorf("run: %w", err)
		}
	}

	meta := &domain.RunMetadata{
		RunID:         runID,
		UpdatedAt:     p.now().UTC().Format(time.RFC3339),
		NewPostsAdded: len(newPosts),
		PostsCount:    len(posts),
		ShowsCount:    len(shows),
		BrandsCount:   len(rawBrands),
		SkippedBrands: skipped,
	}
	if err := p.store.Save(metaDoc, meta); err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}

	log.Info("run complete",
		"new_posts", meta.NewPostsAdded,
		"posts_total", meta.PostsCount,
		"brands", meta.BrandsCount,
	)

	return meta, nil
}

// harvestBrand processes one brand's feed and returns the accepted posts in
// feed order. The seen set is updated in place so later brands deduplicate
// against URLs accepted earlier in the same run.
func (p *Pipeline) harvestBrand(
	ctx context.Context,
	log logger.Interface,
	brand domain.Brand,
	seen map[string]struct{},
) []domain.Post {
	brandLog := log.With("brand_id", brand.ID, "brand", brand.Name)

	feedURL := feed.FeedURL(feed.BuildQuery(brand.Name), p.cfg.Locale, p.cfg.Region, p.cfg.Channel)

	entries := p.entries.Fetch(ctx, feedURL)
	if len(entries) == 0 {
		brandLog.Debug("no feed entries")
		return nil
	}

	var accepted []domain.Post
	for _, entry := range entries {
		if len(accepted) >= p.cfg.MaxPerBrand {
			break
		}

		if entry.Title == "" || entry.Link == "" {
			continue
		}

		res := p.resolver.Resolve(ctx, entry.Link)
		if _, dup := seen[res.FinalURL]; dup {
			brandLog.Debug("source url already known", "url", res.FinalURL)
			continue
		}

		accepted = append(accepted, p.buildPost(ctx, brand, entry, res.FinalURL))
		seen[res.FinalURL] = struct{}{}
	}

	if len(accepted) > 0 {
		brandLog.Info("accepted new posts", "count", len(accepted))
	}

	return accepted
}

// buildPost assembles a normalized post record for an accepted entry.
// A missing preview image is acceptable and leaves HeroImageURL null.
func (p *Pipeline) buildPost(
	ctx context.Context,
	brand domain.Brand,
	entry feed.Entry,
	finalURL string,
) domain.Post {
	var hero *string
	if img, ok := p.previews.Extract(ctx, finalURL); ok {
		hero = &img
	}

	return domain.Post{
		ID:           identity.PostID(finalURL),
		BrandID:      brand.ID,
		Title:        entry.Title,
		Date:         entry.Date(p.now()),
		HeroImageURL: hero,
		SourceURL:    finalURL,
		Media:        []domain.MediaItem{},
	}
}

// decodeBrands unmarshals raw brand entries, returning the usable brands in
// document order and a count of entries excluded for failing the minimal
// shape check.
func decodeBrands(raw []json.RawMessage) ([]domain.Brand, int) {
	brands := make([]domain.Brand, 0, len(raw))
	skipped := 0

	for _, entry := range raw {
		var b domain.Brand
		if err := json.Unmarshal(entry, &b); err != nil || !b.Valid() {
			skipped++
			continue
		}
		brands = append(brands, b)
	}

	return brands, skipped
}

// seedSeenURLs builds the dedup set from the loaded posts, honoring the
// legacy source_url field name.
func seedSeenURLs(posts []domain.Post) map[string]struct{} {
	seen := make(map[string]struct{}, len(posts))
	for i := range posts {
		if u := posts[i].DedupURL(); u != "" {
			seen[u] = struct{}{}
		}
	}
	return seen
}
