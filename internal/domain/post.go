// Package domain provides the data model shared across the harvesting pipeline.
package domain

// Post is the unit of output produced by a harvest run. Posts are appended
// to the front of the persisted collection and never mutated afterwards.
type Post struct {
	// Content-derived identifier, a stable function of SourceURL
	ID string `json:"id"`
	// Foreign key into Brand.ID
	BrandID string `json:"brandId"`
	// Display title from the feed entry
	Title string `json:"title"`
	// Calendar day (YYYY-MM-DD, UTC), best-effort from the feed entry
	Date string `json:"date"`
	// Reserved, always null at creation time
	City *string `json:"city"`
	// Reserved, always null at creation time
	Season *string `json:"season"`
	// Social preview image URL, null when extraction found nothing
	HeroImageURL *string `json:"heroImageUrl"`
	// Fully resolved (post-redirect) URL; deduplication key
	SourceURL string `json:"sourceUrl"`
	// Legacy field name kept so older datasets still seed deduplication
	LegacySourceURL string `json:"source_url,omitempty"`
	// Reserved for future gallery items, serialized as [] rather than null
	Media []MediaItem `json:"media"`
}

// MediaItem is a gallery entry attached to a post. No pipeline stage
// populates these yet.
type MediaItem struct {
	URL  string `json:"url"`
	Kind string `json:"kind,omitempty"`
}

// DedupURL returns the URL a post should be deduplicated on, preferring the
// current field name and falling back to the legacy one.
func (p *Post) DedupURL() string {
	if p.SourceURL != "" {
		return p.SourceURL
	}
	return p.LegacySourceURL
}
