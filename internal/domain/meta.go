package domain

// RunMetadata is the snapshot written once per harvest run, fully replacing
// the previous one.
type RunMetadata struct {
	// Identifier correlating this run with its log output
	RunID string `json:"runId"`
	// UTC timestamp of the run, RFC 3339
	UpdatedAt string `json:"updatedAt"`
	// Posts accepted during this run
	NewPostsAdded int `json:"newPostsAdded"`
	// Total posts after merge
	PostsCount int `json:"postsCount"`
	// Pass-through count of loaded shows
	ShowsCount int `json:"showsCount"`
	// Count of brand entries in the source document, valid or not
	BrandsCount int `json:"brandsCount"`
	// Brand entries missing an id or name, excluded from the run
	SkippedBrands int `json:"skippedBrands"`
}
