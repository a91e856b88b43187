package feed

import (
	"fmt"
	"net/url"
)

// querySuffix biases search results toward runway and collection coverage
// rather than general brand news.
const querySuffix = ` (runway OR collection OR show OR "fashion week")`

// endpoint is the feed-search endpoint template. Only the query itself is
// percent-encoded; locale parameters are interpolated as-is.
const endpoint = "https://news.google.com/rss/search?q=%s&hl=%s&gl=%s&ceid=%s"

// BuildQuery constructs the search query string for a brand.
func BuildQuery(brandName string) string {
	return brandName + querySuffix
}

// FeedURL builds the feed-search request URL for the given query and locale
// parameters.
func FeedURL(query, locale, region, channel string) string {
	return fmt.Sprintf(endpoint, url.QueryEscape(query), locale, region, channel)
}
