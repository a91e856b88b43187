package fetcher

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/fashionbook/harvester/internal/logger"
)

// htmlContentType is the Content-Type substring required before a page is
// parsed for preview metadata.
const htmlContentType = "text/html"

// httpPrefix is the scheme prefix a preview image URL must carry to be
// considered absolute.
const httpPrefix = "http"

// PreviewExtractor fetches article pages and pulls the og:image preview URL
// from their metadata.
type PreviewExtractor struct {
	client    *http.Client
	userAgent string
	log       logger.Interface
}

// NewPreviewExtractor creates a preview extractor using the shared HTTP client.
func NewPreviewExtractor(client *http.Client, userAgent string, log logger.Interface) *PreviewExtractor {
	return &PreviewExtractor{
		client:    client,
		userAgent: userAgent,
		log:       log,
	}
}

// Extract fetches pageURL and returns its og:image URL. The second return
// is false when the fetch fails, the response is not HTML, the tag is
// missing, or its value is not an absolute HTTP URL. Extraction never
// raises past this boundary.
func (p *PreviewExtractor) Extract(ctx context.Context, pageURL string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		p.log.Debug("preview request build failed", "url", pageURL, "error", err.Error())
		return "", false
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, doErr := p.client.Do(req)
	if doErr != nil {
		p.log.Debug("preview fetch failed", "url", pageURL, "error", doErr.Error())
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		return "", false
	}

	if !strings.Contains(resp.Header.Get("Content-Type"), htmlContentType) {
		return "", false
	}

	doc, parseErr := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBodyBytes))
	if parseErr != nil {
		p.log.Debug("preview parse failed", "url", pageURL, "error", parseErr.Error())
		return "", false
	}

	return extractMetaProperty(doc, "og:image")
}

// extractMetaProperty looks up a meta tag by property attribute, falling
// back to the name attribute, and returns its trimmed content when it is an
// absolute HTTP URL.
func extractMetaProperty(doc *goquery.Document, property string) (string, bool) {
	content, exists := doc.Find("meta[property='" + property + "']").Attr("content")
	if !exists {
		content, exists = doc.Find("meta[name='" + property + "']").Attr("content")
	}
	if !exists {
		return "", false
	}

	value := strings.TrimSpace(content)
	if !strings.HasPrefix(value, httpPrefix) {
		return "", false
	}

	return value, true
}
