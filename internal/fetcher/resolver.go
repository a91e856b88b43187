// Package fetcher performs the per-article network work: resolving feed
// links to their final URLs and extracting social preview images. Both
// operations are advisory and degrade to documented fallbacks instead of
// returning errors.
package fetcher

import (
	"context"
	"io"
	"net/http"

	"github.com/fashionbook/harvester/internal/logger"
)

// maxBodyBytes limits how much of a fetched page is read.
const maxBodyBytes = 10 * 1024 * 1024 // 10 MB

// Resolution is the outcome of a redirect resolution. When Resolved is
// false, FinalURL carries the original input unchanged.
type Resolution struct {
	FinalURL string
	Resolved bool
}

// Resolver follows redirects to find the final URL behind a feed link.
type Resolver struct {
	client    *http.Client
	userAgent string
	log       logger.Interface
}

// NewResolver creates a resolver using the shared HTTP client.
func NewResolver(client *http.Client, userAgent string, log logger.Interface) *Resolver {
	return &Resolver{
		client:    client,
		userAgent: userAgent,
		log:       log,
	}
}

// Resolve issues a GET with redirect-following and returns the URL the
// request ended up at. Any failure falls back to the input URL; resolution
// is never fatal to the pipeline.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) Resolution {
	fallback := Resolution{FinalURL: rawURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		r.log.Debug("resolve request build failed", "url", rawURL, "error", err.Error())
		return fallback
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, doErr := r.client.Do(req)
	if doErr != nil {
		r.log.Debug("resolve fetch failed", "url", rawURL, "error", doErr.Error())
		return fallback
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused by later calls.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

	if resp.Request == nil || resp.Request.URL == nil {
		return fallback
	}

	return Resolution{FinalURL: resp.Request.URL.String(), Resolved: true}
}
