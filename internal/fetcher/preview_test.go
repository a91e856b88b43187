package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fashionbook/harvester/internal/fetcher"
	"github.com/fashionbook/harvester/internal/logger"
)

// ogImageHTML carries the standard property= form of the preview tag.
const ogImageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta property="og:image" content=" https://cdn.example.com/hero.jpg ">
</head>
<body><p>Article body.</p></body>
</html>`

// ogImageNameHTML uses the nonstandard name= attribute some sites emit.
const ogImageNameHTML = `<!DOCTYPE html>
<html>
<head>
  <meta name="og:image" content="https://cdn.example.com/named.jpg">
</head>
<body></body>
</html>`

// relativeImageHTML has an og:image that is not an absolute HTTP URL.
const relativeImageHTML = `<!DOCTYPE html>
<html>
<head>
  <meta property="og:image" content="/images/hero.jpg">
</head>
<body></body>
</html>`

// noImageHTML has no og:image tag at all.
const noImageHTML = `<!DOCTYPE html>
<html>
<head><title>Plain page</title></head>
<body><p>No preview here.</p></body>
</html>`

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newExtractor(srv *httptest.Server) *fetcher.PreviewExtractor {
	return fetcher.NewPreviewExtractor(srv.Client(), testUserAgent, logger.NewNoop())
}

func TestPreviewExtractor_OgImageProperty(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, ogImageHTML)

	img, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/hero.jpg", img, "content should be trimmed")
}

func TestPreviewExtractor_OgImageNameFallback(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, ogImageNameHTML)

	img, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/named.jpg", img)
}

func TestPreviewExtractor_RelativeURLAbsent(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, relativeImageHTML)

	_, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.False(t, ok)
}

func TestPreviewExtractor_MissingTagAbsent(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, noImageHTML)

	_, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.False(t, ok)
}

func TestPreviewExtractor_NonHTMLAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"og:image": "https://cdn.example.com/hero.jpg"}`))
	}))
	defer srv.Close()

	_, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.False(t, ok)
}

func TestPreviewExtractor_FailureStatusAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(ogImageHTML))
	}))
	defer srv.Close()

	_, ok := newExtractor(srv).Extract(context.Background(), srv.URL)
	assert.False(t, ok)
}

func TestPreviewExtractor_NetworkFailureAbsent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	e := fetcher.NewPreviewExtractor(http.DefaultClient, testUserAgent, logger.NewNoop())

	_, ok := e.Extract(context.Background(), srv.URL)
	assert.False(t, ok)
}
