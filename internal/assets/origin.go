// Package assets keeps one versioned generation of the application's static
// assets available without a network connection. Install populates a
// generation atomically, activate purges every other generation, and the
// request handler serves cache-first with a live fetch and an index-document
// fallback behind it.
package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
)

// Manifest is the fixed list of assets a generation must contain. Install
// fails unless every one of them resolves.
var Manifest = []string{
	IndexDocument,
	"app.js",
	"manifest.webmanifest",
	"icons/icon-192.png",
	"icons/icon-512.png",
}

// IndexDocument is the offline fallback page.
const IndexDocument = "index.html"

// Origin is where assets come from during install and on cache misses.
type Origin interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FSOrigin serves assets from a filesystem, typically the embedded bundle
// the binary ships with.
type FSOrigin struct {
	fsys fs.FS
}

func NewFSOrigin(fsys fs.FS) *FSOrigin {
	return &FSOrigin{fsys: fsys}
}

func (o *FSOrigin) Fetch(_ context.Context, path string) ([]byte, error) {
	return fs.ReadFile(o.fsys, path)
}

// HTTPOrigin fetches assets from a remote base URL, the deployed copy of the
// app. Going through it keeps the local cache aligned with the deployment.
type HTTPOrigin struct {
	base   string
	client *http.Client
}

func NewHTTPOrigin(base string, client *http.Client) *HTTPOrigin {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPOrigin{base: base, client: client}
}

func (o *HTTPOrigin) Fetch(ctx context.Context, path string) ([]byte, error) {
	u, err := url.JoinPath(o.base, path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", path, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
