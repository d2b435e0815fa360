package assets

import (
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// Handler serves assets cache-first: only GET is handled (everything else
// goes to next), the cache wins when it has the file, a miss goes live to
// the origin, and a failed live fetch degrades to the cached index document. No failure surfaces as an error response unless
// even the fallback is missing.
type Handler struct {
	cache *Cache
	next  http.Handler
}

func NewHandler(cache *Cache, next http.Handler) *Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return &Handler{cache: cache, next: next}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.next.ServeHTTP(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = IndexDocument
	}

	if cached := h.cache.Cached(path); cached != "" {
		http.ServeFile(w, r, cached)
		return
	}

	if data, err := h.cache.origin.Fetch(r.Context(), path); err == nil {
		writeAsset(w, path, data)
		return
	}

	// Offline and not cached: best-effort single-page fallback.
	if fallback := h.cache.Cached(IndexDocument); fallback != "" {
		http.ServeFile(w, r, fallback)
		return
	}
	http.Error(w, "offline", http.StatusServiceUnavailable)
}

func writeAsset(w http.ResponseWriter, path string, data []byte) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Write(data)
}
