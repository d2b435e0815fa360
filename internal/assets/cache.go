package assets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ivnagustin/lock-logger-pwa/internal/logging"
)

// State tracks the lifecycle of the current generation.
type State string

const (
	StateNew        State = "new"
	StateInstalling State = "installing"
	StateInstalled  State = "installed"
	StateActivating State = "activating"
	StateActivated  State = "activated"
)

// Cache holds generations of static assets under root, one directory per
// version tag. At most one generation survives activation.
type Cache struct {
	root    string
	version string
	origin  Origin
	log     logging.Logger

	mu    sync.Mutex
	state State
}

func NewCache(root, version string, origin Origin, log logging.Logger) *Cache {
	return &Cache{
		root:    root,
		version: version,
		origin:  origin,
		log:     log.With("component", "assets", "version", version),
		state:   StateNew,
	}
}

func (c *Cache) Version() string { return c.version }

func (c *Cache) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Cache) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Install populates the generation for the current version: every manifest
// asset is fetched into a staging directory, which becomes the generation
// only when all of them succeeded. Any failure leaves no partial generation
// behind; the caller retries on the next start.
func (c *Cache) Install(ctx context.Context) error {
	c.setState(StateInstalling)

	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return err
	}

	staging, err := os.MkdirTemp(c.root, ".staging-")
	if err != nil {
		return err
	}

	for _, path := range Manifest {
		data, err := c.origin.Fetch(ctx, path)
		if err != nil {
			os.RemoveAll(staging)
			c.setState(StateNew)
			return fmt.Errorf("installing %s: %w", path, err)
		}
		dst := filepath.Join(staging, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			os.RemoveAll(staging)
			c.setState(StateNew)
			return err
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			os.RemoveAll(staging)
			c.setState(StateNew)
			return err
		}
	}

	generation := filepath.Join(c.root, c.version)
	if err := os.RemoveAll(generation); err != nil {
		os.RemoveAll(staging)
		c.setState(StateNew)
		return err
	}
	if err := os.Rename(staging, generation); err != nil {
		os.RemoveAll(staging)
		c.setState(StateNew)
		return err
	}

	c.setState(StateInstalled)
	c.log.Info(ctx, "generation installed", "assets", len(Manifest))
	return nil
}

// Activate deletes every generation whose name differs from the current
// version. This is how assets from a previous deployment are purged; there
// is no rollback.
func (c *Cache) Activate(ctx context.Context) error {
	c.setState(StateActivating)

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.Name() == c.version {
			continue
		}
		stale := filepath.Join(c.root, e.Name())
		if err := os.RemoveAll(stale); err != nil {
			return err
		}
		c.log.Info(ctx, "stale generation purged", "name", e.Name())
	}

	c.setState(StateActivated)
	return nil
}

// Cached returns the on-disk path of an asset in the current generation, or
// "" when it is not cached.
func (c *Cache) Cached(path string) string {
	full := filepath.Join(c.root, c.version, filepath.FromSlash(path))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return ""
	}
	return full
}
