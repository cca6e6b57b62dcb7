package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"modmap/internal/diag"
	"modmap/internal/source"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// Digest identifies a file's content; it is the SHA-256 the file set
// computes on load.
type Digest = [32]byte

// DiskCache persists per-file parse artifacts keyed by content digest,
// so repeated `modmap headers` runs over unchanged files skip the parse.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of parsing one module map.
type DiskPayload struct {
	Schema uint16

	Path       string
	ModuleName string
	Headers    []string // public header paths, source order

	// Status
	Broken bool // parse or module-shape error; Headers is empty then
}

// OpenDiskCache initializes a disk cache at the standard location, or at
// dir when it is non-empty.
func OpenDiskCache(app, dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "maps", hexKey+".mp")
}

// Put serializes and writes a payload, replacing atomically.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload. A miss, a decode failure, or a schema mismatch
// all return false; stale entries are simply re-parsed.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, nil
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// PublicHeadersCached returns the public header list for the module map
// at path, consulting the cache by content digest before parsing.
// cache may be nil, which always parses.
func PublicHeadersCached(cache *DiskCache, path string, maxDiagnostics int) (*DiskPayload, *ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	key := fs.Get(fileID).Hash

	var payload DiskPayload
	if hit, err := cache.Get(key, &payload); err == nil && hit {
		return &payload, nil, nil
	}

	res := parseFile(fs, fileID, maxDiagnostics)

	payload = DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
	}
	if res.Err != nil {
		payload.Broken = true
	} else {
		m, ok := SoleModule(res.Decls, res.FileSet, res.Bag)
		if !ok {
			payload.Broken = true
			res.Err = diag.ErrorFromBag(res.Bag, res.FileSet)
		} else {
			payload.ModuleName = m.Name
			payload.Headers = PublicHeaders(m)
		}
	}

	if err := cache.Put(key, &payload); err != nil {
		return &payload, res, fmt.Errorf("cache write for %s: %w", path, err)
	}
	return &payload, res, nil
}
