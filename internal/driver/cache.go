package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when SeedPayload format changes
const seedCacheSchemaVersion uint16 = 1

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

func HashBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// SeedCache records which (input, operator, seed) runs already produced
// output, so a repeated campaign over an unchanged corpus skips them.
// Thread-safe for concurrent access.
type SeedCache struct {
	mu  sync.RWMutex
	dir string
}

// SeedPayload is one completed run.
type SeedPayload struct {
	Schema uint16

	Input      Digest
	Output     Digest
	OutputPath string
	Op         string
	Seed       int64

	// Stamp is the completion time, unix seconds.
	Stamp int64
}

// OpenSeedCache initializes and returns a cache at the standard location.
func OpenSeedCache(app string) (*SeedCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &SeedCache{dir: dir}, nil
}

func (c *SeedCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "runs", key.Hex()+".mp")
}

// RunKey derives the cache key for one job from everything that affects
// its output.
func RunKey(input Digest, op string, seed int64, outDialect string) Digest {
	h := sha256.New()
	h.Write(input[:])
	h.Write([]byte(op))
	h.Write([]byte(outDialect))
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(seed >> (8 * i))
	}
	h.Write(buf[:])
	var key Digest
	copy(key[:], h.Sum(nil))
	return key
}

// Put serializes and writes a payload to the cache atomically.
func (c *SeedCache) Put(key Digest, payload *SeedPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = seedCacheSchemaVersion
	if payload.Stamp == 0 {
		payload.Stamp = time.Now().Unix()
	}

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

// Get reads a payload from the cache. Missing entries and entries from
// an older schema both report a miss.
func (c *SeedCache) Get(key Digest, out *SeedPayload) (bool, error) {
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
		return false, err
	}
	if out.Schema != seedCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *SeedCache) DropAll() error {
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
