package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/WojtekL7/claude-voice-assistant/internal/logger"
)

// AudioCache is a thread-safe two-tier cache (in-memory + filesystem)
// for synthesized audio. The cache key is sha256(voice|rate|volume|text)
// so changing any synthesis parameter causes clean misses instead of
// stale audio.
//
// Disk behaviour is controlled by diskWrite:
//
//	diskWrite=true  -> reads from mem, then disk; writes to both.
//	diskWrite=false -> reads from mem, then disk; writes to mem only.
//
// The on-disk cache is always consulted, even when writes are
// disabled, giving the user a warm start from previous runs.
type AudioCache struct {
	mu        sync.RWMutex
	entries   map[string][]byte // hash -> WAV bytes
	log       *logger.Logger
	keyPrefix string // voice|rate|volume, baked into every key
	cacheDir  string // filesystem cache directory (empty = no disk layer)
	diskWrite bool   // whether to persist new entries to disk
	hits      int64
	misses    int64
}

// NewAudioCache creates an audio cache.
//
//   - voice, rate, volume: synthesis parameters baked into every key.
//   - cacheDir: path to the on-disk cache directory. If empty, the
//     disk layer is disabled entirely (pure in-memory).
//   - diskWrite: when true, new entries are written to cacheDir. When
//     false, existing files are still read but nothing new is persisted.
func NewAudioCache(voice, rate, volume, cacheDir string, diskWrite bool, log *logger.Logger) *AudioCache {
	c := &AudioCache{
		entries:   make(map[string][]byte),
		log:       log,
		keyPrefix: voice + "|" + rate + "|" + volume + "|",
		cacheDir:  cacheDir,
		diskWrite: diskWrite,
	}

	if cacheDir != "" && diskWrite {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			log.Error("cache: failed to create cache dir %s: %v", cacheDir, err)
		}
	}

	return c
}

// Get returns cached audio for the given text and true, or nil and
// false. It checks the in-memory map first, then the disk cache.
func (c *AudioCache) Get(text string) ([]byte, bool) {
	key := c.hashKey(text)

	c.mu.RLock()
	data, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
		c.log.Debug("cache hit (mem): %s (%d bytes)", truncate(text, 40), len(data))
		return data, true
	}

	if c.cacheDir != "" {
		if diskData, diskOK := c.readDisk(key); diskOK {
			// Promote to in-memory for faster subsequent hits.
			c.mu.Lock()
			c.entries[key] = diskData
			c.hits++
			c.mu.Unlock()
			c.log.Debug("cache hit (disk): %s (%d bytes)", truncate(text, 40), len(diskData))
			return diskData, true
		}
	}

	c.mu.Lock()
	c.misses++
	c.mu.Unlock()
	return nil, false
}

// Put stores audio data for the given text. Always writes to memory;
// writes to disk only when diskWrite is enabled.
func (c *AudioCache) Put(text string, audio []byte) {
	key := c.hashKey(text)

	c.mu.Lock()
	c.entries[key] = audio
	size := len(c.entries)
	c.mu.Unlock()

	c.log.Debug("cache store (mem): %s (%d bytes, %d entries)", truncate(text, 40), len(audio), size)

	if c.cacheDir != "" && c.diskWrite {
		c.writeDisk(key, audio)
	}
}

// Has returns true if audio for the text is cached (memory or disk).
func (c *AudioCache) Has(text string) bool {
	key := c.hashKey(text)

	c.mu.RLock()
	_, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return true
	}

	if c.cacheDir != "" {
		return c.existsOnDisk(key)
	}
	return false
}

// Len returns the number of in-memory cached entries.
func (c *AudioCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns hit and miss counts.
func (c *AudioCache) Stats() (hits, misses int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}

// Clear empties the in-memory cache. The disk cache is NOT cleared.
func (c *AudioCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
	c.mu.Unlock()
	c.log.Debug("cache cleared (mem)")
}

// ── hashing ──────────────────────────────────────────────────────

// hashKey returns a hex-encoded SHA-256 of voice|rate|volume|text.
func (c *AudioCache) hashKey(text string) string {
	h := sha256.Sum256([]byte(c.keyPrefix + text))
	return hex.EncodeToString(h[:])
}

// ── disk helpers ─────────────────────────────────────────────────

func (c *AudioCache) diskPath(key string) string {
	return filepath.Join(c.cacheDir, key+".wav")
}

func (c *AudioCache) readDisk(key string) ([]byte, bool) {
	data, err := os.ReadFile(c.diskPath(key))
	if err != nil {
		return nil, false
	}
	// A truncated or garbage file must not reach the player.
	if _, err := ExtractPCM(data); err != nil {
		c.log.Warn("cache: ignoring corrupt entry %s: %v", key[:12], err)
		return nil, false
	}
	return data, true
}

func (c *AudioCache) writeDisk(key string, audio []byte) {
	path := c.diskPath(key)
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		c.log.Error("cache: disk write failed for %s: %v", path, err)
	} else {
		c.log.Debug("cache store (disk): %s (%d bytes)", key[:12], len(audio))
	}
}

func (c *AudioCache) existsOnDisk(key string) bool {
	_, err := os.Stat(c.diskPath(key))
	return err == nil
}

// truncate shortens a string for logging.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
