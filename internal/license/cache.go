package license

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	cacheKey = "validation"
	cacheTTL = 24 * time.Hour
)

// validationCache memoizes server-confirmed validation outcomes so a
// paid license does not hit the network on every check. Offline
// results are never stored; the next check retries the server.
type validationCache struct {
	cache *ristretto.Cache[string, Status]
	ttl   time.Duration
}

func newValidationCache(ttl time.Duration) (*validationCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, Status]{
		NumCounters: 1e4,
		MaxCost:     1 << 10,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &validationCache{cache: c, ttl: ttl}, nil
}

func (v *validationCache) get() (Status, bool) {
	return v.cache.Get(cacheKey)
}

func (v *validationCache) put(s Status) {
	v.cache.SetWithTTL(cacheKey, s, 1, v.ttl)
	v.cache.Wait()
}

func (v *validationCache) clear() {
	v.cache.Del(cacheKey)
}
