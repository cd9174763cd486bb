package memory

import (
	"time"

	"decktrack-be/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AnalyticsCache keeps recently computed deck analytics so the owner
// dashboard does not re-scan the event log on every refresh. Entries are
// dropped on deck deletion; staleness within the TTL is acceptable since
// analytics are approximate progress indicators.
type AnalyticsCache struct {
	cache *cache.Cache
	ttl   time.Duration
}

func NewAnalyticsCache(ttl time.Duration) *AnalyticsCache {
	c := cache.New(ttl, 10*time.Minute)
	return &AnalyticsCache{
		cache: c,
		ttl:   ttl,
	}
}

func (r *AnalyticsCache) Save(deckId uuid.UUID, analytics *dto.DeckAnalyticsResponse) {
	if r.ttl <= 0 {
		return
	}
	r.cache.Set(deckId.String(), analytics, cache.DefaultExpiration)
}

func (r *AnalyticsCache) Get(deckId uuid.UUID) (*dto.DeckAnalyticsResponse, bool) {
	if x, found := r.cache.Get(deckId.String()); found {
		return x.(*dto.DeckAnalyticsResponse), true
	}
	return nil, false
}

func (r *AnalyticsCache) Delete(deckId uuid.UUID) {
	r.cache.Delete(deckId.String())
}
