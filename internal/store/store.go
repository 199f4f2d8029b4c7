// Package store is the single point of access for all persistence. Reads
// are served synchronously from the local snapshot cache; fetches and writes
// go against the hosted backend with the cache updated optimistically and
// rolled back on failure. Backend errors never propagate to callers: the
// façade degrades to cached state, favoring availability over consistency.
package store

import (
	"encoding/json"
	"log"
	"time"

	"github.com/avandyck/daypack/internal/cache"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Cache keys, one per entity collection.
const (
	keyDailyEntries = "daily_entries"
	keyIdeas        = "ideas"
	keyOutcomes     = "weekly_outcomes"
	keyTodos        = "todos"
	keyGates        = "decision_gates"
	keyContacts     = "contacts"
	keyDiscoveries  = "discoveries"
	keyExpenses     = "expenses"
)

// record is the contract every entity type satisfies, via pointer receiver.
type record[T any] interface {
	*T
	RecordID() string
	SetRecordID(string)
	TraceDay() string
	EnsureTrace(today string)
	Clean()
}

// Store mediates between views, the local cache, and the hosted backend.
type Store struct {
	db      *gorm.DB // nil in local-only mode
	cache   *cache.Cache
	limiter *rate.Limiter
	now     func() time.Time
}

// Options configures a Store.
type Options struct {
	DB     *gorm.DB // nil switches the store to local-only mode
	Cache  *cache.Cache
	Window time.Duration // rate-limit window, default 1m
	Budget int           // backend requests allowed per window, default 120
	Now    func() time.Time
}

// New constructs a Store. The cache is required; the backend is not.
func New(opts Options) *Store {
	if opts.Window <= 0 {
		opts.Window = time.Minute
	}
	if opts.Budget <= 0 {
		opts.Budget = 120
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		db:      opts.DB,
		cache:   opts.Cache,
		limiter: rate.NewLimiter(rate.Limit(float64(opts.Budget)/opts.Window.Seconds()), opts.Budget),
		now:     opts.Now,
	}
}

// LocalOnly reports whether the store has no backend configured.
func (s *Store) LocalOnly() bool {
	return s.db == nil
}

// allowRemote gates an outgoing backend request on the session budget.
// Requests beyond the budget are dropped, not queued.
func (s *Store) allowRemote(op, key string) bool {
	if s.limiter.Allow() {
		return true
	}
	log.Printf("store: rate limit exceeded, dropping %s %s", op, key)
	return false
}

// cached decodes the snapshot for key. Absent or unparsable snapshots read
// as an empty collection.
func cached[T any](s *Store, key string) []T {
	raw := s.cache.Get(key)
	if raw == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		log.Printf("store: cache %s unparsable, treating as empty: %v", key, err)
		return []T{}
	}
	return out
}

// writeCache overwrites the snapshot for key. Cache failures are logged and
// otherwise ignored; the cache is best-effort.
func writeCache[T any](s *Store, key string, recs []T) {
	data, err := json.Marshal(recs)
	if err != nil {
		log.Printf("store: marshal %s: %v", key, err)
		return
	}
	if err := s.cache.Put(key, string(data)); err != nil {
		log.Printf("store: %v", err)
	}
}
