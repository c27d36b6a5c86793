package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// cacheService is the in-memory TTL store behind chunked content addressing.
// Expiry is discovered lazily on Get; Sweep is the active eviction path and
// both policies coexist.
type cacheService struct {
	mu            sync.RWMutex
	entries       map[string]domainCache.Entry
	ttl           time.Duration
	sweepInterval time.Duration
	clock         domainCache.Clock
}

func NewCacheService(ttl, sweepInterval time.Duration, clock domainCache.Clock) domainCache.ICacheUsecase {
	if clock == nil {
		clock = time.Now
	}
	return &cacheService{
		entries:       make(map[string]domainCache.Entry),
		ttl:           ttl,
		sweepInterval: sweepInterval,
		clock:         clock,
	}
}

func (s *cacheService) Store(key string, content domainCache.Content, text string, kind domainCache.ResourceKind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = domainCache.Entry{
		Content:   content,
		Text:      text,
		Kind:      kind,
		FetchedAt: s.clock(),
	}
	logrus.Debugf("[CACHE] Stored %s entry %q (%d chars)", kind, key, len(text))
}

func (s *cacheService) Get(key string) (domainCache.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return domainCache.Entry{}, false
	}

	if s.clock().Sub(entry.FetchedAt) > s.ttl {
		delete(s.entries, key)
		logrus.Debugf("[CACHE] Entry %q expired on read", key)
		return domainCache.Entry{}, false
	}

	return entry, true
}

func (s *cacheService) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	removed := 0
	for key, entry := range s.entries {
		if now.Sub(entry.FetchedAt) > s.ttl {
			delete(s.entries, key)
			removed++
		}
	}

	if removed > 0 {
		logrus.Infof("[CACHE] Sweep removed %d expired entries", removed)
	}
	return removed
}

// Stats is read-only: expired entries stay listed until a Get or Sweep
// removes them.
func (s *cacheService) Stats() domainCache.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock()
	stats := domainCache.Stats{
		Size:    len(s.entries),
		Entries: make([]domainCache.EntryStats, 0, len(s.entries)),
	}
	for key, entry := range s.entries {
		stats.Entries = append(stats.Entries, domainCache.EntryStats{
			Key:        key,
			Kind:       entry.Kind,
			AgeSeconds: int64(now.Sub(entry.FetchedAt).Seconds()),
			TextLength: len(entry.Text),
			HumanText:  humanize.Bytes(uint64(len(entry.Text))),
		})
	}
	sort.Slice(stats.Entries, func(i, j int) bool {
		return stats.Entries[i].Key < stats.Entries[j].Key
	})
	return stats
}

func (s *cacheService) StartBackgroundSweep(ctx context.Context) {
	if s.sweepInterval <= 0 {
		logrus.Info("[CACHE] Background sweep disabled, relying on lazy expiry")
		return
	}

	go func() {
		ticker := time.NewTicker(s.sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep()
			}
		}
	}()
}
