package usecase_test

import (
	"testing"
	"time"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	"github.com/AzielCF/az-drive/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTTL = 30 * time.Minute

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newTestCache(clock *fakeClock) domainCache.ICacheUsecase {
	return usecase.NewCacheService(testTTL, 0, clock.Now)
}

func TestCache_StoreAndGet(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("doc1", domainCache.DocumentContent{Title: "Report"}, "Hello world", domainCache.KindDocument)

	entry, ok := cache.Get("doc1")
	require.True(t, ok)
	assert.Equal(t, "Hello world", entry.Text)
	assert.Equal(t, domainCache.KindDocument, entry.Kind)
	assert.Equal(t, clock.Now(), entry.FetchedAt)
}

func TestCache_GetMiss(t *testing.T) {
	cache := newTestCache(newFakeClock())

	_, ok := cache.Get("missing")
	assert.False(t, ok)
}

func TestCache_StoreOverwrites(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("doc1", domainCache.DocumentContent{}, "first", domainCache.KindDocument)
	clock.Advance(time.Minute)
	cache.Store("doc1", domainCache.DocumentContent{}, "second", domainCache.KindDocument)

	entry, ok := cache.Get("doc1")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Text)
	assert.Equal(t, clock.Now(), entry.FetchedAt, "overwrite must refresh the fetch time")
}

func TestCache_TTLExpiryOnRead(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("doc1", domainCache.DocumentContent{}, "payload", domainCache.KindDocument)

	clock.Advance(testTTL - time.Second)
	_, ok := cache.Get("doc1")
	assert.True(t, ok, "entry younger than the TTL must survive")

	clock.Advance(2 * time.Second)
	_, ok = cache.Get("doc1")
	assert.False(t, ok, "entry older than the TTL must be a miss")

	// The expired read deletes as a side effect.
	stats := cache.Stats()
	assert.Zero(t, stats.Size)
	assert.Empty(t, stats.Entries)
}

func TestCache_SweepRemovesExpired(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("old1", domainCache.DocumentContent{}, "a", domainCache.KindDocument)
	cache.Store("old2", domainCache.FileContent{}, "b", domainCache.KindFile)
	clock.Advance(testTTL + time.Second)
	cache.Store("fresh", domainCache.DocumentContent{}, "c", domainCache.KindDocument)

	removed := cache.Sweep()
	assert.Equal(t, 2, removed)

	_, ok := cache.Get("fresh")
	assert.True(t, ok)

	assert.Zero(t, cache.Sweep(), "second sweep has nothing left to remove")
}

// Stats is diagnostic only: it reports expired entries but never evicts them.
func TestCache_StatsDoesNotEvict(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("doc1", domainCache.DocumentContent{}, "stale", domainCache.KindDocument)
	clock.Advance(testTTL + time.Minute)

	stats := cache.Stats()
	require.Equal(t, 1, stats.Size)
	assert.Equal(t, "doc1", stats.Entries[0].Key)

	stats = cache.Stats()
	assert.Equal(t, 1, stats.Size, "stats must not trigger expiry")
}

func TestCache_StatsFields(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)

	cache.Store("b-doc", domainCache.DocumentContent{}, "12345", domainCache.KindDocument)
	cache.Store("a-file", domainCache.FileContent{}, "1234567890", domainCache.KindFile)
	clock.Advance(90 * time.Second)

	stats := cache.Stats()
	require.Equal(t, 2, stats.Size)

	// Entries are sorted by key for stable output.
	assert.Equal(t, "a-file", stats.Entries[0].Key)
	assert.Equal(t, domainCache.KindFile, stats.Entries[0].Kind)
	assert.Equal(t, int64(90), stats.Entries[0].AgeSeconds)
	assert.Equal(t, 10, stats.Entries[0].TextLength)

	assert.Equal(t, "b-doc", stats.Entries[1].Key)
	assert.Equal(t, 5, stats.Entries[1].TextLength)
}
