package usecase_test

import (
	"strings"
	"testing"
	"time"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	"github.com/AzielCF/az-drive/pkg/address"
	"github.com/AzielCF/az-drive/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource_ChunkSlicing(t *testing.T) {
	cache := newTestCache(newFakeClock())
	service := usecase.NewResourceService(cache)

	cache.Store("doc1", domainCache.DocumentContent{}, "Hello world", domainCache.KindDocument)

	result := service.Read("gdrive://docs/doc1/chunk/0-5")
	require.NotNil(t, result.Content)
	assert.Equal(t, "Hello", *result.Content)
	assert.Empty(t, result.Err)

	// Over-long ranges clamp instead of erroring.
	result = service.Read("gdrive://docs/doc1/chunk/0-100")
	require.NotNil(t, result.Content)
	assert.Equal(t, "Hello world", *result.Content)
	assert.Empty(t, result.Err)
}

func TestResource_ChunkStartBeyondText(t *testing.T) {
	cache := newTestCache(newFakeClock())
	service := usecase.NewResourceService(cache)

	cache.Store("doc1", domainCache.DocumentContent{}, "short", domainCache.KindDocument)

	result := service.Read("gdrive://docs/doc1/chunk/50-60")
	require.NotNil(t, result.Content)
	assert.Empty(t, *result.Content)
}

func TestResource_FullContent(t *testing.T) {
	cache := newTestCache(newFakeClock())
	service := usecase.NewResourceService(cache)

	text := strings.Repeat("x", 1000)
	cache.Store("f1", domainCache.FileContent{Name: "notes.txt"}, text, domainCache.KindFile)

	result := service.Read("gdrive://files/f1/content")
	require.NotNil(t, result.Content)
	assert.Equal(t, text, *result.Content)

	result = service.Read("gdrive://files/f1/content/10-20")
	require.NotNil(t, result.Content)
	assert.Equal(t, text[10:20], *result.Content)
}

func TestResource_CacheMiss(t *testing.T) {
	service := usecase.NewResourceService(newTestCache(newFakeClock()))

	result := service.Read("gdrive://files/unknown/content")
	assert.Nil(t, result.Content)
	assert.Equal(t, "cache miss for unknown", result.Err)
	assert.NotEmpty(t, result.Hint)
	assert.NotEmpty(t, result.Suggestion)
}

func TestResource_ExpiredEntryIsMiss(t *testing.T) {
	clock := newFakeClock()
	cache := newTestCache(clock)
	service := usecase.NewResourceService(cache)

	cache.Store("doc1", domainCache.DocumentContent{}, "payload", domainCache.KindDocument)
	clock.Advance(testTTL + time.Minute)

	result := service.Read("gdrive://docs/doc1/content")
	assert.Nil(t, result.Content)
	assert.Contains(t, result.Err, "cache miss")
}

func TestResource_LegacyAddressBypassesCache(t *testing.T) {
	service := usecase.NewResourceService(newTestCache(newFakeClock()))

	result := service.Read("gdrive:///plain-id")
	assert.Nil(t, result.Content)
	assert.Empty(t, result.Err)
	assert.Contains(t, result.Hint, "not cache-backed")
}

func TestResource_InvalidAddressPassesThroughReason(t *testing.T) {
	service := usecase.NewResourceService(newTestCache(newFakeClock()))

	result := service.Read("gdrive://docs/xyz/chunk/10-5")
	assert.Nil(t, result.Content)
	assert.Contains(t, result.Err, "end")
	assert.Contains(t, result.Err, "start")
}

// structure and values resolve to an acknowledged gap, not a silent empty
// result.
func TestResource_UnimplementedActions(t *testing.T) {
	cache := newTestCache(newFakeClock())
	service := usecase.NewResourceService(cache)

	cache.Store("doc1", domainCache.DocumentContent{}, "text", domainCache.KindDocument)
	cache.Store("s1", domainCache.SheetContent{}, "cells", domainCache.KindSpreadsheet)

	result := service.Resolve(address.Parse("gdrive://docs/doc1/structure"))
	assert.Nil(t, result.Content)
	assert.Contains(t, result.Err, "not yet implemented")
	assert.NotEmpty(t, result.Hint)

	result = service.Resolve(address.Parse("gdrive://sheets/s1/values/A1%3AB2"))
	assert.Nil(t, result.Content)
	assert.Contains(t, result.Err, "not yet implemented")
	assert.NotEmpty(t, result.Hint)
}
