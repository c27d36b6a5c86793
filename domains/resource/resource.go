package resource

import (
	"github.com/AzielCF/az-drive/pkg/address"
)

// ResolveResult is the outcome of reading one resource address. Exactly one
// of Content or Err is meaningful; legacy addresses carry only a Hint.
type ResolveResult struct {
	Content    *string `json:"content"`
	Err        string  `json:"error,omitempty"`
	Hint       string  `json:"hint,omitempty"`
	Suggestion string  `json:"suggestion,omitempty"`
}

type IResourceUsecase interface {
	// Read parses uri and resolves it against the cache.
	Read(uri string) ResolveResult
	// Resolve serves an already parsed address. It never returns a Go error;
	// misses and unsupported actions are structured results.
	Resolve(parsed address.Parsed) ResolveResult
}
