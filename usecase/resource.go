package usecase

import (
	"fmt"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainResource "github.com/AzielCF/az-drive/domains/resource"
	"github.com/AzielCF/az-drive/pkg/address"
)

type resourceService struct {
	cache domainCache.ICacheUsecase
}

func NewResourceService(cache domainCache.ICacheUsecase) domainResource.IResourceUsecase {
	return &resourceService{cache: cache}
}

func (s *resourceService) Read(uri string) domainResource.ResolveResult {
	return s.Resolve(address.Parse(uri))
}

func (s *resourceService) Resolve(parsed address.Parsed) domainResource.ResolveResult {
	if !parsed.Valid {
		return domainResource.ResolveResult{Err: parsed.Error}
	}

	if parsed.Kind == address.KindLegacy {
		return domainResource.ResolveResult{
			Hint: "legacy addresses are not cache-backed; fetch the resource directly by its ID",
		}
	}

	entry, ok := s.cache.Get(parsed.ResourceID)
	if !ok {
		return domainResource.ResolveResult{
			Err:        "cache miss for " + parsed.ResourceID,
			Hint:       "the resource was never fetched or its cache entry expired",
			Suggestion: "fetch the resource via its originating tool (summary mode) first, then retry this address",
		}
	}

	switch parsed.Action {
	case address.ActionContent:
		if parsed.HasRange {
			return sliceResult(entry.Text, parsed.Start, parsed.End)
		}
		text := entry.Text
		return domainResource.ResolveResult{Content: &text}
	case address.ActionChunk:
		return sliceResult(entry.Text, parsed.Start, parsed.End)
	case address.ActionStructure, address.ActionValues:
		return domainResource.ResolveResult{
			Err:        fmt.Sprintf("action %q is not yet implemented", parsed.Action),
			Hint:       "use content or chunk addresses, or the narrower fetch tool, instead",
			Suggestion: address.FormatContent(typeSegment(parsed.Kind), parsed.ResourceID),
		}
	}

	// Unreachable for addresses produced by the parser.
	return domainResource.ResolveResult{
		Err: fmt.Sprintf("unsupported action %q", parsed.Action),
	}
}

// sliceResult clamps the half-open range to the available text instead of
// erroring, so callers can probe past the end without knowing the length.
func sliceResult(text string, start, end int) domainResource.ResolveResult {
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}
	chunk := text[start:end]
	return domainResource.ResolveResult{Content: &chunk}
}

func typeSegment(kind address.Kind) string {
	switch kind {
	case address.KindSheet:
		return "sheets"
	case address.KindFile:
		return "files"
	default:
		return "docs"
	}
}
