package mcp

import (
	"context"
	"fmt"
	"strconv"

	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainResource "github.com/AzielCF/az-drive/domains/resource"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ResourceHandler struct {
	resourceService domainResource.IResourceUsecase
	cacheService    domainCache.ICacheUsecase
}

func InitMcpResource(resourceService domainResource.IResourceUsecase, cacheService domainCache.ICacheUsecase) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		cacheService:    cacheService,
	}
}

func (h *ResourceHandler) AddResourceTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolReadResource(), h.handleReadResource)
	mcpServer.AddTool(h.toolCacheStats(), h.handleCacheStats)
}

func (h *ResourceHandler) toolReadResource() mcp.Tool {
	return mcp.NewTool(
		"gdrive_read_resource",
		mcp.WithDescription("Read cached resource content by address. Supports gdrive://docs/<id>/content, gdrive://docs/<id>/chunk/<start>-<end>, gdrive://files/<id>/content[/<start>-<end>] and gdrive://sheets/<id>/values/<range>. Fetch the resource in summary mode first to populate the cache."),
		mcp.WithTitleAnnotation("Read Resource Address"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("uri",
			mcp.Description("The gdrive:// resource address to read."),
			mcp.Required(),
		),
	)
}

func (h *ResourceHandler) handleReadResource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uri, err := request.RequireString("uri")
	if err != nil {
		return nil, err
	}

	result := h.resourceService.Read(uri)
	if result.Content != nil {
		return mcp.NewToolResultText(*result.Content), nil
	}

	// Misses and unsupported actions come back as structured results with a
	// hint, never as protocol errors.
	fallback := result.Err
	if fallback == "" {
		fallback = result.Hint
	}
	return mcp.NewToolResultStructured(result, fallback), nil
}

func (h *ResourceHandler) toolCacheStats() mcp.Tool {
	return mcp.NewTool(
		"gdrive_cache_stats",
		mcp.WithDescription("Inspect the resource cache: entry keys, kinds, ages and text sizes."),
		mcp.WithTitleAnnotation("Cache Stats"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
	)
}

func (h *ResourceHandler) handleCacheStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_ = request
	stats := h.cacheService.Stats()

	fallback := fmt.Sprintf("Cache holds %d entries", stats.Size)
	return mcp.NewToolResultStructured(stats, fallback), nil
}

func toInt(value any, fallback int) (int, error) {
	switch v := value.(type) {
	case nil:
		return fallback, nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("unable to parse integer value %q", v)
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported integer value type %T", value)
	}
}
