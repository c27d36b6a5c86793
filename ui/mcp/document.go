package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type DocumentHandler struct {
	documentService domainDocument.IDocumentUsecase
}

func InitMcpDocument(documentService domainDocument.IDocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) AddDocumentTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolFetchDocument(), h.handleFetchDocument)
	mcpServer.AddTool(h.toolCreateDocument(), h.handleCreateDocument)
	mcpServer.AddTool(h.toolUpdateDocument(), h.handleUpdateDocument)
}

func (h *DocumentHandler) toolFetchDocument() mcp.Tool {
	return mcp.NewTool(
		"gdrive_fetch_document",
		mcp.WithDescription("Fetch a Google Doc. In summary mode (default) the text is cached and chunk addresses are returned instead of the content; in full mode the content is returned directly, truncated to the response limit."),
		mcp.WithTitleAnnotation("Fetch Document"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("document_id",
			mcp.Description("The Google Docs document ID."),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Response mode: summary (cache + addresses) or full (truncated content)."),
		),
	)
}

func (h *DocumentHandler) handleFetchDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return nil, err
	}

	req := domainDocument.FetchRequest{
		DocumentID: documentID,
		Mode:       domainDocument.FetchMode(request.GetString("mode", string(domainDocument.ModeSummary))),
	}

	resp, err := h.documentService.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Document %q has %d characters", resp.Title, resp.TextLength)
	if resp.ContentAddress != "" {
		fallback = fmt.Sprintf("Document %q cached; read it via %s", resp.Title, resp.ContentAddress)
	}
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *DocumentHandler) toolCreateDocument() mcp.Tool {
	return mcp.NewTool(
		"gdrive_create_document",
		mcp.WithDescription("Create a new Google Doc, optionally with an initial text body."),
		mcp.WithTitleAnnotation("Create Document"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("title",
			mcp.Description("Title of the new document."),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("Optional initial text body."),
		),
	)
}

func (h *DocumentHandler) handleCreateDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return nil, err
	}

	req := domainDocument.CreateRequest{
		Title: title,
		Body:  request.GetString("body", ""),
	}

	resp, err := h.documentService.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Created document %s (%s)", resp.DocumentID, resp.Title)
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *DocumentHandler) toolUpdateDocument() mcp.Tool {
	return mcp.NewTool(
		"gdrive_update_document",
		mcp.WithDescription(`Apply text updates to a Google Doc. The updates parameter is a JSON array; each item either inserts ({"insert_text":"...","insert_index":1}) or replaces ({"find_text":"...","replace_text":"...","match_case":false}).`),
		mcp.WithTitleAnnotation("Update Document"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("document_id",
			mcp.Description("The Google Docs document ID."),
			mcp.Required(),
		),
		mcp.WithString("updates",
			mcp.Description("JSON array of update specs."),
			mcp.Required(),
		),
	)
}

func (h *DocumentHandler) handleUpdateDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := request.RequireString("document_id")
	if err != nil {
		return nil, err
	}

	updatesRaw, err := request.RequireString("updates")
	if err != nil {
		return nil, err
	}

	var updates []domainDocument.UpdateSpec
	if err := json.Unmarshal([]byte(updatesRaw), &updates); err != nil {
		return nil, fmt.Errorf("unable to parse updates JSON: %w", err)
	}

	req := domainDocument.UpdateRequest{
		DocumentID: documentID,
		Updates:    updates,
	}

	resp, err := h.documentService.Update(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Applied %d updates to %s", resp.AppliedCount, resp.DocumentID)
	return mcp.NewToolResultStructured(resp, fallback), nil
}
