package mcp

import (
	"context"
	"fmt"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainFile "github.com/AzielCF/az-drive/domains/file"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type FileHandler struct {
	fileService domainFile.IFileUsecase
}

func InitMcpFile(fileService domainFile.IFileUsecase) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) AddFileTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolFetchFile(), h.handleFetchFile)
	mcpServer.AddTool(h.toolListFiles(), h.handleListFiles)
	mcpServer.AddTool(h.toolDeleteFile(), h.handleDeleteFile)
}

func (h *FileHandler) toolFetchFile() mcp.Tool {
	return mcp.NewTool(
		"gdrive_fetch_file",
		mcp.WithDescription("Fetch a Drive file's text content. In summary mode (default) the text is cached and chunk addresses returned; in full mode the content is returned directly, truncated to the response limit."),
		mcp.WithTitleAnnotation("Fetch File"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("file_id",
			mcp.Description("The Drive file ID."),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Response mode: summary (cache + addresses) or full (truncated content)."),
		),
	)
}

func (h *FileHandler) handleFetchFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileID, err := request.RequireString("file_id")
	if err != nil {
		return nil, err
	}

	req := domainFile.FetchRequest{
		FileID: fileID,
		Mode:   domainDocument.FetchMode(request.GetString("mode", string(domainDocument.ModeSummary))),
	}

	resp, err := h.fileService.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("File %q has %d characters", resp.Name, resp.TextLength)
	if resp.ContentAddress != "" {
		fallback = fmt.Sprintf("File %q cached; read it via %s", resp.Name, resp.ContentAddress)
	}
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *FileHandler) toolListFiles() mcp.Tool {
	return mcp.NewTool(
		"gdrive_list_files",
		mcp.WithDescription("List Drive files, optionally filtered by a Drive query string."),
		mcp.WithTitleAnnotation("List Files"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("query",
			mcp.Description("Drive search query, e.g. name contains 'report'."),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Maximum number of files to return (default 25, max 1000)."),
		),
	)
}

func (h *FileHandler) handleListFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageSize, err := toInt(request.GetArguments()["page_size"], 0)
	if err != nil {
		return nil, err
	}

	req := domainFile.ListRequest{
		Query:    request.GetString("query", ""),
		PageSize: pageSize,
	}

	resp, err := h.fileService.List(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Found %d files", len(resp.Files))
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *FileHandler) toolDeleteFile() mcp.Tool {
	return mcp.NewTool(
		"gdrive_delete_file",
		mcp.WithDescription("Permanently delete a Drive file by ID."),
		mcp.WithTitleAnnotation("Delete File"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("file_id",
			mcp.Description("The Drive file ID to delete."),
			mcp.Required(),
		),
	)
}

func (h *FileHandler) handleDeleteFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	fileID, err := request.RequireString("file_id")
	if err != nil {
		return nil, err
	}

	resp, err := h.fileService.Delete(ctx, domainFile.DeleteRequest{FileID: fileID})
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("File %s deleted", resp.FileID)
	return mcp.NewToolResultStructured(resp, fallback), nil
}
