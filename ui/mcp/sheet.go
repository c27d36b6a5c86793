package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainSheet "github.com/AzielCF/az-drive/domains/sheet"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type SheetHandler struct {
	sheetService domainSheet.ISheetUsecase
}

func InitMcpSheet(sheetService domainSheet.ISheetUsecase) *SheetHandler {
	return &SheetHandler{sheetService: sheetService}
}

func (h *SheetHandler) AddSheetTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(h.toolSheetValues(), h.handleSheetValues)
	mcpServer.AddTool(h.toolSheetAppend(), h.handleSheetAppend)
}

func (h *SheetHandler) toolSheetValues() mcp.Tool {
	return mcp.NewTool(
		"gdrive_sheet_values",
		mcp.WithDescription("Fetch cell values from a Google Sheet by A1 ranges. In summary mode (default) the flattened values are cached and chunk addresses returned; in full mode the flattened text is returned, truncated to the response limit."),
		mcp.WithTitleAnnotation("Fetch Sheet Values"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithString("spreadsheet_id",
			mcp.Description("The spreadsheet ID."),
			mcp.Required(),
		),
		mcp.WithString("ranges",
			mcp.Description("Comma-separated A1 ranges, e.g. Sheet1!A1:B10,Sheet2!C1:C5."),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Response mode: summary (cache + addresses) or full (truncated content)."),
		),
	)
}

func (h *SheetHandler) handleSheetValues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spreadsheetID, err := request.RequireString("spreadsheet_id")
	if err != nil {
		return nil, err
	}

	rangesRaw, err := request.RequireString("ranges")
	if err != nil {
		return nil, err
	}

	var ranges []string
	for _, r := range strings.Split(rangesRaw, ",") {
		if r = strings.TrimSpace(r); r != "" {
			ranges = append(ranges, r)
		}
	}

	req := domainSheet.ValuesRequest{
		SpreadsheetID: spreadsheetID,
		Ranges:        ranges,
		Mode:          domainDocument.FetchMode(request.GetString("mode", string(domainDocument.ModeSummary))),
	}

	resp, err := h.sheetService.Values(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Fetched %d ranges from %s", len(resp.Ranges), resp.SpreadsheetID)
	if resp.ContentAddress != "" {
		fallback = fmt.Sprintf("Values cached; read them via %s", resp.ContentAddress)
	}
	return mcp.NewToolResultStructured(resp, fallback), nil
}

func (h *SheetHandler) toolSheetAppend() mcp.Tool {
	return mcp.NewTool(
		"gdrive_sheet_append",
		mcp.WithDescription(`Append rows to a Google Sheet range. The values parameter is a JSON array of rows, e.g. [["a","b"],["c","d"]].`),
		mcp.WithTitleAnnotation("Append Sheet Rows"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithString("spreadsheet_id",
			mcp.Description("The spreadsheet ID."),
			mcp.Required(),
		),
		mcp.WithString("range",
			mcp.Description("A1 range to append after, e.g. Sheet1!A1."),
			mcp.Required(),
		),
		mcp.WithString("values",
			mcp.Description("JSON array of rows of cell strings."),
			mcp.Required(),
		),
	)
}

func (h *SheetHandler) handleSheetAppend(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	spreadsheetID, err := request.RequireString("spreadsheet_id")
	if err != nil {
		return nil, err
	}

	a1Range, err := request.RequireString("range")
	if err != nil {
		return nil, err
	}

	valuesRaw, err := request.RequireString("values")
	if err != nil {
		return nil, err
	}

	var values [][]string
	if err := json.Unmarshal([]byte(valuesRaw), &values); err != nil {
		return nil, fmt.Errorf("unable to parse values JSON: %w", err)
	}

	req := domainSheet.AppendRequest{
		SpreadsheetID: spreadsheetID,
		Range:         a1Range,
		Values:        values,
	}

	resp, err := h.sheetService.Append(ctx, req)
	if err != nil {
		return nil, err
	}

	fallback := fmt.Sprintf("Appended %d cells to %s", resp.UpdatedCells, resp.SpreadsheetID)
	return mcp.NewToolResultStructured(resp, fallback), nil
}
