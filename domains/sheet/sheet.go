package sheet

import (
	"context"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
)

type ValuesRequest struct {
	SpreadsheetID string                   `json:"spreadsheet_id"`
	Ranges        []string                 `json:"ranges"`
	Mode          domainDocument.FetchMode `json:"mode,omitempty"`
}

type ValuesResponse struct {
	SpreadsheetID  string   `json:"spreadsheet_id"`
	Ranges         []string `json:"ranges"`
	CacheKey       string   `json:"cache_key,omitempty"`
	TextLength     int      `json:"text_length"`
	ContentAddress string   `json:"content_address,omitempty"`
	ChunkAddress   string   `json:"chunk_address,omitempty"`
	Preview        string   `json:"preview,omitempty"`
	Content        string   `json:"content,omitempty"`
	Truncated      bool     `json:"truncated,omitempty"`
	OriginalLength int      `json:"original_length,omitempty"`
}

type AppendRequest struct {
	SpreadsheetID string     `json:"spreadsheet_id"`
	Range         string     `json:"range"`
	Values        [][]string `json:"values"`
}

type AppendResponse struct {
	OperationID   string `json:"operation_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
	UpdatedCells  int    `json:"updated_cells"`
}

type ISheetUsecase interface {
	Values(ctx context.Context, req ValuesRequest) (ValuesResponse, error)
	Append(ctx context.Context, req AppendRequest) (AppendResponse, error)
}
