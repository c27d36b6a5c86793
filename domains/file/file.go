package file

import (
	"context"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
)

type FetchRequest struct {
	FileID string                   `json:"file_id"`
	Mode   domainDocument.FetchMode `json:"mode,omitempty"`
}

type FetchResponse struct {
	FileID         string `json:"file_id"`
	Name           string `json:"name"`
	MimeType       string `json:"mime_type"`
	TextLength     int    `json:"text_length"`
	ContentAddress string `json:"content_address,omitempty"`
	ChunkAddress   string `json:"chunk_address,omitempty"`
	Preview        string `json:"preview,omitempty"`
	Content        string `json:"content,omitempty"`
	Truncated      bool   `json:"truncated,omitempty"`
	OriginalLength int    `json:"original_length,omitempty"`
}

type ListRequest struct {
	Query    string `json:"query,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

type ListResponse struct {
	Files []domainGdrive.FileMeta `json:"files"`
}

type DeleteRequest struct {
	FileID string `json:"file_id"`
}

type DeleteResponse struct {
	OperationID string `json:"operation_id"`
	FileID      string `json:"file_id"`
	Status      string `json:"status"`
}

type IFileUsecase interface {
	Fetch(ctx context.Context, req FetchRequest) (FetchResponse, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	Delete(ctx context.Context, req DeleteRequest) (DeleteResponse, error)
}
