// Package gdrive declares the contract with the external Google Drive, Docs
// and Sheets APIs. The concrete HTTP client lives in infrastructure/gdrive.
package gdrive

import (
	"context"
	"encoding/json"
)

type Document struct {
	DocumentID string          `json:"document_id"`
	Title      string          `json:"title"`
	Text       string          `json:"-"`
	Raw        json.RawMessage `json:"-"`
}

type ValueRange struct {
	Range  string     `json:"range"`
	Values [][]string `json:"values"`
}

type FileMeta struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size,omitempty"`
	ModifiedTime string `json:"modified_time,omitempty"`
}

type InsertText struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

type ReplaceAllText struct {
	Find      string `json:"find"`
	Replace   string `json:"replace"`
	MatchCase bool   `json:"match_case"`
}

// DocumentUpdate is one request in a document batch update; exactly one field
// is set.
type DocumentUpdate struct {
	InsertText     *InsertText     `json:"insert_text,omitempty"`
	ReplaceAllText *ReplaceAllText `json:"replace_all_text,omitempty"`
}

type IDriveAPI interface {
	GetDocument(ctx context.Context, documentID string) (Document, error)
	CreateDocument(ctx context.Context, title, body string) (Document, error)
	BatchUpdateDocument(ctx context.Context, documentID string, updates []DocumentUpdate) (int, error)

	GetValues(ctx context.Context, spreadsheetID string, ranges []string) ([]ValueRange, error)
	AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]string) (int, error)

	GetFile(ctx context.Context, fileID string) (FileMeta, error)
	// DownloadFile returns the file metadata plus its displayable text,
	// already extracted according to the mime type.
	DownloadFile(ctx context.Context, fileID string) (FileMeta, string, error)
	ListFiles(ctx context.Context, query string, pageSize int) ([]FileMeta, error)
	DeleteFile(ctx context.Context, fileID string) error
}
