package cache

import (
	"context"
	"encoding/json"
	"time"
)

type ResourceKind string

const (
	KindDocument    ResourceKind = "document"
	KindSpreadsheet ResourceKind = "spreadsheet"
	KindFile        ResourceKind = "file"
)

// Clock supplies "now" for TTL computations; injected so expiry is testable
// without real waiting.
type Clock func() time.Time

// Content is the raw payload stored alongside the extracted text. One
// implementation exists per resource kind; entries never mutate it.
type Content interface {
	ContentKind() ResourceKind
}

type DocumentContent struct {
	Title string          `json:"title"`
	Raw   json.RawMessage `json:"raw,omitempty"`
}

func (DocumentContent) ContentKind() ResourceKind { return KindDocument }

type SheetContent struct {
	Ranges []string        `json:"ranges"`
	Raw    json.RawMessage `json:"raw,omitempty"`
}

func (SheetContent) ContentKind() ResourceKind { return KindSpreadsheet }

type FileContent struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Raw      []byte `json:"raw,omitempty"`
}

func (FileContent) ContentKind() ResourceKind { return KindFile }

type Entry struct {
	Content   Content      `json:"-"`
	Text      string       `json:"-"`
	Kind      ResourceKind `json:"kind"`
	FetchedAt time.Time    `json:"fetched_at"`
}

type EntryStats struct {
	Key        string       `json:"key"`
	Kind       ResourceKind `json:"kind"`
	AgeSeconds int64        `json:"age_seconds"`
	TextLength int          `json:"text_length"`
	HumanText  string       `json:"human_text"`
}

type Stats struct {
	Size    int          `json:"size"`
	Entries []EntryStats `json:"entries"`
}

type ICacheUsecase interface {
	// Store unconditionally overwrites any entry for key and refreshes its
	// fetch time.
	Store(key string, content Content, text string, kind ResourceKind)
	// Get returns the live entry for key. An entry older than the TTL is
	// deleted on the spot and reported as a miss.
	Get(key string) (Entry, bool)
	// Sweep deletes every expired entry regardless of access and returns the
	// count removed.
	Sweep() int
	// Stats is diagnostic only; it never evicts.
	Stats() Stats
	StartBackgroundSweep(ctx context.Context)
}
