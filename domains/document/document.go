package document

import "context"

type FetchMode string

const (
	// ModeSummary stores the extracted text in the cache and returns
	// metadata plus chunk addresses instead of the content itself.
	ModeSummary FetchMode = "summary"
	ModeFull    FetchMode = "full"
)

type FetchRequest struct {
	DocumentID string    `json:"document_id"`
	Mode       FetchMode `json:"mode,omitempty"`
}

type FetchResponse struct {
	DocumentID     string `json:"document_id"`
	Title          string `json:"title"`
	TextLength     int    `json:"text_length"`
	ContentAddress string `json:"content_address,omitempty"`
	ChunkAddress   string `json:"chunk_address,omitempty"`
	Preview        string `json:"preview,omitempty"`
	Content        string `json:"content,omitempty"`
	Truncated      bool   `json:"truncated,omitempty"`
	OriginalLength int    `json:"original_length,omitempty"`
}

type CreateRequest struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
}

type CreateResponse struct {
	OperationID string `json:"operation_id"`
	DocumentID  string `json:"document_id"`
	Title       string `json:"title"`
}

type UpdateRequest struct {
	DocumentID string       `json:"document_id"`
	Updates    []UpdateSpec `json:"updates"`
}

type UpdateSpec struct {
	InsertText  string `json:"insert_text,omitempty"`
	InsertIndex int    `json:"insert_index,omitempty"`
	FindText    string `json:"find_text,omitempty"`
	ReplaceText string `json:"replace_text,omitempty"`
	MatchCase   bool   `json:"match_case,omitempty"`
}

type UpdateResponse struct {
	OperationID  string `json:"operation_id"`
	DocumentID   string `json:"document_id"`
	AppliedCount int    `json:"applied_count"`
}

type IDocumentUsecase interface {
	Fetch(ctx context.Context, req FetchRequest) (FetchResponse, error)
	Create(ctx context.Context, req CreateRequest) (CreateResponse, error)
	Update(ctx context.Context, req UpdateRequest) (UpdateResponse, error)
}
