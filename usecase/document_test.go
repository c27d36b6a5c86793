package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/AzielCF/az-drive/config"
	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
	"github.com/AzielCF/az-drive/pkg/address"
	"github.com/AzielCF/az-drive/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock Drive API
type mockDriveAPI struct {
	getDocument    func(ctx context.Context, documentID string) (domainGdrive.Document, error)
	createDocument func(ctx context.Context, title, body string) (domainGdrive.Document, error)
	batchUpdate    func(ctx context.Context, documentID string, updates []domainGdrive.DocumentUpdate) (int, error)
	getValues      func(ctx context.Context, spreadsheetID string, ranges []string) ([]domainGdrive.ValueRange, error)
	appendValues   func(ctx context.Context, spreadsheetID, a1Range string, values [][]string) (int, error)
	downloadFile   func(ctx context.Context, fileID string) (domainGdrive.FileMeta, string, error)
}

func (m *mockDriveAPI) GetDocument(ctx context.Context, documentID string) (domainGdrive.Document, error) {
	return m.getDocument(ctx, documentID)
}

func (m *mockDriveAPI) CreateDocument(ctx context.Context, title, body string) (domainGdrive.Document, error) {
	return m.createDocument(ctx, title, body)
}

func (m *mockDriveAPI) BatchUpdateDocument(ctx context.Context, documentID string, updates []domainGdrive.DocumentUpdate) (int, error) {
	return m.batchUpdate(ctx, documentID, updates)
}

func (m *mockDriveAPI) GetValues(ctx context.Context, spreadsheetID string, ranges []string) ([]domainGdrive.ValueRange, error) {
	return m.getValues(ctx, spreadsheetID, ranges)
}

func (m *mockDriveAPI) AppendValues(ctx context.Context, spreadsheetID, a1Range string, values [][]string) (int, error) {
	return m.appendValues(ctx, spreadsheetID, a1Range, values)
}

func (m *mockDriveAPI) GetFile(ctx context.Context, fileID string) (domainGdrive.FileMeta, error) {
	return domainGdrive.FileMeta{}, nil
}

func (m *mockDriveAPI) DownloadFile(ctx context.Context, fileID string) (domainGdrive.FileMeta, string, error) {
	return m.downloadFile(ctx, fileID)
}

func (m *mockDriveAPI) ListFiles(ctx context.Context, query string, pageSize int) ([]domainGdrive.FileMeta, error) {
	return nil, nil
}

func (m *mockDriveAPI) DeleteFile(ctx context.Context, fileID string) error {
	return nil
}

func TestDocument_FetchSummaryPopulatesCache(t *testing.T) {
	cache := newTestCache(newFakeClock())
	api := &mockDriveAPI{
		getDocument: func(_ context.Context, documentID string) (domainGdrive.Document, error) {
			return domainGdrive.Document{DocumentID: documentID, Title: "Notes", Text: "Hello world"}, nil
		},
	}
	service := usecase.NewDocumentService(api, cache)

	resp, err := service.Fetch(context.Background(), domainDocument.FetchRequest{DocumentID: "doc1"})
	require.NoError(t, err)

	assert.Equal(t, "doc1", resp.DocumentID)
	assert.Equal(t, "Notes", resp.Title)
	assert.Equal(t, 11, resp.TextLength)
	assert.Equal(t, "Hello world", resp.Preview)
	assert.Empty(t, resp.Content, "summary mode defers content to the cache")

	// The returned address must parse back to the cache key used to store.
	parsed := address.Parse(resp.ContentAddress)
	require.True(t, parsed.Valid)
	entry, ok := cache.Get(parsed.ResourceID)
	require.True(t, ok)
	assert.Equal(t, "Hello world", entry.Text)

	chunkParsed := address.Parse(resp.ChunkAddress)
	require.True(t, chunkParsed.Valid)
	assert.Equal(t, "doc1", chunkParsed.ResourceID)
}

func TestDocument_FetchFullTruncates(t *testing.T) {
	cache := newTestCache(newFakeClock())
	longText := strings.Repeat("a", config.TruncateLimit+500)
	api := &mockDriveAPI{
		getDocument: func(_ context.Context, documentID string) (domainGdrive.Document, error) {
			return domainGdrive.Document{DocumentID: documentID, Title: "Big", Text: longText}, nil
		},
	}
	service := usecase.NewDocumentService(api, cache)

	resp, err := service.Fetch(context.Background(), domainDocument.FetchRequest{
		DocumentID: "doc1",
		Mode:       domainDocument.ModeFull,
	})
	require.NoError(t, err)

	assert.True(t, resp.Truncated)
	assert.Equal(t, len(longText), resp.OriginalLength)
	assert.LessOrEqual(t, len(resp.Content), config.TruncateLimit)
	assert.Contains(t, resp.Content, "OUTPUT TRUNCATED")

	// Full mode must not populate the cache.
	_, ok := cache.Get("doc1")
	assert.False(t, ok)
}

func TestDocument_FetchValidation(t *testing.T) {
	service := usecase.NewDocumentService(&mockDriveAPI{}, newTestCache(newFakeClock()))

	_, err := service.Fetch(context.Background(), domainDocument.FetchRequest{})
	assert.Error(t, err)
}

func TestDocument_UpdateMapsSpecs(t *testing.T) {
	var got []domainGdrive.DocumentUpdate
	api := &mockDriveAPI{
		batchUpdate: func(_ context.Context, _ string, updates []domainGdrive.DocumentUpdate) (int, error) {
			got = updates
			return len(updates), nil
		},
	}
	service := usecase.NewDocumentService(api, newTestCache(newFakeClock()))

	resp, err := service.Update(context.Background(), domainDocument.UpdateRequest{
		DocumentID: "doc1",
		Updates: []domainDocument.UpdateSpec{
			{FindText: "old", ReplaceText: "new"},
			{InsertText: "hi", InsertIndex: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.AppliedCount)
	assert.NotEmpty(t, resp.OperationID)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].ReplaceAllText)
	assert.Equal(t, "old", got[0].ReplaceAllText.Find)
	require.NotNil(t, got[1].InsertText)
	assert.Equal(t, 1, got[1].InsertText.Index)
}
