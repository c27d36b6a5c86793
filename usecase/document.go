package usecase

import (
	"context"

	"github.com/AzielCF/az-drive/config"
	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
	"github.com/AzielCF/az-drive/pkg/address"
	"github.com/AzielCF/az-drive/pkg/truncate"
	"github.com/AzielCF/az-drive/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const previewLength = 200

type documentService struct {
	api   domainGdrive.IDriveAPI
	cache domainCache.ICacheUsecase
}

func NewDocumentService(api domainGdrive.IDriveAPI, cache domainCache.ICacheUsecase) domainDocument.IDocumentUsecase {
	return &documentService{api: api, cache: cache}
}

func (s *documentService) Fetch(ctx context.Context, req domainDocument.FetchRequest) (domainDocument.FetchResponse, error) {
	if err := validations.ValidateFetchDocument(ctx, req); err != nil {
		return domainDocument.FetchResponse{}, err
	}

	doc, err := s.api.GetDocument(ctx, req.DocumentID)
	if err != nil {
		return domainDocument.FetchResponse{}, err
	}

	resp := domainDocument.FetchResponse{
		DocumentID: doc.DocumentID,
		Title:      doc.Title,
		TextLength: len(doc.Text),
	}

	if req.Mode == domainDocument.ModeFull {
		res := truncate.Truncate(doc.Text, truncate.WithLimit(config.TruncateLimit))
		resp.Content = res.Text
		resp.Truncated = res.Truncated
		resp.OriginalLength = res.OriginalLength
		return resp, nil
	}

	// Summary mode: the cache key must equal the resource id that later
	// appears in the returned addresses.
	s.cache.Store(doc.DocumentID, domainCache.DocumentContent{Title: doc.Title, Raw: doc.Raw}, doc.Text, domainCache.KindDocument)
	logrus.Infof("[DOCS] Cached document %s (%d chars)", doc.DocumentID, len(doc.Text))

	resp.ContentAddress = address.FormatContent("docs", doc.DocumentID)
	resp.ChunkAddress = address.FormatChunk("docs", doc.DocumentID, 0, firstChunkEnd(len(doc.Text)))
	resp.Preview = preview(doc.Text)
	return resp, nil
}

func (s *documentService) Create(ctx context.Context, req domainDocument.CreateRequest) (domainDocument.CreateResponse, error) {
	if err := validations.ValidateCreateDocument(ctx, req); err != nil {
		return domainDocument.CreateResponse{}, err
	}

	doc, err := s.api.CreateDocument(ctx, req.Title, req.Body)
	if err != nil {
		return domainDocument.CreateResponse{}, err
	}

	return domainDocument.CreateResponse{
		OperationID: uuid.NewString(),
		DocumentID:  doc.DocumentID,
		Title:       doc.Title,
	}, nil
}

func (s *documentService) Update(ctx context.Context, req domainDocument.UpdateRequest) (domainDocument.UpdateResponse, error) {
	if err := validations.ValidateUpdateDocument(ctx, req); err != nil {
		return domainDocument.UpdateResponse{}, err
	}

	updates := make([]domainGdrive.DocumentUpdate, 0, len(req.Updates))
	for _, spec := range req.Updates {
		if spec.FindText != "" {
			updates = append(updates, domainGdrive.DocumentUpdate{
				ReplaceAllText: &domainGdrive.ReplaceAllText{
					Find:      spec.FindText,
					Replace:   spec.ReplaceText,
					MatchCase: spec.MatchCase,
				},
			})
			continue
		}
		updates = append(updates, domainGdrive.DocumentUpdate{
			InsertText: &domainGdrive.InsertText{
				Text:  spec.InsertText,
				Index: spec.InsertIndex,
			},
		})
	}

	applied, err := s.api.BatchUpdateDocument(ctx, req.DocumentID, updates)
	if err != nil {
		return domainDocument.UpdateResponse{}, err
	}

	return domainDocument.UpdateResponse{
		OperationID:  uuid.NewString(),
		DocumentID:   req.DocumentID,
		AppliedCount: applied,
	}, nil
}

func preview(text string) string {
	if len(text) <= previewLength {
		return text
	}
	return text[:previewLength]
}

// firstChunkEnd bounds the suggested first chunk to one truncation-limit
// worth of text.
func firstChunkEnd(textLength int) int {
	if textLength == 0 {
		return 1
	}
	if textLength < config.TruncateLimit {
		return textLength
	}
	return config.TruncateLimit
}
