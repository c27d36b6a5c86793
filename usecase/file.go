package usecase

import (
	"context"

	"github.com/AzielCF/az-drive/config"
	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainFile "github.com/AzielCF/az-drive/domains/file"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
	"github.com/AzielCF/az-drive/pkg/address"
	"github.com/AzielCF/az-drive/pkg/truncate"
	"github.com/AzielCF/az-drive/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type fileService struct {
	api   domainGdrive.IDriveAPI
	cache domainCache.ICacheUsecase
}

func NewFileService(api domainGdrive.IDriveAPI, cache domainCache.ICacheUsecase) domainFile.IFileUsecase {
	return &fileService{api: api, cache: cache}
}

func (s *fileService) Fetch(ctx context.Context, req domainFile.FetchRequest) (domainFile.FetchResponse, error) {
	if err := validations.ValidateFetchFile(ctx, req); err != nil {
		return domainFile.FetchResponse{}, err
	}

	meta, text, err := s.api.DownloadFile(ctx, req.FileID)
	if err != nil {
		return domainFile.FetchResponse{}, err
	}

	resp := domainFile.FetchResponse{
		FileID:     meta.ID,
		Name:       meta.Name,
		MimeType:   meta.MimeType,
		TextLength: len(text),
	}

	if req.Mode == domainDocument.ModeFull {
		res := truncate.Truncate(text, truncate.WithLimit(config.TruncateLimit))
		resp.Content = res.Text
		resp.Truncated = res.Truncated
		resp.OriginalLength = res.OriginalLength
		return resp, nil
	}

	s.cache.Store(meta.ID, domainCache.FileContent{Name: meta.Name, MimeType: meta.MimeType}, text, domainCache.KindFile)
	logrus.Infof("[FILES] Cached file %s (%d chars)", meta.ID, len(text))

	resp.ContentAddress = address.FormatContent("files", meta.ID)
	resp.ChunkAddress = address.FormatChunk("files", meta.ID, 0, firstChunkEnd(len(text)))
	resp.Preview = preview(text)
	return resp, nil
}

func (s *fileService) List(ctx context.Context, req domainFile.ListRequest) (domainFile.ListResponse, error) {
	if err := validations.ValidateListFiles(ctx, req); err != nil {
		return domainFile.ListResponse{}, err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 25
	}

	files, err := s.api.ListFiles(ctx, req.Query, pageSize)
	if err != nil {
		return domainFile.ListResponse{}, err
	}
	return domainFile.ListResponse{Files: files}, nil
}

func (s *fileService) Delete(ctx context.Context, req domainFile.DeleteRequest) (domainFile.DeleteResponse, error) {
	if err := validations.ValidateDeleteFile(ctx, req); err != nil {
		return domainFile.DeleteResponse{}, err
	}

	if err := s.api.DeleteFile(ctx, req.FileID); err != nil {
		return domainFile.DeleteResponse{}, err
	}
	logrus.Infof("[FILES] Deleted file %s", req.FileID)

	return domainFile.DeleteResponse{
		OperationID: uuid.NewString(),
		FileID:      req.FileID,
		Status:      "deleted",
	}, nil
}
