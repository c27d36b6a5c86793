package usecase

import (
	"context"
	"strings"

	"github.com/AzielCF/az-drive/config"
	domainCache "github.com/AzielCF/az-drive/domains/cache"
	domainDocument "github.com/AzielCF/az-drive/domains/document"
	domainGdrive "github.com/AzielCF/az-drive/domains/gdrive"
	domainSheet "github.com/AzielCF/az-drive/domains/sheet"
	"github.com/AzielCF/az-drive/pkg/address"
	"github.com/AzielCF/az-drive/pkg/truncate"
	"github.com/AzielCF/az-drive/validations"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type sheetService struct {
	api   domainGdrive.IDriveAPI
	cache domainCache.ICacheUsecase
}

func NewSheetService(api domainGdrive.IDriveAPI, cache domainCache.ICacheUsecase) domainSheet.ISheetUsecase {
	return &sheetService{api: api, cache: cache}
}

func (s *sheetService) Values(ctx context.Context, req domainSheet.ValuesRequest) (domainSheet.ValuesResponse, error) {
	if err := validations.ValidateSheetValues(ctx, req); err != nil {
		return domainSheet.ValuesResponse{}, err
	}

	ranges, err := s.api.GetValues(ctx, req.SpreadsheetID, req.Ranges)
	if err != nil {
		return domainSheet.ValuesResponse{}, err
	}

	text := flattenValues(ranges)
	resp := domainSheet.ValuesResponse{
		SpreadsheetID: req.SpreadsheetID,
		Ranges:        req.Ranges,
		TextLength:    len(text),
	}

	if req.Mode == domainDocument.ModeFull {
		res := truncate.Truncate(text, truncate.WithLimit(config.TruncateLimit))
		resp.Content = res.Text
		resp.Truncated = res.Truncated
		resp.OriginalLength = res.OriginalLength
		return resp, nil
	}

	// Several queried range sets of one spreadsheet must coexist, so the
	// cache key is a composite of id and the serialized range set. The
	// returned addresses use the composite key as their resource id, which
	// keeps the store-key/address-id contract intact.
	key := SheetCacheKey(req.SpreadsheetID, req.Ranges)
	s.cache.Store(key, domainCache.SheetContent{Ranges: req.Ranges}, text, domainCache.KindSpreadsheet)
	logrus.Infof("[SHEETS] Cached values %s (%d chars)", key, len(text))

	resp.CacheKey = key
	resp.ContentAddress = address.FormatContent("files", key)
	resp.ChunkAddress = address.FormatChunk("files", key, 0, firstChunkEnd(len(text)))
	resp.Preview = preview(text)
	return resp, nil
}

func (s *sheetService) Append(ctx context.Context, req domainSheet.AppendRequest) (domainSheet.AppendResponse, error) {
	if err := validations.ValidateSheetAppend(ctx, req); err != nil {
		return domainSheet.AppendResponse{}, err
	}

	cells, err := s.api.AppendValues(ctx, req.SpreadsheetID, req.Range, req.Values)
	if err != nil {
		return domainSheet.AppendResponse{}, err
	}

	return domainSheet.AppendResponse{
		OperationID:   uuid.NewString(),
		SpreadsheetID: req.SpreadsheetID,
		UpdatedCells:  cells,
	}, nil
}

// SheetCacheKey builds the composite cache key for a queried range set.
func SheetCacheKey(spreadsheetID string, ranges []string) string {
	return spreadsheetID + ":" + strings.Join(ranges, ",")
}

// flattenValues renders value ranges as display text: one header line per
// range, tab-separated rows beneath it.
func flattenValues(ranges []domainGdrive.ValueRange) string {
	var b strings.Builder
	for i, vr := range ranges {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## ")
		b.WriteString(vr.Range)
		for _, row := range vr.Values {
			b.WriteString("\n")
			b.WriteString(strings.Join(row, "\t"))
		}
	}
	return b.String()
}
