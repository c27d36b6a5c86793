package validations

import (
	"context"

	domainDocument "github.com/AzielCF/az-drive/domains/document"
	pkgError "github.com/AzielCF/az-drive/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateFetchDocument(ctx context.Context, request domainDocument.FetchRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.DocumentID, validation.Required),
		validation.Field(&request.Mode, validation.In(
			domainDocument.FetchMode(""),
			domainDocument.ModeSummary,
			domainDocument.ModeFull,
		)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateDocument(ctx context.Context, request domainDocument.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Title, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateUpdateDocument(ctx context.Context, request domainDocument.UpdateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.DocumentID, validation.Required),
		validation.Field(&request.Updates, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	for _, spec := range request.Updates {
		if spec.InsertText == "" && spec.FindText == "" {
			return pkgError.ValidationError("each update must set insert_text or find_text")
		}
	}

	return nil
}
