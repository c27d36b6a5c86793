package validations

import (
	"context"

	domainFile "github.com/AzielCF/az-drive/domains/file"
	pkgError "github.com/AzielCF/az-drive/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateFetchFile(ctx context.Context, request domainFile.FetchRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.FileID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateListFiles(ctx context.Context, request domainFile.ListRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.PageSize, validation.Min(0), validation.Max(1000)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateDeleteFile(ctx context.Context, request domainFile.DeleteRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.FileID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
