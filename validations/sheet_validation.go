package validations

import (
	"context"

	domainSheet "github.com/AzielCF/az-drive/domains/sheet"
	pkgError "github.com/AzielCF/az-drive/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateSheetValues(ctx context.Context, request domainSheet.ValuesRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.SpreadsheetID, validation.Required),
		validation.Field(&request.Ranges, validation.Required, validation.Each(validation.Required)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSheetAppend(ctx context.Context, request domainSheet.AppendRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.SpreadsheetID, validation.Required),
		validation.Field(&request.Range, validation.Required),
		validation.Field(&request.Values, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}
