package validation

import (
	"strings"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/shopspring/decimal"
)

func ProductName(name string) *apperrors.AppError {
	if isBlank(name) {
		return apperrors.ValidationError("Informe o nome do produto.")
	}

	if allDigits.MatchString(strings.TrimSpace(name)) {
		return apperrors.ValidationError("O nome do produto não pode ser apenas números.")
	}

	return nil
}

func ProductPrice(price decimal.Decimal) *apperrors.AppError {
	if price.LessThanOrEqual(decimal.Zero) {
		return apperrors.ValidationError("Informe um preço válido.")
	}

	return nil
}

func ProductCategory(categoryID int64) *apperrors.AppError {
	if categoryID <= 0 {
		return apperrors.ValidationError("Selecione uma categoria.")
	}

	return nil
}

// ProductDescription is optional: blank passes.
func ProductDescription(description string) *apperrors.AppError {
	trimmed := strings.TrimSpace(description)

	if trimmed != "" && allDigits.MatchString(trimmed) {
		return apperrors.ValidationError("A descrição não pode ser apenas números.")
	}

	return nil
}

func ProductCreate(d models.ProductDraft) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError { return ProductName(d.Name) },
		func() *apperrors.AppError { return ProductPrice(d.Price) },
		func() *apperrors.AppError { return ProductCategory(d.CategoryID) },
		func() *apperrors.AppError { return ProductDescription(d.Description) },
	)
}

// ProductEdit validates touched fields. Setting the category to zero is
// rejected: a product cannot be edited to "no category".
func ProductEdit(d models.ProductUpdate) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError {
			if d.Name == nil {
				return nil
			}
			return ProductName(*d.Name)
		},
		func() *apperrors.AppError {
			if d.Price == nil {
				return nil
			}
			return ProductPrice(*d.Price)
		},
		func() *apperrors.AppError {
			if d.CategoryID == nil {
				return nil
			}
			return ProductCategory(*d.CategoryID)
		},
		func() *apperrors.AppError {
			if d.Description == nil {
				return nil
			}
			return ProductDescription(*d.Description)
		},
	)
}
