package validation

import (
	"strings"
	"unicode/utf8"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
)

func CategoryName(name string) *apperrors.AppError {
	if isBlank(name) {
		return apperrors.ValidationError("O nome da categoria é obrigatório.")
	}

	if utf8.RuneCountInString(strings.TrimSpace(name)) < 4 {
		return apperrors.ValidationError("O nome da categoria deve conter no mínimo 4 letras.")
	}

	if anyDigit.MatchString(name) {
		return apperrors.ValidationError("O nome da categoria não pode conter números.")
	}

	return nil
}

// CategoryDescription is optional: blank passes.
func CategoryDescription(description string) *apperrors.AppError {
	trimmed := strings.TrimSpace(description)

	if trimmed == "" {
		return nil
	}

	if utf8.RuneCountInString(trimmed) < 4 {
		return apperrors.ValidationError("A descrição deve conter no mínimo 4 letras.")
	}

	if anyDigit.MatchString(description) {
		return apperrors.ValidationError("A descrição não pode conter números.")
	}

	return nil
}

func CategoryCreate(d models.CategoryDraft) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError { return CategoryName(d.Name) },
		func() *apperrors.AppError { return CategoryDescription(d.Description) },
	)
}

func CategoryEdit(d models.CategoryUpdate) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError {
			if d.Name == nil {
				return nil
			}
			return CategoryName(*d.Name)
		},
		func() *apperrors.AppError {
			if d.Description == nil {
				return nil
			}
			return CategoryDescription(*d.Description)
		},
	)
}
