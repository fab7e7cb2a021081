package validation

import (
	apperrors "github.com/lojahub/backoffice/internal/errors"
)

func OrderCustomer(customerID int64) *apperrors.AppError {
	if customerID <= 0 {
		return apperrors.ValidationError("Selecione um cliente.")
	}

	return nil
}

func OrderItems(count int) *apperrors.AppError {
	if count < 1 {
		return apperrors.ValidationError("Adicione ao menos 1 item ao pedido.")
	}

	return nil
}

// OrderLine guards a single line before it joins the draft.
func OrderLine(productID int64, quantity int) *apperrors.AppError {
	if productID <= 0 {
		return apperrors.ValidationError("Selecione um produto.")
	}

	if quantity < 1 {
		return apperrors.ValidationError("Quantidade deve ser maior que 0.")
	}

	return nil
}
