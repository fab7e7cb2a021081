package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
)

func CustomerName(name string) *apperrors.AppError {
	if isBlank(name) {
		return apperrors.ValidationError("Nome é obrigatório.")
	}

	if anyDigit.MatchString(name) {
		return apperrors.ValidationError("Nome não pode conter números.")
	}

	if utf8.RuneCountInString(stripSpaces(name)) < 4 {
		return apperrors.ValidationError("Nome deve ter no mínimo 4 letras.")
	}

	return nil
}

func CustomerEmail(email string) *apperrors.AppError {
	if isBlank(email) {
		return apperrors.ValidationError("Email é obrigatório.")
	}

	if allDigits.MatchString(email) {
		return apperrors.ValidationError("Email não pode ser apenas números.")
	}

	if !emailRe.MatchString(email) {
		return apperrors.ValidationError("Email inválido. Use o formato: usuario@exemplo.com")
	}

	return nil
}

func CustomerCPF(cpf string) *apperrors.AppError {
	if isBlank(cpf) {
		return apperrors.ValidationError("CPF é obrigatório.")
	}

	digits := stripNonDigits(cpf)

	if digits != strings.TrimSpace(cpf) {
		return apperrors.ValidationError("CPF deve conter apenas números.")
	}

	if len(digits) != 11 {
		return apperrors.ValidationError("CPF deve ter exatamente 11 dígitos.")
	}

	return nil
}

func CustomerPassword(password string) *apperrors.AppError {
	if isBlank(password) {
		return apperrors.ValidationError("Senha é obrigatória.")
	}

	if utf8.RuneCountInString(password) < 4 {
		return apperrors.ValidationError("A senha deve ter pelo menos 4 caracteres.")
	}

	if !anyLetter.MatchString(password) {
		return apperrors.ValidationError("A senha deve conter pelo menos uma letra.")
	}

	if !anyDigit.MatchString(password) {
		return apperrors.ValidationError("A senha deve conter pelo menos um número.")
	}

	return nil
}

// CustomerPhone is optional: blank passes.
func CustomerPhone(phone string) *apperrors.AppError {
	if isBlank(phone) {
		return nil
	}

	digits := stripNonDigits(phone)

	if len(digits) < 10 || len(digits) > 15 {
		return apperrors.ValidationError("Telefone deve ter entre 10 e 15 dígitos.")
	}

	return nil
}

// CustomerBirthDate is optional: blank passes. Accepts an RFC 3339 timestamp
// or a plain calendar date.
func CustomerBirthDate(date string) *apperrors.AppError {
	if isBlank(date) {
		return nil
	}

	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", date)
	}

	if err != nil {
		return apperrors.ValidationError("Data de nascimento inválida.")
	}

	if parsed.Year() < 1900 {
		return apperrors.ValidationError("Data mínima permitida é 01/01/1900.")
	}

	if parsed.After(time.Now()) {
		return apperrors.ValidationError("Data de nascimento não pode ser no futuro.")
	}

	return nil
}

// CustomerCreate runs the full create-form chain: the password is required.
func CustomerCreate(d models.CustomerDraft) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError { return CustomerName(d.Name) },
		func() *apperrors.AppError { return CustomerEmail(d.Email) },
		func() *apperrors.AppError { return CustomerCPF(d.CPF) },
		func() *apperrors.AppError { return CustomerPassword(d.Password) },
		func() *apperrors.AppError { return CustomerPhone(d.Phone) },
		func() *apperrors.AppError { return CustomerBirthDate(d.BirthDate) },
	)
}

// CustomerEdit validates only the fields the form touched. A blank password
// means "keep the current one" and skips the password rules entirely.
func CustomerEdit(d models.CustomerUpdate) *apperrors.AppError {
	return firstError(
		func() *apperrors.AppError {
			if d.Name == nil {
				return nil
			}
			return CustomerName(*d.Name)
		},
		func() *apperrors.AppError {
			if d.Email == nil {
				return nil
			}
			return CustomerEmail(*d.Email)
		},
		func() *apperrors.AppError {
			if d.CPF == nil {
				return nil
			}
			return CustomerCPF(*d.CPF)
		},
		func() *apperrors.AppError {
			if d.Password == nil || isBlank(*d.Password) {
				return nil
			}
			return CustomerPassword(*d.Password)
		},
		func() *apperrors.AppError {
			if d.Phone == nil {
				return nil
			}
			return CustomerPhone(*d.Phone)
		},
		func() *apperrors.AppError {
			if d.BirthDate == nil {
				return nil
			}
			return CustomerBirthDate(*d.BirthDate)
		},
	)
}
