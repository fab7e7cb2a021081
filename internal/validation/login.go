package validation

import (
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"
	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
)

var loginValidate = newLoginValidator()

// newLoginValidator registers the password composition rules used by the
// login form.
func newLoginValidator() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("contemletra", func(fl validatorv10.FieldLevel) bool {
		return anyLetter.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("contemnumero", func(fl validatorv10.FieldLevel) bool {
		return anyDigit.MatchString(fl.Field().String())
	})

	return v
}

// Login validates the credentials before the POST /clientes/login call,
// surfacing the first failing rule's message.
func Login(req models.LoginRequest) *apperrors.AppError {
	err := loginValidate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validatorv10.ValidationErrors

	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.ValidationError(loginMessage(fieldErrs[0]))
	}

	return apperrors.ValidationError("Dados de login inválidos.")
}

func loginMessage(fe validatorv10.FieldError) string {
	switch fe.StructField() {
	case "Email":
		if fe.Tag() == "required" {
			return "Email é obrigatório."
		}

		return "Email inválido. Use o formato: usuario@exemplo.com"
	case "Password":
		switch fe.Tag() {
		case "required":
			return "Senha é obrigatória."
		case "min":
			return "A senha deve ter pelo menos 4 caracteres."
		case "contemletra":
			return "A senha deve conter pelo menos uma letra."
		case "contemnumero":
			return "A senha deve conter pelo menos um número."
		}
	}

	return "Dados de login inválidos."
}
