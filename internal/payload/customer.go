package payload

import (
	"strings"

	"github.com/lojahub/backoffice/internal/models"
)

// CustomerCreate always carries the required fields; blank optional fields
// are sent as explicit null.
func CustomerCreate(d models.CustomerDraft) map[string]any {
	p := map[string]any{
		"nome":  strings.TrimSpace(d.Name),
		"email": strings.TrimSpace(d.Email),
		"cpf":   strings.TrimSpace(d.CPF),
		"senha": d.Password,
	}

	if isBlank(d.Phone) {
		p["telefone"] = nil
	} else {
		p["telefone"] = d.Phone
	}

	if isBlank(d.BirthDate) {
		p["dataNascimento"] = nil
	} else {
		p["dataNascimento"] = d.BirthDate
	}

	return p
}

// CustomerUpdate sends only the touched fields. Blank telefone and
// dataNascimento become null to clear the stored value; a blank senha is
// omitted so the server keeps the existing credential.
func CustomerUpdate(d models.CustomerUpdate) map[string]any {
	p := map[string]any{}

	if d.Name != nil {
		p["nome"] = *d.Name
	}

	if d.Email != nil {
		p["email"] = *d.Email
	}

	if d.CPF != nil {
		p["cpf"] = *d.CPF
	}

	if d.Phone != nil {
		if isBlank(*d.Phone) {
			p["telefone"] = nil
		} else {
			p["telefone"] = *d.Phone
		}
	}

	if d.BirthDate != nil {
		if isBlank(*d.BirthDate) {
			p["dataNascimento"] = nil
		} else {
			p["dataNascimento"] = *d.BirthDate
		}
	}

	if d.Password != nil && !isBlank(*d.Password) {
		p["senha"] = *d.Password
	}

	return p
}
