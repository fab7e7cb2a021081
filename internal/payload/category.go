package payload

import (
	"strings"

	"github.com/lojahub/backoffice/internal/models"
)

// CategoryCreate omits a blank description rather than sending null.
func CategoryCreate(d models.CategoryDraft) map[string]any {
	p := map[string]any{
		"nome": strings.TrimSpace(d.Name),
	}

	if !isBlank(d.Description) {
		p["descricao"] = strings.TrimSpace(d.Description)
	}

	return p
}

// CategoryUpdate sends only the touched fields; a description cleared to
// blank becomes explicit null.
func CategoryUpdate(d models.CategoryUpdate) map[string]any {
	p := map[string]any{}

	if d.Name != nil {
		p["nome"] = strings.TrimSpace(*d.Name)
	}

	if d.Description != nil {
		trimmed := strings.TrimSpace(*d.Description)

		if trimmed == "" {
			p["descricao"] = nil
		} else {
			p["descricao"] = trimmed
		}
	}

	return p
}
