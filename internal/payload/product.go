package payload

import (
	"strings"

	"github.com/lojahub/backoffice/internal/models"
)

// ProductCreate rounds the price to 2 decimal places, defaults the stock to
// 0 and omits a blank description entirely.
func ProductCreate(d models.ProductDraft) map[string]any {
	p := map[string]any{
		"nome":        d.Name,
		"preco":       d.Price.Round(2),
		"categoriaId": d.CategoryID,
	}

	if d.Stock != nil {
		p["estoque"] = *d.Stock
	} else {
		p["estoque"] = int64(0)
	}

	if !isBlank(d.Description) {
		p["descricao"] = strings.TrimSpace(d.Description)
	}

	return p
}

// ProductUpdate sends only the touched fields, and drops descricao and
// estoque when they match the loaded record. A description cleared to blank
// becomes explicit null.
func ProductUpdate(d models.ProductUpdate, initial models.Product) map[string]any {
	p := map[string]any{}

	if d.Name != nil {
		p["nome"] = *d.Name
	}

	if d.Price != nil {
		p["preco"] = d.Price.Round(2)
	}

	if d.CategoryID != nil {
		p["categoriaId"] = *d.CategoryID
	}

	if d.Description != nil {
		draft := strings.TrimSpace(*d.Description)

		var loaded string
		if initial.Description != nil {
			loaded = strings.TrimSpace(*initial.Description)
		}

		if draft != loaded {
			if draft == "" {
				p["descricao"] = nil
			} else {
				p["descricao"] = draft
			}
		}
	}

	if d.Stock != nil && *d.Stock != initial.Stock {
		p["estoque"] = *d.Stock
	}

	return p
}
