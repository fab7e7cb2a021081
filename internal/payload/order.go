package payload

import (
	"time"

	"github.com/lojahub/backoffice/internal/models"
)

// OrderCreate carries the customer reference, timestamp and the minimal
// line projection.
func OrderCreate(customerID int64, date time.Time, items []models.OrderItemInput) map[string]any {
	return map[string]any{
		"clienteId": customerID,
		"data":      date.UTC().Format(time.RFC3339),
		"items":     items,
	}
}

// OrderUpdate sends only the touched fields. A nil Items slice means the
// lines were not edited.
func OrderUpdate(d models.OrderUpdate) map[string]any {
	p := map[string]any{}

	if d.CustomerID != nil {
		p["clienteId"] = *d.CustomerID
	}

	if d.Status != nil {
		p["status"] = *d.Status
	}

	if d.Items != nil {
		p["items"] = d.Items
	}

	return p
}
