package models

import "github.com/shopspring/decimal"

type Category struct {
	ID          int64            `json:"id"`
	Name        string           `json:"nome"`
	Description string           `json:"descricao"`
	Products    []ProductSummary `json:"produtos"`
}

// ProductSummary is the embedded product list returned on category reads,
// used only for display counts.
type ProductSummary struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
	Stock int64           `json:"estoque"`
}

type CategoryDraft struct {
	Name        string
	Description string
}

// CategoryUpdate: nil means untouched; Description set to "" clears the
// stored value.
type CategoryUpdate struct {
	Name        *string
	Description *string
}
