package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"nome"`
	Price       decimal.Decimal `json:"preco"`
	Description *string         `json:"descricao,omitempty"`
	Stock       int64           `json:"estoque"`
	CategoryID  int64           `json:"categoriaId,omitempty"`
	Category    *CategoryRef    `json:"categoria,omitempty"`
}

// CategoryRef is the embedded category relation returned on product reads.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

// ProductDraft is the create-form state. Stock nil defaults to 0 on create;
// a blank Description is omitted from the create payload.
type ProductDraft struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Stock       *int64
	CategoryID  int64
}

// ProductUpdate is the edit-form state. Nil means untouched. Description and
// Stock are additionally compared against the loaded record: unchanged values
// are dropped from the payload.
type ProductUpdate struct {
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Stock       *int64
	CategoryID  *int64
}
