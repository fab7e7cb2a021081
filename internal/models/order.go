package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "PENDENTE"
	StatusPaid     OrderStatus = "PAGO"
	StatusCanceled OrderStatus = "CANCELADO"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCanceled:
		return true
	}

	return false
}

// ParseOrderStatus maps raw input (CLI args, wire values) onto the status set.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}

	return s, nil
}

type Order struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"clienteId"`
	Date       time.Time       `json:"data"`
	Total      decimal.Decimal `json:"total"`
	Status     OrderStatus     `json:"status"`
	Customer   *CustomerRef    `json:"cliente,omitempty"`
	Items      []OrderItem     `json:"items"`
}

// CustomerRef is the embedded customer relation returned on order reads.
type CustomerRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

type OrderItem struct {
	ID        int64       `json:"id"`
	OrderID   int64       `json:"pedidoId"`
	ProductID int64       `json:"produtoId"`
	Quantity  int         `json:"quantidade"`
	Product   *ProductRef `json:"produto,omitempty"`
}

// ProductRef is the denormalized product snapshot carried by a line item for
// display.
type ProductRef struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nome"`
	Price decimal.Decimal `json:"preco"`
}

// OrderItemInput is the minimal line projection sent on create/update:
// product reference and quantity only.
type OrderItemInput struct {
	ProductID int64 `json:"produtoId"`
	Quantity  int   `json:"quantidade"`
}

// OrderUpdate: nil means untouched.
type OrderUpdate struct {
	CustomerID *int64
	Status     *OrderStatus
	Items      []OrderItemInput
}
