// Package orderdraft holds the working state of an order form: an ordered
// list of product/quantity lines with locally generated ids, kept separate
// from any server-assigned identity until the order is persisted.
package orderdraft

import (
	"github.com/google/uuid"
	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/validation"
	"github.com/shopspring/decimal"
)

// Line is one product+quantity entry. ID is a session-local identifier and
// never leaves the draft.
type Line struct {
	ID          uuid.UUID
	ProductID   int64
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// Subtotal is the display value for one line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Draft struct {
	CustomerID int64
	Status     models.OrderStatus
	lines      []Line
}

func New() *Draft {
	return &Draft{Status: models.StatusPending}
}

// FromOrder seeds a draft from a loaded order so its lines can be edited.
// Missing product snapshots keep a zero price.
func FromOrder(order models.Order) *Draft {
	d := &Draft{
		CustomerID: order.CustomerID,
		Status:     order.Status,
	}

	for _, item := range order.Items {
		line := Line{
			ID:        uuid.New(),
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}

		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.Price = item.Product.Price
		}

		d.lines = append(d.lines, line)
	}

	return d
}

// AddLine appends a new line. Adding the same product twice yields two
// distinct lines; quantities are never merged.
func (d *Draft) AddLine(product *models.Product, quantity int) (Line, *apperrors.AppError) {
	var productID int64
	if product != nil {
		productID = product.ID
	}

	if err := validation.OrderLine(productID, quantity); err != nil {
		return Line{}, err
	}

	line := Line{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
		Quantity:    quantity,
	}

	d.lines = append(d.lines, line)

	return line, nil
}

// RemoveLine drops the line with the given id; unknown ids are a no-op.
func (d *Draft) RemoveLine(id uuid.UUID) {
	kept := d.lines[:0]

	for _, line := range d.lines {
		if line.ID != id {
			kept = append(kept, line)
		}
	}

	d.lines = kept
}

// SetQuantity updates a line in place, clamping to a minimum of 1.
func (d *Draft) SetQuantity(id uuid.UUID, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range d.lines {
		if d.lines[i].ID == id {
			d.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines returns a copy of the current lines in insertion order.
func (d *Draft) Lines() []Line {
	out := make([]Line, len(d.lines))
	copy(out, d.lines)

	return out
}

func (d *Draft) Len() int {
	return len(d.lines)
}

// Total is Σ(quantity × price) over all lines. A line without a price
// contributes 0; an empty draft totals 0.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero

	for _, line := range d.lines {
		total = total.Add(line.Subtotal())
	}

	return total
}

// Items projects the lines to the wire shape, dropping local ids and the
// display snapshots.
func (d *Draft) Items() []models.OrderItemInput {
	items := make([]models.OrderItemInput, 0, len(d.lines))

	for _, line := range d.lines {
		items = append(items, models.OrderItemInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return items
}

// Validate checks the draft is submittable: a selected customer and at
// least one line.
func (d *Draft) Validate() *apperrors.AppError {
	if err := validation.OrderCustomer(d.CustomerID); err != nil {
		return err
	}

	return validation.OrderItems(len(d.lines))
}
