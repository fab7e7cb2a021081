package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/orderdraft"
	"github.com/lojahub/backoffice/internal/payload"
	"github.com/lojahub/backoffice/internal/validation"
	"github.com/lojahub/backoffice/pkg/rest"
)

type OrderService interface {
	List(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, draft *orderdraft.Draft) (*models.Order, error)
	Update(ctx context.Context, id int64, draft models.OrderUpdate) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	api rest.Client
	now func() time.Time
}

func NewOrderService(api rest.Client) OrderService {
	return &orderService{api: api, now: time.Now}
}

func sanitizeOrder(o *models.Order) {
	if o.Items == nil {
		o.Items = []models.OrderItem{}
	}
}

func (s *orderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order

	if err := s.api.Get(ctx, "/pedidos", &orders); err != nil {
		slog.Error("Error fetching orders", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao buscar pedidos.")
	}

	for i := range orders {
		sanitizeOrder(&orders[i])
	}

	return orders, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order

	if err := s.api.Get(ctx, fmt.Sprintf("/pedidos/%d", id), &order); err != nil {
		slog.Error("Error fetching order",
			slog.Int64("orderId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao buscar pedido.")
	}

	sanitizeOrder(&order)

	return &order, nil
}

func (s *orderService) Create(ctx context.Context, draft *orderdraft.Draft) (*models.Order, error) {
	if err := draft.Validate(); err != nil {
		slog.Warn("Order input validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	body := payload.OrderCreate(draft.CustomerID, s.now(), draft.Items())

	var order models.Order

	if err := s.api.Post(ctx, "/pedidos", body, &order); err != nil {
		slog.Error("Error during order creation", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao criar pedido.")
	}

	sanitizeOrder(&order)
	slog.Info("Order created successfully", slog.Int64("orderId", order.ID))

	return &order, nil
}

func validateOrderUpdate(draft models.OrderUpdate) *apperrors.AppError {
	if draft.CustomerID != nil {
		if err := validation.OrderCustomer(*draft.CustomerID); err != nil {
			return err
		}
	}

	if draft.Status != nil && !draft.Status.Valid() {
		return apperrors.ValidationError("Status de pedido inválido.")
	}

	if draft.Items != nil {
		if err := validation.OrderItems(len(draft.Items)); err != nil {
			return err
		}
	}

	return nil
}

func (s *orderService) Update(ctx context.Context, id int64, draft models.OrderUpdate) (*models.Order, error) {
	if err := validateOrderUpdate(draft); err != nil {
		slog.Warn("Order input validation failed",
			slog.Int64("orderId", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	var order models.Order

	if err := s.api.Put(ctx, fmt.Sprintf("/pedidos/%d", id), payload.OrderUpdate(draft), &order); err != nil {
		slog.Error("Error during order update",
			slog.Int64("orderId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao salvar pedido.")
	}

	sanitizeOrder(&order)
	slog.Info("Order updated successfully", slog.Int64("orderId", order.ID))

	return &order, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/pedidos/%d", id)); err != nil {
		slog.Error("Error during order deletion",
			slog.Int64("orderId", id),
			slog.String("error", err.Error()),
		)
		return apperrors.WithFallback(err, "Erro ao excluir pedido.")
	}

	slog.Info("Order deleted successfully", slog.Int64("orderId", id))

	return nil
}
