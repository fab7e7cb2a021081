package services

import (
	"context"
	"fmt"
	"log/slog"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/payload"
	"github.com/lojahub/backoffice/internal/validation"
	"github.com/lojahub/backoffice/pkg/rest"
)

type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, draft models.CustomerDraft) (*models.Customer, error)
	Update(ctx context.Context, id int64, draft models.CustomerUpdate) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
	Login(ctx context.Context, email, password string) (*models.Customer, error)
}

type customerService struct {
	api rest.Client
}

func NewCustomerService(api rest.Client) CustomerService {
	return &customerService{api: api}
}

// customerRecord is the raw wire shape. The senha field the server may echo
// back never survives sanitization.
type customerRecord struct {
	models.Customer
	Senha string `json:"senha,omitempty"`
}

func sanitizeCustomer(r customerRecord) models.Customer {
	return r.Customer
}

func (s *customerService) List(ctx context.Context) ([]models.Customer, error) {
	var records []customerRecord

	if err := s.api.Get(ctx, "/clientes", &records); err != nil {
		slog.Error("Error fetching customers", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao buscar clientes.")
	}

	customers := make([]models.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, sanitizeCustomer(r))
	}

	return customers, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*models.Customer, error) {
	var record customerRecord

	if err := s.api.Get(ctx, fmt.Sprintf("/clientes/%d", id), &record); err != nil {
		slog.Error("Error fetching customer",
			slog.Int64("customerId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao buscar cliente.")
	}

	customer := sanitizeCustomer(record)

	return &customer, nil
}

func (s *customerService) Create(ctx context.Context, draft models.CustomerDraft) (*models.Customer, error) {
	if err := validation.CustomerCreate(draft); err != nil {
		slog.Warn("Customer input validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	var record customerRecord

	if err := s.api.Post(ctx, "/clientes", payload.CustomerCreate(draft), &record); err != nil {
		slog.Error("Error during customer creation", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao criar cliente.")
	}

	customer := sanitizeCustomer(record)
	slog.Info("Customer created successfully", slog.Int64("customerId", customer.ID))

	return &customer, nil
}

func (s *customerService) Update(ctx context.Context, id int64, draft models.CustomerUpdate) (*models.Customer, error) {
	if err := validation.CustomerEdit(draft); err != nil {
		slog.Warn("Customer input validation failed",
			slog.Int64("customerId", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	var record customerRecord

	if err := s.api.Put(ctx, fmt.Sprintf("/clientes/%d", id), payload.CustomerUpdate(draft), &record); err != nil {
		slog.Error("Error during customer update",
			slog.Int64("customerId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao atualizar cliente.")
	}

	customer := sanitizeCustomer(record)
	slog.Info("Customer updated successfully", slog.Int64("customerId", customer.ID))

	return &customer, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/clientes/%d", id)); err != nil {
		slog.Error("Error during customer deletion",
			slog.Int64("customerId", id),
			slog.String("error", err.Error()),
		)
		return apperrors.WithFallback(err, "Erro ao excluir cliente.")
	}

	slog.Info("Customer deleted successfully", slog.Int64("customerId", id))

	return nil
}

func (s *customerService) Login(ctx context.Context, email, password string) (*models.Customer, error) {
	req := models.LoginRequest{Email: email, Password: password}

	if err := validation.Login(req); err != nil {
		slog.Warn("Login input validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	var record customerRecord

	if err := s.api.Post(ctx, "/clientes/login", req, &record); err != nil {
		slog.Error("Error during login", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao realizar login. Verifique suas credenciais.")
	}

	customer := sanitizeCustomer(record)
	slog.Info("Customer logged in successfully", slog.String("email", customer.Email))

	return &customer, nil
}
