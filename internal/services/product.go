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

type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error)
	Update(ctx context.Context, id int64, draft models.ProductUpdate, initial models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	api rest.Client
}

func NewProductService(api rest.Client) ProductService {
	return &productService{api: api}
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	if err := s.api.Get(ctx, "/produtos", &products); err != nil {
		slog.Error("Error fetching products", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao buscar produtos.")
	}

	return products, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product

	if err := s.api.Get(ctx, fmt.Sprintf("/produtos/%d", id), &product); err != nil {
		slog.Error("Error fetching product",
			slog.Int64("productId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao buscar produto.")
	}

	return &product, nil
}

func (s *productService) Create(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	if err := validation.ProductCreate(draft); err != nil {
		slog.Warn("Product input validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	var product models.Product

	if err := s.api.Post(ctx, "/produtos", payload.ProductCreate(draft), &product); err != nil {
		slog.Error("Error during product creation", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao criar produto.")
	}

	slog.Info("Product created successfully", slog.Int64("productId", product.ID))

	return &product, nil
}

// Update diffs the draft against the loaded record so unchanged descricao
// and estoque stay out of the payload.
func (s *productService) Update(ctx context.Context, id int64, draft models.ProductUpdate, initial models.Product) (*models.Product, error) {
	if err := validation.ProductEdit(draft); err != nil {
		slog.Warn("Product input validation failed",
			slog.Int64("productId", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	var product models.Product

	if err := s.api.Put(ctx, fmt.Sprintf("/produtos/%d", id), payload.ProductUpdate(draft, initial), &product); err != nil {
		slog.Error("Error during product update",
			slog.Int64("productId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao salvar alterações.")
	}

	slog.Info("Product updated successfully", slog.Int64("productId", product.ID))

	return &product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/produtos/%d", id)); err != nil {
		slog.Error("Error during product deletion",
			slog.Int64("productId", id),
			slog.String("error", err.Error()),
		)
		return apperrors.WithFallback(err, "Erro ao excluir produto.")
	}

	slog.Info("Product deleted successfully", slog.Int64("productId", id))

	return nil
}
