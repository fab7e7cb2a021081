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

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error)
	Update(ctx context.Context, id int64, draft models.CategoryUpdate) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	api rest.Client
}

func NewCategoryService(api rest.Client) CategoryService {
	return &categoryService{api: api}
}

// sanitizeCategory defaults the embedded product list so display counts can
// range over it without nil checks. A null descricao already decodes to "".
func sanitizeCategory(c *models.Category) {
	if c.Products == nil {
		c.Products = []models.ProductSummary{}
	}
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category

	if err := s.api.Get(ctx, "/categorias", &categories); err != nil {
		slog.Error("Error fetching categories", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao buscar categorias.")
	}

	for i := range categories {
		sanitizeCategory(&categories[i])
	}

	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category

	if err := s.api.Get(ctx, fmt.Sprintf("/categorias/%d", id), &category); err != nil {
		slog.Error("Error fetching category",
			slog.Int64("categoryId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao buscar categoria.")
	}

	sanitizeCategory(&category)

	return &category, nil
}

func (s *categoryService) Create(ctx context.Context, draft models.CategoryDraft) (*models.Category, error) {
	if err := validation.CategoryCreate(draft); err != nil {
		slog.Warn("Category input validation failed", slog.String("error", err.Error()))
		return nil, err
	}

	var category models.Category

	if err := s.api.Post(ctx, "/categorias", payload.CategoryCreate(draft), &category); err != nil {
		slog.Error("Error during category creation", slog.String("error", err.Error()))
		return nil, apperrors.WithFallback(err, "Erro ao criar categoria.")
	}

	sanitizeCategory(&category)
	slog.Info("Category created successfully", slog.Int64("categoryId", category.ID))

	return &category, nil
}

func (s *categoryService) Update(ctx context.Context, id int64, draft models.CategoryUpdate) (*models.Category, error) {
	if err := validation.CategoryEdit(draft); err != nil {
		slog.Warn("Category input validation failed",
			slog.Int64("categoryId", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	var category models.Category

	if err := s.api.Put(ctx, fmt.Sprintf("/categorias/%d", id), payload.CategoryUpdate(draft), &category); err != nil {
		slog.Error("Error during category update",
			slog.Int64("categoryId", id),
			slog.String("error", err.Error()),
		)
		return nil, apperrors.WithFallback(err, "Erro ao salvar categoria.")
	}

	sanitizeCategory(&category)
	slog.Info("Category updated successfully", slog.Int64("categoryId", category.ID))

	return &category, nil
}

func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("/categorias/%d", id)); err != nil {
		slog.Error("Error during category deletion",
			slog.Int64("categoryId", id),
			slog.String("error", err.Error()),
		)
		return apperrors.WithFallback(err, "Erro ao excluir categoria.")
	}

	slog.Info("Category deleted successfully", slog.Int64("categoryId", id))

	return nil
}
