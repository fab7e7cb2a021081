package services_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the default logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func TestServiceLogging(t *testing.T) {
	t.Run("successful create logs at info with the record id", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)
		api := new(mockAPI)
		api.On("Post", mock.Anything, "/categorias", mock.Anything, mock.Anything).
			Run(respondWith(`{"id": 7, "nome": "Bebidas"}`, 3)).
			Return(nil)
		svc := services.NewCategoryService(api)

		// Act
		_, err := svc.Create(context.Background(), models.CategoryDraft{Name: "Bebidas"})

		// Assert
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Category created successfully")
		assert.Contains(t, buf.String(), `"categoryId":7`)
	})

	t.Run("validation rejection logs at warn without calling the API", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		// Act
		_, err := svc.Create(context.Background(), models.CustomerDraft{})

		// Assert
		require.Error(t, err)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), "Customer input validation failed")
		api.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("transport failure logs at error before the fallback wraps it", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)
		api := new(mockAPI)
		api.On("Get", mock.Anything, "/pedidos", mock.Anything).
			Return(apperrors.ServerError("", 500))
		svc := services.NewOrderService(api)

		// Act
		_, err := svc.List(context.Background())

		// Assert
		require.Error(t, err)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
		assert.Contains(t, buf.String(), "Error fetching orders")
	})

	t.Run("delete logs at info with the id", func(t *testing.T) {
		// Arrange
		buf := captureLogs(t)
		api := new(mockAPI)
		api.On("Delete", mock.Anything, "/produtos/4").Return(nil)
		svc := services.NewProductService(api)

		// Act
		err := svc.Delete(context.Background(), 4)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Product deleted successfully")
		assert.Contains(t, buf.String(), `"productId":4`)
	})
}
