package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	apperrors "github.com/lojahub/backoffice/internal/errors"
	"github.com/lojahub/backoffice/internal/models"
	"github.com/lojahub/backoffice/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCustomerList(t *testing.T) {
	// Arrange
	api := new(mockAPI)
	svc := services.NewCustomerService(api)
	ctx := context.Background()

	api.On("Get", mock.Anything, "/clientes", mock.Anything).
		Run(respondWith(`[{"id":1,"nome":"Ana","email":"ana@exemplo.com","cpf":"12345678901","senha":"$2b$hash"}]`, 2)).
		Return(nil).Once()

	// Act
	customers, err := svc.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ana", customers[0].Name)

	// the password hash the server echoed must be stripped on read
	encoded, _ := json.Marshal(customers)
	assert.NotContains(t, string(encoded), "senha")
	api.AssertExpectations(t)
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()

	valid := models.CustomerDraft{
		Name:     "Maria Silva",
		Email:    "maria@exemplo.com",
		CPF:      "12345678901",
		Password: "ab12",
	}

	t.Run("invalid draft never reaches the network", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		draft := valid
		draft.Name = "Maria 2"

		customer, err := svc.Create(ctx, draft)

		assert.Nil(t, customer)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "Nome não pode conter números.", err.Error())
		api.AssertNotCalled(t, "Post")
	})

	t.Run("valid draft posts the shaped payload", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes", mock.MatchedBy(func(body any) bool {
			p, ok := body.(map[string]any)
			if !ok {
				return ok
			}

			phone, hasPhone := p["telefone"]

			return p["senha"] == "ab12" && hasPhone && phone == nil
		}), mock.Anything).
			Run(respondWith(`{"id":5,"nome":"Maria Silva","email":"maria@exemplo.com","cpf":"12345678901"}`, 3)).
			Return(nil).Once()

		customer, err := svc.Create(ctx, valid)

		require.NoError(t, err)
		assert.Equal(t, int64(5), customer.ID)
		api.AssertExpectations(t)
	})

	t.Run("server failure keeps its message", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes", mock.Anything, mock.Anything).
			Return(apperrors.ServerError("CPF já cadastrado", http.StatusConflict)).Once()

		customer, err := svc.Create(ctx, valid)

		assert.Nil(t, customer)
		assert.EqualError(t, err, "CPF já cadastrado")
	})

	t.Run("blank server message falls back to the default", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes", mock.Anything, mock.Anything).
			Return(apperrors.ServerError("", http.StatusInternalServerError)).Once()

		_, err := svc.Create(ctx, valid)

		assert.EqualError(t, err, "Erro ao criar cliente.")
	})
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("blank password omitted from payload", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Put", mock.Anything, "/clientes/3", mock.MatchedBy(func(body any) bool {
			p, ok := body.(map[string]any)
			if !ok {
				return ok
			}

			_, hasPassword := p["senha"]

			return p["nome"] == "Maria Souza" && !hasPassword
		}), mock.Anything).
			Run(respondWith(`{"id":3,"nome":"Maria Souza","email":"m@e.com","cpf":"12345678901"}`, 3)).
			Return(nil).Once()

		customer, err := svc.Update(ctx, 3, models.CustomerUpdate{
			Name:     strPtr("Maria Souza"),
			Password: strPtr("   "),
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria Souza", customer.Name)
		api.AssertExpectations(t)
	})

	t.Run("weak password rejected locally", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		_, err := svc.Update(ctx, 3, models.CustomerUpdate{Password: strPtr("abc")})

		require.Error(t, err)
		assert.EqualError(t, err, "A senha deve ter pelo menos 4 caracteres.")
		api.AssertNotCalled(t, "Put")
	})

	t.Run("valid password included", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Put", mock.Anything, "/clientes/3", mock.MatchedBy(func(body any) bool {
			p, ok := body.(map[string]any)

			return ok && p["senha"] == "ab12"
		}), mock.Anything).
			Run(respondWith(`{"id":3,"nome":"Maria","email":"m@e.com","cpf":"12345678901"}`, 3)).
			Return(nil).Once()

		_, err := svc.Update(ctx, 3, models.CustomerUpdate{Password: strPtr("ab12")})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})
}

func TestCustomerDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Delete", mock.Anything, "/clientes/9").Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, 9))
		api.AssertExpectations(t)
	})

	t.Run("failure gets the default message", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Delete", mock.Anything, "/clientes/9").
			Return(apperrors.ServerError("", http.StatusInternalServerError)).Once()

		assert.EqualError(t, svc.Delete(ctx, 9), "Erro ao excluir cliente.")
	})
}

func TestCustomerLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid credentials rejected locally", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		_, err := svc.Login(ctx, "maria@exemplo.com", "abcd")

		require.Error(t, err)
		assert.EqualError(t, err, "A senha deve conter pelo menos um número.")
		api.AssertNotCalled(t, "Post")
	})

	t.Run("success returns the customer", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes/login", mock.Anything, mock.Anything).
			Run(respondWith(`{"id":1,"nome":"Maria","email":"maria@exemplo.com","cpf":"12345678901"}`, 3)).
			Return(nil).Once()

		customer, err := svc.Login(ctx, "maria@exemplo.com", "ab12")

		require.NoError(t, err)
		assert.Equal(t, "Maria", customer.Name)
	})

	t.Run("rejected credentials surface the server message", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes/login", mock.Anything, mock.Anything).
			Return(apperrors.ServerError("Credenciais inválidas", http.StatusUnauthorized)).Once()

		_, err := svc.Login(ctx, "maria@exemplo.com", "ab12")

		assert.EqualError(t, err, "Credenciais inválidas")
	})

	t.Run("blank server message falls back", func(t *testing.T) {
		api := new(mockAPI)
		svc := services.NewCustomerService(api)

		api.On("Post", mock.Anything, "/clientes/login", mock.Anything, mock.Anything).
			Return(apperrors.ServerError("", http.StatusUnauthorized)).Once()

		_, err := svc.Login(ctx, "maria@exemplo.com", "ab12")

		assert.EqualError(t, err, "Erro ao realizar login. Verifique suas credenciais.")
	})
}
