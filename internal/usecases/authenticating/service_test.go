package authenticating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/rbfernandes/classificados-api/infrastructure/repository/mocks"
	"github.com/rbfernandes/classificados-api/internal/config"
	"github.com/rbfernandes/classificados-api/internal/domain"
)

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(userRepo, &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	})

	return service, userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctx := context.Background()

	storedUser := func() *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Rafaela",
			Email:        "rafaela@classificados.app.br",
			PasswordHash: hashPassword(t, "senha-correta"),
			Active:       true,
			RoleID:       1,
		}
	}

	t.Run("Credenciais válidas geram token com os dados do usuário", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByEmail(ctx, "rafaela@classificados.app.br").
			Return(storedUser(), nil)

		token, err := service.LoginUser(ctx, "rafaela@classificados.app.br", "senha-correta")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "Rafaela", claims.UserName)
		assert.Equal(t, 1, claims.UserRoleID)
		assert.True(t, claims.UserActive)
	})

	t.Run("E-mail é normalizado antes da consulta", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByEmail(ctx, "rafaela@classificados.app.br").
			Return(storedUser(), nil)

		_, err := service.LoginUser(ctx, "  Rafaela@Classificados.APP.BR ", "senha-correta")
		assert.NoError(t, err)
	})

	t.Run("Senha incorreta", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByEmail(ctx, gomock.Any()).
			Return(storedUser(), nil)

		_, err := service.LoginUser(ctx, "rafaela@classificados.app.br", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByEmail(ctx, gomock.Any()).
			Return(nil, nil)

		_, err := service.LoginUser(ctx, "ninguem@classificados.app.br", "senha")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuário desativado", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		disabled := storedUser()
		disabled.Active = false
		userRepo.EXPECT().
			GetUserByEmail(ctx, gomock.Any()).
			Return(disabled, nil)

		_, err := service.LoginUser(ctx, "rafaela@classificados.app.br", "senha-correta")
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.ValidateToken("nao-e-um-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Criação válida aplica hash e papel padrão", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().
			GetUserByEmail(ctx, "novo@classificados.app.br").
			Return(nil, nil)
		userRepo.EXPECT().
			CreateUser(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
				assert.NotEqual(t, "senha123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				assert.Equal(t, 2, user.RoleID)
				user.ID = 42
				return user, nil
			})

		created, err := service.CreateUser(ctx, &domain.User{
			Name:  "Novo Usuário",
			Email: "Novo@Classificados.APP.BR",
		}, "senha123")

		require.NoError(t, err)
		assert.Equal(t, 42, created.ID)
		assert.Equal(t, "novo@classificados.app.br", created.Email)
	})

	t.Run("E-mail já cadastrado", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByEmail(ctx, gomock.Any()).
			Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(ctx, &domain.User{
			Name:  "Duplicado",
			Email: "novo@classificados.app.br",
		}, "senha123")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _ := newAuthService(t)

		_, err := service.CreateUser(ctx, &domain.User{Name: "Sem e-mail"}, "senha123")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Usuário encontrado", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByID(ctx, 7).
			Return(&domain.User{ID: 7, Name: "Rafaela"}, nil)

		user, err := service.GetUserProfile(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Rafaela", user.Name)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		service, userRepo := newAuthService(t)
		userRepo.EXPECT().
			GetUserByID(ctx, 99).
			Return(nil, nil)

		_, err := service.GetUserProfile(ctx, 99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
