package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-analytics-api/infrastructure/repository/mocks"
	"github.com/vfg2006/restaurant-analytics-api/internal/config"
	"github.com/vfg2006/restaurant-analytics-api/internal/domain"
	"github.com/vfg2006/restaurant-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "chave-de-teste"}
}

func authCode(t *testing.T, err error) string {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	return authErr.Code
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
		wantCode string
	}{
		{
			name:     "nome vazio",
			email:    "maria@restaurante.com.br",
			password: "senha-forte",
			wantErr:  ErrMissingRequiredData,
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "email sem domínio",
			userName: "Maria",
			email:    "maria@",
			password: "senha-forte",
			wantErr:  ErrInvalidEmail,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "email sem ponto no domínio",
			userName: "Maria",
			email:    "maria@restaurante",
			password: "senha-forte",
			wantErr:  ErrInvalidEmail,
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:     "senha com menos de oito caracteres",
			userName: "Maria",
			email:    "maria@restaurante.com.br",
			password: "curta",
			wantErr:  ErrWeakPassword,
			wantCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			userRepo := mocks.NewMockUserRepository(ctrl)

			service := NewService(userRepo, testConfig())

			user, token, err := service.RegisterUser(tt.userName, tt.email, tt.password)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, authCode(t, err))
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}
}

func TestRegisterUser_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().
		GetUserByEmail("maria@restaurante.com.br").
		Return(&domain.User{ID: 1, Email: "maria@restaurante.com.br"}, nil)

	service := NewService(userRepo, testConfig())

	_, _, err := service.RegisterUser("Maria", "maria@restaurante.com.br", "senha-forte")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, authCode(t, err))
}

func TestRegisterUser_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	// O email chega normalizado: minúsculo e sem espaços.
	userRepo.EXPECT().GetUserByEmail("maria@restaurante.com.br").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, "Maria", user.Name)
			assert.Equal(t, "maria@restaurante.com.br", user.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword(
				[]byte(user.PasswordHash), []byte("senha-forte"),
			))

			user.ID = 42
			return user, nil
		})

	service := NewService(userRepo, testConfig())

	user, token, err := service.RegisterUser("Maria", " Maria@Restaurante.com.br ", "senha-forte")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 42, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "maria@restaurante.com.br", claims.UserEmail)
}

func TestLoginUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &domain.User{
		ID:           7,
		Name:         "João",
		Email:        "joao@restaurante.com.br",
		PasswordHash: string(hash),
	}

	t.Run("credenciais válidas devolvem usuário sem hash e token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("joao@restaurante.com.br").Return(stored, nil)

		service := NewService(userRepo, testConfig())

		user, token, err := service.LoginUser("joao@restaurante.com.br", "senha-forte")
		require.NoError(t, err)
		assert.Equal(t, 7, user.ID)
		assert.Empty(t, user.PasswordHash)
		assert.NotEmpty(t, token)
	})

	t.Run("email desconhecido responde credenciais inválidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ninguem@restaurante.com.br").Return(nil, nil)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("ninguem@restaurante.com.br", "qualquer-senha")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
	})

	t.Run("senha errada responde o mesmo erro de email desconhecido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("joao@restaurante.com.br").Return(stored, nil)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("joao@restaurante.com.br", "senha-errada")
		require.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, apiErrors.ErrInvalidCredentials, authCode(t, err))
	})

	t.Run("campos vazios respondem dados obrigatórios", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		service := NewService(userRepo, testConfig())

		_, _, err := service.LoginUser("", "")
		require.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestGetUserProfile(t *testing.T) {
	t.Run("usuário existente volta sem o hash da senha", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
			ID:           7,
			Name:         "João",
			PasswordHash: "hash-qualquer",
		}, nil)

		service := NewService(userRepo, testConfig())

		user, err := service.GetUserProfile(7)
		require.NoError(t, err)
		assert.Equal(t, "João", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		service := NewService(userRepo, testConfig())

		_, err := service.GetUserProfile(99)
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestValidateToken_TokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(userRepo, testConfig())

	tests := []struct {
		name  string
		token string
	}{
		{"token vazio", ""},
		{"token truncado", "abc.def"},
		{"assinatura de outra chave", signedWithOtherKey(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

// signedWithOtherKey gera um token assinado com uma chave diferente da usada
// pela validação.
func signedWithOtherKey(t *testing.T) string {
	t.Helper()

	token, err := generateJWT(&domain.User{ID: 1}, "outra-chave")
	require.NoError(t, err)
	return token
}
