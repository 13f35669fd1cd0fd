package authenticating

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/smdigital/pulso-social-api/infrastructure/repository/mocks"
	"github.com/smdigital/pulso-social-api/internal/config"
	"github.com/smdigital/pulso-social-api/internal/domain"
	"github.com/smdigital/pulso-social-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "secreto-de-prueba"

func nuevoServicio(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret

	return NewService(userRepo, cfg), userRepo
}

func usuarioActivo(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "García",
		Email:        "ana@pulsosocial.gov.co",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       domain.RoleAnalyst,
	}
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "login exitoso devuelve un token firmado",
			email:    "ana@pulsosocial.gov.co",
			password: "clave123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
					Return(usuarioActivo(t, "clave123"), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "el email se normaliza antes de buscar",
			email:    "  Ana@PulsoSocial.gov.co ",
			password: "clave123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
					Return(usuarioActivo(t, "clave123"), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "contraseña incorrecta",
			email:    "ana@pulsosocial.gov.co",
			password: "otra-clave",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
					Return(usuarioActivo(t, "clave123"), nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "usuario inexistente",
			email:    "nadie@pulsosocial.gov.co",
			password: "clave123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("nadie@pulsosocial.gov.co").Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "cuenta desactivada",
			email:    "ana@pulsosocial.gov.co",
			password: "clave123",
			setup: func(repo *mocks.MockUserRepository) {
				user := usuarioActivo(t, "clave123")
				user.Active = false
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").Return(user, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
				assert.Equal(t, 7, authErr.UserID)
			},
		},
		{
			name:     "credenciales vacías no tocan el repositorio",
			email:    "",
			password: "",
			setup:    func(repo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "error de base de datos",
			email:    "ana@pulsosocial.gov.co",
			password: "clave123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
					Return(nil, errors.New("conexión perdida"))
			},
			validate: func(t *testing.T, token string, err error) {
				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := nuevoServicio(t)
			tt.setup(userRepo)

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	service, userRepo := nuevoServicio(t)

	userRepo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
		Return(usuarioActivo(t, "clave123"), nil)

	token, err := service.LoginUser("ana@pulsosocial.gov.co", "clave123")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, "ana@pulsosocial.gov.co", claims.UserEmail)
	assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
	assert.True(t, claims.UserActive)
}

func TestValidateTokenRechazaTokensInvalidos(t *testing.T) {
	service, _ := nuevoServicio(t)

	claims, err := service.ValidateToken("no-es-un-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, creado *domain.User, err error)
	}{
		{
			name: "usuario nuevo se crea inactivo y con rol de analista",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "García",
				Email:        "Ana@PulsoSocial.gov.co",
				PasswordHash: "clave123",
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
					assert.Equal(t, "ana@pulsosocial.gov.co", u.Email)
					assert.Equal(t, domain.RoleAnalyst, u.RoleID)
					assert.False(t, u.Active)
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("clave123")))
					u.ID = 9
					return u, nil
				})
			},
			validate: func(t *testing.T, creado *domain.User, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 9, creado.ID)
			},
		},
		{
			name: "email ya registrado",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "García",
				Email:        "ana@pulsosocial.gov.co",
				PasswordHash: "clave123",
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").
					Return(&domain.User{ID: 1}, nil)
			},
			validate: func(t *testing.T, creado *domain.User, err error) {
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
				assert.Nil(t, creado)
			},
		},
		{
			name: "datos obligatorios ausentes",
			user: &domain.User{Email: "ana@pulsosocial.gov.co"},
			setup: func(repo *mocks.MockUserRepository) {
			},
			validate: func(t *testing.T, creado *domain.User, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
				assert.Nil(t, creado)
			},
		},
		{
			name: "rol explícito se conserva",
			user: &domain.User{
				Name:         "Ana",
				Lastname:     "García",
				Email:        "ana@pulsosocial.gov.co",
				PasswordHash: "clave123",
				RoleID:       domain.RoleAdmin,
			},
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ana@pulsosocial.gov.co").Return(nil, nil)
				repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
					assert.Equal(t, domain.RoleAdmin, u.RoleID)
					return u, nil
				})
			},
			validate: func(t *testing.T, creado *domain.User, err error) {
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := nuevoServicio(t)
			tt.setup(userRepo)

			creado, err := service.CreateUser(tt.user)
			tt.validate(t, creado, err)
		})
	}
}

func TestGetUserProfile(t *testing.T) {
	t.Run("limpia el hash de la contraseña", func(t *testing.T) {
		service, userRepo := nuevoServicio(t)

		userRepo.EXPECT().GetUserByID(7).Return(usuarioActivo(t, "clave123"), nil)

		user, err := service.GetUserProfile(7)

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
		assert.Equal(t, "Ana", user.Name)
	})

	t.Run("usuario inexistente", func(t *testing.T) {
		service, userRepo := nuevoServicio(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		user, err := service.GetUserProfile(99)

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, user)
	})
}
