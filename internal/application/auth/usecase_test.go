package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/misikss/nova-salud-api/internal/application/auth"
	"github.com/misikss/nova-salud-api/internal/application/dto"
	"github.com/misikss/nova-salud-api/internal/domain"
	"github.com/misikss/nova-salud-api/internal/domain/entity"
	"github.com/misikss/nova-salud-api/pkg/config"
	pkgjwt "github.com/misikss/nova-salud-api/pkg/jwt"
)

var testJWTCfg = config.JWTConfig{
	Secret:            "access-secret-para-tests",
	RefreshSecret:     "refresh-secret-para-tests",
	Issuer:            "nova-salud-test",
	Expiration:        15,
	RefreshExpiration: 60,
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(user *entity.User) error { f.users[user.ID] = user; return nil }

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ bool) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(user *entity.User) error { f.users[user.ID] = user; return nil }

func (f *fakeUserRepo) SoftDelete(_ string) error { return nil }

func testUsuario(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u1",
		Nombre:       "Ana",
		Apellido:     "Vargas",
		Email:        "ana@novasalud.com",
		PasswordHash: string(hash),
		Rol:          entity.RoleVendedor,
		Activo:       true,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "ana@novasalud.com", resp.Usuario.Email)

	// El access token se firma con el secreto de acceso y lleva los claims.
	claims, err := pkgjwt.Parse(testJWTCfg.Secret, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, entity.RoleVendedor, claims.Role)

	// El refresh token NO se valida con el secreto de acceso.
	_, err = pkgjwt.Parse(testJWTCfg.Secret, resp.RefreshToken)
	assert.Error(t, err)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_EmailInexistente_MismoError(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@novasalud.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
		"email inexistente y contraseña incorrecta responden igual")
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	user.Activo = false
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestRefresh_EmiteParNuevo(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	resp, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
}

func TestRefresh_ConAccessToken_Rechazado(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	// Un access token no sirve como refresh: secreto distinto.
	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefresh_UsuarioDesactivadoDespuesDelLogin(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	repo := newFakeUserRepo(user)
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@novasalud.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	user.Activo = false
	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestProfile(t *testing.T) {
	user := testUsuario(t, "secreto-fuerte")
	uc := auth.NewAuthUseCase(newFakeUserRepo(user), testJWTCfg)

	resp, err := uc.Profile("u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Nombre)

	_, err = uc.Profile("no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
